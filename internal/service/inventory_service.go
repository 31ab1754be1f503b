package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/calculator"
	"github.com/mmynk/clevermart/internal/metrics"
	"github.com/mmynk/clevermart/internal/models"
	"github.com/mmynk/clevermart/internal/storage"
)

// InventoryService owns the in-memory product list and its persistence.
// Every mutation is followed by a full save. A failed save is reported to
// the caller but the in-memory change is kept, so memory and disk can
// diverge until the next successful save.
type InventoryService struct {
	store    storage.InventoryStore
	metrics  *metrics.Metrics
	products []models.Product
}

// NewInventoryService creates an empty InventoryService backed by store.
// Call Load to populate it.
func NewInventoryService(store storage.InventoryStore, m *metrics.Metrics) *InventoryService {
	return &InventoryService{store: store, metrics: m}
}

// Load replaces the in-memory products with the persisted ones.
// On a load error whatever could be parsed is kept and the error returned.
func (s *InventoryService) Load(ctx context.Context) error {
	products, err := s.store.LoadProducts(ctx)
	s.products = products
	s.publish()
	if err != nil {
		slog.Error("Failed to load inventory", "error", err, "loaded", len(products))
		return err
	}
	slog.Info("Inventory loaded", "products", len(products))
	return nil
}

// Save writes the whole product list.
func (s *InventoryService) Save(ctx context.Context) error {
	if err := s.store.SaveProducts(ctx, s.products); err != nil {
		slog.Error("Failed to save inventory", "error", err)
		s.metrics.SaveFailed("inventory")
		return err
	}
	return nil
}

// Products returns a copy of every product in inventory order.
func (s *InventoryService) Products() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get finds a product by name, case-insensitively.
func (s *InventoryService) Get(name string) (models.Product, error) {
	i := s.index(name)
	if i < 0 {
		return models.Product{}, apperror.NotFound("product %q not found", name)
	}
	return s.products[i], nil
}

// Filter returns products whose name contains query (case-insensitive) and
// whose category matches. CategoryAll or an empty category matches all.
func (s *InventoryService) Filter(query string, category models.Category) []models.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	out := []models.Product{}
	for _, p := range s.products {
		if query != "" && !strings.Contains(strings.ToLower(p.Name), query) {
			continue
		}
		if category != "" && category != models.CategoryAll && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Catalog lists the products of one category with their selling price and
// stock tier.
func (s *InventoryService) Catalog(category models.Category) []CatalogEntry {
	entries := []CatalogEntry{}
	for _, p := range s.Filter("", category) {
		entries = append(entries, CatalogEntry{
			Name:         p.Name,
			Category:     p.Category,
			SellingPrice: calculator.RoundCurrency(calculator.SellingPrice(p.Price)),
			Quantity:     p.Quantity,
			Tier:         calculator.ClassifyStock(p.Quantity, p.Max),
		})
	}
	return entries
}

// StockReport classifies every product.
func (s *InventoryService) StockReport() []StockLevel {
	levels := make([]StockLevel, 0, len(s.products))
	for _, p := range s.products {
		levels = append(levels, StockLevel{
			Name:     p.Name,
			Quantity: p.Quantity,
			Max:      p.Max,
			Tier:     calculator.ClassifyStock(p.Quantity, p.Max),
		})
	}
	return levels
}

// AddProduct validates in, appends the product and saves.
func (s *InventoryService) AddProduct(ctx context.Context, in models.ProductInput) (models.Product, error) {
	p, err := ValidateProduct(in, s.products)
	if err != nil {
		s.metrics.Rejected("validation")
		slog.Warn("AddProduct rejected", "name", in.Name, "error", err)
		return models.Product{}, err
	}

	s.products = append(s.products, p)
	s.publish()
	slog.Info("Product added", "name", p.Name, "price", p.Price, "quantity", p.Quantity, "category", p.Category)

	return p, s.Save(ctx)
}

// EditProduct replaces the product named originalName with in.
// Max is reset to the new quantity. The new name must not belong to any
// other product.
func (s *InventoryService) EditProduct(ctx context.Context, originalName string, in models.ProductInput) (models.Product, error) {
	i := s.index(originalName)
	if i < 0 {
		return models.Product{}, apperror.NotFound("product %q not found", originalName)
	}

	others := make([]models.Product, 0, len(s.products)-1)
	others = append(others, s.products[:i]...)
	others = append(others, s.products[i+1:]...)

	p, err := ValidateProduct(in, others)
	if err != nil {
		s.metrics.Rejected("validation")
		slog.Warn("EditProduct rejected", "name", originalName, "error", err)
		return models.Product{}, err
	}

	s.products[i] = p
	s.publish()
	slog.Info("Product updated", "original_name", originalName, "name", p.Name, "quantity", p.Quantity)

	return p, s.Save(ctx)
}

// DeleteProduct removes the named product once confirm approves it.
func (s *InventoryService) DeleteProduct(ctx context.Context, name string, confirm Confirm) error {
	i := s.index(name)
	if i < 0 {
		return apperror.NotFound("product %q not found", name)
	}

	prompt := fmt.Sprintf("Are you sure you want to delete '%s'?", s.products[i].Name)
	if !ask(confirm, prompt) {
		return apperror.ConfirmationRequired("%s", prompt)
	}

	removed := s.products[i]
	s.products = append(s.products[:i], s.products[i+1:]...)
	s.publish()
	slog.Info("Product deleted", "name", removed.Name)

	return s.Save(ctx)
}

// Restock adds qty units to a product in the low tier. Max is unchanged.
func (s *InventoryService) Restock(ctx context.Context, name string, qty int) (models.Product, error) {
	i := s.index(name)
	if i < 0 {
		return models.Product{}, apperror.NotFound("product %q not found", name)
	}

	p := &s.products[i]
	if !calculator.NeedsRestock(p.Quantity, p.Max) {
		return *p, apperror.RestockNotNeeded("product '%s' does not require restocking", p.Name)
	}
	if qty <= 0 {
		return *p, apperror.Validation(apperror.ReasonInvalidQuantity, "quantity",
			"restock quantity must be a whole number greater than zero")
	}

	p.Quantity += qty
	restocked := *p
	s.publish()
	slog.Info("Product restocked", "name", restocked.Name, "added", qty, "quantity", restocked.Quantity)

	return restocked, s.Save(ctx)
}

// deduct removes qty units of name from stock, dropping the product once
// nothing is left. Unknown names are ignored: the product may have been
// deleted after it was put in the cart.
func (s *InventoryService) deduct(name string, qty int) {
	i := s.index(name)
	if i < 0 {
		slog.Warn("Sold product no longer in inventory", "name", name)
		return
	}
	s.products[i].Quantity -= qty
	if s.products[i].Quantity <= 0 {
		slog.Info("Product sold out", "name", s.products[i].Name)
		s.products = append(s.products[:i], s.products[i+1:]...)
	}
}

func (s *InventoryService) index(name string) int {
	for i, p := range s.products {
		if p.SameName(name) {
			return i
		}
	}
	return -1
}

// publish refreshes the inventory gauges.
func (s *InventoryService) publish() {
	low := 0
	for _, p := range s.products {
		if calculator.NeedsRestock(p.Quantity, p.Max) {
			low++
		}
	}
	s.metrics.Inventory(len(s.products), low)
}


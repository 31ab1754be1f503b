package handler

import (
	"github.com/shopspring/decimal"

	"github.com/mmynk/clevermart/internal/calculator"
	"github.com/mmynk/clevermart/internal/models"
	"github.com/mmynk/clevermart/internal/service"
)

// Amounts are rendered as fixed two-decimal strings.
func money(d decimal.Decimal) string {
	return d.StringFixed(calculator.CurrencyPlaces)
}

type productView struct {
	Name     string `json:"name"`
	Price    string `json:"price"`
	Quantity int    `json:"quantity"`
	Max      int    `json:"max"`
	Category string `json:"category"`
	Tier     string `json:"tier"`
}

func toProductView(p models.Product) productView {
	return productView{
		Name:     p.Name,
		Price:    money(p.Price),
		Quantity: p.Quantity,
		Max:      p.Max,
		Category: string(p.Category),
		Tier:     string(calculator.ClassifyStock(p.Quantity, p.Max)),
	}
}

func toProductViews(products []models.Product) []productView {
	out := make([]productView, len(products))
	for i, p := range products {
		out[i] = toProductView(p)
	}
	return out
}

type catalogView struct {
	Name         string `json:"name"`
	Category     string `json:"category"`
	SellingPrice string `json:"selling_price"`
	Quantity     int    `json:"quantity"`
	Tier         string `json:"tier"`
}

func toCatalogViews(entries []service.CatalogEntry) []catalogView {
	out := make([]catalogView, len(entries))
	for i, e := range entries {
		out[i] = catalogView{
			Name:         e.Name,
			Category:     string(e.Category),
			SellingPrice: money(e.SellingPrice),
			Quantity:     e.Quantity,
			Tier:         string(e.Tier),
		}
	}
	return out
}

type stockView struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Max      int    `json:"max"`
	Tier     string `json:"tier"`
}

func toStockViews(levels []service.StockLevel) []stockView {
	out := make([]stockView, len(levels))
	for i, l := range levels {
		out[i] = stockView{Name: l.Name, Quantity: l.Quantity, Max: l.Max, Tier: string(l.Tier)}
	}
	return out
}

type cartLineView struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	SellingPrice string `json:"selling_price"`
	Subtotal     string `json:"subtotal"`
}

type cartView struct {
	Lines []cartLineView `json:"lines"`
	Total string         `json:"total"`
}

func toCartLineViews(lines []models.CartLine) []cartLineView {
	out := make([]cartLineView, len(lines))
	for i, l := range lines {
		unit := calculator.SellingPrice(l.Price)
		out[i] = cartLineView{
			Name:         l.Name,
			Quantity:     l.Quantity,
			SellingPrice: money(unit),
			Subtotal:     money(unit.Mul(decimal.NewFromInt(int64(l.Quantity)))),
		}
	}
	return out
}

func toCartView(q service.Quote) cartView {
	return cartView{Lines: toCartLineViews(q.Lines), Total: money(q.Total)}
}

type transactionView struct {
	Date        string `json:"date"`
	TotalSale   string `json:"total_sale"`
	TotalProfit string `json:"total_profit"`
	Tendered    string `json:"tendered"`
	Change      string `json:"change"`
}

func toTransactionView(t models.Transaction) transactionView {
	return transactionView{
		Date:        t.Date.Format(models.DateLayout),
		TotalSale:   money(t.TotalSale),
		TotalProfit: money(t.TotalProfit),
		Tendered:    money(t.Tendered),
		Change:      money(t.Change),
	}
}

type receiptView struct {
	transactionView
	Lines []cartLineView `json:"lines"`
}

func toReceiptView(r *models.Receipt) receiptView {
	return receiptView{transactionView: toTransactionView(r.Transaction), Lines: toCartLineViews(r.Lines)}
}

type saleView struct {
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	Cost         string `json:"cost"`
	SellingPrice string `json:"selling_price"`
	Profit       string `json:"profit"`
}

type salesReportView struct {
	Sales        []saleView `json:"sales"`
	Transactions int        `json:"transactions"`
	TotalSales   string     `json:"total_sales"`
	TotalProfit  string     `json:"total_profit"`
}

func toSalesReportView(r service.SalesReport) salesReportView {
	sales := make([]saleView, len(r.Sales))
	for i, s := range r.Sales {
		sales[i] = saleView{
			Name:         s.Name,
			Quantity:     s.Quantity,
			Cost:         money(s.Cost),
			SellingPrice: money(s.SellingPrice),
			Profit:       money(s.Profit),
		}
	}
	return salesReportView{
		Sales:        sales,
		Transactions: r.Totals.Transactions,
		TotalSales:   money(r.Totals.TotalSales),
		TotalProfit:  money(r.Totals.TotalProfit),
	}
}

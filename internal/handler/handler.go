// Package handler exposes the store over a JSON HTTP API.
package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmynk/clevermart/internal/auth"
	"github.com/mmynk/clevermart/internal/metrics"
	"github.com/mmynk/clevermart/internal/middleware"
	"github.com/mmynk/clevermart/internal/service"
)

// Handler serves the guest and administrator routes.
type Handler struct {
	inventory *service.InventoryService
	cart      *service.CartService
	checkout  *service.CheckoutService
	ledger    *service.LedgerService
	auth      *service.AuthService
}

func New(
	inventory *service.InventoryService,
	cart *service.CartService,
	checkout *service.CheckoutService,
	ledger *service.LedgerService,
	authService *service.AuthService,
) *Handler {
	return &Handler{
		inventory: inventory,
		cart:      cart,
		checkout:  checkout,
		ledger:    ledger,
		auth:      authService,
	}
}

// NewServer creates an echo instance with the API mounted under /api/v1.
// Metrics may be nil.
func (h *Handler) NewServer(jwtManager *auth.JWTManager, m *metrics.Metrics) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = errorHandler

	e.Use(middleware.RequestLogger(), middleware.Metrics(m))
	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api/v1", middleware.Serialize())
	h.registerGuestRoutes(api)

	api.POST("/admin/login", h.login)
	admin := api.Group("/admin", middleware.RequireAdmin(jwtManager))
	h.registerAdminRoutes(admin)

	return e
}

func (h *Handler) registerGuestRoutes(g *echo.Group) {
	g.GET("/catalog", h.catalog)
	g.GET("/cart", h.getCart)
	g.POST("/cart/items", h.addToCart)
	g.POST("/cart/items/:name/deduct", h.deductFromCart)
	g.DELETE("/cart", h.clearCart)
	g.POST("/checkout", h.pay)
}

func (h *Handler) registerAdminRoutes(g *echo.Group) {
	g.GET("/products", h.listProducts)
	g.POST("/products", h.createProduct)
	g.PUT("/products/:name", h.updateProduct)
	g.DELETE("/products/:name", h.deleteProduct)
	g.GET("/stock", h.stockReport)
	g.POST("/stock/:name/restock", h.restock)
	g.GET("/sales", h.salesReport)
	g.GET("/transactions", h.listTransactions)
	g.DELETE("/transactions", h.clearTransactions)
}

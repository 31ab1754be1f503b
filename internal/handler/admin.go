package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cast"

	"github.com/mmynk/clevermart/internal/models"
)

type loginPayload struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// productPayload accepts price and quantity as JSON numbers or strings;
// validation happens in the service.
type productPayload struct {
	Name     string `json:"name"`
	Price    any    `json:"price"`
	Quantity any    `json:"quantity"`
	Category string `json:"category"`
}

func (p productPayload) input() models.ProductInput {
	return models.ProductInput{
		Name:     p.Name,
		Price:    cast.ToString(p.Price),
		Quantity: cast.ToString(p.Quantity),
		Category: p.Category,
	}
}

type restockPayload struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) login(c echo.Context) error {
	var payload loginPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse credentials", err.Error())
	}
	token, admin, err := h.auth.Login(c.Request().Context(), payload.Username, payload.Password)
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, map[string]string{"token": token, "username": admin.Username})
}

func (h *Handler) listProducts(c echo.Context) error {
	category := models.CategoryAll
	if raw := strings.TrimSpace(c.QueryParam("category")); raw != "" {
		parsed, valid := parseCategoryFilter(raw)
		if !valid {
			return fail(c, http.StatusBadRequest, "INVALID_CATEGORY", "Unknown category", raw)
		}
		category = parsed
	}
	return ok(c, toProductViews(h.inventory.Filter(c.QueryParam("q"), category)))
}

func (h *Handler) createProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	p, err := h.inventory.AddProduct(c.Request().Context(), payload.input())
	return applied(c, http.StatusCreated, toProductView(p), err)
}

func (h *Handler) updateProduct(c echo.Context) error {
	var payload productPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse product", err.Error())
	}
	p, err := h.inventory.EditProduct(c.Request().Context(), nameParam(c), payload.input())
	return applied(c, http.StatusOK, toProductView(p), err)
}

func (h *Handler) deleteProduct(c echo.Context) error {
	name := nameParam(c)
	err := h.inventory.DeleteProduct(c.Request().Context(), name, confirmFrom(c))
	return applied(c, http.StatusOK, map[string]string{"name": name}, err)
}

func (h *Handler) stockReport(c echo.Context) error {
	return ok(c, toStockViews(h.inventory.StockReport()))
}

func (h *Handler) restock(c echo.Context) error {
	var payload restockPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse restock", err.Error())
	}
	p, err := h.inventory.Restock(c.Request().Context(), nameParam(c), payload.Quantity)
	return applied(c, http.StatusOK, toProductView(p), err)
}

func (h *Handler) salesReport(c echo.Context) error {
	return ok(c, toSalesReportView(h.ledger.SalesReport()))
}

func (h *Handler) listTransactions(c echo.Context) error {
	txns := h.ledger.Transactions()
	out := make([]transactionView, len(txns))
	for i, t := range txns {
		out[i] = toTransactionView(t)
	}
	return ok(c, out)
}

func (h *Handler) clearTransactions(c echo.Context) error {
	err := h.ledger.ClearHistory(c.Request().Context(), confirmFrom(c))
	return applied(c, http.StatusOK, map[string]int{"transactions": 0}, err)
}

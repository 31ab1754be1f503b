package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/mmynk/clevermart/internal/models"
	"github.com/mmynk/clevermart/internal/service"
)

type addToCartPayload struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type checkoutPayload struct {
	Tendered decimal.Decimal `json:"tendered"`
}

func (h *Handler) catalog(c echo.Context) error {
	category := models.CategoryAll
	if raw := strings.TrimSpace(c.QueryParam("category")); raw != "" {
		parsed, valid := parseCategoryFilter(raw)
		if !valid {
			return fail(c, http.StatusBadRequest, "INVALID_CATEGORY", "Unknown category", raw)
		}
		category = parsed
	}
	return ok(c, toCatalogViews(h.inventory.Catalog(category)))
}

func (h *Handler) getCart(c echo.Context) error {
	return ok(c, toCartView(h.checkout.Quote()))
}

func (h *Handler) addToCart(c echo.Context) error {
	var payload addToCartPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse cart item", err.Error())
	}
	if _, err := h.cart.Add(payload.Name, payload.Quantity); err != nil {
		return fromError(c, err)
	}
	return ok(c, toCartView(h.checkout.Quote()))
}

func (h *Handler) deductFromCart(c echo.Context) error {
	removed, err := h.cart.Deduct(nameParam(c), confirmFrom(c))
	if err != nil {
		return fromError(c, err)
	}
	return ok(c, map[string]any{
		"removed": removed,
		"cart":    toCartView(h.checkout.Quote()),
	})
}

func (h *Handler) clearCart(c echo.Context) error {
	h.cart.Clear()
	return ok(c, toCartView(h.checkout.Quote()))
}

func (h *Handler) pay(c echo.Context) error {
	var payload checkoutPayload
	if err := c.Bind(&payload); err != nil {
		return fail(c, http.StatusBadRequest, "INVALID_REQUEST", "Unable to parse payment", err.Error())
	}
	receipt, err := h.checkout.Pay(c.Request().Context(), payload.Tendered)
	if receipt == nil {
		return fromError(c, err)
	}
	return applied(c, http.StatusOK, toReceiptView(receipt), err)
}

// confirmFrom reads the ?confirm= flag. HTTP has no interactive prompt, so
// the caller answers up front.
func confirmFrom(c echo.Context) service.Confirm {
	return service.Confirmed(cast.ToBool(c.QueryParam("confirm")))
}

// nameParam returns the :name path segment. Echo leaves it escaped when the
// request path carried escapes.
func nameParam(c echo.Context) string {
	raw := c.Param("name")
	if name, err := url.PathUnescape(raw); err == nil {
		return name
	}
	return raw
}

func parseCategoryFilter(raw string) (models.Category, bool) {
	if strings.EqualFold(raw, string(models.CategoryAll)) {
		return models.CategoryAll, true
	}
	return models.ParseCategory(raw)
}

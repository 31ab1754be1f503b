package middleware

import (
	"sync"

	"github.com/labstack/echo/v4"
)

// Serialize runs one request at a time. The store keeps a single cart and
// in-memory inventory, so handlers must never interleave.
func Serialize() echo.MiddlewareFunc {
	var mu sync.Mutex
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			mu.Lock()
			defer mu.Unlock()
			return next(c)
		}
	}
}

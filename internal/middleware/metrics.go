package middleware

import (
	"time"

	"github.com/labstack/echo/v4"

	"github.com/mmynk/clevermart/internal/metrics"
)

// Metrics records request counts and latency by route pattern.
func Metrics(m *metrics.Metrics) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			m.Request(c.Request().Method, c.Path(), statusOf(c, err), time.Since(start))
			return err
		}
	}
}

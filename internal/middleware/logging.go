package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestLogger logs every request with its route, status and duration,
// tagging it with an X-Request-ID (generated when the client sent none).
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			requestID := c.Request().Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			c.Response().Header().Set(echo.HeaderXRequestID, requestID)

			err := next(c)

			status := statusOf(c, err)
			attrs := []any{
				"request_id", requestID,
				"method", c.Request().Method,
				"route", c.Path(),
				"status", status,
				"admin", GetUsername(c.Request().Context()),
				"duration_ms", time.Since(start).Milliseconds(),
			}
			switch {
			case status >= http.StatusInternalServerError:
				slog.Error("Request failed", append(attrs, "error", err)...)
			case status >= http.StatusBadRequest:
				slog.Warn("Request rejected", attrs...)
			default:
				slog.Info("Request ok", attrs...)
			}

			return err
		}
	}
}

// statusOf reports the status the response will carry. When a handler
// returned an error the response is not written yet.
func statusOf(c echo.Context, err error) int {
	if err == nil {
		return c.Response().Status
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code
	}
	return http.StatusInternalServerError
}

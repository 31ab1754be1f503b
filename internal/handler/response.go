package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mmynk/clevermart/internal/apperror"
	"github.com/mmynk/clevermart/internal/auth"
)

type envelope struct {
	Data     any       `json:"data,omitempty"`
	Warnings []string  `json:"warnings,omitempty"`
	Error    *apiError `json:"error,omitempty"`
}

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

func ok(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, envelope{Data: data})
}

func fail(c echo.Context, status int, code, message string, details any) error {
	return c.JSON(status, envelope{Error: &apiError{Code: code, Message: message, Details: details}})
}

// applied answers a mutation that went through. A save failure does not
// undo the change, so it is reported as a warning next to the data.
func applied(c echo.Context, status int, data any, err error) error {
	if err == nil {
		return c.JSON(status, envelope{Data: data})
	}
	if errors.Is(err, apperror.ErrSave) {
		return c.JSON(status, envelope{Data: data, Warnings: warnings(err)})
	}
	return fromError(c, err)
}

func warnings(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range joined.Unwrap() {
			out = append(out, e.Error())
		}
		return out
	}
	return []string{err.Error()}
}

// fromError maps an application error onto an HTTP status and error code.
func fromError(c echo.Context, err error) error {
	var ve *apperror.ValidationError
	switch {
	case errors.As(err, &ve):
		return fail(c, http.StatusBadRequest, "VALIDATION_ERROR", ve.Msg,
			map[string]string{"reason": string(ve.Reason), "field": ve.Field})
	case errors.Is(err, apperror.ErrNotFound):
		return fail(c, http.StatusNotFound, "NOT_FOUND", err.Error(), nil)
	case errors.Is(err, apperror.ErrStock):
		return fail(c, http.StatusConflict, "INSUFFICIENT_STOCK", err.Error(), nil)
	case errors.Is(err, apperror.ErrPayment):
		return fail(c, http.StatusPaymentRequired, "INSUFFICIENT_PAYMENT", err.Error(), nil)
	case errors.Is(err, apperror.ErrConfirmationRequired):
		return fail(c, http.StatusPreconditionRequired, "CONFIRMATION_REQUIRED", err.Error(), nil)
	case errors.Is(err, apperror.ErrRestockNotNeeded):
		return fail(c, http.StatusConflict, "RESTOCK_NOT_NEEDED", err.Error(), nil)
	case errors.Is(err, auth.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", err.Error(), nil)
	case errors.Is(err, apperror.ErrSave):
		return fail(c, http.StatusInternalServerError, "SAVE_FAILED", err.Error(), nil)
	default:
		return fail(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal error", err.Error())
	}
}

// errorHandler renders errors returned by middleware (e.g. a rejected token
// or an unknown route) in the same envelope as handler errors.
func errorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	if errors.As(err, &he) {
		msg, _ := he.Message.(string)
		if msg == "" {
			msg = http.StatusText(he.Code)
		}
		_ = fail(c, he.Code, codeFor(he.Code), msg, nil)
		return
	}
	_ = fromError(c, err)
}

func codeFor(status int) string {
	switch status {
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusMethodNotAllowed:
		return "METHOD_NOT_ALLOWED"
	case http.StatusBadRequest:
		return "INVALID_REQUEST"
	default:
		return "HTTP_ERROR"
	}
}

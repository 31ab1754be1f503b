// Package apperror defines the error kinds surfaced to whoever triggered an
// operation. Every kind is matched with errors.Is against its sentinel and
// carries the underlying cause for logging.
package apperror

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is. An *Error reports Is(kind) for its own kind.
var (
	ErrLoad                 = errors.New("load failed")
	ErrSave                 = errors.New("save failed")
	ErrValidation           = errors.New("invalid input")
	ErrStock                = errors.New("insufficient stock")
	ErrPayment              = errors.New("insufficient amount tendered")
	ErrNotFound             = errors.New("not found")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrRestockNotNeeded     = errors.New("restock not needed")
)

// Error is a classified application error.
type Error struct {
	Kind error
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return fmt.Sprintf("%v: %v", e.Kind, e.Err)
	default:
		return e.Kind.Error()
	}
}

func (e *Error) Unwrap() error { return e.Err }

func (e *Error) Is(target error) bool { return target == e.Kind }

func newf(kind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: cause}
}

// Load wraps a failure to read persisted data.
func Load(cause error, format string, args ...any) error {
	return newf(ErrLoad, cause, format, args...)
}

// Save wraps a failure to write persisted data.
func Save(cause error, format string, args ...any) error {
	return newf(ErrSave, cause, format, args...)
}

func Stock(format string, args ...any) error {
	return newf(ErrStock, nil, format, args...)
}

func Payment(format string, args ...any) error {
	return newf(ErrPayment, nil, format, args...)
}

func NotFound(format string, args ...any) error {
	return newf(ErrNotFound, nil, format, args...)
}

func ConfirmationRequired(format string, args ...any) error {
	return newf(ErrConfirmationRequired, nil, format, args...)
}

func RestockNotNeeded(format string, args ...any) error {
	return newf(ErrRestockNotNeeded, nil, format, args...)
}

// Reason enumerates why input was rejected.
type Reason string

const (
	ReasonEmptyName       Reason = "empty_name"
	ReasonDuplicateName   Reason = "duplicate_name"
	ReasonInvalidPrice    Reason = "invalid_price"
	ReasonInvalidQuantity Reason = "invalid_quantity"
	ReasonInvalidCategory Reason = "invalid_category"
	ReasonEmptyCart       Reason = "empty_cart"
	ReasonInvalidAmount   Reason = "invalid_amount"
)

// ValidationError reports rejected user input. Nothing is mutated when
// one is returned.
type ValidationError struct {
	Reason Reason
	Field  string
	Msg    string
}

func (e *ValidationError) Error() string { return e.Msg }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Validation builds a ValidationError for field.
func Validation(reason Reason, field, format string, args ...any) error {
	return &ValidationError{Reason: reason, Field: field, Msg: fmt.Sprintf(format, args...)}
}

// ReasonOf returns the validation reason carried by err, if any.
func ReasonOf(err error) (Reason, bool) {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Reason, true
	}
	return "", false
}

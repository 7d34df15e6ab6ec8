package domain

import "errors"

var (
	ErrBadCreds   = errors.New("invalid email or password")
	ErrNotFound   = errors.New("not found")
	ErrNotOwner   = errors.New("not authorized")
	ErrEmailTaken = errors.New("email already registered")
	ErrEmptyCart  = errors.New("cart is empty")
)

// ValidationError marks user-correctable input problems. Handlers show
// Msg verbatim and redirect back to the form.
type ValidationError struct {
	Field string
	Msg   string
}

func (e *ValidationError) Error() string { return e.Msg }

func Invalid(field, msg string) error { return &ValidationError{Field: field, Msg: msg} }

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

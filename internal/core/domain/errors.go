package domain

import "errors"

var ErrAccountNotFound = errors.New("account not found")
var ErrDogNotFound = errors.New("dog not found")
var ErrWalkNotFound = errors.New("walk not found")
var ErrForbidden = errors.New("access forbidden")
var ErrEmailTaken = errors.New("email already registered")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrMissingFields = errors.New("missing required fields")

// ValidationError carries a human-readable message produced by a business
// rule (referential integrity, coordinate shape). The message text is
// surfaced to the client verbatim.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError wraps msg in a ValidationError.
func NewValidationError(msg string) error {
	return &ValidationError{Message: msg}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

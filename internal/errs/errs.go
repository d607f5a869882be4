package errs

import (
	"errors"
	"fmt"
)

// Client-facing error taxonomy. Handlers map these onto HTTP status codes;
// anything outside this set is treated as an internal failure.
var (
	// ErrNotFound indicates the identifier has no matching record.
	ErrNotFound = errors.New("not found")

	// ErrDrawDateConflict indicates a draw already exists for the given date.
	ErrDrawDateConflict = errors.New("draw for this date already exists")

	// ErrMalformedID indicates a path parameter is not a valid document id.
	ErrMalformedID = errors.New("invalid id")
)

// ValidationError names the field that violated a constraint and why.
// It is always field-level, never a generic failure.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func NewValidation(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

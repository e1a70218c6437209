package store

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a requested row doesn't exist. Endpoints
// also map permission failures to it where revealing existence would leak
// information.
var ErrNotFound = errors.New("not found")

// ErrPermissionDenied is returned when the caller may see a resource but
// not perform the requested mutation on it.
var ErrPermissionDenied = errors.New("permission denied")

// ValidationError reports a rejected field on a write. Endpoints render it
// as a 400 with the field name.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Invalid builds a ValidationError.
func Invalid(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

package services

import (
	"errors"
	"fmt"
)

// ValidationError reports input rejected at the API boundary before any
// store mutation took place.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// IsValidation reports whether err is (or wraps) a ValidationError, so
// controllers can map it to a 400 instead of a 500.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

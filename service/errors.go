package service

import (
	"errors"
	"fmt"
)

// ValidationError marks an error caused by bad input. Handlers surface the
// message to the user with a 400 status; everything else stays internal.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Validationf creates a ValidationError with a formatted message.
func Validationf(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is user-caused.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

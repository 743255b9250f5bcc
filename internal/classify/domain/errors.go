package domain

import (
	"errors"
	"fmt"
)

// BadRequestError rejects invalid input before any classification work runs:
// empty body, unknown profile, unsupported or unreadable file.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// NewBadRequest builds a BadRequestError with a formatted message.
func NewBadRequest(format string, args ...any) error {
	return &BadRequestError{Message: fmt.Sprintf(format, args...)}
}

// IsBadRequest reports whether err is a validation error.
func IsBadRequest(err error) bool {
	var br *BadRequestError
	return errors.As(err, &br)
}

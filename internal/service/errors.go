package service

import (
	"errors"
	"fmt"
)

// ValidationError indicates that a request payload is invalid.
type ValidationError struct {
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return e.Message
}

func invalidf(format string, args ...any) error {
	return ValidationError{Message: fmt.Sprintf(format, args...)}
}

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrSelfRevoke         = errors.New("cannot revoke your own admin access")
)

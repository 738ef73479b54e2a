package storage

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrConnFailed    = errors.New("connection failed")
	ErrAccessDenied  = errors.New("access denied")
	ErrNotFound      = errors.New("not found")
	ErrTransfer      = errors.New("transfer failed")
)

// IsFatal returns true if error should stop all operations
func IsFatal(err error) bool {
	return errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrConnFailed) ||
		errors.Is(err, ErrAccessDenied)
}

// WrapError adds the operation and the offending identifier (path, key,
// bucket or variable name) to an error
func WrapError(operation, subject string, err error) error {
	return fmt.Errorf("%s (%s): %w", operation, subject, err)
}

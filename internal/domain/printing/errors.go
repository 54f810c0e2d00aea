package printing

import (
	"errors"
	"fmt"
)

// ProviderError is the single distinguished error kind for the printing
// module. Connector, resolver, template and hook failures are all surfaced
// as a ProviderError carrying a human-readable message and an optional
// underlying cause, so callers can treat them uniformly (abort the current
// operation, roll back, summarize for the user).
type ProviderError struct {
	Message string
	Cause   error
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause, if any
func (e *ProviderError) Unwrap() error {
	return e.Cause
}

// NewProviderError creates a ProviderError with the given message
func NewProviderError(message string) *ProviderError {
	return &ProviderError{Message: message}
}

// NewProviderErrorf creates a ProviderError with a formatted message
func NewProviderErrorf(format string, args ...any) *ProviderError {
	return &ProviderError{Message: fmt.Sprintf(format, args...)}
}

// WrapProviderError creates a ProviderError wrapping an underlying cause
func WrapProviderError(message string, cause error) *ProviderError {
	return &ProviderError{Message: message, Cause: cause}
}

// IsProviderError reports whether err is (or wraps) a ProviderError
func IsProviderError(err error) bool {
	var pe *ProviderError
	return errors.As(err, &pe)
}

// ErrUnsupportedOperation is returned by BaseBackend for operations a
// connector has not implemented. It is distinct from provider or
// configuration failures: partially-built backends signal it deliberately.
var ErrUnsupportedOperation = errors.New("operation not supported by this backend")

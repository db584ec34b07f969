package errors

import (
	"errors"
	"fmt"
)

// Error taxonomy for the SIM client
var (
	// Authentication errors
	ErrAuth          = errors.New("authentication failed")
	ErrNoAccessToken = fmt.Errorf("%w: no access token in response", ErrAuth)

	// Transport errors
	ErrTransport        = errors.New("transport error")
	ErrTokenUnavailable = fmt.Errorf("%w: unable to read token", ErrTransport)

	// Decoding errors
	ErrDecode = errors.New("response is not valid JSON")

	// Caller errors
	ErrUnknownOperation     = errors.New("unknown operation")
	ErrUnknownDocumentType  = errors.New("unknown document type")
	ErrUnsupportedOperation = errors.New("unsupported operation")
	ErrInvalidArgument      = errors.New("invalid argument")

	// Storage errors
	ErrNotFound = errors.New("not found")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// StatusError is a non-2xx HTTP response. It matches ErrTransport.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       []byte
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s: unexpected status %d", e.Method, e.Path, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	return ErrTransport
}

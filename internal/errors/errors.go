package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for different categories
var (
	// ErrNetwork - request never reached the server or no response came back
	ErrNetwork = errors.New("network error")

	// ErrServer - server answered with a non-success status
	ErrServer = errors.New("server error")

	// ErrMalformedResponse - response body missing expected fields or not decodable
	ErrMalformedResponse = errors.New("malformed response")

	// ErrNotFound - resource not found on the server
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput - input rejected before any request was issued
	ErrInvalidInput = errors.New("invalid input")

	// ErrBusy - an identical operation is already in flight for this session
	ErrBusy = errors.New("operation in flight")
)

// Network wraps a message as a network error.
func Network(message string) error {
	return wrap(message, ErrNetwork)
}

// Server wraps a message as a server error.
func Server(message string) error {
	return wrap(message, ErrServer)
}

// Malformed wraps a message as a malformed response error.
func Malformed(message string) error {
	return wrap(message, ErrMalformedResponse)
}

// NotFound wraps a message as a not found error.
func NotFound(message string) error {
	return wrap(message, ErrNotFound)
}

// InvalidInput wraps a message as an invalid input error.
func InvalidInput(message string) error {
	return wrap(message, ErrInvalidInput)
}

// Busy wraps an operation name as a busy error.
func Busy(operation string) error {
	return wrap(operation, ErrBusy)
}

// IsCategory checks if error belongs to specific category
func IsCategory(err error, category error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, category)
}

// IsBusy reports whether err means a duplicate in-flight operation.
func IsBusy(err error) bool {
	return errors.Is(err, ErrBusy)
}

func wrap(message string, category error) error {
	return fmt.Errorf("%s: %w", message, category)
}

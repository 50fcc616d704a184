package errors

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// FromTransport maps an error returned by the HTTP client into the karte
// taxonomy. Context cancellation propagates as-is so callers can tell an
// aborted call apart from a failed one.
func FromTransport(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.Canceled) {
		return err
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("request timeout: %w", ErrNetwork)
	}

	return fmt.Errorf("%s: %w", err.Error(), ErrNetwork)
}

// FromStatus maps a non-success HTTP status into the karte taxonomy. The
// body, when present, is folded into the message so the caller has the
// server's own words to show.
func FromStatus(status int, body string) error {
	message := strings.TrimSpace(body)
	if message == "" {
		message = http.StatusText(status)
	}

	if status == http.StatusNotFound {
		return fmt.Errorf("%s: %w", message, ErrNotFound)
	}

	return fmt.Errorf("status %d: %s: %w", status, message, ErrServer)
}

// Describe renders the single user-facing description string for an error.
// Every category collapses to a description; recovery is the caller's call.
func Describe(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrBusy):
		return "That action is still running. Wait for it to finish and try again."
	case errors.Is(err, ErrNetwork):
		return fmt.Sprintf("Could not reach the CRM service: %v", err)
	case errors.Is(err, ErrNotFound):
		return fmt.Sprintf("The CRM service has no such record: %v", err)
	case errors.Is(err, ErrServer):
		return fmt.Sprintf("The CRM service rejected the request: %v", err)
	case errors.Is(err, ErrMalformedResponse):
		return fmt.Sprintf("The CRM service sent an unexpected reply: %v", err)
	case errors.Is(err, ErrInvalidInput):
		return fmt.Sprintf("Invalid input: %v", err)
	default:
		return err.Error()
	}
}

// Category returns the karte error category name for an error.
func Category(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, ErrNetwork):
		return "ErrNetwork"
	case errors.Is(err, ErrNotFound):
		return "ErrNotFound"
	case errors.Is(err, ErrServer):
		return "ErrServer"
	case errors.Is(err, ErrMalformedResponse):
		return "ErrMalformedResponse"
	case errors.Is(err, ErrInvalidInput):
		return "ErrInvalidInput"
	case errors.Is(err, ErrBusy):
		return "ErrBusy"
	default:
		return "Unknown"
	}
}

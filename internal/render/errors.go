package render

import (
	"context"
	"errors"
	"log/slog"
)

// RequestError represents a failure caused by the request itself rather
// than the service. These are reported back to the requester instead of
// being treated as system failures.
type RequestError struct {
	Message string
}

func (e *RequestError) Error() string {
	return e.Message
}

// NewRequestError creates a requester-facing error.
func NewRequestError(msg string) *RequestError {
	return &RequestError{Message: msg}
}

// userMessage turns an error into text safe to send back to the requester.
// Request errors pass through; anything else is logged and replaced with a
// generic message.
func userMessage(ctx context.Context, err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}

	slog.ErrorContext(ctx, "rendering request", "error", err)
	return "internal rendering failure"
}

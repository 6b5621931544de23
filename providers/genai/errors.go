package genai

import (
	"errors"
	"fmt"
	"strings"
)

// APIError is a structured error returned by a remote model provider. It
// preserves both the transport-level status code and the nested error object
// from the provider's error envelope, because upstreams surface throttling
// inconsistently across those layers.
type APIError struct {
	// StatusCode is the HTTP status of the failed request.
	StatusCode int
	// Code is the numeric code inside the provider's error envelope, when present.
	Code int
	// Status is the symbolic status inside the envelope (e.g. "RESOURCE_EXHAUSTED").
	Status string
	// Message is the human-readable message inside the envelope.
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("model API error (status %d, code %d, %s): %s", e.StatusCode, e.Code, e.Status, e.Message)
	}
	return fmt.Sprintf("model API error (status %d, code %d, %s)", e.StatusCode, e.Code, e.Status)
}

const statusResourceExhausted = "RESOURCE_EXHAUSTED"

// IsRateLimited reports whether err carries any of the rate-limit signatures
// the upstream is known to emit: HTTP status 429, a nested error code 429 or
// status RESOURCE_EXHAUSTED, or a message mentioning "429", "Quota", or
// "RESOURCE_EXHAUSTED". The multi-signature check exists because the same
// throttling condition appears differently depending on which transport
// layer rejected the request.
func IsRateLimited(err error) bool {
	if err == nil {
		return false
	}

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == 429 || apiErr.Code == 429 || apiErr.Status == statusResourceExhausted {
			return true
		}
	}

	msg := err.Error()
	for _, signature := range []string{"429", "Quota", statusResourceExhausted} {
		if strings.Contains(msg, signature) {
			return true
		}
	}

	return false
}

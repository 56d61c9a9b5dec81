package sdk

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError is returned when the server responded with a non-2xx status.
// Message carries the server-supplied error message when the body contained
// one; Body holds the raw response for callers that need more.
type APIError struct {
	StatusCode int
	Status     string
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server error %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("server error %s", e.Status)
}

// IsUnauthorized reports whether the error is a server-side 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}

// TransportError is returned when the request was sent but no response
// arrived (connection refused, DNS failure, timeout). The underlying error is
// preserved unchanged.
type TransportError struct {
	URL string
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("network error calling %s: %v", e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// errorBody is the conventional error envelope the server uses.
type errorBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (b errorBody) text() string {
	if b.Message != "" {
		return b.Message
	}
	return b.Error
}

package fetchserp

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Common errors
var (
	// ErrMissingAPIKey indicates the client was constructed without a secret key
	ErrMissingAPIKey = errors.New(`missing required "apiKey"`)
	// ErrValidation is matched by every *ValidationError
	ErrValidation = errors.New("invalid request parameters")
	// ErrTimeout indicates the request was abandoned after the configured timeout
	ErrTimeout = errors.New("request timed out")
	// ErrUnsupportedMethod indicates a verb other than GET or POST
	ErrUnsupportedMethod = errors.New("unsupported HTTP method")
)

// ValidationError is returned before any network activity when required
// parameters are missing or empty.
type ValidationError struct {
	Method string
	Fields []string
	// AnyOf is set when any single field satisfies the requirement.
	AnyOf bool
	// Kind optionally qualifies the field, e.g. "array".
	Kind string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	quoted := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		quoted[i] = fmt.Sprintf("%q", f)
	}

	var msg string
	switch {
	case len(quoted) == 1:
		msg = quoted[0]
		if e.Kind != "" {
			msg += " " + e.Kind
		}
		msg += " is required"
	case e.AnyOf:
		msg = strings.Join(quoted, " or ") + " is required"
	default:
		msg = strings.Join(quoted, " and ") + " are required"
	}

	return fmt.Sprintf("%s: %s", e.Method, msg)
}

// Is reports whether target is ErrValidation
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// APIError represents a non-2xx response from the FetchSERP API
type APIError struct {
	StatusCode int
	Message    string
	// Body is the decoded response body: a JSON value or a string.
	Body any
	Raw  []byte
}

// Error implements the error interface
func (e *APIError) Error() string {
	return fmt.Sprintf("request failed with status %d: %s", e.StatusCode, e.Message)
}

// IsNotFound checks if the error indicates a not found response
func (e *APIError) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized checks if the error indicates an authentication failure
func (e *APIError) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}

// IsRateLimited checks if the server rejected the call for quota reasons
func (e *APIError) IsRateLimited() bool {
	return e.StatusCode == http.StatusTooManyRequests
}

// TransportError is returned when no response was received, either because
// the network call failed or because the timeout fired first. It never
// carries a status code.
type TransportError struct {
	Method  string
	URL     string
	timeout bool
	Err     error
}

// Error implements the error interface
func (e *TransportError) Error() string {
	if e.timeout {
		return fmt.Sprintf("%s %s: %v", e.Method, e.URL, ErrTimeout)
	}
	return fmt.Sprintf("%s %s: request failed: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Is makes errors.Is(err, ErrTimeout) true for timed out requests
func (e *TransportError) Is(target error) bool {
	return target == ErrTimeout && e.timeout
}

// Timeout reports whether the request was aborted by the client timeout
func (e *TransportError) Timeout() bool {
	return e.timeout
}

// DecodeError indicates a response declared as JSON could not be parsed
type DecodeError struct {
	StatusCode  int
	ContentType string
	Raw         []byte
	Err         error
}

// Error implements the error interface
func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to parse %s response (status %d): %v", e.ContentType, e.StatusCode, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// AsAPIError extracts an *APIError from err
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

// IsStatus reports whether err is an *APIError carrying the given status code
func IsStatus(err error, code int) bool {
	apiErr, ok := AsAPIError(err)
	return ok && apiErr.StatusCode == code
}

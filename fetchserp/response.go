package fetchserp

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrNoJobID is returned by JobID when the response carries no identifier
var ErrNoJobID = errors.New("response does not contain a job identifier")

// Response is a successful outcome. Data holds the decoded JSON value
// (map[string]any, []any, string, float64, bool or nil) for JSON responses
// and the body text otherwise.
type Response struct {
	StatusCode  int
	Header      http.Header
	ContentType string
	Data        any
	Raw         []byte
}

// IsJSON reports whether the server declared a JSON body
func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType, "application/json")
}

// Text returns the body as text regardless of content type
func (r *Response) Text() string {
	if s, ok := r.Data.(string); ok && !r.IsJSON() {
		return s
	}
	return string(r.Raw)
}

// Decode unmarshals the raw JSON body into dst
func (r *Response) Decode(dst any) error {
	if !r.IsJSON() {
		return fmt.Errorf("cannot decode %q response as JSON", r.ContentType)
	}
	if err := json.Unmarshal(r.Raw, dst); err != nil {
		return fmt.Errorf("failed to parse response: %w", err)
	}
	return nil
}

// JobID extracts the identifier returned by an asynchronous submission.
// It looks for "uuid" at the top level and under "data".
func (r *Response) JobID() (string, error) {
	body, ok := r.Data.(map[string]any)
	if !ok {
		return "", ErrNoJobID
	}

	if id, ok := body["uuid"].(string); ok && id != "" {
		return id, nil
	}
	if data, ok := body["data"].(map[string]any); ok {
		if id, ok := data["uuid"].(string); ok && id != "" {
			return id, nil
		}
	}

	return "", ErrNoJobID
}

package fetchserp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Recorder observes completed calls. Implementations must be safe for
// concurrent use.
type Recorder interface {
	ObserveRequest(info RequestInfo)
}

// RequestInfo describes one finished call
type RequestInfo struct {
	Method     string
	Path       string
	StatusCode int // 0 when no response was received
	Duration   time.Duration
	Err        error
}

// execute performs exactly one authenticated round trip and normalizes the
// outcome. body, when non-nil, is sent as JSON.
func (c *Client) execute(ctx context.Context, method, path string, params Params, body any) (*Response, error) {
	if method != http.MethodGet && method != http.MethodPost {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedMethod, method)
	}
	if path == "" {
		return nil, errors.New("empty request path")
	}

	requestURL := c.baseURL + path
	if query := params.Encode(); query != "" {
		requestURL += "?" + query
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, requestURL, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if c.requestIDHeader != "" {
		req.Header.Set(c.requestIDHeader, uuid.NewString())
	}

	start := time.Now()
	resp, raw, err := c.roundTrip(ctx, req)
	duration := time.Since(start)

	statusCode := 0
	if resp != nil {
		statusCode = resp.StatusCode
	}

	var out *Response
	if err == nil {
		out, err = decodeResponse(resp, raw)
	}

	c.logger.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", statusCode).
		Dur("duration", duration).
		Err(err).
		Msg("FetchSERP API request")

	if c.recorder != nil {
		c.recorder.ObserveRequest(RequestInfo{
			Method:     method,
			Path:       path,
			StatusCode: statusCode,
			Duration:   duration,
			Err:        err,
		})
	}

	if err != nil {
		return nil, err
	}
	return out, nil
}

// roundTrip sends req and reads the whole body while the deadline is still
// armed, so a response arriving after the timeout is never decoded.
func (c *Client) roundTrip(ctx context.Context, req *http.Request) (*http.Response, []byte, error) {
	transportErr := func(err error) error {
		// url.Error repeats the full URL, query values included
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return &TransportError{
			Method:  req.Method,
			URL:     redactURL(req),
			timeout: errors.Is(ctx.Err(), context.DeadlineExceeded),
			Err:     err,
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, nil, transportErr(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, nil, transportErr(fmt.Errorf("failed to read response body: %w", err))
	}

	return resp, raw, nil
}

func decodeResponse(resp *http.Response, raw []byte) (*Response, error) {
	contentType := resp.Header.Get("Content-Type")

	var data any
	if strings.Contains(contentType, "application/json") {
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, &DecodeError{
				StatusCode:  resp.StatusCode,
				ContentType: contentType,
				Raw:         raw,
				Err:         err,
			}
		}
	} else {
		data = string(raw)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errorMessage(data, resp.StatusCode),
			Body:       data,
			Raw:        raw,
		}
	}

	return &Response{
		StatusCode:  resp.StatusCode,
		Header:      resp.Header,
		ContentType: contentType,
		Data:        data,
		Raw:         raw,
	}, nil
}

// errorMessage prefers the body's "error" field over the reason phrase.
func errorMessage(data any, statusCode int) string {
	if body, ok := data.(map[string]any); ok {
		switch v := body["error"].(type) {
		case nil:
		case string:
			if v != "" {
				return v
			}
		case bool:
			if v {
				return "true"
			}
		default:
			if b, err := json.Marshal(v); err == nil {
				return string(b)
			}
		}
	}
	return http.StatusText(statusCode)
}

// redactURL keeps query values out of error strings.
func redactURL(req *http.Request) string {
	u := *req.URL
	u.RawQuery = ""
	return u.String()
}

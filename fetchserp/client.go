package fetchserp

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

const (
	// DefaultBaseURL is the production FetchSERP host.
	DefaultBaseURL = "https://www.fetchserp.com"
	// DefaultTimeout bounds every call unless overridden with WithTimeout.
	DefaultTimeout = 30000 * time.Millisecond
)

// Client represents a FetchSERP API client. It is safe for concurrent use;
// nothing about it changes after NewClient returns.
type Client struct {
	baseURL         string
	apiKey          string
	timeout         time.Duration
	httpClient      *http.Client
	logger          zerolog.Logger
	recorder        Recorder
	requestIDHeader string
	userAgent       string
}

// NewClient creates a new FetchSERP client. Only the API key is required.
func NewClient(apiKey string, opts ...Option) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingAPIKey
	}

	client := &Client{
		baseURL:    DefaultBaseURL,
		apiKey:     apiKey,
		timeout:    DefaultTimeout,
		httpClient: &http.Client{},
		logger:     zerolog.Nop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(client)
		}
	}

	return client, nil
}

// BaseURL returns the endpoint requests are sent to
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Timeout returns the per-call timeout
func (c *Client) Timeout() time.Duration {
	return c.timeout
}

// TestConnection verifies the key is accepted by fetching the current user
func (c *Client) TestConnection(ctx context.Context) error {
	if _, err := c.GetUser(ctx); err != nil {
		return fmt.Errorf("failed to connect to FetchSERP: %w", err)
	}

	c.logger.Debug().Str("base_url", c.baseURL).Msg("Successfully connected to FetchSERP")
	return nil
}

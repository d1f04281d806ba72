package fetchserp

import (
	"context"
	"net/http"
)

// GetUser returns the account behind the API key, including remaining credits
func (c *Client) GetUser(ctx context.Context) (*Response, error) {
	return c.execute(ctx, http.MethodGet, "/api/v1/user", nil, nil)
}

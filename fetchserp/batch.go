package fetchserp

import (
	"context"

	"golang.org/x/sync/errgroup"
)

const (
	// DefaultConcurrency is used when BatchGetSerp is given a non-positive limit
	DefaultConcurrency = 5
	// MaxConcurrency caps the number of calls in flight for one batch
	MaxConcurrency = 20
)

// BatchResult holds the outcome of one call in a batch
type BatchResult struct {
	Params   SearchParams
	Response *Response
	Err      error
}

// BatchGetSerp runs GetSerp for every entry with at most limit calls in
// flight. Results are returned in input order; a failed call does not stop
// the others.
func (c *Client) BatchGetSerp(ctx context.Context, params []SearchParams, limit int) []BatchResult {
	results := make([]BatchResult, len(params))
	if len(params) == 0 {
		return results
	}

	if limit <= 0 {
		limit = DefaultConcurrency
	}
	limit = min(limit, MaxConcurrency)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, p := range params {
		i, p := i, p
		g.Go(func() error {
			resp, err := c.GetSerp(ctx, p)
			if err != nil {
				c.logger.Warn().
					Err(err).
					Str("query", p.Query).
					Msg("Search request failed")
			}

			// Each goroutine owns its slot
			results[i] = BatchResult{Params: p, Response: resp, Err: err}
			return nil // Don't stop on individual errors
		})
	}

	g.Wait()
	return results
}

// Failed returns the results that carry an error
func Failed(results []BatchResult) []BatchResult {
	var failed []BatchResult
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}

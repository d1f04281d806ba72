package fetchserp

import (
	"context"
	"net/http"
)

// GetSerp returns structured search results
func (c *Client) GetSerp(ctx context.Context, p SearchParams) (*Response, error) {
	if p.Query == "" {
		return nil, required("GetSerp", "query")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/serp", searchQuery(p), nil)
}

// GetSerpHTML returns search results together with the raw result page HTML
func (c *Client) GetSerpHTML(ctx context.Context, p SearchParams) (*Response, error) {
	if p.Query == "" {
		return nil, required("GetSerpHTML", "query")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/serp_html", searchQuery(p), nil)
}

// GetSerpText returns search results with the extracted text of each result
func (c *Client) GetSerpText(ctx context.Context, p SearchParams) (*Response, error) {
	if p.Query == "" {
		return nil, required("GetSerpText", "query")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/serp_text", searchQuery(p), nil)
}

// GetSerpJS submits a browser-rendered search. The response carries a job
// identifier (see Response.JobID) to pass to GetSerpJSResult.
func (c *Client) GetSerpJS(ctx context.Context, p SearchParams) (*Response, error) {
	if p.Query == "" {
		return nil, required("GetSerpJS", "query")
	}

	params := Params{}.
		Add("query", p.Query).
		AddOptional("country", p.Country).
		AddOptional("pages_number", p.PagesNumber)
	return c.execute(ctx, http.MethodGet, "/api/v1/serp_js", params, nil)
}

// GetSerpJSResult fetches the results of a job submitted with GetSerpJS
func (c *Client) GetSerpJSResult(ctx context.Context, jobID string) (*Response, error) {
	if jobID == "" {
		return nil, required("GetSerpJSResult", "uuid")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/serp_js/"+jobID, nil, nil)
}

// GetSerpAIMode returns the AI overview and AI mode answer for a query
func (c *Client) GetSerpAIMode(ctx context.Context, query string) (*Response, error) {
	if query == "" {
		return nil, required("GetSerpAIMode", "query")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/serp_ai_mode", Params{}.Add("query", query), nil)
}

func searchQuery(p SearchParams) Params {
	return Params{}.
		Add("query", p.Query).
		AddOptional("search_engine", string(p.SearchEngine)).
		AddOptional("country", p.Country).
		AddOptional("pages_number", p.PagesNumber)
}

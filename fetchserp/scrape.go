package fetchserp

import (
	"context"
	"net/http"
)

// ScrapePage fetches the HTML of a page without running JavaScript
func (c *Client) ScrapePage(ctx context.Context, pageURL string) (*Response, error) {
	if pageURL == "" {
		return nil, required("ScrapePage", "url")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/scrape", Params{}.Add("url", pageURL), nil)
}

// ScrapeDomain crawls a domain
func (c *Client) ScrapeDomain(ctx context.Context, p ScrapeDomainParams) (*Response, error) {
	if p.Domain == "" {
		return nil, required("ScrapeDomain", "domain")
	}

	params := Params{}.
		Add("domain", p.Domain).
		AddOptional("max_pages", p.MaxPages)
	return c.execute(ctx, http.MethodGet, "/api/v1/scrape_domain", params, nil)
}

// ScrapePageJS renders a page in a browser and runs the given script
func (c *Client) ScrapePageJS(ctx context.Context, p ScrapeJSParams) (*Response, error) {
	if p.URL == "" {
		return nil, required("ScrapePageJS", "url")
	}

	params := Params{}.
		Add("url", p.URL).
		AddOptional("js_script", p.JSScript)
	return c.execute(ctx, http.MethodPost, "/api/v1/scrape_js", params, scriptBody(p))
}

// ScrapePageJSWithProxy is ScrapePageJS routed through a proxy in Country
func (c *Client) ScrapePageJSWithProxy(ctx context.Context, p ScrapeJSParams) (*Response, error) {
	if missing := missingFields("url", p.URL, "country", p.Country); len(missing) > 0 {
		return nil, required("ScrapePageJSWithProxy", missing...)
	}

	params := Params{}.
		Add("url", p.URL).
		Add("country", p.Country).
		AddOptional("js_script", p.JSScript)
	return c.execute(ctx, http.MethodPost, "/api/v1/scrape_js_with_proxy", params, scriptBody(p))
}

// scriptBody prefers an explicit payload over the script shorthand.
func scriptBody(p ScrapeJSParams) any {
	if _, ok := deref(p.Payload); ok {
		return p.Payload
	}
	if p.JSScript != "" {
		return map[string]string{"js_script": p.JSScript}
	}
	return nil
}

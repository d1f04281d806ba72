package fetchserp

import (
	"context"
	"net/http"
)

// GetWebPageAIAnalysis asks the AI analyzer a question about a page
func (c *Client) GetWebPageAIAnalysis(ctx context.Context, p PageAnalysisParams) (*Response, error) {
	if missing := missingFields("url", p.URL, "prompt", p.Prompt); len(missing) > 0 {
		return nil, required("GetWebPageAIAnalysis", missing...)
	}

	params := Params{}.
		Add("url", p.URL).
		Add("prompt", p.Prompt)
	return c.execute(ctx, http.MethodGet, "/api/v1/web_page_ai_analysis", params, nil)
}

// GetWebPageSEOAnalysis runs a technical SEO audit of a page
func (c *Client) GetWebPageSEOAnalysis(ctx context.Context, pageURL string) (*Response, error) {
	if pageURL == "" {
		return nil, required("GetWebPageSEOAnalysis", "url")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/web_page_seo_analysis", Params{}.Add("url", pageURL), nil)
}

// GetPlaywrightMCP hands a natural-language prompt to a remote browser agent
func (c *Client) GetPlaywrightMCP(ctx context.Context, prompt string) (*Response, error) {
	if prompt == "" {
		return nil, required("GetPlaywrightMCP", "prompt")
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/playwright_mcp", Params{}.Add("prompt", prompt), nil)
}

// GenerateWordpressContent drafts a WordPress article
func (c *Client) GenerateWordpressContent(ctx context.Context, p ContentParams) (*Response, error) {
	if err := validateContent("GenerateWordpressContent", p); err != nil {
		return nil, err
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/generate_wordpress_content", contentQuery(p), nil)
}

// GenerateSocialContent drafts a social media post
func (c *Client) GenerateSocialContent(ctx context.Context, p ContentParams) (*Response, error) {
	if err := validateContent("GenerateSocialContent", p); err != nil {
		return nil, err
	}
	return c.execute(ctx, http.MethodGet, "/api/v1/generate_social_content", contentQuery(p), nil)
}

// validateContent reports the first missing prompt.
func validateContent(method string, p ContentParams) error {
	if p.UserPrompt == "" {
		return required(method, "user_prompt")
	}
	if p.SystemPrompt == "" {
		return required(method, "system_prompt")
	}
	return nil
}

func contentQuery(p ContentParams) Params {
	return Params{}.
		Add("user_prompt", p.UserPrompt).
		Add("system_prompt", p.SystemPrompt).
		AddOptional("ai_model", p.AIModel)
}

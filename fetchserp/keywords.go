package fetchserp

import (
	"context"
	"net/http"
)

// GetKeywordsSearchVolume returns monthly search volume for each keyword
func (c *Client) GetKeywordsSearchVolume(ctx context.Context, p KeywordVolumeParams) (*Response, error) {
	if len(p.Keywords) == 0 {
		return nil, &ValidationError{Method: "GetKeywordsSearchVolume", Fields: []string{"keywords"}, Kind: "array"}
	}

	params := Params{}.
		Add("keywords", p.Keywords).
		AddOptional("country", p.Country)
	return c.execute(ctx, http.MethodGet, "/api/v1/keywords_search_volume", params, nil)
}

// GetKeywordsSuggestions suggests keywords seeded by a URL, a keyword list, or both
func (c *Client) GetKeywordsSuggestions(ctx context.Context, p KeywordSuggestionParams) (*Response, error) {
	if p.URL == "" && len(p.Keywords) == 0 {
		return nil, requiredAnyOf("GetKeywordsSuggestions", "url", "keywords")
	}

	params := Params{}.
		AddOptional("url", p.URL).
		AddOptional("keywords", p.Keywords).
		AddOptional("country", p.Country)
	return c.execute(ctx, http.MethodGet, "/api/v1/keywords_suggestions", params, nil)
}

// GetLongTailKeywords generates long-tail variations of a seed keyword
func (c *Client) GetLongTailKeywords(ctx context.Context, p LongTailParams) (*Response, error) {
	if p.Keyword == "" {
		return nil, required("GetLongTailKeywords", "keyword")
	}

	params := Params{}.
		Add("keyword", p.Keyword).
		AddOptional("search_intent", string(p.SearchIntent)).
		AddOptional("count", p.Count)
	return c.execute(ctx, http.MethodGet, "/api/v1/long_tail_keywords_generator", params, nil)
}

package fetchserp

import (
	"context"
)

// API defines the interface for FetchSERP operations
type API interface {
	// TestConnection verifies the client can reach FetchSERP with its key
	TestConnection(ctx context.Context) error

	// Domains
	GetBacklinks(ctx context.Context, p DomainSearchParams) (*Response, error)
	GetDomainEmails(ctx context.Context, p DomainSearchParams) (*Response, error)
	GetDomainInfos(ctx context.Context, domain string) (*Response, error)
	GetMozDomainAnalysis(ctx context.Context, domain string) (*Response, error)
	GetPageIndexation(ctx context.Context, p PageIndexationParams) (*Response, error)
	GetDomainRanking(ctx context.Context, p RankingParams) (*Response, error)

	// Keywords
	GetKeywordsSearchVolume(ctx context.Context, p KeywordVolumeParams) (*Response, error)
	GetKeywordsSuggestions(ctx context.Context, p KeywordSuggestionParams) (*Response, error)
	GetLongTailKeywords(ctx context.Context, p LongTailParams) (*Response, error)

	// Scraping
	ScrapePage(ctx context.Context, pageURL string) (*Response, error)
	ScrapeDomain(ctx context.Context, p ScrapeDomainParams) (*Response, error)
	ScrapePageJS(ctx context.Context, p ScrapeJSParams) (*Response, error)
	ScrapePageJSWithProxy(ctx context.Context, p ScrapeJSParams) (*Response, error)

	// Search results
	GetSerp(ctx context.Context, p SearchParams) (*Response, error)
	GetSerpHTML(ctx context.Context, p SearchParams) (*Response, error)
	GetSerpText(ctx context.Context, p SearchParams) (*Response, error)
	GetSerpJS(ctx context.Context, p SearchParams) (*Response, error)
	GetSerpJSResult(ctx context.Context, jobID string) (*Response, error)
	GetSerpAIMode(ctx context.Context, query string) (*Response, error)

	// AI and content
	GetWebPageAIAnalysis(ctx context.Context, p PageAnalysisParams) (*Response, error)
	GetWebPageSEOAnalysis(ctx context.Context, pageURL string) (*Response, error)
	GetPlaywrightMCP(ctx context.Context, prompt string) (*Response, error)
	GenerateWordpressContent(ctx context.Context, p ContentParams) (*Response, error)
	GenerateSocialContent(ctx context.Context, p ContentParams) (*Response, error)

	// Account
	GetUser(ctx context.Context) (*Response, error)
}

var _ API = (*Client)(nil)

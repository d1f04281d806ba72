package fetchserp

// SearchEngine selects the engine queried by search-result endpoints
type SearchEngine string

const (
	SearchEngineGoogle     SearchEngine = "google"
	SearchEngineBing       SearchEngine = "bing"
	SearchEngineYahoo      SearchEngine = "yahoo"
	SearchEngineDuckDuckGo SearchEngine = "duckduckgo"
)

// SearchIntent qualifies long-tail keyword generation
type SearchIntent string

const (
	SearchIntentInformational SearchIntent = "informational"
	SearchIntentCommercial    SearchIntent = "commercial"
	SearchIntentTransactional SearchIntent = "transactional"
	SearchIntentNavigational  SearchIntent = "navigational"
)

// SearchParams are the parameters of the search-result endpoints.
// SearchEngine is ignored by the scripted search.
type SearchParams struct {
	Query        string
	SearchEngine SearchEngine
	Country      string
	PagesNumber  int
}

// DomainSearchParams are shared by the backlinks and domain emails endpoints
type DomainSearchParams struct {
	Domain       string
	SearchEngine SearchEngine
	Country      string
	PagesNumber  int
}

// RankingParams locate a domain in the results for a keyword
type RankingParams struct {
	Keyword      string
	Domain       string
	SearchEngine SearchEngine
	Country      string
	PagesNumber  int
}

// PageIndexationParams check whether a domain is indexed for a keyword
type PageIndexationParams struct {
	Domain  string
	Keyword string
}

// KeywordVolumeParams request search volume for one or more keywords
type KeywordVolumeParams struct {
	Keywords []string
	Country  string
}

// KeywordSuggestionParams seed suggestions from a URL or a keyword list
type KeywordSuggestionParams struct {
	URL      string
	Keywords []string
	Country  string
}

// LongTailParams drive the long-tail keyword generator
type LongTailParams struct {
	Keyword      string
	SearchIntent SearchIntent
	Count        int
}

// ScrapeDomainParams crawl up to MaxPages pages of a domain
type ScrapeDomainParams struct {
	Domain   string
	MaxPages int
}

// ScrapeJSParams run a script against a page. Payload, when set, is sent as
// the JSON body and wins over JSScript; otherwise JSScript alone becomes
// {"js_script": JSScript}. Country is only used by the proxied variant.
type ScrapeJSParams struct {
	URL      string
	Country  string
	JSScript string
	Payload  any
}

// ScriptPayload is the structured body accepted by the scripted scrape endpoints
type ScriptPayload struct {
	URL      string `json:"url,omitempty"`
	JSScript string `json:"js_script,omitempty"`
}

// PageAnalysisParams ask the AI analysis endpoint a question about a page
type PageAnalysisParams struct {
	URL    string
	Prompt string
}

// ContentParams drive the WordPress and social content generators
type ContentParams struct {
	UserPrompt   string
	SystemPrompt string
	AIModel      string
}

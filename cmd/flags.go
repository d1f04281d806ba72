package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fetchserp/fetchserp"
)

// searchFlags are shared by every command that targets a search engine
type searchFlags struct {
	engine  string
	country string
	pages   int
}

func (f *searchFlags) register(cmd *cobra.Command, withEngine bool) {
	if withEngine {
		cmd.Flags().StringVar(&f.engine, "engine", "", "search engine: google, bing, yahoo, duckduckgo")
	}
	cmd.Flags().StringVar(&f.country, "country", "", "two-letter country code")
	cmd.Flags().IntVar(&f.pages, "pages", 0, "number of result pages")
}

func (f *searchFlags) searchEngine() (fetchserp.SearchEngine, error) {
	return parseSearchEngine(f.engine)
}

func parseSearchEngine(s string) (fetchserp.SearchEngine, error) {
	engine := fetchserp.SearchEngine(strings.ToLower(strings.TrimSpace(s)))
	switch engine {
	case "", fetchserp.SearchEngineGoogle, fetchserp.SearchEngineBing,
		fetchserp.SearchEngineYahoo, fetchserp.SearchEngineDuckDuckGo:
		return engine, nil
	}
	return "", fmt.Errorf("invalid search engine: %s (must be google, bing, yahoo or duckduckgo)", s)
}

func parseSearchIntent(s string) (fetchserp.SearchIntent, error) {
	intent := fetchserp.SearchIntent(strings.ToLower(strings.TrimSpace(s)))
	switch intent {
	case "", fetchserp.SearchIntentInformational, fetchserp.SearchIntentCommercial,
		fetchserp.SearchIntentTransactional, fetchserp.SearchIntentNavigational:
		return intent, nil
	}
	return "", fmt.Errorf("invalid search intent: %s", s)
}

// firstArg returns args[0] when present, otherwise the flag value
func firstArg(args []string, flagValue string) string {
	if len(args) > 0 {
		return args[0]
	}
	return flagValue
}

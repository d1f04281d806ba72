package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/fetchserp/fetchserp"
)

var (
	keywordsFlag  []string
	countryFlag   string
	suggestionURL string
	intentFlag    string
	countFlag     int
)

var keywordVolumeCmd = &cobra.Command{
	Use:   "keyword-volume <keyword>...",
	Short: "Show monthly search volume for keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetKeywordsSearchVolume(cmd.Context(), fetchserp.KeywordVolumeParams{
			Keywords: append(args, keywordsFlag...),
			Country:  countryFlag,
		})
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var keywordSuggestionsCmd = &cobra.Command{
	Use:   "keyword-suggestions [keyword]...",
	Short: "Suggest keywords from a page URL or seed keywords",
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetKeywordsSuggestions(cmd.Context(), fetchserp.KeywordSuggestionParams{
			URL:      suggestionURL,
			Keywords: append(args, keywordsFlag...),
			Country:  countryFlag,
		})
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var longTailCmd = &cobra.Command{
	Use:   "long-tail <keyword>",
	Short: "Generate long-tail variations of a keyword",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		intent, err := parseSearchIntent(intentFlag)
		if err != nil {
			return err
		}
		resp, err := client.GetLongTailKeywords(cmd.Context(), fetchserp.LongTailParams{
			Keyword:      firstArg(args, ""),
			SearchIntent: intent,
			Count:        countFlag,
		})
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

func init() {
	rootCmd.AddCommand(keywordVolumeCmd, keywordSuggestionsCmd, longTailCmd)

	for _, c := range []*cobra.Command{keywordVolumeCmd, keywordSuggestionsCmd} {
		c.Flags().StringSliceVarP(&keywordsFlag, "keyword", "k", nil, "keyword (repeatable)")
		c.Flags().StringVar(&countryFlag, "country", "", "two-letter country code")
	}
	keywordSuggestionsCmd.Flags().StringVar(&suggestionURL, "url", "", "page to derive suggestions from")

	longTailCmd.Flags().StringVar(&intentFlag, "intent", "", "search intent: informational, commercial, transactional, navigational")
	longTailCmd.Flags().IntVar(&countFlag, "count", 0, "number of keywords to generate")
}

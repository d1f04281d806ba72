package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fetchserp/fetchserp"
)

var (
	maxPages     int
	jsScript     string
	scriptFile   string
	payloadJSON  string
	proxyCountry string
)

var scrapeCmd = &cobra.Command{
	Use:   "scrape <url>",
	Short: "Fetch the HTML of a page",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.ScrapePage(cmd.Context(), firstArg(args, ""))
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var scrapeDomainCmd = &cobra.Command{
	Use:   "scrape-domain <domain>",
	Short: "Crawl and scrape pages of a domain",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.ScrapeDomain(cmd.Context(), fetchserp.ScrapeDomainParams{
			Domain:   firstArg(args, ""),
			MaxPages: maxPages,
		})
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var scrapeJSCmd = &cobra.Command{
	Use:   "scrape-js <url>",
	Short: "Run a script against a rendered page",
	Long: `Render a page in a headless browser and run a script against it.

The script comes from --script or --script-file. --payload sends a raw JSON
body instead and wins over the script. --proxy-country routes the request
through a proxy in that country.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := scriptParams(firstArg(args, ""))
		if err != nil {
			return err
		}

		var resp *fetchserp.Response
		if proxyCountry != "" {
			p.Country = proxyCountry
			resp, err = client.ScrapePageJSWithProxy(cmd.Context(), p)
		} else {
			resp, err = client.ScrapePageJS(cmd.Context(), p)
		}
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

func scriptParams(pageURL string) (fetchserp.ScrapeJSParams, error) {
	p := fetchserp.ScrapeJSParams{URL: pageURL, JSScript: jsScript}

	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return p, fmt.Errorf("failed to read script: %w", err)
		}
		p.JSScript = string(data)
	}

	if payloadJSON != "" {
		var payload any
		if err := json.Unmarshal([]byte(payloadJSON), &payload); err != nil {
			return p, fmt.Errorf("invalid --payload: %w", err)
		}
		p.Payload = payload
	}

	return p, nil
}

func init() {
	rootCmd.AddCommand(scrapeCmd, scrapeDomainCmd, scrapeJSCmd)

	scrapeDomainCmd.Flags().IntVar(&maxPages, "max-pages", 0, "maximum number of pages to scrape")

	scrapeJSCmd.Flags().StringVar(&jsScript, "script", "", "JavaScript to run on the page")
	scrapeJSCmd.Flags().StringVar(&scriptFile, "script-file", "", "read the script from a file")
	scrapeJSCmd.Flags().StringVar(&payloadJSON, "payload", "", "raw JSON body, sent instead of the script")
	scrapeJSCmd.Flags().StringVar(&proxyCountry, "proxy-country", "", "scrape through a proxy in this country")
	scrapeJSCmd.MarkFlagsMutuallyExclusive("script", "script-file")
}

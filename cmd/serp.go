package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/s0up4200/fetchserp/fetchserp"
)

var (
	serpSearch searchFlags
	queries    []string
)

var serpCmd = &cobra.Command{
	Use:   "serp",
	Short: "Fetch structured search results",
	Long: `Fetch structured search engine results for a query.

Repeat --query to run several searches concurrently. Results are printed in
the order the queries were given; a failed query is reported in place and
does not stop the others.`,
	Args: cobra.NoArgs,
	RunE: runSerp,
}

var serpHTMLCmd = &cobra.Command{
	Use:   "serp-html",
	Short: "Fetch search results including the raw result page HTML",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := singleSearch()
		if err != nil {
			return err
		}
		resp, err := client.GetSerpHTML(cmd.Context(), p)
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var serpTextCmd = &cobra.Command{
	Use:   "serp-text",
	Short: "Fetch search results with the text of each result page",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := singleSearch()
		if err != nil {
			return err
		}
		resp, err := client.GetSerpText(cmd.Context(), p)
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var serpJSCmd = &cobra.Command{
	Use:   "serp-js",
	Short: "Start a browser-rendered search and print its job id",
	Long: `Start a search rendered in a real browser. The search runs asynchronously;
fetch its results later with "fetchserp serp-js-result <uuid>".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := singleSearch()
		if err != nil {
			return err
		}
		resp, err := client.GetSerpJS(cmd.Context(), p)
		if err != nil {
			return err
		}
		if id, err := resp.JobID(); err == nil {
			logger.Info().Str("uuid", id).Msg("Search started, fetch results with serp-js-result")
		}
		return printResponse(cmd, resp)
	},
}

var serpJSResultCmd = &cobra.Command{
	Use:   "serp-js-result <uuid>",
	Short: "Fetch the results of a browser-rendered search",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetSerpJSResult(cmd.Context(), firstArg(args, ""))
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var serpAICmd = &cobra.Command{
	Use:   "serp-ai",
	Short: "Fetch the AI overview and AI mode answer for a query",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetSerpAIMode(cmd.Context(), firstQuery())
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

func runSerp(cmd *cobra.Command, args []string) error {
	if len(queries) <= 1 {
		p, err := singleSearch()
		if err != nil {
			return err
		}
		resp, err := client.GetSerp(cmd.Context(), p)
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	}

	engine, err := serpSearch.searchEngine()
	if err != nil {
		return err
	}

	params := make([]fetchserp.SearchParams, len(queries))
	for i, q := range queries {
		params[i] = fetchserp.SearchParams{
			Query:        q,
			SearchEngine: engine,
			Country:      serpSearch.country,
			PagesNumber:  serpSearch.pages,
		}
	}

	logger.Info().
		Int("queries", len(params)).
		Int("concurrency", cfg.Concurrency).
		Msg("Running searches")

	results := client.BatchGetSerp(cmd.Context(), params, cfg.Concurrency)

	out := make([]any, len(results))
	for i, r := range results {
		entry := map[string]any{"query": r.Params.Query}
		if r.Err != nil {
			entry["error"] = r.Err.Error()
		} else {
			value, err := project(r.Response.Data)
			if err != nil {
				return err
			}
			entry["data"] = value
		}
		out[i] = entry
	}

	if err := writeValue(cmd, out); err != nil {
		return err
	}

	if failed := fetchserp.Failed(results); len(failed) > 0 {
		return fmt.Errorf("%d of %d searches failed", len(failed), len(results))
	}
	return nil
}

func firstQuery() string {
	if len(queries) > 0 {
		return queries[0]
	}
	return ""
}

func singleSearch() (fetchserp.SearchParams, error) {
	engine, err := serpSearch.searchEngine()
	if err != nil {
		return fetchserp.SearchParams{}, err
	}
	return fetchserp.SearchParams{
		Query:        firstQuery(),
		SearchEngine: engine,
		Country:      serpSearch.country,
		PagesNumber:  serpSearch.pages,
	}, nil
}

func init() {
	rootCmd.AddCommand(serpCmd, serpHTMLCmd, serpTextCmd, serpJSCmd, serpJSResultCmd, serpAICmd)

	serpCmd.Flags().StringArrayVarP(&queries, "query", "q", nil, "search query (repeatable)")
	for _, c := range []*cobra.Command{serpHTMLCmd, serpTextCmd, serpJSCmd, serpAICmd} {
		c.Flags().StringArrayVarP(&queries, "query", "q", nil, "search query")
	}

	for _, c := range []*cobra.Command{serpCmd, serpHTMLCmd, serpTextCmd} {
		serpSearch.register(c, true)
	}
	serpSearch.register(serpJSCmd, false)
}

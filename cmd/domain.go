package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/fetchserp/fetchserp"
)

var (
	domainSearch  searchFlags
	rankingSearch searchFlags
	domainFlag    string
	keywordFlag   string
)

var backlinksCmd = &cobra.Command{
	Use:   "backlinks <domain>",
	Short: "List backlinks pointing at a domain",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := domainSearchParams(args)
		if err != nil {
			return err
		}
		resp, err := client.GetBacklinks(cmd.Context(), p)
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var domainEmailsCmd = &cobra.Command{
	Use:   "domain-emails <domain>",
	Short: "Find email addresses published for a domain",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := domainSearchParams(args)
		if err != nil {
			return err
		}
		resp, err := client.GetDomainEmails(cmd.Context(), p)
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var domainInfoCmd = &cobra.Command{
	Use:   "domain-info <domain>",
	Short: "Show DNS, WHOIS, SSL and technology data for a domain",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetDomainInfos(cmd.Context(), firstArg(args, domainFlag))
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var mozCmd = &cobra.Command{
	Use:   "moz <domain>",
	Short: "Show Moz authority metrics for a domain",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetMozDomainAnalysis(cmd.Context(), firstArg(args, domainFlag))
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var indexationCmd = &cobra.Command{
	Use:   "indexation <domain>",
	Short: "Check whether a domain has pages indexed for a keyword",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetPageIndexation(cmd.Context(), fetchserp.PageIndexationParams{
			Domain:  firstArg(args, domainFlag),
			Keyword: keywordFlag,
		})
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var rankingCmd = &cobra.Command{
	Use:   "ranking <domain>",
	Short: "Find where a domain ranks for a keyword",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		engine, err := rankingSearch.searchEngine()
		if err != nil {
			return err
		}
		resp, err := client.GetDomainRanking(cmd.Context(), fetchserp.RankingParams{
			Keyword:      keywordFlag,
			Domain:       firstArg(args, domainFlag),
			SearchEngine: engine,
			Country:      rankingSearch.country,
			PagesNumber:  rankingSearch.pages,
		})
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

func domainSearchParams(args []string) (fetchserp.DomainSearchParams, error) {
	engine, err := domainSearch.searchEngine()
	if err != nil {
		return fetchserp.DomainSearchParams{}, err
	}
	return fetchserp.DomainSearchParams{
		Domain:       firstArg(args, domainFlag),
		SearchEngine: engine,
		Country:      domainSearch.country,
		PagesNumber:  domainSearch.pages,
	}, nil
}

func init() {
	for _, c := range []*cobra.Command{backlinksCmd, domainEmailsCmd, domainInfoCmd, mozCmd, indexationCmd, rankingCmd} {
		c.Flags().StringVar(&domainFlag, "domain", "", "target domain (alternative to the positional argument)")
		rootCmd.AddCommand(c)
	}

	domainSearch.register(backlinksCmd, true)
	domainSearch.register(domainEmailsCmd, true)
	rankingSearch.register(rankingCmd, true)

	indexationCmd.Flags().StringVar(&keywordFlag, "keyword", "", "keyword to check")
	rankingCmd.Flags().StringVar(&keywordFlag, "keyword", "", "keyword to rank for")
}

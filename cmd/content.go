package cmd

import (
	"github.com/spf13/cobra"

	"github.com/s0up4200/fetchserp/fetchserp"
)

var (
	promptFlag   string
	systemPrompt string
	aiModel      string
)

var aiAnalysisCmd = &cobra.Command{
	Use:   "ai-analysis <url>",
	Short: "Ask an AI model a question about a web page",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetWebPageAIAnalysis(cmd.Context(), fetchserp.PageAnalysisParams{
			URL:    firstArg(args, ""),
			Prompt: promptFlag,
		})
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var seoAnalysisCmd = &cobra.Command{
	Use:   "seo-analysis <url>",
	Short: "Run a technical and on-page SEO audit of a page",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetWebPageSEOAnalysis(cmd.Context(), firstArg(args, ""))
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var playwrightCmd = &cobra.Command{
	Use:   "playwright <prompt>",
	Short: "Drive a remote browser with a natural language prompt",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetPlaywrightMCP(cmd.Context(), firstArg(args, promptFlag))
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var wordpressCmd = &cobra.Command{
	Use:   "wordpress",
	Short: "Generate a WordPress article",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GenerateWordpressContent(cmd.Context(), contentParams())
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Generate social media content",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GenerateSocialContent(cmd.Context(), contentParams())
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Show the account that owns the API key",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		resp, err := client.GetUser(cmd.Context())
		if err != nil {
			return err
		}
		return printResponse(cmd, resp)
	},
}

func contentParams() fetchserp.ContentParams {
	return fetchserp.ContentParams{
		UserPrompt:   promptFlag,
		SystemPrompt: systemPrompt,
		AIModel:      aiModel,
	}
}

func init() {
	rootCmd.AddCommand(aiAnalysisCmd, seoAnalysisCmd, playwrightCmd, wordpressCmd, socialCmd, userCmd)

	for _, c := range []*cobra.Command{aiAnalysisCmd, playwrightCmd, wordpressCmd, socialCmd} {
		c.Flags().StringVarP(&promptFlag, "prompt", "p", "", "prompt sent to the model")
	}
	for _, c := range []*cobra.Command{wordpressCmd, socialCmd} {
		c.Flags().StringVar(&systemPrompt, "system-prompt", "", "system prompt sent to the model")
		c.Flags().StringVar(&aiModel, "model", "", "AI model to use")
	}
}

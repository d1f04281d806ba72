package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/s0up4200/fetchserp/config"
	"github.com/s0up4200/fetchserp/fetchserp"
	"github.com/s0up4200/fetchserp/filter"
	"github.com/s0up4200/fetchserp/metrics"
	"github.com/s0up4200/fetchserp/output"
)

var (
	cfgFile  string
	cfg      *config.Config
	logger   zerolog.Logger
	client   *fetchserp.Client
	compiler = filter.NewExprCompiler(filter.WithCache(32))
	registry *prometheus.Registry

	// Persistent flags
	apiKey       string
	baseURL      string
	timeout      time.Duration
	outputFormat string
	projection   string

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "fetchserp",
	Short: "Query the FetchSERP SEO and search data API",
	Long: `fetchserp is a CLI for the FetchSERP API. It fetches search engine results,
keyword data, domain intelligence, page scrapes and AI generated content.

Responses are printed as JSON by default. Use --output to pick another format
and --expr to project the response with an expression, for example:

  fetchserp serp --query "coffee" --expr 'map(data.results, .url)'`,
	SilenceUsage:       true,
	SilenceErrors:      true,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: reportMetrics,
}

// SetVersion records build information for the version and update commands
func SetVersion(v, built string) {
	version = v
	buildTime = built
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, built)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	flags.StringVar(&apiKey, "api-key", "", "FetchSERP API key (overrides config and FETCHSERP_API_KEY)")
	flags.StringVar(&baseURL, "base-url", "", "API base URL")
	flags.DurationVar(&timeout, "timeout", 0, "per-request timeout, e.g. 45s")
	flags.StringVarP(&outputFormat, "output", "o", "", "output format: json, yaml, raw, markdown, text")
	flags.StringVarP(&projection, "expr", "e", "", "expression applied to the response, or @name for a configured one")

	rootCmd.AddCommand(testCmd)
}

// initializeApp loads configuration and creates the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	overrides := make(map[string]any)
	if cmd.Flags().Changed("api-key") {
		overrides["api_key"] = apiKey
	}
	if cmd.Flags().Changed("base-url") {
		overrides["base_url"] = baseURL
	}
	if cmd.Flags().Changed("timeout") {
		overrides["timeout_ms"] = int(timeout / time.Millisecond)
	}
	if cmd.Flags().Changed("output") {
		overrides["output.format"] = outputFormat
	}

	var err error
	cfg, err = config.Load(cfgFile, overrides)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	opts := []fetchserp.Option{
		fetchserp.WithBaseURL(cfg.BaseURL),
		fetchserp.WithTimeout(cfg.Timeout()),
		fetchserp.WithLogger(logger),
		fetchserp.WithRequestID("X-Request-ID"),
		fetchserp.WithUserAgent(userAgent()),
	}

	if cfg.Metrics.Enabled {
		registry = prometheus.NewRegistry()
		opts = append(opts, fetchserp.WithRecorder(metrics.New(registry)))
	}

	client, err = fetchserp.NewClient(cfg.APIKey, opts...)
	if err != nil {
		return fmt.Errorf("failed to create FetchSERP client: %w", err)
	}

	logger.Debug().
		Str("base_url", client.BaseURL()).
		Dur("timeout", client.Timeout()).
		Msg("FetchSERP client ready")

	return nil
}

func userAgent() string {
	if cfg != nil && cfg.UserAgent != "" {
		return cfg.UserAgent
	}
	return "fetchserp-cli/" + version
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Color only makes sense on a terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())

	out := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(out).With().Timestamp().Logger()
}

// reportMetrics logs the request counters gathered during the run
func reportMetrics(cmd *cobra.Command, args []string) error {
	if registry == nil {
		return nil
	}

	families, err := registry.Gather()
	if err != nil {
		return fmt.Errorf("failed to gather metrics: %w", err)
	}

	for _, mf := range families {
		if mf.GetName() != "fetchserp_requests_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			ev := logger.Info()
			for _, lp := range m.GetLabel() {
				ev = ev.Str(lp.GetName(), lp.GetValue())
			}
			ev.Float64("count", m.GetCounter().GetValue()).Msg("Request summary")
		}
	}

	return nil
}

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Test connection to FetchSERP",
	Long:  `Verify the API key by fetching the account details of the key's owner.`,
	Args:  cobra.NoArgs,
	RunE:  runTest,
}

func runTest(cmd *cobra.Command, args []string) error {
	fmt.Fprintf(cmd.OutOrStdout(), "Testing connection to FetchSERP at %s...\n", client.BaseURL())

	if err := client.TestConnection(cmd.Context()); err != nil {
		if fetchserp.IsStatus(err, 401) {
			return fmt.Errorf("%w (check your API key)", err)
		}
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✓ Connection successful!")
	return nil
}

// printResponse applies the --expr projection and renders the result
func printResponse(cmd *cobra.Command, resp *fetchserp.Response) error {
	value, err := project(resp.Data)
	if err != nil {
		return err
	}
	return writeValue(cmd, value)
}

// project evaluates the --expr projection, if any, against value
func project(value any) (any, error) {
	expression, err := resolveExpression(projection)
	if err != nil || expression == "" {
		return value, err
	}

	p, err := compiler.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid expression: %w", err)
	}
	return p.Apply(value)
}

func writeValue(cmd *cobra.Command, value any) error {
	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	return output.Render(cmd.OutOrStdout(), value, format)
}

// resolveExpression expands @name references to configured expressions
func resolveExpression(expression string) (string, error) {
	name, ok := strings.CutPrefix(expression, "@")
	if !ok {
		return expression, nil
	}

	if named, found := cfg.Output.Expressions[name]; found {
		return named, nil
	}
	return "", fmt.Errorf("expression '%s' not found in config", name)
}

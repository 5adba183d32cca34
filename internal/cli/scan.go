package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/openpress/biascope/internal/pipeline"
	"github.com/spf13/cobra"
)

var (
	scanJSON    string
	scanMD      string
	timeout     time.Duration
	userAgent   string
	maxBytes    int64
	noCache     bool
	noFooter    bool
	noRobots    bool
	insecureTLS bool
	llmEnabled  bool
	llmProvider string
	llmModel    string
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan <url>",
	Short: "Fetch an article URL and score its text",
	Long: `Scan fetches a single article page (robots.txt-aware and rate
limited), extracts its title and visible text, and scores it with the
integrated bias engine.

Example:
  biascope scan https://example.com/news/budget-vote
  biascope scan https://example.com/story --json report.json --md report.md
  biascope scan https://example.com/story --llm --llm-model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	rootCmd.AddCommand(scanCmd)

	// Output flags
	scanCmd.Flags().StringVar(&scanJSON, "json", "report.json", "output JSON path")
	scanCmd.Flags().StringVar(&scanMD, "md", "", "output Markdown path (optional)")

	// HTTP flags
	scanCmd.Flags().DurationVar(&timeout, "timeout", 60*time.Second, "overall fetch+score timeout")
	scanCmd.Flags().StringVar(&userAgent, "ua", "Biascope/0.1 (+https://github.com/openpress/biascope)", "HTTP User-Agent")
	scanCmd.Flags().Int64Var(&maxBytes, "max-bytes", 2_000_000, "max response bytes to read")
	scanCmd.Flags().BoolVar(&noRobots, "no-robots", false, "skip robots.txt checks")
	scanCmd.Flags().BoolVar(&insecureTLS, "insecure", false, "skip TLS certificate verification")

	addCacheFlags(scanCmd)
	addLLMFlags(scanCmd)
}

// addCacheFlags registers the flags shared by every scoring command
func addCacheFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the analysis cache")
	cmd.Flags().BoolVar(&noFooter, "no-footer", false, "disable footer in Markdown reports")
}

// addLLMFlags registers the optional explanation flags
func addLLMFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&llmEnabled, "llm", false, "generate an LLM explanation of the result (never affects scores)")
	cmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai)")
	cmd.Flags().StringVar(&llmModel, "llm-model", "gpt-4o-mini", "LLM model name")
}

func runScan(cmd *cobra.Command, args []string) error {
	url := args[0]
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if verbose {
		fmt.Fprintf(os.Stderr, "Scanning: %s\n", url)
		fmt.Fprintf(os.Stderr, "Timeout: %v\n", timeout)
		fmt.Fprintf(os.Stderr, "Cache: %v\n", !noCache)
		fmt.Fprintln(os.Stderr)
	}

	cfg := buildConfig()
	cfg.HTTP.Timeout = timeout
	cfg.HTTP.UserAgent = userAgent
	cfg.HTTP.MaxBodyBytes = maxBytes
	cfg.HTTP.InsecureTLS = insecureTLS
	cfg.HTTP.RespectRobots = !noRobots

	if err := configureLLM(cfg); err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	analysis, err := p.ScanURL(ctx, url)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Scored %s: %+.3f (%s)\n", analysis.Subject, analysis.BiasScore, analysis.BiasLabel)
		fmt.Fprintln(os.Stderr)
	}

	return p.Render(analysis, scanJSON, scanMD, verbose)
}

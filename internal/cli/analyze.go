package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/openpress/biascope/internal/model"
	"github.com/openpress/biascope/internal/pipeline"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	analyzeTitle string
	analyzeJSON  string
	analyzeMD    string
)

// analyzeCmd represents the analyze command
var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Score a local text file or stdin",
	Long: `Analyze scores a piece of text read from a file, or from stdin when
the argument is "-" or omitted.

Example:
  biascope analyze article.txt --title "Senate passes budget"
  cat article.txt | biascope analyze - --json report.json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "article title (scored as the headline)")
	analyzeCmd.Flags().StringVar(&analyzeJSON, "json", "", "output JSON path (optional)")
	analyzeCmd.Flags().StringVar(&analyzeMD, "md", "", "output Markdown path (optional)")
	addCacheFlags(analyzeCmd)
	addLLMFlags(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	content, err := readAnalyzeInput(args)
	if err != nil {
		return err
	}

	cfg := buildConfig()
	if err := configureLLM(cfg); err != nil {
		return err
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	analysis, err := p.Analyze(context.Background(), pipeline.Request{
		Content: content,
		Title:   analyzeTitle,
	})
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	return p.Render(analysis, analyzeJSON, analyzeMD, verbose)
}

// readAnalyzeInput reads the submission from the file argument or stdin
func readAnalyzeInput(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("read %s: %w", args[0], err)
	}
	return string(data), nil
}

// buildConfig assembles the tool configuration from defaults, the config
// file/env (via viper) and global flags.
func buildConfig() *model.Config {
	cfg := model.DefaultConfig()
	cfg.Output.Verbose = verbose
	cfg.Output.IncludeFooter = !noFooter
	cfg.Cache.Enabled = !noCache
	cfg.Lexicon.Path = viper.GetString("lexicon.path")

	if workers := viper.GetInt("concurrency.batch_workers"); workers > 0 {
		cfg.Concurrency.BatchWorkers = workers
	}
	return cfg
}

// configureLLM wires the optional explanation provider from flags/env
func configureLLM(cfg *model.Config) error {
	if !llmEnabled {
		cfg.LLM.Provider = ""
		return nil
	}

	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	default:
		return fmt.Errorf("unknown LLM provider: %s (supported: openai)", llmProvider)
	}
	return nil
}

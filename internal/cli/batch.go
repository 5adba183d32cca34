package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openpress/biascope/internal/pipeline"
	"github.com/openpress/biascope/internal/worker"
	"github.com/spf13/cobra"
)

var (
	batchWorkers int
	batchOutDir  string
)

// batchCmd represents the batch command
var batchCmd = &cobra.Command{
	Use:   "batch <list-file>",
	Short: "Score many articles concurrently",
	Long: `Batch reads sources from a file (one per line: article URLs or local
text file paths; blank lines and # comments are skipped) and scores them
concurrently with a worker pool.

Example:
  biascope batch urls.txt
  biascope batch sources.txt --workers 8 --out-dir reports/`,
	Args: cobra.ExactArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVar(&batchWorkers, "workers", 4, "concurrent workers")
	batchCmd.Flags().StringVar(&batchOutDir, "out-dir", "", "write one JSON report per source into this directory")
	addCacheFlags(batchCmd)
}

func runBatch(cmd *cobra.Command, args []string) error {
	cfg := buildConfig()
	cfg.LLM.Provider = "" // Explanations are per-article, not for bulk runs
	if batchWorkers > 0 {
		cfg.Concurrency.BatchWorkers = batchWorkers
	}

	p, err := pipeline.NewPipeline(cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}

	processor := worker.NewBatchProcessor(p, cfg.Concurrency.BatchWorkers)
	results, err := processor.ProcessFile(context.Background(), args[0])
	if err != nil {
		return fmt.Errorf("batch failed: %w", err)
	}

	failed := 0
	fmt.Printf("%-8s  %-22s  %s\n", "SCORE", "BAND", "SOURCE")
	for _, result := range results {
		if result.Error != nil {
			failed++
			fmt.Printf("%-8s  %-22s  %s (%v)\n", "-", "error", result.Source.Raw, result.Error)
			continue
		}
		fmt.Printf("%+-8.3f  %-22s  %s\n", result.Analysis.BiasScore, result.Analysis.BiasLabel, result.Source.Raw)

		if batchOutDir != "" {
			if err := writeBatchReport(result, batchOutDir); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: write report for %s: %v\n", result.Source.Raw, err)
			}
		}
	}

	fmt.Printf("\n%d scored, %d failed\n", len(results)-failed, failed)
	if failed == len(results) && len(results) > 0 {
		return fmt.Errorf("all %d sources failed", failed)
	}
	return nil
}

// writeBatchReport writes one analysis as JSON under outDir
func writeBatchReport(result *worker.AnalyzeResult, outDir string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(result.Analysis, "", "  ")
	if err != nil {
		return err
	}

	name := slugify(result.Source.Raw) + ".json"
	return os.WriteFile(filepath.Join(outDir, name), append(data, '\n'), 0o644)
}

// slugify turns a source into a safe filename
func slugify(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		default:
			out = append(out, '_')
		}
	}
	const maxLen = 100
	if len(out) > maxLen {
		out = out[len(out)-maxLen:]
	}
	return string(out)
}

var _ worker.Analyzer = (*pipeline.Pipeline)(nil)

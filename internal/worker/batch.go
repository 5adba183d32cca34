package worker

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/openpress/biascope/internal/model"
	"github.com/openpress/biascope/internal/pipeline"
)

// Analyzer is the interface the batch processor drives. The pipeline
// satisfies it.
type Analyzer interface {
	Analyze(ctx context.Context, req pipeline.Request) (*model.Analysis, error)
	ScanURL(ctx context.Context, url string) (*model.Analysis, error)
}

// Source is one batch input: either an article URL or a local text file
type Source struct {
	Raw   string
	IsURL bool
}

// ParseSource classifies a batch input line
func ParseSource(line string) Source {
	lower := strings.ToLower(line)
	return Source{
		Raw:   line,
		IsURL: strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://"),
	}
}

// AnalyzeJob scores one batch source
type AnalyzeJob struct {
	Source   Source
	Analyzer Analyzer
}

// Execute runs the job
func (j *AnalyzeJob) Execute(ctx context.Context) Result {
	analysis, err := j.run(ctx)
	return &AnalyzeResult{
		Source:   j.Source,
		Analysis: analysis,
		Error:    err,
	}
}

func (j *AnalyzeJob) run(ctx context.Context) (*model.Analysis, error) {
	if j.Source.IsURL {
		return j.Analyzer.ScanURL(ctx, j.Source.Raw)
	}

	data, err := os.ReadFile(j.Source.Raw)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return j.Analyzer.Analyze(ctx, pipeline.Request{
		Content: string(data),
		Title:   titleFromPath(j.Source.Raw),
	})
}

// AnalyzeResult is the outcome of one batch source
type AnalyzeResult struct {
	Source   Source
	Analysis *model.Analysis
	Error    error
}

// GetError returns the job error, if any
func (r *AnalyzeResult) GetError() error {
	return r.Error
}

// BatchProcessor scores multiple sources concurrently
type BatchProcessor struct {
	analyzer    Analyzer
	concurrency int
}

// NewBatchProcessor creates a batch processor
func NewBatchProcessor(analyzer Analyzer, concurrency int) *BatchProcessor {
	return &BatchProcessor{
		analyzer:    analyzer,
		concurrency: concurrency,
	}
}

// ProcessSources scores the given sources concurrently
func (b *BatchProcessor) ProcessSources(ctx context.Context, sources []Source) []*AnalyzeResult {
	if len(sources) == 0 {
		return []*AnalyzeResult{}
	}

	pool := NewPool(b.concurrency)
	pool.Start(ctx)

	for _, src := range sources {
		pool.Submit(&AnalyzeJob{Source: src, Analyzer: b.analyzer})
	}

	results := pool.Wait()

	analyzeResults := make([]*AnalyzeResult, len(results))
	for i, result := range results {
		analyzeResults[i] = result.(*AnalyzeResult)
	}
	return analyzeResults
}

// ProcessFile reads sources from a list file and scores them
func (b *BatchProcessor) ProcessFile(ctx context.Context, listPath string) ([]*AnalyzeResult, error) {
	sources, err := ReadSourcesFromFile(listPath)
	if err != nil {
		return nil, fmt.Errorf("read sources: %w", err)
	}
	return b.ProcessSources(ctx, sources), nil
}

// ReadSourcesFromFile reads one source per line, skipping blanks,
// comments and duplicates.
func ReadSourcesFromFile(listPath string) ([]Source, error) {
	file, err := os.Open(listPath)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var sources []Source
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !seen[line] {
			seen[line] = true
			sources = append(sources, ParseSource(line))
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan file: %w", err)
	}
	return sources, nil
}

// titleFromPath de-slugs a filename into a usable title
func titleFromPath(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	base = strings.ReplaceAll(base, "_", " ")
	base = strings.ReplaceAll(base, "-", " ")
	return base
}

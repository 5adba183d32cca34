package worker

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/openpress/biascope/internal/model"
	"github.com/openpress/biascope/internal/pipeline"
)

// mockAnalyzer implements Analyzer
type mockAnalyzer struct {
	shouldError bool
}

func (m *mockAnalyzer) Analyze(ctx context.Context, req pipeline.Request) (*model.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	time.Sleep(5 * time.Millisecond) // Simulate work
	if m.shouldError {
		return nil, errors.New("analyze error")
	}
	return &model.Analysis{Subject: req.Title, BiasScore: 0, BiasLabel: "Minimal Bias"}, nil
}

func (m *mockAnalyzer) ScanURL(ctx context.Context, url string) (*model.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	time.Sleep(5 * time.Millisecond)
	if m.shouldError {
		return nil, errors.New("scan error")
	}
	return &model.Analysis{Subject: "Test Subject", SourceURL: url, BiasLabel: "Minimal Bias"}, nil
}

func TestParseSource(t *testing.T) {
	tests := []struct {
		line  string
		isURL bool
	}{
		{"http://example.com/article", true},
		{"https://example.com/article", true},
		{"HTTPS://EXAMPLE.COM", true},
		{"articles/story.txt", false},
		{"/tmp/story.txt", false},
		{"ftp://example.com", false},
	}

	for _, tt := range tests {
		src := ParseSource(tt.line)
		if src.IsURL != tt.isURL {
			t.Errorf("ParseSource(%q).IsURL = %v, want %v", tt.line, src.IsURL, tt.isURL)
		}
		if src.Raw != tt.line {
			t.Errorf("ParseSource(%q).Raw = %q", tt.line, src.Raw)
		}
	}
}

func TestBatchProcessor_ProcessSources(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2)

	sources := []Source{
		{Raw: "http://example.com/a", IsURL: true},
		{Raw: "http://example.com/b", IsURL: true},
		{Raw: "http://example.com/c", IsURL: true},
	}

	results := processor.ProcessSources(context.Background(), sources)

	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for _, res := range results {
		if res.Error != nil {
			t.Errorf("unexpected error for %s: %v", res.Source.Raw, res.Error)
		}
		if res.Analysis == nil {
			t.Errorf("expected analysis for %s", res.Source.Raw)
		}
	}
}

func TestBatchProcessor_ProcessSources_Error(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{shouldError: true}, 2)

	results := processor.ProcessSources(context.Background(), []Source{
		{Raw: "http://example.com", IsURL: true},
	})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Error("expected error, got nil")
	}
	if results[0].Analysis != nil {
		t.Error("expected nil analysis on error")
	}
}

func TestBatchProcessor_ProcessSources_Empty(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 2)

	results := processor.ProcessSources(context.Background(), []Source{})
	if len(results) != 0 {
		t.Errorf("expected 0 results, got %d", len(results))
	}
}

func TestBatchProcessor_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	processor := NewBatchProcessor(&mockAnalyzer{}, 2)
	results := processor.ProcessSources(ctx, []Source{
		{Raw: "http://example.com/a", IsURL: true},
		{Raw: "http://example.com/b", IsURL: true},
	})

	// Cancellation reaches the analyzer: no source gets a clean result
	for _, res := range results {
		if res.Error == nil {
			t.Errorf("expected cancellation error for %s", res.Source.Raw)
		}
	}
}

func TestBatchProcessor_LocalFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fiscal-policy-debate.txt")
	if err := os.WriteFile(path, []byte("Lawmakers argued over the budget."), 0o644); err != nil {
		t.Fatal(err)
	}

	processor := NewBatchProcessor(&mockAnalyzer{}, 1)
	results := processor.ProcessSources(context.Background(), []Source{ParseSource(path)})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error != nil {
		t.Fatalf("unexpected error: %v", results[0].Error)
	}
	if results[0].Analysis.Subject != "fiscal policy debate" {
		t.Errorf("expected de-slugged title, got %q", results[0].Analysis.Subject)
	}
}

func TestBatchProcessor_LocalFile_Missing(t *testing.T) {
	processor := NewBatchProcessor(&mockAnalyzer{}, 1)
	results := processor.ProcessSources(context.Background(), []Source{
		{Raw: "/nonexistent/article.txt", IsURL: false},
	})

	if len(results) != 1 {
		t.Fatalf("expected 1 result, got %d", len(results))
	}
	if results[0].Error == nil {
		t.Error("expected error for missing file")
	}
}

func TestReadSourcesFromFile(t *testing.T) {
	content := `http://example.com
# comment
https://google.com

articles/story.txt
http://example.com
`

	tmpfile, err := os.CreateTemp("", "sources")
	if err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Remove(tmpfile.Name())
	}()

	if _, err := tmpfile.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	if err := tmpfile.Close(); err != nil {
		t.Fatal(err)
	}

	sources, err := ReadSourcesFromFile(tmpfile.Name())
	if err != nil {
		t.Fatalf("ReadSourcesFromFile failed: %v", err)
	}

	expected := []string{"http://example.com", "https://google.com", "articles/story.txt"}
	if len(sources) != len(expected) {
		t.Fatalf("expected %d sources, got %d", len(expected), len(sources))
	}
	for i, want := range expected {
		if sources[i].Raw != want {
			t.Errorf("source %d: got %q, want %q", i, sources[i].Raw, want)
		}
	}
	if !sources[0].IsURL || sources[2].IsURL {
		t.Error("URL classification wrong")
	}
}

func TestReadSourcesFromFile_NotFound(t *testing.T) {
	if _, err := ReadSourcesFromFile("/nonexistent/list.txt"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTitleFromPath(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"articles/senate_vote-recap.txt", "senate vote recap"},
		{"/tmp/story.md", "story"},
		{"plain", "plain"},
	}

	for _, tt := range tests {
		if got := titleFromPath(tt.path); got != tt.want {
			t.Errorf("titleFromPath(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

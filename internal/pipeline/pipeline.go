package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/openpress/biascope/internal/cache"
	"github.com/openpress/biascope/internal/fetch"
	"github.com/openpress/biascope/internal/lexicon"
	"github.com/openpress/biascope/internal/llm"
	"github.com/openpress/biascope/internal/model"
)

// Pipeline wires the stateless engine to its collaborators: the fetcher,
// the analysis cache, the renderers and the optional explainer.
type Pipeline struct {
	engine    *Engine
	fetcher   *fetch.Fetcher
	store     cache.Store // nil when caching is disabled
	renderer  *Renderer
	explainer *llm.Explainer // nil/disabled unless configured
	config    *model.Config
}

// NewPipeline creates a pipeline from configuration. A lexicon that fails
// to load is a hard error: the process must not serve analyses with a
// partially loaded dictionary.
func NewPipeline(cfg *model.Config) (*Pipeline, error) {
	lex, err := lexicon.Load(cfg.Lexicon.Path)
	if err != nil {
		return nil, fmt.Errorf("load lexicon: %w", err)
	}

	var store cache.Store
	if cfg.Cache.Enabled {
		dir := cfg.Cache.Dir
		if dir == "" {
			if home, err := os.UserHomeDir(); err == nil {
				dir = filepath.Join(home, ".biascope", "cache")
			}
		}
		if dir != "" {
			store = cache.NewLayered(cfg.Cache.MemoryTTL, dir, cfg.Cache.DiskTTL)
		}
	}

	var explainer *llm.Explainer
	if cfg.LLM.Provider != "" {
		e, err := llm.NewExplainer(llm.ConfigFromModel(cfg.LLM))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to initialize LLM provider: %v\n", err)
		} else {
			explainer = e
		}
	}

	return &Pipeline{
		engine:    NewEngine(lex),
		fetcher:   fetch.NewFetcher(cfg.HTTP),
		store:     store,
		renderer:  NewRenderer(cfg.Output.IncludeFooter),
		explainer: explainer,
		config:    cfg,
	}, nil
}

// Engine exposes the underlying scoring engine
func (p *Pipeline) Engine() *Engine {
	return p.engine
}

// Analyze scores a submission, consulting the analysis cache first.
// Cache keys hash the submission itself, so identical text always
// resolves to the identical (cached) result.
func (p *Pipeline) Analyze(ctx context.Context, req Request) (*model.Analysis, error) {
	key := cache.AnalysisKey(req.Title, req.Content)

	if p.store != nil {
		if raw, found := p.store.Get(key); found {
			var analysis model.Analysis
			if err := json.Unmarshal(raw, &analysis); err == nil {
				p.maybeExplain(ctx, &analysis)
				return &analysis, nil
			}
			// A corrupt entry falls through to a fresh analysis.
		}
	}

	analysis, err := p.engine.Analyze(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("analyze: %w", err)
	}

	if p.store != nil {
		// Cached without the LLM block: narration is per-invocation.
		if raw, err := json.Marshal(analysis); err == nil {
			_ = p.store.Set(key, raw, 0)
		}
	}

	p.maybeExplain(ctx, analysis)
	return analysis, nil
}

// ScanURL fetches an article and scores its extracted text
func (p *Pipeline) ScanURL(ctx context.Context, url string) (*model.Analysis, error) {
	result, err := p.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch: %w", err)
	}

	return p.Analyze(ctx, Request{
		Content: result.Text,
		Title:   result.Title,
		URL:     result.FinalURL,
	})
}

// maybeExplain attaches the optional LLM narration. Failures only warn:
// the deterministic result is already complete.
func (p *Pipeline) maybeExplain(ctx context.Context, analysis *model.Analysis) {
	if !p.explainer.IsEnabled() || analysis.LLM != nil {
		return
	}

	exp, err := p.explainer.Explain(ctx, *analysis)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: LLM explanation failed: %v\n", err)
		return
	}
	analysis.LLM = exp
}

// Render writes the analysis to the requested outputs and prints the
// terminal summary.
func (p *Pipeline) Render(analysis *model.Analysis, jsonPath, mdPath string, verbose bool) error {
	if jsonPath != "" {
		if err := p.renderer.RenderJSON(analysis, jsonPath); err != nil {
			return fmt.Errorf("render JSON: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote JSON: %s\n", jsonPath)
		}
	}

	if mdPath != "" {
		if err := p.renderer.RenderMarkdown(analysis, mdPath); err != nil {
			return fmt.Errorf("render markdown: %w", err)
		}
		if verbose {
			fmt.Printf("✓ Wrote Markdown: %s\n", mdPath)
		}
	}

	p.renderer.RenderSummary(analysis)
	return nil
}

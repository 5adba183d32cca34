package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/openpress/biascope/internal/model"
)

// Explainer wraps a provider and produces model.Explanation values for
// finished analyses. It runs strictly after the combiner; a failed or
// disabled explainer leaves the analysis untouched.
type Explainer struct {
	provider Provider
	config   Config
}

// NewExplainer creates an explainer from configuration. An empty provider
// name yields a disabled explainer, not an error.
func NewExplainer(config Config) (*Explainer, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}
	return &Explainer{provider: provider, config: config}, nil
}

// IsEnabled reports whether a provider is configured
func (e *Explainer) IsEnabled() bool {
	return e != nil && e.provider != nil
}

// Explain generates the narration block for an analysis
func (e *Explainer) Explain(ctx context.Context, analysis model.Analysis) (*model.Explanation, error) {
	if !e.IsEnabled() {
		return nil, nil
	}

	resp, err := e.provider.Explain(ctx, ExplainRequest{Analysis: analysis})
	if err != nil {
		return nil, fmt.Errorf("explain: %w", err)
	}

	return &model.Explanation{
		Enabled:   true,
		Provider:  e.provider.Name(),
		Model:     resp.Model,
		SummaryMD: resp.Text,
	}, nil
}

// NewProvider creates an LLM provider based on configuration
func NewProvider(config Config) (Provider, error) {
	switch strings.ToLower(config.Provider) {
	case "openai":
		return NewOpenAIProvider(config)

	case "":
		// No provider configured (LLM disabled)
		return nil, nil

	default:
		return nil, fmt.Errorf("unknown LLM provider: %s (supported: openai)", config.Provider)
	}
}

// RenderMarkdown renders the explanation as a standalone Markdown block,
// clearly separated from the deterministic report.
func RenderMarkdown(exp *model.Explanation) string {
	if exp == nil || !exp.Enabled {
		return ""
	}
	var b strings.Builder
	b.WriteString("## LLM Explanation\n\n")
	b.WriteString("> Generated narration. It never affects any score.\n\n")
	b.WriteString(exp.SummaryMD)
	b.WriteString("\n")
	if exp.Provider != "" {
		fmt.Fprintf(&b, "\n_Provider: %s (%s)_\n", exp.Provider, exp.Model)
	}
	return b.String()
}

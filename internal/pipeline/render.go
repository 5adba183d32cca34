package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/openpress/biascope/internal/llm"
	"github.com/openpress/biascope/internal/model"
	"github.com/openpress/biascope/internal/score"
)

// Renderer writes analyses as JSON, Markdown and terminal summaries
type Renderer struct {
	includeFooter bool
}

// NewRenderer creates a renderer
func NewRenderer(includeFooter bool) *Renderer {
	return &Renderer{includeFooter: includeFooter}
}

// RenderJSON writes the analysis as indented JSON
func (r *Renderer) RenderJSON(analysis *model.Analysis, path string) error {
	data, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal analysis: %w", err)
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}

// RenderMarkdown writes the analysis as a Markdown report
func (r *Renderer) RenderMarkdown(analysis *model.Analysis, path string) error {
	var b strings.Builder

	fmt.Fprintf(&b, "# Biascope Report: %s\n\n", analysis.Subject)
	if analysis.SourceURL != "" {
		fmt.Fprintf(&b, "Source: %s\n\n", analysis.SourceURL)
	}
	fmt.Fprintf(&b, "**Bias score: %+.3f — %s**\n\n", analysis.BiasScore, analysis.BiasLabel)
	b.WriteString("Scale: -1.000 (strong left bias) to +1.000 (strong right bias)\n\n")

	b.WriteString("## Methodology scores\n\n")
	b.WriteString("| Methodology | Score | Weight |\n")
	b.WriteString("|---|---|---|\n")
	for _, name := range methodologyOrder(analysis) {
		ms := analysis.Methodologies[name]
		fmt.Fprintf(&b, "| %s | %+.3f | %.0f%% |\n", name, ms.Score, score.MethodologyWeights[name]*100)
	}
	b.WriteString("\n")

	if md := llm.RenderMarkdown(analysis.LLM); md != "" {
		b.WriteString(md)
		b.WriteString("\n")
	}

	if r.includeFooter {
		fmt.Fprintf(&b, "---\n\nGenerated by biascope at %s. Deterministic, transparent, symmetric.\n",
			analysis.AnalyzedAt.Format("2006-01-02 15:04:05 UTC"))
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

// RenderSummary prints the short terminal summary to stdout
func (r *Renderer) RenderSummary(analysis *model.Analysis) {
	fmt.Printf("\n%s\n", analysis.Subject)
	fmt.Printf("Bias score: %+.3f (%s)\n", analysis.BiasScore, analysis.BiasLabel)
	for _, name := range methodologyOrder(analysis) {
		ms := analysis.Methodologies[name]
		fmt.Printf("  %-10s %+.3f (weight %.0f%%)\n", name+":", ms.Score, score.MethodologyWeights[name]*100)
	}
	if analysis.LLM != nil && analysis.LLM.Enabled {
		fmt.Printf("\n%s\n", analysis.LLM.SummaryMD)
	}
}

// methodologyOrder lists methodologies heaviest weight first, then by name
func methodologyOrder(analysis *model.Analysis) []string {
	names := make([]string, 0, len(analysis.Methodologies))
	for name := range analysis.Methodologies {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		wi, wj := score.MethodologyWeights[names[i]], score.MethodologyWeights[names[j]]
		if wi != wj {
			return wi > wj
		}
		return names[i] < names[j]
	})
	return names
}

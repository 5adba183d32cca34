package llm

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/openpress/biascope/internal/model"
)

// stubProvider implements Provider
type stubProvider struct {
	resp *ExplainResponse
	err  error
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error) {
	return s.resp, s.err
}

func TestNewExplainer_Disabled(t *testing.T) {
	e, err := NewExplainer(Config{})
	if err != nil {
		t.Fatalf("empty provider should not error: %v", err)
	}
	if e.IsEnabled() {
		t.Error("explainer should be disabled without a provider")
	}

	exp, err := e.Explain(context.Background(), testAnalysis())
	if err != nil || exp != nil {
		t.Errorf("disabled explainer returned %v, %v", exp, err)
	}
}

func TestNewExplainer_NilSafe(t *testing.T) {
	var e *Explainer
	if e.IsEnabled() {
		t.Error("nil explainer reported enabled")
	}
}

func TestNewExplainer_UnknownProvider(t *testing.T) {
	if _, err := NewExplainer(Config{Provider: "mystery"}); err == nil {
		t.Error("expected error for unknown provider")
	}
}

func TestExplainer_Explain(t *testing.T) {
	e := &Explainer{provider: &stubProvider{resp: &ExplainResponse{Text: "Narration.", Model: "m"}}}

	exp, err := e.Explain(context.Background(), testAnalysis())
	if err != nil {
		t.Fatalf("Explain failed: %v", err)
	}
	if !exp.Enabled || exp.Provider != "stub" || exp.SummaryMD != "Narration." {
		t.Errorf("unexpected explanation: %+v", exp)
	}
}

func TestExplainer_ExplainError(t *testing.T) {
	e := &Explainer{provider: &stubProvider{err: errors.New("boom")}}

	if _, err := e.Explain(context.Background(), testAnalysis()); err == nil {
		t.Error("expected error from failing provider")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := BuildPrompt(testAnalysis())

	for _, want := range []string{
		"Budget Vote",
		"-0.215",
		"Low Left Bias",
		"harvard", "columbia", "allsides", "sentiment",
		"weight 40%", "weight 35%", "weight 20%", "weight 5%",
	} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestRenderMarkdown(t *testing.T) {
	if got := RenderMarkdown(nil); got != "" {
		t.Errorf("nil explanation rendered %q", got)
	}
	if got := RenderMarkdown(&model.Explanation{Enabled: false}); got != "" {
		t.Errorf("disabled explanation rendered %q", got)
	}

	md := RenderMarkdown(&model.Explanation{
		Enabled:   true,
		Provider:  "openai",
		Model:     "gpt-4o-mini",
		SummaryMD: "The score leans left.",
	})
	for _, want := range []string{"## LLM Explanation", "never affects any score", "The score leans left.", "openai"} {
		if !strings.Contains(md, want) {
			t.Errorf("markdown missing %q", want)
		}
	}
}

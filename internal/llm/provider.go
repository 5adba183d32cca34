package llm

import (
	"context"
	"fmt"
	"sort"

	"github.com/openpress/biascope/internal/model"
	"github.com/openpress/biascope/internal/score"
)

// Provider defines the interface for LLM providers
type Provider interface {
	// Name returns the provider name
	Name() string

	// Explain narrates a finished analysis in plain language
	Explain(ctx context.Context, req ExplainRequest) (*ExplainResponse, error)
}

// ExplainRequest contains the input for explanation generation.
// The analysis is complete before this request exists; nothing the
// provider returns can alter a score.
type ExplainRequest struct {
	// Analysis is the finished biascope analysis to narrate
	Analysis model.Analysis

	// Prompt is an optional custom prompt (if empty, use default)
	Prompt string

	// Model is the specific model to use (provider-specific)
	Model string

	// MaxTokens limits the response length
	MaxTokens int
}

// ExplainResponse contains the provider's narration
type ExplainResponse struct {
	Text       string
	Model      string
	TokensUsed int
}

// Config holds LLM provider configuration
type Config struct {
	// Provider name: "openai" or "" (disabled)
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for the provider
	APIKey string

	// BaseURL for custom endpoints
	BaseURL string

	// Timeout for API requests, in seconds
	Timeout int

	// MaxTokens for response generation
	MaxTokens int
}

// DefaultConfig returns sensible defaults (disabled)
func DefaultConfig() Config {
	return Config{
		Timeout:   30,
		MaxTokens: 500,
	}
}

// ConfigFromModel converts model.LLMConfig to llm.Config
func ConfigFromModel(cfg model.LLMConfig) Config {
	return Config{
		Provider:  cfg.Provider,
		Model:     cfg.Model,
		APIKey:    cfg.APIKey,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
		MaxTokens: cfg.MaxTokens,
	}
}

// BuildPrompt constructs the default explanation prompt. The scores are
// facts the narration must report, never revise.
func BuildPrompt(a model.Analysis) string {
	prompt := fmt.Sprintf(`You are explaining a biascope media bias analysis. Biascope is a deterministic, dictionary-driven scorer - its numbers are final and you must not second-guess or recompute them.

RULES:
1. Report the scores exactly as given; never suggest different values.
2. Describe WHAT drove the score (phrase hits, placement, sourcing, tone), not whether the article is right or wrong.
3. Do not assert anything about the article's truthfulness.
4. Keep it to 3-4 sentences of plain language.

Analysis:
- Subject: %s
- Composite bias score: %+.3f (%s) on a -1.000 (left) to +1.000 (right) scale
- Methodology scores:
`, a.Subject, a.BiasScore, a.BiasLabel)

	names := make([]string, 0, len(a.Methodologies))
	for name := range a.Methodologies {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		ms := a.Methodologies[name]
		prompt += fmt.Sprintf("  - %s: %+.3f (weight %.0f%%)\n", name, ms.Score, score.MethodologyWeights[name]*100)
	}

	prompt += "\nExplain what these components say about the article's framing."
	return prompt
}

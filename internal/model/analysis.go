package model

import "time"

// Methodology names. The combiner requires exactly these four.
const (
	MethodologyHarvard   = "harvard"   // Position/attribution weighting
	MethodologyColumbia  = "columbia"  // Partisan phrase frequency
	MethodologyAllSides  = "allsides"  // Multi-dimensional indicators
	MethodologySentiment = "sentiment" // Polarity/subjectivity proxy
)

// MethodologyScore is one sub-scorer's directional output before weighting.
// Immutable once produced.
type MethodologyScore struct {
	Name   string                 `json:"name"`
	Score  float64                `json:"score"` // Directional, in [-1, +1], rounded to 3 decimals
	Detail map[string]interface{} `json:"detail,omitempty"` // Transparent scoring data (counts, formulas)
}

// Analysis represents the complete biascope analysis report.
// It is the terminal artifact returned to the caller and is never mutated
// after the combiner builds it.
type Analysis struct {
	Subject    string    `json:"subject"`              // Title, or a subject derived from the URL
	SourceURL  string    `json:"source_url,omitempty"` // Informational only, never scored
	AnalyzedAt time.Time `json:"analyzed_at"`

	BiasScore float64 `json:"bias_score"` // Weighted composite in [-1.000, +1.000], 3 decimals
	BiasLabel string  `json:"bias_label"` // One of the seven band names

	Methodologies map[string]MethodologyScore `json:"methodology_scores"`

	Principles Principles `json:"principles"`

	LLM *Explanation `json:"llm,omitempty"` // Optional narration (separate, never affects scores)
}

// Principles documents the scoring guarantees applied to every analysis
type Principles struct {
	Deterministic bool `json:"deterministic"` // Same input always yields the same score
	Transparent   bool `json:"transparent"`   // All scoring explainable from detail data
	Symmetric     bool `json:"symmetric"`     // Left and right treated by identical rules
}

// DefaultPrinciples returns the standard biascope principles
func DefaultPrinciples() Principles {
	return Principles{
		Deterministic: true,
		Transparent:   true,
		Symmetric:     true,
	}
}

// Explanation contains an optional LLM-generated narration of a finished
// analysis. CRITICAL: it is produced after scoring and never feeds back
// into any score.
type Explanation struct {
	Enabled   bool   `json:"enabled"`
	Provider  string `json:"provider,omitempty"` // openai
	Model     string `json:"model,omitempty"`
	SummaryMD string `json:"summary_md,omitempty"`
	Warning   string `json:"warning,omitempty"` // Set when generation failed
}

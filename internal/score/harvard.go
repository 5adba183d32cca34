package score

import (
	"fmt"
	"math"

	"github.com/openpress/biascope/internal/lexicon"
	"github.com/openpress/biascope/internal/model"
)

// HarvardScorer implements the position/attribution weighting methodology:
// partisan language is scored by where it appears (headline/lead/body) and
// how it is sourced (quoted vs background).
type HarvardScorer struct {
	lex *lexicon.Lexicon
}

// NewHarvardScorer creates the position/attribution scorer
func NewHarvardScorer(lex *lexicon.Lexicon) *HarvardScorer {
	return &HarvardScorer{lex: lex}
}

// Name returns the methodology name
func (s *HarvardScorer) Name() string {
	return model.MethodologyHarvard
}

// Score computes the weighted mean of per-sentence partisan leans.
// Each sentence weighs position_weight × attribution_weight; phrase-free
// sentences contribute zero lean but full weight, so a few hits in a long
// neutral text are not over-amplified.
func (s *HarvardScorer) Score(unit *model.TextUnit) (model.MethodologyScore, error) {
	if unit == nil {
		return model.MethodologyScore{}, fmt.Errorf("harvard: nil text unit")
	}

	var weightedSum, totalWeight float64
	sentencesWithHits := 0

	for _, sent := range unit.Sentences {
		lean := sentenceLean(s.lex, sent.Tokens)
		weight := PositionWeights[sent.Position] * AttributionWeights[sent.Attribution]
		if weight == 0 {
			return model.MethodologyScore{}, fmt.Errorf("harvard: sentence %d has unknown position %q or attribution %q", sent.Index, sent.Position, sent.Attribution)
		}
		if lean != 0 {
			sentencesWithHits++
		}
		weightedSum += lean * weight
		totalWeight += weight
	}

	score := 0.0
	if totalWeight > 0 {
		score = weightedSum / totalWeight
	}

	return model.MethodologyScore{
		Name:  model.MethodologyHarvard,
		Score: Round3(score),
		Detail: map[string]interface{}{
			"sentences":           len(unit.Sentences),
			"sentences_with_hits": sentencesWithHits,
			"total_weight":        totalWeight,
			"formula":             "sum(lean * pos_weight * attr_weight) / sum(pos_weight * attr_weight)",
		},
	}, nil
}

// sentenceLean computes one sentence's raw partisan lean in [-1, +1]
// from strength-weighted dictionary hits.
func sentenceLean(lex *lexicon.Lexicon, tokens []string) float64 {
	var left, right float64
	for _, hit := range lex.Partisan.Scan(tokens) {
		switch hit.Entry.Side {
		case lexicon.SideLeft:
			left += hit.Entry.Weight
		case lexicon.SideRight:
			right += hit.Entry.Weight
		}
	}
	total := left + right
	if total == 0 {
		return 0
	}
	return (right - left) / math.Max(1, total)
}

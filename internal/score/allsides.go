package score

import (
	"fmt"
	"math"

	"github.com/openpress/biascope/internal/lexicon"
	"github.com/openpress/biascope/internal/model"
)

// AllSidesScorer implements the multi-dimensional indicator methodology.
// Three independent indicators each yield a directional sub-score in
// [-1, +1]; a fixed internal weight table combines them. No indicator
// reads another's result.
type AllSidesScorer struct {
	lex *lexicon.Lexicon
}

// NewAllSidesScorer creates the indicator scorer
func NewAllSidesScorer(lex *lexicon.Lexicon) *AllSidesScorer {
	return &AllSidesScorer{lex: lex}
}

// Name returns the methodology name
func (s *AllSidesScorer) Name() string {
	return model.MethodologyAllSides
}

// Score evaluates the fixed indicator set. Indicator magnitudes measure
// intensity; the document-level partisan lean supplies the direction. A
// text with no partisan dictionary hits has no direction, so every
// indicator reads its neutral default of 0.
func (s *AllSidesScorer) Score(unit *model.TextUnit) (model.MethodologyScore, error) {
	if unit == nil {
		return model.MethodologyScore{}, fmt.Errorf("allsides: nil text unit")
	}

	sign := s.documentDirection(unit)

	loaded := sign * s.loadedLanguage(unit)
	opinion := sign * s.opinionMarkers(unit)
	source := sign * s.sourceDiversity(unit)

	score := IndicatorWeightLoadedLanguage*loaded +
		IndicatorWeightOpinionMarkers*opinion +
		IndicatorWeightSourceDiversity*source

	return model.MethodologyScore{
		Name:  model.MethodologyAllSides,
		Score: Round3(score),
		Detail: map[string]interface{}{
			"loaded_language":  Round3(loaded),
			"opinion_markers":  Round3(opinion),
			"source_diversity": Round3(source),
			"direction":        sign,
			"weights": map[string]float64{
				"loaded_language":  IndicatorWeightLoadedLanguage,
				"opinion_markers":  IndicatorWeightOpinionMarkers,
				"source_diversity": IndicatorWeightSourceDiversity,
			},
		},
	}, nil
}

// documentDirection returns -1, 0 or +1 from strength-weighted partisan
// hits over the whole token stream.
func (s *AllSidesScorer) documentDirection(unit *model.TextUnit) float64 {
	var left, right float64
	for _, hit := range s.lex.Partisan.Scan(unit.Tokens) {
		switch hit.Entry.Side {
		case lexicon.SideLeft:
			left += hit.Entry.Weight
		case lexicon.SideRight:
			right += hit.Entry.Weight
		}
	}
	switch {
	case right > left:
		return 1
	case left > right:
		return -1
	default:
		return 0
	}
}

// loadedLanguage measures the per-sentence density of sensational
// markers, capped at 1.
func (s *AllSidesScorer) loadedLanguage(unit *model.TextUnit) float64 {
	count := 0
	for _, tok := range unit.Tokens {
		if s.lex.LoadedLanguage[tok] {
			count++
		}
	}
	return density(count, len(unit.Sentences))
}

// opinionMarkers measures the per-sentence density of opinion-marking
// constructions, capped at 1.
func (s *AllSidesScorer) opinionMarkers(unit *model.TextUnit) float64 {
	count := len(s.lex.OpinionMarkers.Scan(unit.Tokens))
	return density(count, len(unit.Sentences))
}

// sourceDiversity measures sourcing breadth: single-source attribution
// pushes the magnitude up, diverse sourcing pulls it toward 0. No source
// indicators at all maps to the neutral default 0.
func (s *AllSidesScorer) sourceDiversity(unit *model.TextUnit) float64 {
	single := len(s.lex.SingleSource.Scan(unit.Tokens))
	multiple := len(s.lex.MultipleSource.Scan(unit.Tokens))

	total := single + multiple
	if total == 0 {
		return 0
	}
	diversity := float64(multiple) / float64(total)
	return 1 - diversity
}

// density is count per sentence, capped at 1
func density(count, sentences int) float64 {
	if sentences == 0 {
		return 0
	}
	return math.Min(1, float64(count)/float64(sentences))
}

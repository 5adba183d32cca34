package score

import (
	"fmt"
	"math"

	"github.com/openpress/biascope/internal/lexicon"
	"github.com/openpress/biascope/internal/model"
)

// negationWindow is how many preceding tokens a negation word reaches
const negationWindow = 3

// SentimentScorer maps aggregate emotional polarity and subjectivity onto
// the directional scale.
//
// Sign convention (fixed and documented): positive aggregate sentiment
// maps toward the right pole, negative toward the left pole, via the
// linear transform score = polarity × subjectivity × 0.5. Polarity is a
// weak proxy for political direction, which is why this methodology
// carries the smallest composite weight.
type SentimentScorer struct {
	lex *lexicon.Lexicon
}

// NewSentimentScorer creates the sentiment scorer
func NewSentimentScorer(lex *lexicon.Lexicon) *SentimentScorer {
	return &SentimentScorer{lex: lex}
}

// Name returns the methodology name
func (s *SentimentScorer) Name() string {
	return model.MethodologySentiment
}

// Score computes lexicon-based polarity in [-1, +1] (negations within a
// 3-token window flip polar words) and subjectivity in [0, 1] (fraction
// of tokens carrying any polar or subjective marker), then applies the
// documented transform.
func (s *SentimentScorer) Score(unit *model.TextUnit) (model.MethodologyScore, error) {
	if unit == nil {
		return model.MethodologyScore{}, fmt.Errorf("sentiment: nil text unit")
	}

	positive, negative, subjective := 0, 0, 0

	for _, sent := range unit.Sentences {
		for i, tok := range sent.Tokens {
			polar := 0
			switch {
			case s.lex.Positive[tok]:
				polar = 1
			case s.lex.Negative[tok]:
				polar = -1
			}

			if polar != 0 {
				if s.negated(sent.Tokens, i) {
					polar = -polar
				}
				if polar > 0 {
					positive++
				} else {
					negative++
				}
				continue
			}

			if s.lex.Subjective[tok] {
				subjective++
			}
		}
	}

	totalTokens := len(unit.Tokens)
	polarTokens := positive + negative

	polarity := float64(positive-negative) / math.Max(1, float64(polarTokens))
	subjectivity := float64(polarTokens+subjective) / math.Max(1, float64(totalTokens))

	score := polarity * subjectivity * 0.5

	return model.MethodologyScore{
		Name:  model.MethodologySentiment,
		Score: Round3(score),
		Detail: map[string]interface{}{
			"polarity":     Round3(polarity),
			"subjectivity": Round3(subjectivity),
			"positive":     positive,
			"negative":     negative,
			"subjective":   subjective,
			"formula":      "polarity * subjectivity * 0.5 (positive sentiment maps right)",
		},
	}, nil
}

// negated reports whether any of the few tokens before position i is a
// negation word.
func (s *SentimentScorer) negated(tokens []string, i int) bool {
	for j := i - 1; j >= 0 && j >= i-negationWindow; j-- {
		if s.lex.Negations[tokens[j]] {
			return true
		}
	}
	return false
}

package score

import (
	"fmt"
	"math"

	"github.com/openpress/biascope/internal/lexicon"
	"github.com/openpress/biascope/internal/model"
)

// ColumbiaScorer implements the partisan phrase frequency methodology:
// a pure count ratio over dictionary hits, with no position weighting
// (that dimension belongs to the harvard scorer).
type ColumbiaScorer struct {
	lex *lexicon.Lexicon
}

// NewColumbiaScorer creates the partisan phrase scorer
func NewColumbiaScorer(lex *lexicon.Lexicon) *ColumbiaScorer {
	return &ColumbiaScorer{lex: lex}
}

// Name returns the methodology name
func (s *ColumbiaScorer) Name() string {
	return model.MethodologyColumbia
}

// Score counts left- and right-tagged phrase occurrences over the full
// token stream (longest-match, non-overlapping) and reports
// (right - left) / max(1, right + left). Ties and zero hits yield 0.000;
// a text with hits on only one side saturates at ±1.000.
func (s *ColumbiaScorer) Score(unit *model.TextUnit) (model.MethodologyScore, error) {
	if unit == nil {
		return model.MethodologyScore{}, fmt.Errorf("columbia: nil text unit")
	}

	leftCount, rightCount := 0, 0
	phraseCounts := make(map[string]int)

	for _, hit := range s.lex.Partisan.Scan(unit.Tokens) {
		phraseCounts[hit.Entry.Phrase]++
		switch hit.Entry.Side {
		case lexicon.SideLeft:
			leftCount++
		case lexicon.SideRight:
			rightCount++
		}
	}

	total := leftCount + rightCount
	score := float64(rightCount-leftCount) / math.Max(1, float64(total))

	direction := "neutral"
	if score < 0 {
		direction = "left"
	} else if score > 0 {
		direction = "right"
	}

	return model.MethodologyScore{
		Name:  model.MethodologyColumbia,
		Score: Round3(score),
		Detail: map[string]interface{}{
			"left_count":    leftCount,
			"right_count":   rightCount,
			"total_matches": total,
			"net_direction": direction,
			"phrases":       phraseCounts,
			"formula":       "(right_count - left_count) / max(1, right_count + left_count)",
		},
	}, nil
}

package score

import (
	"fmt"
	"math"

	"github.com/openpress/biascope/internal/model"
)

// Combiner folds exactly four methodology scores into the composite bias
// score. It is a pure function of its inputs: the same four scores always
// produce the same composite, whether the scorers ran sequentially or in
// parallel.
type Combiner struct{}

// NewCombiner creates a combiner using the central weight tables
func NewCombiner() *Combiner {
	return &Combiner{}
}

// Combine applies the fixed methodology weights, clamps to [-1, +1],
// rounds to 3 decimals (half away from zero) and assigns the band label.
// A missing, duplicated, unknown or out-of-range methodology score is an
// error — silently defaulting a scorer to 0.000 would mask systematic
// scorer bugs.
func (c *Combiner) Combine(scores []model.MethodologyScore) (float64, string, error) {
	if len(scores) != len(MethodologyWeights) {
		return 0, "", fmt.Errorf("combine: need exactly %d methodology scores, got %d", len(MethodologyWeights), len(scores))
	}

	seen := make(map[string]bool, len(scores))
	weighted := 0.0

	for _, ms := range scores {
		weight, ok := MethodologyWeights[ms.Name]
		if !ok {
			return 0, "", fmt.Errorf("combine: unknown methodology %q", ms.Name)
		}
		if seen[ms.Name] {
			return 0, "", fmt.Errorf("combine: duplicate methodology %q", ms.Name)
		}
		seen[ms.Name] = true

		if math.IsNaN(ms.Score) || ms.Score < -1 || ms.Score > 1 {
			return 0, "", fmt.Errorf("combine: methodology %q score %v out of range [-1, +1]", ms.Name, ms.Score)
		}

		weighted += weight * ms.Score
	}

	final := Round3(Clamp(weighted, -1, 1))
	return final, BandLabel(final), nil
}

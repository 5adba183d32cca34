package score

import (
	"math"

	"github.com/openpress/biascope/internal/model"
)

// Central weight and band tables. Recalibration happens here, never
// inside scorer logic.

// MethodologyWeights are the fixed composite weights. They sum to 1.00.
var MethodologyWeights = map[string]float64{
	model.MethodologyHarvard:   0.40,
	model.MethodologyColumbia:  0.35,
	model.MethodologyAllSides:  0.20,
	model.MethodologySentiment: 0.05,
}

// PositionWeights rank structural location: headline > lead > body (3:2:1)
var PositionWeights = map[model.Position]float64{
	model.PositionHeadline: 3.0,
	model.PositionLead:     2.0,
	model.PositionBody:     1.0,
}

// AttributionWeights rank sourcing: direct quotes are taken as more
// diagnostic of the outlet's chosen framing than background narration (2:1)
var AttributionWeights = map[model.Attribution]float64{
	model.AttributionQuoted:       2.0,
	model.AttributionUnattributed: 1.0,
}

// Indicator weights inside the AllSides scorer. They sum to 1.00.
const (
	IndicatorWeightLoadedLanguage  = 0.27
	IndicatorWeightOpinionMarkers  = 0.41
	IndicatorWeightSourceDiversity = 0.32
)

// BandDef is one symmetric band boundary. A rounded score whose magnitude
// reaches Threshold belongs to this band; ties at a boundary always fall
// to the higher-magnitude band.
type BandDef struct {
	Threshold float64
	Left      string
	Right     string
}

// Bands is the ordered band table, scanned from the extremes inward
var Bands = []BandDef{
	{Threshold: 0.600, Left: "Very High Left Bias", Right: "Very High Right Bias"},
	{Threshold: 0.300, Left: "High Left Bias", Right: "High Right Bias"},
	{Threshold: 0.100, Left: "Low Left Bias", Right: "Low Right Bias"},
}

// LabelMinimal is the center band covering [-0.099, +0.099]
const LabelMinimal = "Minimal Bias"

// BandLabel maps a rounded composite score to its band name
func BandLabel(score float64) string {
	for _, b := range Bands {
		if score <= -b.Threshold {
			return b.Left
		}
		if score >= b.Threshold {
			return b.Right
		}
	}
	return LabelMinimal
}

// Round3 rounds to exactly 3 decimal places using round-half-away-from-
// zero (math.Round semantics). Half-away is sign-symmetric, so left and
// right scores round by identical rules at band boundaries.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}

// Clamp bounds x to [lo, hi]
func Clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}

package score

import (
	"strings"
	"testing"

	"github.com/openpress/biascope/internal/lexicon"
	"github.com/openpress/biascope/internal/model"
	"github.com/openpress/biascope/internal/segment"
)

// newTestLexicon builds a small fixed dictionary shared by the scorer tests
func newTestLexicon() *lexicon.Lexicon {
	addAll := func(m *lexicon.Matcher, side lexicon.Side, weight float64, phrases ...string) {
		for _, p := range phrases {
			m.Add(strings.Fields(p), lexicon.Entry{Phrase: p, Side: side, Weight: weight})
		}
	}

	partisan := lexicon.NewMatcher()
	addAll(partisan, lexicon.SideLeft, lexicon.WeightStrong, "radical agenda")
	addAll(partisan, lexicon.SideLeft, lexicon.WeightModerate, "progressive")
	addAll(partisan, lexicon.SideRight, lexicon.WeightStrong, "woke mob")
	addAll(partisan, lexicon.SideRight, lexicon.WeightModerate, "traditional values")

	opinion := lexicon.NewMatcher()
	addAll(opinion, "", 1.0, "clearly", "obviously")
	single := lexicon.NewMatcher()
	addAll(single, "", 1.0, "according to")
	multiple := lexicon.NewMatcher()
	addAll(multiple, "", 1.0, "sources say")

	set := func(words ...string) map[string]bool {
		m := make(map[string]bool, len(words))
		for _, w := range words {
			m[w] = true
		}
		return m
	}

	return &lexicon.Lexicon{
		Partisan:       partisan,
		LoadedLanguage: set("outrageous", "shocking"),
		OpinionMarkers: opinion,
		SingleSource:   single,
		MultipleSource: multiple,
		Positive:       set("good", "great"),
		Negative:       set("bad", "terrible"),
		Subjective:     set("apparently"),
		Negations:      set("not"),
	}
}

// unitFor segments content the way the pipeline does
func unitFor(content, title string) *model.TextUnit {
	return segment.NewSegmenter().Segment(content, title)
}

func TestBandLabel(t *testing.T) {
	tests := []struct {
		score float64
		want  string
	}{
		{-1.000, "Very High Left Bias"},
		{-0.600, "Very High Left Bias"},
		{-0.599, "High Left Bias"},
		{-0.300, "High Left Bias"},
		{-0.299, "Low Left Bias"},
		{-0.100, "Low Left Bias"},
		{-0.099, "Minimal Bias"},
		{0.000, "Minimal Bias"},
		{0.099, "Minimal Bias"},
		{0.100, "Low Right Bias"},
		{0.299, "Low Right Bias"},
		{0.300, "High Right Bias"},
		{0.599, "High Right Bias"},
		{0.600, "Very High Right Bias"},
		{1.000, "Very High Right Bias"},
	}

	for _, tt := range tests {
		if got := BandLabel(tt.score); got != tt.want {
			t.Errorf("BandLabel(%+.3f) = %q, want %q", tt.score, got, tt.want)
		}
	}
}

func TestRound3(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{0.12349, 0.123},
		{0.12351, 0.124},
		{-0.12349, -0.123},
		{-0.12351, -0.124},
		{0.125, 0.125},
		{0, 0},
		{1, 1},
	}

	for _, tt := range tests {
		if got := Round3(tt.in); got != tt.want {
			t.Errorf("Round3(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRound3_SignSymmetric(t *testing.T) {
	for _, x := range []float64{0.0004, 0.1005, 0.2996, 0.5999, 0.73217} {
		if Round3(x) != -Round3(-x) {
			t.Errorf("Round3 asymmetric at %v: %v vs %v", x, Round3(x), Round3(-x))
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(1.5, -1, 1); got != 1 {
		t.Errorf("Clamp(1.5) = %v", got)
	}
	if got := Clamp(-1.5, -1, 1); got != -1 {
		t.Errorf("Clamp(-1.5) = %v", got)
	}
	if got := Clamp(0.3, -1, 1); got != 0.3 {
		t.Errorf("Clamp(0.3) = %v", got)
	}
}

func TestMethodologyWeightsSumToOne(t *testing.T) {
	sum := 0.0
	for _, w := range MethodologyWeights {
		sum += w
	}
	if Round3(sum) != 1.0 {
		t.Errorf("methodology weights sum to %v", sum)
	}

	indicators := IndicatorWeightLoadedLanguage + IndicatorWeightOpinionMarkers + IndicatorWeightSourceDiversity
	if Round3(indicators) != 1.0 {
		t.Errorf("indicator weights sum to %v", indicators)
	}
}

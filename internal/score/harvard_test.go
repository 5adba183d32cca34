package score

import (
	"math"
	"testing"
)

func TestHarvard_Neutral(t *testing.T) {
	s := NewHarvardScorer(newTestLexicon())

	ms, err := s.Score(unitFor("The vote happened on Tuesday. Lawmakers met again.", "Vote recap"))
	if err != nil {
		t.Fatalf("Score failed: %v", err)
	}
	if ms.Score != 0 {
		t.Errorf("neutral text scored %v", ms.Score)
	}
	if ms.Detail["sentences_with_hits"] != 0 {
		t.Errorf("sentences_with_hits = %v", ms.Detail["sentences_with_hits"])
	}
}

func TestHarvard_HeadlinePlacementAmplifies(t *testing.T) {
	s := NewHarvardScorer(newTestLexicon())

	body := "The vote happened. Lawmakers met. The day ended. More debate followed."

	inHeadline, err := s.Score(unitFor(body, "Woke mob strikes"))
	if err != nil {
		t.Fatal(err)
	}

	inBody, err := s.Score(unitFor("The vote happened. Lawmakers met. The day ended. The woke mob strikes.", "Vote recap"))
	if err != nil {
		t.Fatal(err)
	}

	if inHeadline.Score <= 0 || inBody.Score <= 0 {
		t.Fatalf("expected positive scores, got %v and %v", inHeadline.Score, inBody.Score)
	}
	if inHeadline.Score <= inBody.Score {
		t.Errorf("headline placement %v should outweigh body placement %v", inHeadline.Score, inBody.Score)
	}
}

func TestHarvard_QuotedAttributionAmplifies(t *testing.T) {
	s := NewHarvardScorer(newTestLexicon())

	quoted, err := s.Score(unitFor(`"The woke mob is here," she said. The vote happened. Lawmakers met. The day ended.`, ""))
	if err != nil {
		t.Fatal(err)
	}

	plain, err := s.Score(unitFor("The woke mob is here. The vote happened. Lawmakers met. The day ended.", ""))
	if err != nil {
		t.Fatal(err)
	}

	if quoted.Score <= plain.Score {
		t.Errorf("quoted placement %v should outweigh unattributed %v", quoted.Score, plain.Score)
	}
}

func TestHarvard_BalancedSides(t *testing.T) {
	s := NewHarvardScorer(newTestLexicon())

	// Symmetric placements with equal strengths cancel out
	ms, err := s.Score(unitFor("The woke mob gathered. The radical agenda advanced.", ""))
	if err != nil {
		t.Fatal(err)
	}
	if ms.Score != 0 {
		t.Errorf("balanced text scored %v", ms.Score)
	}
}

func TestHarvard_Direction(t *testing.T) {
	s := NewHarvardScorer(newTestLexicon())

	left, err := s.Score(unitFor("The radical agenda advanced today.", ""))
	if err != nil {
		t.Fatal(err)
	}
	right, err := s.Score(unitFor("The woke mob advanced today.", ""))
	if err != nil {
		t.Fatal(err)
	}

	if left.Score >= 0 {
		t.Errorf("left phrase scored %v, want negative", left.Score)
	}
	if right.Score <= 0 {
		t.Errorf("right phrase scored %v, want positive", right.Score)
	}
	if math.Abs(left.Score+right.Score) > 1e-9 {
		t.Errorf("mirror texts not symmetric: %v vs %v", left.Score, right.Score)
	}
}

func TestHarvard_EmptyUnit(t *testing.T) {
	s := NewHarvardScorer(newTestLexicon())

	ms, err := s.Score(unitFor("", ""))
	if err != nil {
		t.Fatalf("empty unit should not error: %v", err)
	}
	if ms.Score != 0 {
		t.Errorf("empty unit scored %v", ms.Score)
	}
}

func TestHarvard_NilUnit(t *testing.T) {
	if _, err := NewHarvardScorer(newTestLexicon()).Score(nil); err == nil {
		t.Error("expected error for nil unit")
	}
}

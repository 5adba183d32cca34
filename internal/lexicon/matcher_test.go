package lexicon

import (
	"strings"
	"testing"
)

func newTestMatcher(phrases ...string) *Matcher {
	m := NewMatcher()
	for _, p := range phrases {
		m.Add(strings.Fields(p), Entry{Phrase: p, Side: SideLeft, Weight: 1.0})
	}
	return m
}

func TestMatcher_Add(t *testing.T) {
	m := newTestMatcher("radical left", "socialist")
	if m.Len() != 2 {
		t.Errorf("expected 2 phrases, got %d", m.Len())
	}

	// Duplicate adds keep the first entry and do not grow the matcher
	m.Add([]string{"socialist"}, Entry{Phrase: "socialist", Side: SideRight, Weight: 2.0})
	if m.Len() != 2 {
		t.Errorf("expected 2 phrases after duplicate add, got %d", m.Len())
	}

	hits := m.Scan([]string{"socialist"})
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Entry.Side != SideLeft {
		t.Errorf("duplicate add overwrote the original entry")
	}

	// Empty token slice is ignored
	m.Add(nil, Entry{Phrase: ""})
	if m.Len() != 2 {
		t.Errorf("empty phrase changed matcher size")
	}
}

func TestMatcher_Scan_LongestMatch(t *testing.T) {
	m := newTestMatcher("radical", "radical left", "radical left agenda")

	hits := m.Scan([]string{"the", "radical", "left", "agenda", "grows"})
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Entry.Phrase != "radical left agenda" {
		t.Errorf("expected longest match, got %q", hits[0].Entry.Phrase)
	}
	if hits[0].Start != 1 || hits[0].Len != 3 {
		t.Errorf("hit position = (%d, %d), want (1, 3)", hits[0].Start, hits[0].Len)
	}
}

func TestMatcher_Scan_NonOverlapping(t *testing.T) {
	m := newTestMatcher("radical left", "left wing")

	// "left" is consumed by "radical left", so "left wing" cannot match
	hits := m.Scan([]string{"radical", "left", "wing"})
	if len(hits) != 1 {
		t.Fatalf("expected 1 hit, got %d", len(hits))
	}
	if hits[0].Entry.Phrase != "radical left" {
		t.Errorf("got %q", hits[0].Entry.Phrase)
	}
}

func TestMatcher_Scan_MultipleHits(t *testing.T) {
	m := newTestMatcher("socialist", "woke mob")

	hits := m.Scan([]string{"the", "socialist", "and", "the", "woke", "mob"})
	if len(hits) != 2 {
		t.Fatalf("expected 2 hits, got %d", len(hits))
	}
	if hits[0].Entry.Phrase != "socialist" || hits[1].Entry.Phrase != "woke mob" {
		t.Errorf("unexpected hits: %v", hits)
	}
}

func TestMatcher_Scan_PartialPrefixNoMatch(t *testing.T) {
	m := newTestMatcher("radical left agenda")

	// A prefix of a phrase with no shorter entry must not match
	if hits := m.Scan([]string{"radical", "left", "turn"}); len(hits) != 0 {
		t.Errorf("expected no hits, got %v", hits)
	}
}

func TestMatcher_Scan_Empty(t *testing.T) {
	m := newTestMatcher("socialist")

	if hits := m.Scan(nil); len(hits) != 0 {
		t.Errorf("expected no hits on empty stream, got %v", hits)
	}
	if hits := NewMatcher().Scan([]string{"anything"}); len(hits) != 0 {
		t.Errorf("expected no hits from empty matcher, got %v", hits)
	}
}

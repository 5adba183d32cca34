package segment

import (
	"strings"
	"unicode"

	"github.com/openpress/biascope/internal/model"
)

// Segmenter splits raw text into a tagged TextUnit.
// It is the leaf dependency of every scorer: all position and attribution
// classes are decided here, once, and the resulting unit is read-only.
type Segmenter struct {
	leadSentences  int
	reportingVerbs map[string]bool
}

// DefaultLeadSentences is how many opening body sentences are tagged as lead
const DefaultLeadSentences = 3

// NewSegmenter creates a segmenter with default tagging rules
func NewSegmenter() *Segmenter {
	verbs := []string{
		"said", "says", "say", "stated", "states", "declared", "declares",
		"claimed", "claims", "told", "added", "noted", "argued", "warned",
		"announced", "insisted", "according",
	}
	m := make(map[string]bool, len(verbs))
	for _, v := range verbs {
		m[v] = true
	}
	return &Segmenter{
		leadSentences:  DefaultLeadSentences,
		reportingVerbs: m,
	}
}

// Segment builds a TextUnit from raw content and an optional title.
// Whitespace-only input yields a unit with zero sentences, not an error.
func (s *Segmenter) Segment(content, title string) *model.TextUnit {
	unit := &model.TextUnit{}
	index := 0

	if t := strings.TrimSpace(title); t != "" {
		unit.Sentences = append(unit.Sentences, s.tag(t, model.PositionHeadline, index))
		index++
	}

	for i, raw := range SplitSentences(content) {
		pos := model.PositionBody
		if i < s.leadSentences {
			pos = model.PositionLead
		}
		unit.Sentences = append(unit.Sentences, s.tag(raw, pos, index))
		index++
	}

	for _, sent := range unit.Sentences {
		unit.Tokens = append(unit.Tokens, sent.Tokens...)
	}

	return unit
}

// tag builds one tagged sentence
func (s *Segmenter) tag(text string, pos model.Position, index int) model.Sentence {
	tokens := Tokenize(text)
	return model.Sentence{
		Text:        text,
		Tokens:      tokens,
		Position:    pos,
		Attribution: s.classifyAttribution(text, tokens),
		Index:       index,
	}
}

// classifyAttribution tags a sentence as quoted when it contains
// quotation-mark-delimited text with a reporting verb nearby.
// Everything else is unattributed background narration.
func (s *Segmenter) classifyAttribution(text string, tokens []string) model.Attribution {
	if !containsQuote(text) {
		return model.AttributionUnattributed
	}
	for _, tok := range tokens {
		if s.reportingVerbs[tok] {
			return model.AttributionQuoted
		}
	}
	return model.AttributionUnattributed
}

// containsQuote reports whether the text carries quotation marks
func containsQuote(text string) bool {
	return strings.ContainsAny(text, "\"“”«»")
}

// SplitSentences splits text into sentences on terminator punctuation,
// looking ahead one character so decimals and tight abbreviations do not
// split mid-token.
func SplitSentences(text string) []string {
	text = strings.ReplaceAll(text, "\n", " ")

	var sentences []string
	var current strings.Builder

	flush := func() {
		if sentence := strings.TrimSpace(current.String()); sentence != "" {
			sentences = append(sentences, sentence)
		}
		current.Reset()
	}

	runes := []rune(text)
	for i, r := range runes {
		current.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		// Terminator counts only when followed by whitespace or end of
		// text; "3.5" and "U.S.A." keep scanning.
		if i+1 >= len(runes) || runes[i+1] == ' ' || runes[i+1] == '\t' {
			flush()
		}
	}
	flush()

	return sentences
}

// Tokenize lowercases text and splits it into word tokens. Apostrophes
// and hyphens survive inside a word ("don't", "people-powered") so the
// lexicon and the token stream agree on word boundaries.
func Tokenize(text string) []string {
	var tokens []string
	var current []rune

	flush := func() {
		// Trim joiners that ended up at the edges of a token
		for len(current) > 0 && isJoiner(current[len(current)-1]) {
			current = current[:len(current)-1]
		}
		for len(current) > 0 && isJoiner(current[0]) {
			current = current[1:]
		}
		if len(current) > 0 {
			tokens = append(tokens, string(current))
		}
		current = current[:0]
	}

	for _, r := range strings.ToLower(text) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			current = append(current, r)
		case isJoiner(r) && len(current) > 0:
			if r == '’' {
				r = '\'' // Normalize curly apostrophes
			}
			current = append(current, r)
		default:
			flush()
		}
	}
	flush()

	return tokens
}

// isJoiner reports whether a rune may join word parts
func isJoiner(r rune) bool {
	return r == '\'' || r == '’' || r == '-'
}

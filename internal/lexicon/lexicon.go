package lexicon

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/openpress/biascope/internal/segment"
	"gopkg.in/yaml.v3"
)

//go:embed data/lexicon.yaml
var defaultLexiconYAML []byte

// Phrase strength weights. Strong phrases are twice as diagnostic as
// moderate ones wherever strength applies.
const (
	WeightStrong   = 2.0
	WeightModerate = 1.0
)

// Lexicon holds every process-wide dictionary. It is loaded once at
// startup and read-only afterwards; no lock is needed for reads.
type Lexicon struct {
	// Partisan is the combined left/right phrase matcher
	Partisan *Matcher

	// Indicator marker sets for the AllSides methodology
	LoadedLanguage map[string]bool
	OpinionMarkers *Matcher
	SingleSource   *Matcher
	MultipleSource *Matcher

	// Sentiment word lists
	Positive   map[string]bool
	Negative   map[string]bool
	Subjective map[string]bool
	Negations  map[string]bool
}

// fileLexicon is the YAML schema for lexicon files
type fileLexicon struct {
	Partisan struct {
		Left  phraseTiers `yaml:"left"`
		Right phraseTiers `yaml:"right"`
	} `yaml:"partisan"`
	Indicators struct {
		LoadedLanguage []string `yaml:"loaded_language"`
		OpinionMarkers []string `yaml:"opinion_markers"`
		SingleSource   []string `yaml:"single_source"`
		MultipleSource []string `yaml:"multiple_source"`
	} `yaml:"indicators"`
	Sentiment struct {
		Positive   []string `yaml:"positive"`
		Negative   []string `yaml:"negative"`
		Subjective []string `yaml:"subjective"`
		Negations  []string `yaml:"negations"`
	} `yaml:"sentiment"`
}

type phraseTiers struct {
	Strong   []string `yaml:"strong"`
	Moderate []string `yaml:"moderate"`
}

// Default loads the embedded lexicon. An error here means the binary
// shipped with broken data and the process must not serve analyses.
func Default() (*Lexicon, error) {
	return parse(defaultLexiconYAML)
}

// LoadFile loads a lexicon from a user-supplied YAML file
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}
	lex, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("lexicon %s: %w", path, err)
	}
	return lex, nil
}

// Load returns the lexicon from path, or the embedded default when path
// is empty.
func Load(path string) (*Lexicon, error) {
	if path == "" {
		return Default()
	}
	return LoadFile(path)
}

// parse decodes and validates a lexicon file
func parse(data []byte) (*Lexicon, error) {
	var file fileLexicon
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	if err := validate(&file); err != nil {
		return nil, err
	}

	lex := &Lexicon{
		Partisan:       NewMatcher(),
		LoadedLanguage: wordSet(file.Indicators.LoadedLanguage),
		OpinionMarkers: markerMatcher(file.Indicators.OpinionMarkers),
		SingleSource:   markerMatcher(file.Indicators.SingleSource),
		MultipleSource: markerMatcher(file.Indicators.MultipleSource),
		Positive:       wordSet(file.Sentiment.Positive),
		Negative:       wordSet(file.Sentiment.Negative),
		Subjective:     wordSet(file.Sentiment.Subjective),
		Negations:      wordSet(file.Sentiment.Negations),
	}

	addPartisan(lex.Partisan, file.Partisan.Left.Strong, SideLeft, WeightStrong)
	addPartisan(lex.Partisan, file.Partisan.Left.Moderate, SideLeft, WeightModerate)
	addPartisan(lex.Partisan, file.Partisan.Right.Strong, SideRight, WeightStrong)
	addPartisan(lex.Partisan, file.Partisan.Right.Moderate, SideRight, WeightModerate)

	return lex, nil
}

// validate enforces the dictionary invariants: non-empty sets and
// left/right disjointness. Phrases of different lengths may overlap
// freely since scanning is longest-match.
func validate(file *fileLexicon) error {
	left := append(append([]string{}, file.Partisan.Left.Strong...), file.Partisan.Left.Moderate...)
	right := append(append([]string{}, file.Partisan.Right.Strong...), file.Partisan.Right.Moderate...)

	if len(left) == 0 || len(right) == 0 {
		return fmt.Errorf("partisan phrase sets must be non-empty (left=%d, right=%d)", len(left), len(right))
	}

	leftSet := make(map[string]bool, len(left))
	for _, p := range left {
		leftSet[normalize(p)] = true
	}
	for _, p := range right {
		if leftSet[normalize(p)] {
			return fmt.Errorf("phrase %q is tagged both left and right", p)
		}
	}

	if len(file.Sentiment.Positive) == 0 || len(file.Sentiment.Negative) == 0 {
		return fmt.Errorf("sentiment word lists must be non-empty")
	}
	if len(file.Indicators.OpinionMarkers) == 0 || len(file.Indicators.LoadedLanguage) == 0 {
		return fmt.Errorf("indicator marker lists must be non-empty")
	}

	return nil
}

// addPartisan inserts one tier of phrases into the partisan matcher
func addPartisan(m *Matcher, phrases []string, side Side, weight float64) {
	for _, p := range phrases {
		norm := normalize(p)
		m.Add(segment.Tokenize(norm), Entry{Phrase: norm, Side: side, Weight: weight})
	}
}

// markerMatcher builds a matcher for direction-free marker phrases
func markerMatcher(phrases []string) *Matcher {
	m := NewMatcher()
	for _, p := range phrases {
		norm := normalize(p)
		m.Add(segment.Tokenize(norm), Entry{Phrase: norm, Weight: 1.0})
	}
	return m
}

// wordSet builds a lookup set of single lowercase tokens
func wordSet(words []string) map[string]bool {
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[normalize(w)] = true
	}
	return set
}

// normalize lowercases and collapses surrounding whitespace
func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

package model

// Position classifies where a sentence sits in the article structure
type Position string

const (
	PositionHeadline Position = "headline" // The title line, when one was supplied
	PositionLead     Position = "lead"     // Opening sentences of the body
	PositionBody     Position = "body"     // Everything after the lead
)

// Attribution classifies whether a sentence carries attributed speech
type Attribution string

const (
	AttributionQuoted       Attribution = "quoted"       // Quotation marks plus a reporting verb
	AttributionUnattributed Attribution = "unattributed" // Background narration
)

// Sentence is one segmented sentence with its structural tags.
// Every sentence has exactly one Position and exactly one Attribution.
type Sentence struct {
	Text        string      `json:"text"`
	Tokens      []string    `json:"-"` // Lowercase word tokens, in order
	Position    Position    `json:"position"`
	Attribution Attribution `json:"attribution"`
	Index       int         `json:"index"` // Sentence index in source (0-based, headline = 0)
}

// TextUnit is the immutable segmented form of one submission.
// It is built once by the segmenter and shared read-only by all scorers.
type TextUnit struct {
	Sentences []Sentence `json:"sentences"`
	Tokens    []string   `json:"-"` // All tokens flattened, headline first
}

// Empty reports whether the unit contains no sentences.
// Empty units score neutral (0.000) in every methodology.
func (u *TextUnit) Empty() bool {
	return len(u.Sentences) == 0
}

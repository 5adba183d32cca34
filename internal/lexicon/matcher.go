package lexicon

// Side is the partisan direction a phrase is tagged with
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// Entry is one dictionary phrase with its direction and strength weight
type Entry struct {
	Phrase string  // Original phrase, lowercase, space-separated
	Side   Side
	Weight float64 // 2.0 for strong phrases, 1.0 for moderate
}

// Hit is one non-overlapping phrase match inside a token stream
type Hit struct {
	Entry Entry
	Start int // Token index where the match begins
	Len   int // Match length in tokens
}

type trieNode struct {
	children map[string]*trieNode
	entry    *Entry // Non-nil when a phrase ends at this node
}

// Matcher performs deterministic longest-match scanning of multi-word
// phrases over a token stream. Phrases are matched as contiguous token
// sequences; the scanner advances past a match so overlapping hits are
// never double-counted.
type Matcher struct {
	root *trieNode
	size int
}

// NewMatcher creates an empty phrase matcher
func NewMatcher() *Matcher {
	return &Matcher{root: &trieNode{children: make(map[string]*trieNode)}}
}

// Add inserts a phrase given as its token sequence.
// A phrase added twice keeps the first entry.
func (m *Matcher) Add(tokens []string, entry Entry) {
	if len(tokens) == 0 {
		return
	}
	node := m.root
	for _, tok := range tokens {
		child, ok := node.children[tok]
		if !ok {
			child = &trieNode{children: make(map[string]*trieNode)}
			node.children[tok] = child
		}
		node = child
	}
	if node.entry == nil {
		e := entry
		node.entry = &e
		m.size++
	}
}

// Len returns the number of distinct phrases in the matcher
func (m *Matcher) Len() int {
	return m.size
}

// match returns the longest phrase starting at tokens[start], if any
func (m *Matcher) match(tokens []string, start int) (Entry, int, bool) {
	node := m.root
	var best *Entry
	bestLen := 0

	for i := start; i < len(tokens); i++ {
		child, ok := node.children[tokens[i]]
		if !ok {
			break
		}
		node = child
		if node.entry != nil {
			best = node.entry
			bestLen = i - start + 1
		}
	}

	if best == nil {
		return Entry{}, 0, false
	}
	return *best, bestLen, true
}

// Scan walks the token stream left to right collecting longest,
// non-overlapping matches.
func (m *Matcher) Scan(tokens []string) []Hit {
	var hits []Hit
	for i := 0; i < len(tokens); {
		entry, n, ok := m.match(tokens, i)
		if !ok {
			i++
			continue
		}
		hits = append(hits, Hit{Entry: entry, Start: i, Len: n})
		i += n
	}
	return hits
}

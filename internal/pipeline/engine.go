package pipeline

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/openpress/biascope/internal/lexicon"
	"github.com/openpress/biascope/internal/model"
	"github.com/openpress/biascope/internal/score"
	"github.com/openpress/biascope/internal/segment"
)

// Request is the engine's single entry contract: raw text plus an
// optional title and URL. The URL is informational only and never scored.
type Request struct {
	Content string
	Title   string
	URL     string
}

// Scorer is one methodology scorer. Scorers are independent pure
// functions over an immutable TextUnit; none reads another's output.
type Scorer interface {
	Name() string
	Score(unit *model.TextUnit) (model.MethodologyScore, error)
}

// Engine runs the integrated scoring: segment once, fan the unit out to
// the four scorers, join at a barrier, combine. It performs no I/O and
// holds no analysis-to-analysis state.
type Engine struct {
	segmenter *segment.Segmenter
	scorers   []Scorer
	combiner  *score.Combiner
}

// NewEngine builds an engine over a loaded lexicon
func NewEngine(lex *lexicon.Lexicon) *Engine {
	return &Engine{
		segmenter: segment.NewSegmenter(),
		scorers: []Scorer{
			score.NewHarvardScorer(lex),
			score.NewColumbiaScorer(lex),
			score.NewAllSidesScorer(lex),
			score.NewSentimentScorer(lex),
		},
		combiner: score.NewCombiner(),
	}
}

// Analyze scores one submission. Whitespace-only content yields the
// neutral result rather than an error; any scorer failure fails the whole
// analysis rather than defaulting to 0.000.
func (e *Engine) Analyze(ctx context.Context, req Request) (*model.Analysis, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	subject := deriveSubject(req.Title, req.URL)

	if strings.TrimSpace(req.Content) == "" {
		return neutralAnalysis(subject, req.URL), nil
	}

	unit := e.segmenter.Segment(req.Content, req.Title)

	// Fan-out/fan-in: all scorers join before the combiner runs. The
	// combiner is a pure function of the four scores, so sequential and
	// parallel execution are indistinguishable.
	results := make([]model.MethodologyScore, len(e.scorers))
	errs := make([]error, len(e.scorers))

	var wg sync.WaitGroup
	for i, s := range e.scorers {
		wg.Add(1)
		go func(i int, s Scorer) {
			defer wg.Done()
			results[i], errs[i] = s.Score(unit)
		}(i, s)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("scorer %s: %w", e.scorers[i].Name(), err)
		}
	}

	bias, label, err := e.combiner.Combine(results)
	if err != nil {
		return nil, fmt.Errorf("combine: %w", err)
	}

	methodologies := make(map[string]model.MethodologyScore, len(results))
	for _, ms := range results {
		methodologies[ms.Name] = ms
	}

	return &model.Analysis{
		Subject:       subject,
		SourceURL:     req.URL,
		AnalyzedAt:    time.Now().UTC(),
		BiasScore:     bias,
		BiasLabel:     label,
		Methodologies: methodologies,
		Principles:    model.DefaultPrinciples(),
	}, nil
}

// neutralAnalysis is the defined result for empty submissions: scoring
// "nothing" is neutral, not an error.
func neutralAnalysis(subject, sourceURL string) *model.Analysis {
	methodologies := make(map[string]model.MethodologyScore, len(score.MethodologyWeights))
	for name := range score.MethodologyWeights {
		methodologies[name] = model.MethodologyScore{
			Name:   name,
			Score:  0.0,
			Detail: map[string]interface{}{"empty_input": true},
		}
	}
	return &model.Analysis{
		Subject:       subject,
		SourceURL:     sourceURL,
		AnalyzedAt:    time.Now().UTC(),
		BiasScore:     0.0,
		BiasLabel:     score.LabelMinimal,
		Methodologies: methodologies,
		Principles:    model.DefaultPrinciples(),
	}
}

// deriveSubject prefers the title, falling back to a de-slugged last URL
// path segment.
func deriveSubject(title, rawURL string) string {
	if t := strings.TrimSpace(title); t != "" {
		return t
	}
	if rawURL == "" {
		return "(untitled)"
	}

	parsed, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}

	path := strings.Trim(parsed.Path, "/")
	if path == "" {
		return parsed.Host
	}

	segments := strings.Split(path, "/")
	last := segments[len(segments)-1]
	last = strings.ReplaceAll(last, "_", " ")
	last = strings.ReplaceAll(last, "-", " ")
	if idx := strings.LastIndex(last, "."); idx > 0 {
		last = last[:idx]
	}
	return last
}

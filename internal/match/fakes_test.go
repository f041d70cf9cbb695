package match

import (
	"io"
	"log/slog"

	"github.com/searchforge/matchquery/internal/analysis"
	"github.com/searchforge/matchquery/internal/errors"
	"github.com/searchforge/matchquery/internal/query"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// --- Test Fakes ---

// fakeAnalyzer replays a fixed token stream.
type fakeAnalyzer struct {
	tokens []analysis.Token
}

func (f *fakeAnalyzer) Analyze(string) []analysis.Token { return f.tokens }

// panicAnalyzer fails the test if analysis is ever invoked.
type panicAnalyzer struct{}

func (panicAnalyzer) Analyze(string) []analysis.Token {
	panic("analyzer invoked on the exact-match fast path")
}

// tokens builds a stream from (term, increment) pairs with positions
// derived the way a real analyzer reports them.
func tokens(pairs ...tokenSpec) []analysis.Token {
	out := make([]analysis.Token, 0, len(pairs))
	position := -1
	for _, p := range pairs {
		position += p.incr
		out = append(out, analysis.Token{
			Term:              []byte(p.term),
			Position:          position,
			PositionIncrement: p.incr,
		})
	}
	return out
}

type tokenSpec struct {
	term string
	incr int
}

func tok(term string, incr int) tokenSpec { return tokenSpec{term: term, incr: incr} }

// fakeField is a configurable field capability without a term
// dictionary.
type fakeField struct {
	name      string
	tokenized bool
	exact     func(value []byte) (query.Query, error)
	fuzzy     func(term []byte, f Fuzziness, prefixLength, maxExpansions int, transpositions bool) (query.Query, error)
	freqs     map[string]float64
}

func (f *fakeField) Name() string    { return f.name }
func (f *fakeField) Tokenized() bool { return f.tokenized }

func (f *fakeField) ExactTermQuery(value []byte) (query.Query, error) {
	if f.exact != nil {
		return f.exact(value)
	}
	return &query.Term{Field: f.name, Term: value}, nil
}

func (f *fakeField) FuzzyTermQuery(term []byte, fz Fuzziness, prefixLength, maxExpansions int, transpositions bool) (query.Query, error) {
	if f.fuzzy != nil {
		return f.fuzzy(term, fz, prefixLength, maxExpansions, transpositions)
	}
	return &query.Fuzzy{
		Field:          f.name,
		Term:           term,
		Distance:       fz.Distance(string(term)),
		PrefixLength:   prefixLength,
		MaxExpansions:  maxExpansions,
		Transpositions: transpositions,
	}, nil
}

func (f *fakeField) DocFrequencyRatio(term []byte) float64 {
	return f.freqs[string(term)]
}

// fakeDictField adds a term dictionary to fakeField, satisfying
// TermEnumerator. Terms must be pre-sorted.
type fakeDictField struct {
	fakeField
	dict []string
}

func (f *fakeDictField) TermsWithPrefix(prefix []byte, max int) [][]byte {
	var out [][]byte
	for _, t := range f.dict {
		if len(out) >= max {
			break
		}
		if len(t) >= len(prefix) && t[:len(prefix)] == string(prefix) {
			out = append(out, []byte(t))
		}
	}
	return out
}

// failingExact returns an exact factory that always fails.
func failingExact(msg string) func([]byte) (query.Query, error) {
	return func([]byte) (query.Query, error) {
		return nil, errors.FieldError(msg, nil)
	}
}

// newBuilder wires a tokenStreamBuilder for direct shape tests.
func newBuilder(cfg Config, a analysis.Analyzer, f FieldCapability, name string) *tokenStreamBuilder {
	return &tokenStreamBuilder{
		cfg:       cfg,
		analyzer:  a,
		field:     f,
		fieldName: name,
		logger:    discardLogger(),
	}
}

// Package field provides concrete field capability implementations for
// match translation: analyzed text, exact keywords, and the structured
// numeric and date kinds whose values never pass through an analyzer.
//
// All field types are immutable after construction and safe for
// concurrent use.
package field

import (
	"github.com/searchforge/matchquery/internal/match"
	"github.com/searchforge/matchquery/internal/query"
)

// Text is a tokenized full-text field. Optional term statistics feed
// the common-terms optimization and an optional term dictionary feeds
// phrase-prefix expansion.
type Text struct {
	name string
	freq FrequencySource
	dict *TermDict
}

// TextOption configures a Text field.
type TextOption func(*Text)

// WithFrequencies attaches a document-frequency source to the field.
func WithFrequencies(src FrequencySource) TextOption {
	return func(f *Text) {
		f.freq = src
	}
}

// WithTermDict attaches a term dictionary for prefix expansion.
func WithTermDict(dict *TermDict) TextOption {
	return func(f *Text) {
		f.dict = dict
	}
}

// NewText creates a tokenized text field.
func NewText(name string, opts ...TextOption) *Text {
	f := &Text{name: name}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var (
	_ match.FieldCapability = (*Text)(nil)
	_ match.TermEnumerator  = (*Text)(nil)
)

// Name returns the field name.
func (f *Text) Name() string { return f.name }

// Tokenized reports that text field values pass through an analyzer.
func (f *Text) Tokenized() bool { return true }

// ExactTermQuery matches the term bytes verbatim.
func (f *Text) ExactTermQuery(value []byte) (query.Query, error) {
	return &query.Term{Field: f.name, Term: value}, nil
}

// FuzzyTermQuery matches terms within the resolved edit distance.
func (f *Text) FuzzyTermQuery(term []byte, fuzziness match.Fuzziness, prefixLength, maxExpansions int, transpositions bool) (query.Query, error) {
	return &query.Fuzzy{
		Field:          f.name,
		Term:           term,
		Distance:       fuzziness.Distance(string(term)),
		PrefixLength:   prefixLength,
		MaxExpansions:  maxExpansions,
		Transpositions: transpositions,
	}, nil
}

// DocFrequencyRatio looks up the term's document frequency, or 0 when
// the field carries no statistics.
func (f *Text) DocFrequencyRatio(term []byte) float64 {
	if f.freq == nil {
		return 0
	}
	return f.freq.DocFrequencyRatio(term)
}

// TermsWithPrefix enumerates the term dictionary. Without a dictionary
// it returns nil and prefix expansion falls to the executor.
func (f *Text) TermsWithPrefix(prefix []byte, max int) [][]byte {
	if f.dict == nil {
		return nil
	}
	return f.dict.TermsWithPrefix(prefix, max)
}

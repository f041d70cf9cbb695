package field

import (
	"github.com/searchforge/matchquery/internal/match"
	"github.com/searchforge/matchquery/internal/query"
)

// Keyword is an untokenized string field: the whole value is a single
// term, matched byte-for-byte through the exact-match fast path.
type Keyword struct {
	name string
}

// NewKeyword creates an untokenized keyword field.
func NewKeyword(name string) *Keyword {
	return &Keyword{name: name}
}

var _ match.FieldCapability = (*Keyword)(nil)

// Name returns the field name.
func (f *Keyword) Name() string { return f.name }

// Tokenized reports that keyword values bypass analysis.
func (f *Keyword) Tokenized() bool { return false }

// ExactTermQuery matches the raw value as one term.
func (f *Keyword) ExactTermQuery(value []byte) (query.Query, error) {
	return &query.Term{Field: f.name, Term: value}, nil
}

// FuzzyTermQuery matches keyword terms within the resolved edit distance.
func (f *Keyword) FuzzyTermQuery(term []byte, fuzziness match.Fuzziness, prefixLength, maxExpansions int, transpositions bool) (query.Query, error) {
	return &query.Fuzzy{
		Field:          f.name,
		Term:           term,
		Distance:       fuzziness.Distance(string(term)),
		PrefixLength:   prefixLength,
		MaxExpansions:  maxExpansions,
		Transpositions: transpositions,
	}, nil
}

// DocFrequencyRatio reports no statistics for keyword fields.
func (f *Keyword) DocFrequencyRatio(term []byte) float64 { return 0 }

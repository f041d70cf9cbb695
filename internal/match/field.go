package match

import (
	"github.com/searchforge/matchquery/internal/query"
)

// FieldCapability is everything the translator needs from a field
// mapping. Concrete field kinds (text, keyword, numeric, date) implement
// it; the translator depends only on this interface.
//
// Implementations must be safe for concurrent invocation from
// independent translation calls. Document-frequency lookups are assumed
// synchronous and already cached by the implementation.
type FieldCapability interface {
	// Name is the canonical field name used on emitted query nodes.
	Name() string

	// Tokenized reports whether values of the field pass through an
	// analyzer. Untokenized fields take the exact-match fast path.
	Tokenized() bool

	// ExactTermQuery builds a query for the exact value, coercing the
	// bytes into the field's native type when the field is structured.
	// It fails when the bytes do not parse as that type.
	ExactTermQuery(value []byte) (query.Query, error)

	// FuzzyTermQuery builds an approximate-match query for the term.
	// It fails when the field does not support fuzzy matching.
	FuzzyTermQuery(term []byte, fuzziness Fuzziness, prefixLength, maxExpansions int, transpositions bool) (query.Query, error)

	// DocFrequencyRatio returns the fraction of documents containing
	// the term, in [0, 1]. Fields without statistics return 0.
	DocFrequencyRatio(term []byte) float64
}

// TermEnumerator is an optional capability of fields that expose their
// term dictionary. Phrase-prefix translation uses it to expand the
// trailing prefix at build time; fields without it defer expansion to
// the executor.
type TermEnumerator interface {
	// TermsWithPrefix returns up to max terms starting with prefix, in
	// lexicographic order.
	TermsWithPrefix(prefix []byte, max int) [][]byte
}

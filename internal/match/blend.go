package match

import (
	"log/slog"

	"github.com/searchforge/matchquery/internal/query"
)

// blendTerm decides, for one analyzed term, between exact matching, the
// field's own fuzzy matching, and generic edit-distance matching.
//
// The fallback rules are deliberate and asymmetric: a failing fuzzy
// factory always degrades to an exact term query, independent of the
// lenient flag, while the no-fuzziness path merely tries to coerce the
// term back into the field's native type and keeps the raw term when
// that fails. Blending never surfaces an error.
func (b *tokenStreamBuilder) blendTerm(term []byte) query.Query {
	if b.cfg.Fuzziness != nil {
		return b.blendFuzzy(term)
	}
	if b.field != nil {
		// The analyzer cut a user string into terms which may or may
		// not parse as the field's native type. Try them: "1" is a
		// valid number, "one" is not. Invalid terms fall through to a
		// raw term query rather than failing the translation.
		if q, err := b.field.ExactTermQuery(term); err == nil && q != nil {
			return q
		}
	}
	return &query.Term{Field: b.fieldName, Term: term}
}

// blendFuzzy builds the fuzzy shape for a term when fuzziness is
// configured.
func (b *tokenStreamBuilder) blendFuzzy(term []byte) query.Query {
	if b.field != nil {
		q, err := b.field.FuzzyTermQuery(term, *b.cfg.Fuzziness,
			b.cfg.FuzzyPrefixLength, b.cfg.MaxExpansions, b.cfg.Transpositions)
		if err != nil {
			// Blanket leniency: a field that cannot fuzzy-match this
			// term still exact-matches it. Not gated on cfg.Lenient.
			b.logger.Debug("fuzzy_factory_fallback",
				slog.String("field", b.fieldName),
				slog.String("term", string(term)),
				slog.String("error", err.Error()))
			return &query.Term{Field: b.fieldName, Term: term}
		}
		if fq, ok := q.(*query.Fuzzy); ok && b.cfg.FuzzyRewrite != "" {
			fq.Rewrite = b.cfg.FuzzyRewrite
		}
		return q
	}
	return &query.Fuzzy{
		Field:          b.fieldName,
		Term:           term,
		Distance:       b.cfg.Fuzziness.Distance(string(term)),
		PrefixLength:   b.cfg.FuzzyPrefixLength,
		MaxExpansions:  b.cfg.MaxExpansions,
		Transpositions: b.cfg.Transpositions,
		Rewrite:        b.cfg.FuzzyRewrite,
	}
}

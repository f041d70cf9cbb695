package match

import (
	"github.com/searchforge/matchquery/internal/query"
)

// commonTermsQuery rebalances a boolean query into high/low document
// frequency groups so rare terms drive matching and common terms only
// refine it.
//
// The plain boolean tree is built first with should occurrence for
// low-frequency combination semantics. The optimization only applies
// when every clause is a plain term: fuzzy or synonym clauses have no
// single frequency, so the boolean tree is returned unchanged.
func (b *tokenStreamBuilder) commonTermsQuery(text string, occur query.Occur, cutoff float64) query.Query {
	built := b.booleanQuery(text, query.OccurShould)
	boolean, ok := built.(*query.Boolean)
	if !ok {
		// Zero or one position group, no clauses to split.
		return built
	}
	if b.field == nil {
		// No frequency source; splitting would put everything in the
		// low group anyway.
		return boolean
	}

	terms := make([]*query.Term, 0, len(boolean.Clauses))
	for _, clause := range boolean.Clauses {
		t, ok := clause.Query.(*query.Term)
		if !ok {
			return boolean
		}
		terms = append(terms, t)
	}

	composite := &query.Composite{
		Field:     b.fieldName,
		HighOccur: occur,
		LowOccur:  occur,
	}
	for _, t := range terms {
		if b.field.DocFrequencyRatio(t.Term) >= cutoff {
			composite.HighFreq = append(composite.HighFreq, t.Term)
		} else {
			composite.LowFreq = append(composite.LowFreq, t.Term)
		}
	}
	return composite
}

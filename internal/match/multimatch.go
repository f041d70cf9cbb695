package match

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/searchforge/matchquery/internal/query"
)

// FieldRef names one target of a multi-field match. Capability may be
// nil for fields absent from the mapping.
type FieldRef struct {
	Name       string
	Capability FieldCapability
}

// TranslateMulti runs the same translation against several fields and
// combines the per-field trees as should clauses of one boolean query.
// Per-field translation is independent and runs concurrently.
//
// Fields whose translation yields no query (lenient fast-path failures,
// empty token streams) contribute no clause. The zero-terms policy
// resolves once, over the combined result, when no field produced a
// query through analysis.
func (t *Translator) TranslateMulti(ctx context.Context, mode MatchMode, fields []FieldRef, text string) (query.Query, error) {
	if len(fields) == 0 {
		return nil, nil
	}
	if len(fields) == 1 {
		return t.Translate(mode, fields[0].Name, fields[0].Capability, text)
	}

	type perField struct {
		q        query.Query
		analyzed bool
	}
	results := make([]perField, len(fields))

	g, _ := errgroup.WithContext(ctx)
	for i, f := range fields {
		i, f := i, f
		g.Go(func() error {
			q, analyzed, err := t.translate(mode, f.Name, f.Capability, text)
			if err != nil {
				return err
			}
			results[i] = perField{q: q, analyzed: analyzed}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	clauses := make([]query.Clause, 0, len(results))
	anyAnalyzed := false
	for _, r := range results {
		anyAnalyzed = anyAnalyzed || r.analyzed
		if r.q != nil {
			clauses = append(clauses, query.Clause{Occur: query.OccurShould, Query: r.q})
		}
	}
	switch {
	case len(clauses) == 0 && anyAnalyzed:
		return t.zeroTermsQuery(), nil
	case len(clauses) == 0:
		return nil, nil
	case len(clauses) == 1:
		return clauses[0].Query, nil
	}
	return &query.Boolean{Clauses: clauses}, nil
}

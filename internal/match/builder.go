package match

import (
	"bytes"
	"log/slog"
	"sort"

	"github.com/searchforge/matchquery/internal/analysis"
	"github.com/searchforge/matchquery/internal/query"
)

// tokenStreamBuilder holds the state for one translation call. It folds the
// analyzer's token stream into a query shape, blending each standalone
// term through blendTerm.
type tokenStreamBuilder struct {
	cfg       Config
	analyzer  analysis.Analyzer
	field     FieldCapability
	fieldName string
	logger    *slog.Logger
}

// positionGroup is the set of terms occupying one position slot.
// Multiple terms mean same-position synonyms.
type positionGroup struct {
	position int
	terms    [][]byte
}

// groups runs the analyzer and folds the token stream into position
// groups. Tokens with a zero position increment join the previous
// group. With position increments enabled, gaps between groups equal
// the reported increments; disabled, the groups are contiguous.
func (b *tokenStreamBuilder) groups(text string) []positionGroup {
	var groups []positionGroup
	position := -1
	for _, tok := range b.analyzer.Analyze(text) {
		if len(groups) > 0 && tok.PositionIncrement == 0 {
			last := &groups[len(groups)-1]
			last.terms = append(last.terms, tok.Term)
			continue
		}
		if b.cfg.EnablePositionIncrements && tok.PositionIncrement > 0 {
			position += tok.PositionIncrement
		} else {
			position++
		}
		groups = append(groups, positionGroup{
			position: position,
			terms:    [][]byte{tok.Term},
		})
	}
	return groups
}

// groupQuery turns one position group into a single-slot query: a
// blended term, or a disjunction of blended synonyms.
func (b *tokenStreamBuilder) groupQuery(g positionGroup) query.Query {
	if len(g.terms) == 1 {
		return b.blendTerm(g.terms[0])
	}
	alts := make([]query.Query, len(g.terms))
	for i, term := range g.terms {
		alts[i] = b.blendTerm(term)
	}
	return &query.Disjunction{Queries: alts}
}

// booleanQuery combines every position group as an occurrence-tagged
// clause. A single group collapses to its term or disjunction; an empty
// stream yields the nil sentinel.
func (b *tokenStreamBuilder) booleanQuery(text string, occur query.Occur) query.Query {
	groups := b.groups(text)
	switch len(groups) {
	case 0:
		return nil
	case 1:
		return b.groupQuery(groups[0])
	}
	clauses := make([]query.Clause, len(groups))
	for i, g := range groups {
		clauses[i] = query.Clause{Occur: occur, Query: b.groupQuery(g)}
	}
	return &query.Boolean{Clauses: clauses}
}

// phraseQuery preserves position gaps as phrase offsets. Each slot may
// hold several terms (synonym phrase matching). A single slot collapses
// to its term or disjunction, same as boolean mode.
func (b *tokenStreamBuilder) phraseQuery(text string, slop int) query.Query {
	groups := b.groups(text)
	switch len(groups) {
	case 0:
		return nil
	case 1:
		return b.groupQuery(groups[0])
	}
	return &query.Phrase{
		Field:     b.fieldName,
		Positions: b.positions(groups),
		Slop:      slop,
	}
}

// phrasePrefixQuery is phraseQuery with the last slot treated as prefix
// candidates. When the field exposes its term dictionary the candidates
// are expanded in lexicographic order and truncated at maxExpansions;
// truncation is best-effort, never an error.
func (b *tokenStreamBuilder) phrasePrefixQuery(text string, slop, maxExpansions int) query.Query {
	groups := b.groups(text)
	if len(groups) == 0 {
		return nil
	}
	positions := b.positions(groups)
	last := &positions[len(positions)-1]
	if expanded := b.expandPrefixes(last.Terms, maxExpansions); len(expanded) > 0 {
		last.Terms = expanded
	}
	return &query.PrefixPhrase{
		Field:         b.fieldName,
		Positions:     positions,
		Slop:          slop,
		MaxExpansions: maxExpansions,
	}
}

// expandPrefixes enumerates the field's term space for each prefix
// candidate. Returns nil when the field has no term dictionary or
// nothing matched; the raw prefixes then stay on the query for the
// executor to expand.
func (b *tokenStreamBuilder) expandPrefixes(prefixes [][]byte, maxExpansions int) [][]byte {
	enum, ok := b.field.(TermEnumerator)
	if !ok {
		return nil
	}
	var expanded [][]byte
	for _, prefix := range prefixes {
		expanded = append(expanded, enum.TermsWithPrefix(prefix, maxExpansions)...)
	}
	if len(expanded) == 0 {
		return nil
	}
	sort.Slice(expanded, func(i, j int) bool {
		return bytes.Compare(expanded[i], expanded[j]) < 0
	})
	expanded = dedupeBytes(expanded)
	if len(expanded) > maxExpansions {
		expanded = expanded[:maxExpansions]
	}
	return expanded
}

// positions converts groups into phrase position slots.
func (b *tokenStreamBuilder) positions(groups []positionGroup) []query.PositionTerms {
	positions := make([]query.PositionTerms, len(groups))
	for i, g := range groups {
		positions[i] = query.PositionTerms{Position: g.position, Terms: g.terms}
	}
	return positions
}

// dedupeBytes removes adjacent duplicates from a sorted slice.
func dedupeBytes(terms [][]byte) [][]byte {
	out := terms[:1]
	for _, t := range terms[1:] {
		if !bytes.Equal(out[len(out)-1], t) {
			out = append(out, t)
		}
	}
	return out
}

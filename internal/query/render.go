package query

import (
	"fmt"
	"strings"
)

// String renders the node as field:term.
func (q *Term) String() string {
	return q.Field + ":" + string(q.Term)
}

// String renders alternatives separated by |.
func (q *Disjunction) String() string {
	parts := make([]string, len(q.Queries))
	for i, sub := range q.Queries {
		parts[i] = sub.String()
	}
	return "(" + strings.Join(parts, " | ") + ")"
}

// String renders the node as field:term~distance.
func (q *Fuzzy) String() string {
	s := fmt.Sprintf("%s:%s~%d", q.Field, q.Term, q.Distance)
	if q.Rewrite != "" {
		s += "[" + q.Rewrite + "]"
	}
	return s
}

func renderPositions(positions []PositionTerms, lastIsPrefix bool) string {
	parts := make([]string, len(positions))
	for i, p := range positions {
		alts := make([]string, len(p.Terms))
		for j, t := range p.Terms {
			alts[j] = string(t)
		}
		slot := strings.Join(alts, "|")
		if len(p.Terms) > 1 {
			slot = "(" + slot + ")"
		}
		if lastIsPrefix && i == len(positions)-1 && len(p.Terms) == 1 {
			slot += "*"
		}
		parts[i] = fmt.Sprintf("%d:%s", p.Position, slot)
	}
	return strings.Join(parts, " ")
}

// String renders the phrase with explicit positions and slop.
func (q *Phrase) String() string {
	return fmt.Sprintf("%s:\"%s\"~%d", q.Field, renderPositions(q.Positions, false), q.Slop)
}

// String renders the prefix phrase; a trailing * marks an unexpanded
// prefix slot, an alternative group marks an expanded one.
func (q *PrefixPhrase) String() string {
	return fmt.Sprintf("%s:\"%s\"~%d^%d",
		q.Field, renderPositions(q.Positions, true), q.Slop, q.MaxExpansions)
}

// String renders clauses with occurrence markers:
// + for must, - for must_not, none for should.
func (q *Boolean) String() string {
	parts := make([]string, len(q.Clauses))
	for i, c := range q.Clauses {
		marker := ""
		switch c.Occur {
		case OccurMust:
			marker = "+"
		case OccurMustNot:
			marker = "-"
		}
		parts[i] = marker + c.Query.String()
	}
	return "(" + strings.Join(parts, " ") + ")"
}

// String renders both frequency groups with their occurrence rules.
func (q *Composite) String() string {
	render := func(terms [][]byte) string {
		parts := make([]string, len(terms))
		for i, t := range terms {
			parts[i] = string(t)
		}
		return strings.Join(parts, " ")
	}
	return fmt.Sprintf("common(%s: high[%s]/%s low[%s]/%s)",
		q.Field, render(q.HighFreq), q.HighOccur, render(q.LowFreq), q.LowOccur)
}

func (q *MatchAll) String() string { return "*:*" }

func (q *MatchNone) String() string { return "-*:*" }

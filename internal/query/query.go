// Package query defines the query tree emitted by match translation.
//
// A tree is built for exactly one translation call and is never shared
// across calls. Nodes are plain data: execution and scoring live in the
// search engine, not here.
package query

// Kind identifies the concrete node type of a Query.
type Kind int

const (
	KindTerm Kind = iota
	KindDisjunction
	KindFuzzy
	KindPhrase
	KindPrefixPhrase
	KindBoolean
	KindComposite
	KindMatchAll
	KindMatchNone
)

// Query is the interface implemented by all query tree nodes.
type Query interface {
	Kind() Kind
	String() string
}

// Occur controls how a boolean clause participates in matching.
type Occur int

const (
	// OccurShould means the clause is optional but contributes to scoring.
	OccurShould Occur = iota
	// OccurMust means the clause is required.
	OccurMust
	// OccurMustNot means the clause excludes matching documents.
	OccurMustNot
)

// String returns the lowercase name of the occurrence.
func (o Occur) String() string {
	switch o {
	case OccurShould:
		return "should"
	case OccurMust:
		return "must"
	case OccurMustNot:
		return "must_not"
	default:
		return "unknown"
	}
}

// ParseOccur converts a lowercase occurrence name into an Occur value.
func ParseOccur(s string) (Occur, bool) {
	switch s {
	case "should":
		return OccurShould, true
	case "must":
		return OccurMust, true
	case "must_not":
		return OccurMustNot, true
	default:
		return OccurShould, false
	}
}

// MarshalYAML encodes the occurrence as its lowercase name.
func (o Occur) MarshalYAML() (interface{}, error) {
	return o.String(), nil
}

// UnmarshalYAML decodes an occurrence from its lowercase name.
func (o *Occur) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, ok := ParseOccur(s)
	if !ok {
		return &UnknownOccurError{Name: s}
	}
	*o = parsed
	return nil
}

// UnknownOccurError reports an unrecognized occurrence name.
type UnknownOccurError struct {
	Name string
}

func (e *UnknownOccurError) Error() string {
	return "unknown occurrence " + e.Name
}

// Term matches documents containing the exact term bytes in a field.
// The bytes are opaque: text fields carry analyzed text, structured
// fields carry their canonical encoding.
type Term struct {
	Field string
	Term  []byte
}

func (q *Term) Kind() Kind { return KindTerm }

// Disjunction matches if any sub-query matches. It is used for
// same-position synonym groups where every alternative occupies one slot.
type Disjunction struct {
	Queries []Query
}

func (q *Disjunction) Kind() Kind { return KindDisjunction }

// Fuzzy matches terms within an edit distance of the query term.
type Fuzzy struct {
	Field          string
	Term           []byte
	Distance       int
	PrefixLength   int
	MaxExpansions  int
	Transpositions bool

	// Rewrite is the optional rewrite policy token applied by the
	// executor when expanding the fuzzy term set.
	Rewrite string
}

func (q *Fuzzy) Kind() Kind { return KindFuzzy }

// PositionTerms is one slot of a (prefix) phrase: every term in Terms is
// an alternative at the same position. Positions are not necessarily
// contiguous; gaps encode analyzer position increments.
type PositionTerms struct {
	Position int
	Terms    [][]byte
}

// Phrase matches documents where the per-position term sets appear in
// order, allowing up to Slop position moves.
type Phrase struct {
	Field     string
	Positions []PositionTerms
	Slop      int
}

func (q *Phrase) Kind() Kind { return KindPhrase }

// PrefixPhrase is a Phrase whose last position holds prefix candidates
// rather than complete terms. When the field exposes a term dictionary
// the candidates are already expanded, capped at MaxExpansions; otherwise
// the raw prefixes remain and the executor expands them.
type PrefixPhrase struct {
	Field         string
	Positions     []PositionTerms
	Slop          int
	MaxExpansions int
}

func (q *PrefixPhrase) Kind() Kind { return KindPrefixPhrase }

// Clause is a single occurrence-tagged sub-query of a Boolean query.
type Clause struct {
	Occur Occur
	Query Query
}

// Boolean combines clauses with boolean logic.
type Boolean struct {
	Clauses []Clause
}

func (q *Boolean) Kind() Kind { return KindBoolean }

// Composite is a boolean query rebalanced into document-frequency
// groups: rare terms combine under LowOccur, common terms under
// HighOccur. Produced by the common-terms optimization.
type Composite struct {
	Field     string
	HighFreq  [][]byte
	LowFreq   [][]byte
	HighOccur Occur
	LowOccur  Occur
}

func (q *Composite) Kind() Kind { return KindComposite }

// MatchAll matches every document.
type MatchAll struct{}

func (q *MatchAll) Kind() Kind { return KindMatchAll }

// MatchNone matches no documents.
type MatchNone struct{}

func (q *MatchNone) Kind() Kind { return KindMatchNone }

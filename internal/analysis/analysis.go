// Package analysis adapts text analyzers to the token model consumed by
// match translation.
//
// The concrete analyzers are bleve's: the package resolves them by name
// through a bleve registry cache and converts bleve token streams into
// the position/increment form the query builder folds over.
package analysis

// Token is a single term produced by an analyzer.
type Token struct {
	// Term is the analyzed term bytes.
	Term []byte

	// Position is the zero-based slot the term occupies.
	Position int

	// PositionIncrement is the gap from the previous token's position.
	// Zero means the token is a synonym occupying the same slot as the
	// previous token. Values above one encode removed tokens (e.g. stop
	// words) between the two positions.
	PositionIncrement int
}

// Analyzer produces an ordered, finite token stream for a text value.
// Implementations must be safe for concurrent use across independent
// translation calls.
type Analyzer interface {
	Analyze(text string) []Token
}

package analysis

import (
	bleveanalysis "github.com/blevesearch/bleve/v2/analysis"
)

// BleveAnalyzer wraps a bleve analyzer behind the Analyzer interface.
//
// Bleve reports 1-based cumulative positions on its tokens; the wrapper
// rebases them to 0 and derives position increments from consecutive
// positions. Filters that drop tokens (stop words) leave gaps in bleve's
// positions, which surface here as increments greater than one.
type BleveAnalyzer struct {
	name  string
	inner bleveanalysis.Analyzer
}

// NewBleveAnalyzer wraps the given bleve analyzer.
func NewBleveAnalyzer(name string, inner bleveanalysis.Analyzer) *BleveAnalyzer {
	return &BleveAnalyzer{name: name, inner: inner}
}

// Name returns the registry name the analyzer was resolved under.
func (a *BleveAnalyzer) Name() string { return a.name }

// Analyze runs the underlying bleve analyzer and converts its token
// stream into position/increment tokens.
func (a *BleveAnalyzer) Analyze(text string) []Token {
	stream := a.inner.Analyze([]byte(text))
	tokens := make([]Token, 0, len(stream))
	prev := 0
	for _, t := range stream {
		incr := t.Position - prev
		if incr < 0 {
			// Out-of-order positions never come out of a well-formed
			// filter chain; clamp rather than emit a negative increment.
			incr = 0
		}
		tokens = append(tokens, Token{
			Term:              t.Term,
			Position:          t.Position - 1,
			PositionIncrement: incr,
		})
		if t.Position > prev {
			prev = t.Position
		}
	}
	return tokens
}

package field

import (
	"time"

	"github.com/searchforge/matchquery/internal/errors"
	"github.com/searchforge/matchquery/internal/match"
	"github.com/searchforge/matchquery/internal/query"
)

// dateFormats are tried in order when parsing date values.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02",
}

// Date is an untokenized timestamp field. Query values must parse as
// RFC 3339 timestamps or calendar dates; the emitted term carries the
// epoch-nanosecond value in the same sortable encoding as Numeric.
type Date struct {
	name string
}

// NewDate creates an untokenized date field.
func NewDate(name string) *Date {
	return &Date{name: name}
}

var _ match.FieldCapability = (*Date)(nil)

// Name returns the field name.
func (f *Date) Name() string { return f.name }

// Tokenized reports that date values bypass analysis.
func (f *Date) Tokenized() bool { return false }

// ExactTermQuery parses the value as a timestamp and matches its
// canonical encoding. Fails when no date format matches.
func (f *Date) ExactTermQuery(value []byte) (query.Query, error) {
	s := string(value)
	for _, format := range dateFormats {
		ts, err := time.Parse(format, s)
		if err != nil {
			continue
		}
		return &query.Term{Field: f.name, Term: EncodeInt64(ts.UnixNano())}, nil
	}
	return nil, errors.FieldError("value ["+s+"] is not a valid date", nil)
}

// FuzzyTermQuery fails: edit distance is meaningless on encoded
// timestamps. The blender degrades this to an exact term query.
func (f *Date) FuzzyTermQuery(term []byte, fuzziness match.Fuzziness, prefixLength, maxExpansions int, transpositions bool) (query.Query, error) {
	return nil, errors.FieldError("date field ["+f.name+"] does not support fuzzy queries", nil)
}

// DocFrequencyRatio reports no statistics for date fields.
func (f *Date) DocFrequencyRatio(term []byte) float64 { return 0 }

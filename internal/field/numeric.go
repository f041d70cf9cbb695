package field

import (
	"encoding/binary"
	"strconv"

	"github.com/searchforge/matchquery/internal/errors"
	"github.com/searchforge/matchquery/internal/match"
	"github.com/searchforge/matchquery/internal/query"
)

// Numeric is an untokenized 64-bit integer field. Query values must
// parse as base-10 integers; the emitted term carries the canonical
// big-endian encoding so byte order matches numeric order.
type Numeric struct {
	name string
}

// NewNumeric creates an untokenized numeric field.
func NewNumeric(name string) *Numeric {
	return &Numeric{name: name}
}

var _ match.FieldCapability = (*Numeric)(nil)

// Name returns the field name.
func (f *Numeric) Name() string { return f.name }

// Tokenized reports that numeric values bypass analysis.
func (f *Numeric) Tokenized() bool { return false }

// ExactTermQuery parses the value as an integer and matches its
// canonical encoding. Fails when the bytes are not a valid integer.
func (f *Numeric) ExactTermQuery(value []byte) (query.Query, error) {
	n, err := strconv.ParseInt(string(value), 10, 64)
	if err != nil {
		return nil, errors.FieldError("value ["+string(value)+"] is not a valid integer", err)
	}
	return &query.Term{Field: f.name, Term: EncodeInt64(n)}, nil
}

// FuzzyTermQuery fails: edit distance is meaningless on encoded
// integers. The blender degrades this to an exact term query.
func (f *Numeric) FuzzyTermQuery(term []byte, fuzziness match.Fuzziness, prefixLength, maxExpansions int, transpositions bool) (query.Query, error) {
	return nil, errors.FieldError("numeric field ["+f.name+"] does not support fuzzy queries", nil)
}

// DocFrequencyRatio reports no statistics for numeric fields.
func (f *Numeric) DocFrequencyRatio(term []byte) float64 { return 0 }

// EncodeInt64 returns the canonical sortable encoding of n: big-endian
// with the sign bit flipped so negative values order first.
func EncodeInt64(n int64) []byte {
	buf := make([]byte, 8)
	binary.BigEndian.PutUint64(buf, uint64(n)^(1<<63))
	return buf
}

// DecodeInt64 reverses EncodeInt64.
func DecodeInt64(b []byte) int64 {
	return int64(binary.BigEndian.Uint64(b) ^ (1 << 63))
}

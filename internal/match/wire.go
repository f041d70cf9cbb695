package match

import (
	"encoding/binary"
	"io"

	"github.com/searchforge/matchquery/internal/errors"
)

// MatchMode selects how analyzed terms combine into a query shape.
//
// The numeric values are the wire discriminants and must never change:
// peers decode them positionally across versions.
type MatchMode int

const (
	// ModeBoolean analyzes the text and combines terms into a boolean query.
	ModeBoolean MatchMode = 0
	// ModePhrase analyzes the text and matches it as an ordered phrase.
	ModePhrase MatchMode = 1
	// ModePhrasePrefix is a phrase whose last term acts as a prefix.
	ModePhrasePrefix MatchMode = 2
)

// String returns the lowercase name of the mode.
func (m MatchMode) String() string {
	switch m {
	case ModeBoolean:
		return "boolean"
	case ModePhrase:
		return "phrase"
	case ModePhrasePrefix:
		return "phrase_prefix"
	default:
		return "unknown"
	}
}

// ParseMatchMode converts a lowercase mode name into a MatchMode.
func ParseMatchMode(s string) (MatchMode, bool) {
	switch s {
	case "boolean":
		return ModeBoolean, true
	case "phrase":
		return ModePhrase, true
	case "phrase_prefix":
		return ModePhrasePrefix, true
	default:
		return ModeBoolean, false
	}
}

// MarshalYAML encodes the mode as its lowercase name.
func (m MatchMode) MarshalYAML() (interface{}, error) {
	return m.String(), nil
}

// UnmarshalYAML decodes a mode from its lowercase name.
func (m *MatchMode) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, ok := ParseMatchMode(s)
	if !ok {
		return errors.ConfigError("unknown match mode "+s, nil)
	}
	*m = parsed
	return nil
}

// Encode writes the mode as a single unsigned varint discriminant.
func (m MatchMode) Encode(w io.Writer) error {
	return writeUvarint(w, uint64(m))
}

// DecodeMatchMode reads a varint discriminant and maps it back to a
// MatchMode. An out-of-range discriminant fails with an unknown-variant
// error carrying the raw value.
func DecodeMatchMode(r io.ByteReader) (MatchMode, error) {
	v, err := binary.ReadUvarint(r)
	if err != nil {
		return ModeBoolean, errors.New(errors.ErrCodeWireTruncated, "short read decoding match mode", err)
	}
	switch MatchMode(v) {
	case ModeBoolean, ModePhrase, ModePhrasePrefix:
		return MatchMode(v), nil
	default:
		return ModeBoolean, errors.UnknownVariantError("match mode", v)
	}
}

// ZeroTermsPolicy chooses the fallback query when analysis yields no
// usable terms. Numeric values are wire discriminants; see MatchMode.
type ZeroTermsPolicy int

const (
	// ZeroTermsNone resolves the sentinel to a match-none query.
	ZeroTermsNone ZeroTermsPolicy = 0
	// ZeroTermsAll resolves the sentinel to a match-all query.
	ZeroTermsAll ZeroTermsPolicy = 1
)

// String returns the lowercase name of the policy.
func (z ZeroTermsPolicy) String() string {
	switch z {
	case ZeroTermsNone:
		return "none"
	case ZeroTermsAll:
		return "all"
	default:
		return "unknown"
	}
}

// ParseZeroTermsPolicy converts a lowercase policy name into a
// ZeroTermsPolicy.
func ParseZeroTermsPolicy(s string) (ZeroTermsPolicy, bool) {
	switch s {
	case "none":
		return ZeroTermsNone, true
	case "all":
		return ZeroTermsAll, true
	default:
		return ZeroTermsNone, false
	}
}

// MarshalYAML encodes the policy as its lowercase name.
func (z ZeroTermsPolicy) MarshalYAML() (interface{}, error) {
	return z.String(), nil
}

// UnmarshalYAML decodes a policy from its lowercase name.
func (z *ZeroTermsPolicy) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, ok := ParseZeroTermsPolicy(s)
	if !ok {
		return errors.ConfigError("unknown zero terms policy "+s, nil)
	}
	*z = parsed
	return nil
}

// Encode writes the policy as a single unsigned varint discriminant.
func (z ZeroTermsPolicy) Encode(w io.Writer) error {
	return writeUvarint(w, uint64(z))
}

// DecodeZeroTermsPolicy reads a varint discriminant and maps it back to
// a ZeroTermsPolicy.
func DecodeZeroTermsPolicy(r io.ByteReader) (ZeroTermsPolicy, error) {
	v, err := binary.ReadUvarint(r)
	if err != nil {
		return ZeroTermsNone, errors.New(errors.ErrCodeWireTruncated, "short read decoding zero terms policy", err)
	}
	switch ZeroTermsPolicy(v) {
	case ZeroTermsNone, ZeroTermsAll:
		return ZeroTermsPolicy(v), nil
	default:
		return ZeroTermsNone, errors.UnknownVariantError("zero terms policy", v)
	}
}

func writeUvarint(w io.Writer, v uint64) error {
	var buf [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(buf[:], v)
	_, err := w.Write(buf[:n])
	return err
}

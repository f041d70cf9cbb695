package match

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/searchforge/matchquery/internal/errors"
)

// Fuzziness is the configured edit-distance tolerance for approximate
// term matching: either a fixed distance or AUTO, which derives the
// distance from the term length.
type Fuzziness struct {
	auto     bool
	distance int
}

// MaxEditDistance is the largest supported fixed edit distance.
const MaxEditDistance = 2

// FuzzinessAuto derives the edit distance from term length:
// 0 for terms shorter than 3 runes, 1 up to 5 runes, 2 beyond.
var FuzzinessAuto = Fuzziness{auto: true}

// FuzzinessFixed returns a fuzziness with a fixed edit distance.
func FuzzinessFixed(distance int) Fuzziness {
	return Fuzziness{distance: distance}
}

// ParseFuzziness parses "AUTO" (case-insensitive) or a fixed edit
// distance in [0, MaxEditDistance].
func ParseFuzziness(s string) (Fuzziness, error) {
	if strings.EqualFold(s, "auto") {
		return FuzzinessAuto, nil
	}
	d, err := strconv.Atoi(s)
	if err != nil {
		return Fuzziness{}, errors.ConfigError("invalid fuzziness "+s, err)
	}
	if d < 0 || d > MaxEditDistance {
		return Fuzziness{}, errors.ConfigError("fuzziness out of range: "+s, nil)
	}
	return FuzzinessFixed(d), nil
}

// Auto reports whether the distance is derived from term length.
func (f Fuzziness) Auto() bool { return f.auto }

// Distance resolves the edit distance for the given term.
func (f Fuzziness) Distance(term string) int {
	if !f.auto {
		return f.distance
	}
	switch n := utf8.RuneCountInString(term); {
	case n < 3:
		return 0
	case n <= 5:
		return 1
	default:
		return 2
	}
}

// String returns "AUTO" or the fixed distance.
func (f Fuzziness) String() string {
	if f.auto {
		return "AUTO"
	}
	return strconv.Itoa(f.distance)
}

// MarshalYAML encodes the fuzziness in its parseable string form.
func (f Fuzziness) MarshalYAML() (interface{}, error) {
	return f.String(), nil
}

// UnmarshalYAML decodes a fuzziness from "AUTO" or a fixed distance.
func (f *Fuzziness) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseFuzziness(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

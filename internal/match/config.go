package match

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/searchforge/matchquery/internal/errors"
	"github.com/searchforge/matchquery/internal/query"
)

// Default configuration values.
const (
	DefaultPhraseSlop        = 0
	DefaultFuzzyPrefixLength = 0
	DefaultMaxExpansions     = 50
	DefaultTranspositions    = true
	DefaultLeniency          = false
)

// Config is the per-translation configuration snapshot.
//
// Populate it fully (or start from DefaultConfig) before constructing a
// Translator and treat it as read-only afterwards: the translator keeps
// its own copy, but the construct-then-use discipline is what makes
// concurrent translations safe.
type Config struct {
	// Analyzer optionally overrides the analyzer used for tokenized
	// fields. Empty means the registry default. Setting an override
	// also disables the exact-match fast path for untokenized fields.
	Analyzer string `yaml:"analyzer,omitempty" json:"analyzer,omitempty"`

	// Occurrence is how boolean-mode clauses participate in matching.
	// Only should and must are valid here.
	Occurrence query.Occur `yaml:"occurrence" json:"occurrence"`

	// EnablePositionIncrements preserves analyzer position gaps (e.g.
	// removed stop words) in phrase positions. When false all surviving
	// tokens are treated as contiguous.
	EnablePositionIncrements bool `yaml:"enable_position_increments" json:"enable_position_increments"`

	// PhraseSlop is the number of position moves tolerated when
	// matching phrases. Must be >= 0.
	PhraseSlop int `yaml:"phrase_slop" json:"phrase_slop"`

	// Fuzziness enables approximate term matching when set.
	Fuzziness *Fuzziness `yaml:"fuzziness,omitempty" json:"fuzziness,omitempty"`

	// FuzzyPrefixLength is the initial run of characters that must
	// match exactly in fuzzy queries. Must be >= 0.
	FuzzyPrefixLength int `yaml:"fuzzy_prefix_length" json:"fuzzy_prefix_length"`

	// MaxExpansions caps term expansion for fuzzy and phrase-prefix
	// queries. Must be > 0.
	MaxExpansions int `yaml:"max_expansions" json:"max_expansions"`

	// Transpositions counts adjacent character swaps as single edits.
	Transpositions bool `yaml:"transpositions" json:"transpositions"`

	// FuzzyRewrite is an optional rewrite policy token stamped onto
	// fuzzy-shaped queries (e.g. "constant_score", "top_terms_10").
	FuzzyRewrite string `yaml:"fuzzy_rewrite,omitempty" json:"fuzzy_rewrite,omitempty"`

	// Lenient suppresses exact-path field resolution errors by
	// returning no query instead of failing the translation.
	Lenient bool `yaml:"lenient" json:"lenient"`

	// ZeroTerms picks the query returned when analysis leaves no terms.
	ZeroTerms ZeroTermsPolicy `yaml:"zero_terms_query" json:"zero_terms_query"`

	// CommonTermsCutoff enables the common-terms optimization for
	// boolean mode. Terms with document frequency >= the cutoff land in
	// the high-frequency group. Must be in (0, 1] when set.
	CommonTermsCutoff *float64 `yaml:"cutoff_frequency,omitempty" json:"cutoff_frequency,omitempty"`
}

// DefaultConfig returns the configuration used when a request sets
// nothing explicitly.
func DefaultConfig() Config {
	return Config{
		Occurrence:               query.OccurShould,
		EnablePositionIncrements: true,
		PhraseSlop:               DefaultPhraseSlop,
		FuzzyPrefixLength:        DefaultFuzzyPrefixLength,
		MaxExpansions:            DefaultMaxExpansions,
		Transpositions:           DefaultTranspositions,
		Lenient:                  DefaultLeniency,
		ZeroTerms:                ZeroTermsNone,
	}
}

// Validate rejects invariant violations at construction time so they
// never surface deep inside a translation.
func (c Config) Validate() error {
	if c.Occurrence != query.OccurShould && c.Occurrence != query.OccurMust {
		return errors.ConfigError("occurrence must be should or must, got "+c.Occurrence.String(), nil)
	}
	if c.PhraseSlop < 0 {
		return errors.ConfigError(fmt.Sprintf("phrase slop must be >= 0, got %d", c.PhraseSlop), nil)
	}
	if c.FuzzyPrefixLength < 0 {
		return errors.ConfigError(fmt.Sprintf("fuzzy prefix length must be >= 0, got %d", c.FuzzyPrefixLength), nil)
	}
	if c.MaxExpansions <= 0 {
		return errors.ConfigError(fmt.Sprintf("max expansions must be > 0, got %d", c.MaxExpansions), nil)
	}
	if c.FuzzyRewrite != "" && !ValidRewrite(c.FuzzyRewrite) {
		return errors.ConfigError("unknown fuzzy rewrite method "+c.FuzzyRewrite, nil)
	}
	if c.CommonTermsCutoff != nil {
		if cutoff := *c.CommonTermsCutoff; cutoff <= 0 || cutoff > 1 {
			return errors.ConfigError(fmt.Sprintf("cutoff frequency must be in (0, 1], got %v", cutoff), nil)
		}
	}
	return nil
}

// ValidRewrite reports whether the token names a known rewrite policy.
func ValidRewrite(token string) bool {
	switch token {
	case "constant_score", "constant_score_boolean", "scoring_boolean":
		return true
	}
	for _, prefix := range []string{"top_terms_blended_freqs_", "top_terms_boost_", "top_terms_"} {
		if rest, ok := strings.CutPrefix(token, prefix); ok {
			n, err := strconv.Atoi(rest)
			return err == nil && n > 0
		}
	}
	return false
}

// LoadConfig reads a YAML config document, layered over DefaultConfig,
// and validates it.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.ConfigError("reading config "+path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML bytes, layered over DefaultConfig, and
// validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.ConfigError("parsing config", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

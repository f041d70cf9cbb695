// Package match translates a text value, a target field, and a match
// configuration into a composed query tree for full-text retrieval.
//
// The translation either short-circuits through an exact-match fast
// path (untokenized field, no analyzer override) or runs the analyzer
// and folds the token stream into a term, disjunction, boolean, phrase,
// or prefix-phrase shape. Analyzers and field capabilities are external
// collaborators consumed through narrow interfaces.
package match

import (
	"fmt"
	"log/slog"

	"github.com/searchforge/matchquery/internal/analysis"
	"github.com/searchforge/matchquery/internal/errors"
	"github.com/searchforge/matchquery/internal/query"
)

// Translator turns text values into query trees under one configuration
// snapshot. It is safe for concurrent use: the configuration is copied
// at construction and never mutated afterwards.
type Translator struct {
	cfg       Config
	analyzers *analysis.Registry
	logger    *slog.Logger
}

// Option configures a Translator.
type Option func(*Translator)

// WithLogger sets the logger used for debug events (fuzzy fallbacks,
// lenient suppressions). Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Translator) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// NewTranslator validates the configuration and builds a translator.
// The registry may be nil, in which case a fresh registry with bleve's
// built-in analyzers is used.
func NewTranslator(cfg Config, analyzers *analysis.Registry, opts ...Option) (*Translator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if analyzers == nil {
		analyzers = analysis.NewRegistry()
	}
	t := &Translator{
		cfg:       cfg,
		analyzers: analyzers,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

// Config returns the configuration snapshot the translator was built with.
func (t *Translator) Config() Config { return t.cfg }

// Translate builds the query tree for the given mode, field, and text.
// The field capability may be nil for fields absent from the mapping;
// fieldName is then used verbatim on emitted nodes.
//
// A nil query with a nil error is returned in exactly one case: the
// exact-match fast path failed and the configuration is lenient. That
// result deliberately bypasses the zero-terms policy, which only
// resolves the analyzed path's empty token stream.
func (t *Translator) Translate(mode MatchMode, fieldName string, field FieldCapability, text string) (query.Query, error) {
	q, analyzed, err := t.translate(mode, fieldName, field, text)
	if err != nil {
		return nil, err
	}
	if q == nil && analyzed {
		return t.zeroTermsQuery(), nil
	}
	return q, nil
}

// translate runs one translation without zero-terms resolution. The
// analyzed return distinguishes the analyzed path's empty-stream
// sentinel from the fast path's lenient no-query result.
func (t *Translator) translate(mode MatchMode, fieldName string, field FieldCapability, text string) (q query.Query, analyzed bool, err error) {
	if field != nil {
		fieldName = field.Name()
	}

	// Feeding structured field values (e.g. numbers) through a text
	// analyzer is invalid, so untokenized fields resolve the raw value
	// through their exact-term factory instead. A forced analyzer
	// override disables the shortcut: the caller has asked for text
	// treatment explicitly.
	if field != nil && !field.Tokenized() && t.cfg.Analyzer == "" {
		eq, err := field.ExactTermQuery([]byte(text))
		if err != nil {
			if t.cfg.Lenient {
				// NOTE: lenient fast-path failure returns no query
				// directly instead of routing through the zero-terms
				// policy, unlike the analyzed path's zero-token case.
				// Kept as-is for compatibility; under review.
				t.logger.Debug("lenient_term_query_suppressed",
					slog.String("field", fieldName),
					slog.String("error", err.Error()))
				return nil, false, nil
			}
			return nil, false, errors.FieldError(
				fmt.Sprintf("exact term query for field [%s]", fieldName), err)
		}
		return eq, false, nil
	}

	analyzer, err := t.analyzerFor()
	if err != nil {
		return nil, false, err
	}
	b := &tokenStreamBuilder{
		cfg:       t.cfg,
		analyzer:  analyzer,
		field:     field,
		fieldName: fieldName,
		logger:    t.logger,
	}

	switch mode {
	case ModeBoolean:
		if t.cfg.CommonTermsCutoff == nil {
			q = b.booleanQuery(text, t.cfg.Occurrence)
		} else {
			q = b.commonTermsQuery(text, t.cfg.Occurrence, *t.cfg.CommonTermsCutoff)
		}
	case ModePhrase:
		q = b.phraseQuery(text, t.cfg.PhraseSlop)
	case ModePhrasePrefix:
		q = b.phrasePrefixQuery(text, t.cfg.PhraseSlop, t.cfg.MaxExpansions)
	default:
		return nil, false, errors.New(errors.ErrCodeInternal,
			fmt.Sprintf("no translation for mode [%d]", mode), nil)
	}
	return q, true, nil
}

// analyzerFor resolves the configured analyzer override, or the
// registry default when none is set.
func (t *Translator) analyzerFor() (analysis.Analyzer, error) {
	if t.cfg.Analyzer == "" {
		return t.analyzers.Default(), nil
	}
	return t.analyzers.Named(t.cfg.Analyzer)
}

// zeroTermsQuery resolves the empty-token-stream sentinel per policy.
func (t *Translator) zeroTermsQuery() query.Query {
	if t.cfg.ZeroTerms == ZeroTermsAll {
		return &query.MatchAll{}
	}
	return &query.MatchNone{}
}

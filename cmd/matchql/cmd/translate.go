package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/searchforge/matchquery/internal/analysis"
	"github.com/searchforge/matchquery/internal/field"
	"github.com/searchforge/matchquery/internal/match"
	"github.com/searchforge/matchquery/internal/query"
)

// translateOptions holds CLI flags for translate.
type translateOptions struct {
	mode       string
	fields     []string
	occurrence string
	analyzer   string
	fuzziness  string
	rewrite    string
	slop       int
	maxExpand  int
	cutoff     float64
	zeroTerms  string
	lenient    bool
	configPath string
}

func newTranslateCmd() *cobra.Command {
	var opts translateOptions

	cmd := &cobra.Command{
		Use:   "translate <text>",
		Short: "Translate text into a query tree",
		Long: `Translate text into a query tree against the built-in demo mapping:

  title      tokenized text with a small term dictionary and statistics
  body       tokenized text
  sku        untokenized keyword
  count      untokenized 64-bit integer
  published  untokenized date

Examples:
  matchql translate "quick fox" --field title --mode boolean
  matchql translate "quick brown fox" --field title --mode phrase --slop 1
  matchql translate "qui" --field title --mode phrase_prefix --max-expansions 2
  matchql translate "ABC-123" --field sku
  matchql translate "quick fox" --field title --field body`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, strings.Join(args, " "), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.mode, "mode", "m", "boolean", "Match mode: boolean, phrase, phrase_prefix")
	cmd.Flags().StringArrayVarP(&opts.fields, "field", "f", []string{"title"}, "Target field (repeatable for multi-field match)")
	cmd.Flags().StringVar(&opts.occurrence, "occur", "should", "Boolean clause occurrence: should, must")
	cmd.Flags().StringVar(&opts.analyzer, "analyzer", "", "Analyzer override (standard, simple, keyword, web)")
	cmd.Flags().StringVar(&opts.fuzziness, "fuzziness", "", "Fuzziness: AUTO or an edit distance 0-2")
	cmd.Flags().StringVar(&opts.rewrite, "fuzzy-rewrite", "", "Fuzzy rewrite method (e.g. constant_score, top_terms_10)")
	cmd.Flags().IntVar(&opts.slop, "slop", match.DefaultPhraseSlop, "Phrase slop")
	cmd.Flags().IntVar(&opts.maxExpand, "max-expansions", match.DefaultMaxExpansions, "Maximum fuzzy/prefix expansions")
	cmd.Flags().Float64Var(&opts.cutoff, "cutoff", 0, "Common-terms frequency cutoff in (0, 1]; 0 disables")
	cmd.Flags().StringVar(&opts.zeroTerms, "zero-terms", "none", "Zero terms policy: none, all")
	cmd.Flags().BoolVar(&opts.lenient, "lenient", false, "Suppress exact-path resolution errors")
	cmd.Flags().StringVarP(&opts.configPath, "config", "c", "", "Load match configuration from a YAML file (flags override)")

	return cmd
}

func runTranslate(cmd *cobra.Command, text string, opts translateOptions) error {
	cfg, err := buildConfig(cmd, opts)
	if err != nil {
		return err
	}

	mode, ok := match.ParseMatchMode(opts.mode)
	if !ok {
		return fmt.Errorf("unknown match mode %q", opts.mode)
	}

	translator, err := match.NewTranslator(cfg, analysis.NewRegistry())
	if err != nil {
		return err
	}

	refs, err := resolveFields(opts.fields)
	if err != nil {
		return err
	}

	var q query.Query
	if len(refs) == 1 {
		q, err = translator.Translate(mode, refs[0].Name, refs[0].Capability, text)
	} else {
		q, err = translator.TranslateMulti(cmd.Context(), mode, refs, text)
	}
	if err != nil {
		return err
	}

	if q == nil {
		fmt.Fprintln(cmd.OutOrStdout(), "(no query)")
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), q.String())
	return nil
}

// buildConfig layers CLI flags over the optional YAML config file.
func buildConfig(cmd *cobra.Command, opts translateOptions) (match.Config, error) {
	cfg := match.DefaultConfig()
	if opts.configPath != "" {
		loaded, err := match.LoadConfig(opts.configPath)
		if err != nil {
			return match.Config{}, err
		}
		cfg = loaded
	}

	occur, ok := query.ParseOccur(opts.occurrence)
	if !ok {
		return match.Config{}, fmt.Errorf("unknown occurrence %q", opts.occurrence)
	}
	cfg.Occurrence = occur
	cfg.Analyzer = opts.analyzer
	cfg.PhraseSlop = opts.slop
	cfg.MaxExpansions = opts.maxExpand
	cfg.Lenient = opts.lenient
	cfg.FuzzyRewrite = opts.rewrite

	if opts.fuzziness != "" {
		f, err := match.ParseFuzziness(opts.fuzziness)
		if err != nil {
			return match.Config{}, err
		}
		cfg.Fuzziness = &f
	}
	if opts.cutoff != 0 {
		cutoff := opts.cutoff
		cfg.CommonTermsCutoff = &cutoff
	}
	if policy, ok := match.ParseZeroTermsPolicy(opts.zeroTerms); ok {
		cfg.ZeroTerms = policy
	} else {
		return match.Config{}, fmt.Errorf("unknown zero terms policy %q", opts.zeroTerms)
	}
	return cfg, nil
}

// demoFields is the built-in mapping the CLI translates against.
func demoFields() map[string]match.FieldCapability {
	titleDict := field.NewTermDict(
		"quick", "quiet", "quill", "quilt", "quince",
		"brown", "bright", "fox", "foxes",
	)
	titleFreqs := field.StaticFrequencies{
		"the": 0.92, "a": 0.87, "of": 0.81,
		"quick": 0.12, "brown": 0.09, "fox": 0.02,
	}
	return map[string]match.FieldCapability{
		"title":     field.NewText("title", field.WithTermDict(titleDict), field.WithFrequencies(titleFreqs)),
		"body":      field.NewText("body"),
		"sku":       field.NewKeyword("sku"),
		"count":     field.NewNumeric("count"),
		"published": field.NewDate("published"),
	}
}

func resolveFields(names []string) ([]match.FieldRef, error) {
	mapping := demoFields()
	refs := make([]match.FieldRef, 0, len(names))
	for _, name := range names {
		capability, ok := mapping[name]
		if !ok {
			known := make([]string, 0, len(mapping))
			for k := range mapping {
				known = append(known, k)
			}
			sort.Strings(known)
			return nil, fmt.Errorf("unknown field %q (known: %s)", name, strings.Join(known, ", "))
		}
		refs = append(refs, match.FieldRef{Name: name, Capability: capability})
	}
	return refs, nil
}

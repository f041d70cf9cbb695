package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestKinds(t *testing.T) {
	tests := []struct {
		q    Query
		want Kind
	}{
		{&Term{}, KindTerm},
		{&Disjunction{}, KindDisjunction},
		{&Fuzzy{}, KindFuzzy},
		{&Phrase{}, KindPhrase},
		{&PrefixPhrase{}, KindPrefixPhrase},
		{&Boolean{}, KindBoolean},
		{&Composite{}, KindComposite},
		{&MatchAll{}, KindMatchAll},
		{&MatchNone{}, KindMatchNone},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.q.Kind())
	}
}

func TestOccur_String(t *testing.T) {
	assert.Equal(t, "should", OccurShould.String())
	assert.Equal(t, "must", OccurMust.String())
	assert.Equal(t, "must_not", OccurMustNot.String())
	assert.Equal(t, "unknown", Occur(42).String())
}

func TestParseOccur(t *testing.T) {
	for name, want := range map[string]Occur{
		"should":   OccurShould,
		"must":     OccurMust,
		"must_not": OccurMustNot,
	} {
		got, ok := ParseOccur(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got)
	}

	_, ok := ParseOccur("filter")
	assert.False(t, ok)
}

func TestOccur_YAML(t *testing.T) {
	var o Occur
	require.NoError(t, yaml.Unmarshal([]byte(`must`), &o))
	assert.Equal(t, OccurMust, o)

	err := yaml.Unmarshal([]byte(`maybe`), &o)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maybe")

	out, err := yaml.Marshal(OccurMustNot)
	require.NoError(t, err)
	assert.Equal(t, "must_not\n", string(out))
}

func TestRender_Leaves(t *testing.T) {
	assert.Equal(t, "title:fox", (&Term{Field: "title", Term: []byte("fox")}).String())
	assert.Equal(t, "*:*", (&MatchAll{}).String())
	assert.Equal(t, "-*:*", (&MatchNone{}).String())
}

func TestRender_Disjunction(t *testing.T) {
	d := &Disjunction{Queries: []Query{
		&Term{Field: "title", Term: []byte("fast")},
		&Term{Field: "title", Term: []byte("quick")},
	}}
	assert.Equal(t, "(title:fast | title:quick)", d.String())
}

func TestRender_Fuzzy(t *testing.T) {
	fq := &Fuzzy{Field: "title", Term: []byte("quicck"), Distance: 2}
	assert.Equal(t, "title:quicck~2", fq.String())

	fq.Rewrite = "top_terms_10"
	assert.Equal(t, "title:quicck~2[top_terms_10]", fq.String())
}

func TestRender_Phrase(t *testing.T) {
	p := &Phrase{
		Field: "title",
		Positions: []PositionTerms{
			{Position: 0, Terms: [][]byte{[]byte("quick")}},
			{Position: 2, Terms: [][]byte{[]byte("fox"), []byte("foxes")}},
		},
		Slop: 1,
	}
	assert.Equal(t, `title:"0:quick 2:(fox|foxes)"~1`, p.String())
}

func TestRender_PrefixPhrase(t *testing.T) {
	t.Run("unexpanded prefix carries a star", func(t *testing.T) {
		pp := &PrefixPhrase{
			Field: "title",
			Positions: []PositionTerms{
				{Position: 0, Terms: [][]byte{[]byte("qui")}},
			},
			MaxExpansions: 50,
		}
		assert.Equal(t, `title:"0:qui*"~0^50`, pp.String())
	})

	t.Run("expanded prefix renders as alternatives", func(t *testing.T) {
		pp := &PrefixPhrase{
			Field: "title",
			Positions: []PositionTerms{
				{Position: 0, Terms: [][]byte{[]byte("brown")}},
				{Position: 1, Terms: [][]byte{[]byte("quick"), []byte("quiet")}},
			},
			MaxExpansions: 2,
		}
		assert.Equal(t, `title:"0:brown 1:(quick|quiet)"~0^2`, pp.String())
	})
}

func TestRender_Boolean(t *testing.T) {
	b := &Boolean{Clauses: []Clause{
		{Occur: OccurMust, Query: &Term{Field: "title", Term: []byte("quick")}},
		{Occur: OccurShould, Query: &Term{Field: "title", Term: []byte("brown")}},
		{Occur: OccurMustNot, Query: &Term{Field: "title", Term: []byte("fox")}},
	}}
	assert.Equal(t, "(+title:quick title:brown -title:fox)", b.String())
}

func TestRender_Composite(t *testing.T) {
	c := &Composite{
		Field:     "title",
		HighFreq:  [][]byte{[]byte("the")},
		LowFreq:   [][]byte{[]byte("quick"), []byte("fox")},
		HighOccur: OccurShould,
		LowOccur:  OccurMust,
	}
	assert.Equal(t, "common(title: high[the]/should low[quick fox]/must)", c.String())
}

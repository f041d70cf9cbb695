package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/searchforge/matchquery/internal/query"
)

func TestCommonTerms_SplitsByFrequency(t *testing.T) {
	f := &fakeField{
		name:      "title",
		tokenized: true,
		freqs:     map[string]float64{"the": 0.8, "fox": 0.2},
	}
	b := newBuilder(DefaultConfig(), &fakeAnalyzer{tokens: tokens(tok("the", 1), tok("fox", 1))}, f, "title")

	q := b.commonTermsQuery("the fox", query.OccurShould, 0.5)
	c, ok := q.(*query.Composite)
	require.True(t, ok)
	require.Len(t, c.HighFreq, 1)
	require.Len(t, c.LowFreq, 1)
	assert.Equal(t, "the", string(c.HighFreq[0]))
	assert.Equal(t, "fox", string(c.LowFreq[0]))
	assert.Equal(t, query.OccurShould, c.HighOccur)
	assert.Equal(t, query.OccurShould, c.LowOccur)
}

func TestCommonTerms_BoundaryFrequencyClassifiesHigh(t *testing.T) {
	// Exactly at the cutoff goes to the high group.
	f := &fakeField{
		name:      "title",
		tokenized: true,
		freqs:     map[string]float64{"the": 0.5, "fox": 0.49999},
	}
	b := newBuilder(DefaultConfig(), &fakeAnalyzer{tokens: tokens(tok("the", 1), tok("fox", 1))}, f, "title")

	c := b.commonTermsQuery("the fox", query.OccurShould, 0.5).(*query.Composite)
	require.Len(t, c.HighFreq, 1)
	assert.Equal(t, "the", string(c.HighFreq[0]))
	require.Len(t, c.LowFreq, 1)
	assert.Equal(t, "fox", string(c.LowFreq[0]))
}

func TestCommonTerms_OccurrenceRulesCarried(t *testing.T) {
	f := &fakeField{
		name:      "title",
		tokenized: true,
		freqs:     map[string]float64{"the": 0.8, "fox": 0.2},
	}
	b := newBuilder(DefaultConfig(), &fakeAnalyzer{tokens: tokens(tok("the", 1), tok("fox", 1))}, f, "title")

	c := b.commonTermsQuery("the fox", query.OccurMust, 0.5).(*query.Composite)
	assert.Equal(t, query.OccurMust, c.HighOccur)
	assert.Equal(t, query.OccurMust, c.LowOccur)
}

func TestCommonTerms_AbortsOnSynonymClause(t *testing.T) {
	// A disjunction clause has no single frequency: the boolean tree
	// comes back unchanged.
	f := &fakeField{name: "title", tokenized: true, freqs: map[string]float64{"fox": 0.2}}
	stream := tokens(tok("fast", 1), tok("quick", 0), tok("fox", 1))
	b := newBuilder(DefaultConfig(), &fakeAnalyzer{tokens: stream}, f, "title")

	q := b.commonTermsQuery("fast fox", query.OccurShould, 0.5)
	bq, ok := q.(*query.Boolean)
	require.True(t, ok)
	require.Len(t, bq.Clauses, 2)
	assert.IsType(t, &query.Disjunction{}, bq.Clauses[0].Query)
}

func TestCommonTerms_AbortsOnFuzzyClause(t *testing.T) {
	f := &fakeField{name: "title", tokenized: true}
	cfg := fuzzyConfig()
	b := newBuilder(cfg, &fakeAnalyzer{tokens: tokens(tok("quick", 1), tok("brown", 1))}, f, "title")

	q := b.commonTermsQuery("quick brown", query.OccurShould, 0.5)
	assert.IsType(t, &query.Boolean{}, q)
}

func TestCommonTerms_SingleTermNotWrapped(t *testing.T) {
	f := &fakeField{name: "title", tokenized: true, freqs: map[string]float64{"fox": 0.2}}
	b := newBuilder(DefaultConfig(), &fakeAnalyzer{tokens: tokens(tok("fox", 1))}, f, "title")

	q := b.commonTermsQuery("fox", query.OccurShould, 0.5)
	assert.IsType(t, &query.Term{}, q)
}

func TestCommonTerms_NilFieldReturnsBoolean(t *testing.T) {
	b := newBuilder(DefaultConfig(), &fakeAnalyzer{tokens: tokens(tok("the", 1), tok("fox", 1))}, nil, "title")

	q := b.commonTermsQuery("the fox", query.OccurShould, 0.5)
	assert.IsType(t, &query.Boolean{}, q)
}

func TestCommonTerms_EmptyStreamYieldsSentinel(t *testing.T) {
	f := &fakeField{name: "title", tokenized: true}
	b := newBuilder(DefaultConfig(), &fakeAnalyzer{}, f, "title")

	assert.Nil(t, b.commonTermsQuery("", query.OccurShould, 0.5))
}

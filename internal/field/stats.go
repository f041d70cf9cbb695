package field

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// FrequencySource supplies per-term document frequency ratios in [0, 1].
// Sources must be reentrant: translation calls share them read-only.
type FrequencySource interface {
	DocFrequencyRatio(term []byte) float64
}

// StaticFrequencies is a fixed in-memory frequency table. Terms absent
// from the table have frequency 0.
type StaticFrequencies map[string]float64

// DocFrequencyRatio looks the term up in the table.
func (s StaticFrequencies) DocFrequencyRatio(term []byte) float64 {
	return s[string(term)]
}

// CachedFrequencies fronts an expensive frequency lookup (an index
// reader, a remote stats service) with an LRU so repeated terms inside
// and across translations hit memory. The translator assumes frequency
// lookups are synchronous and cheap; this is what makes them cheap.
type CachedFrequencies struct {
	cache  *lru.Cache[string, float64]
	lookup func(term string) float64
}

// NewCachedFrequencies builds a caching source over lookup with at most
// size cached terms.
func NewCachedFrequencies(size int, lookup func(term string) float64) (*CachedFrequencies, error) {
	cache, err := lru.New[string, float64](size)
	if err != nil {
		return nil, err
	}
	return &CachedFrequencies{cache: cache, lookup: lookup}, nil
}

// DocFrequencyRatio returns the cached ratio, consulting the underlying
// lookup on a miss.
func (c *CachedFrequencies) DocFrequencyRatio(term []byte) float64 {
	key := string(term)
	if ratio, ok := c.cache.Get(key); ok {
		return ratio
	}
	ratio := c.lookup(key)
	c.cache.Add(key, ratio)
	return ratio
}

// Len returns the number of cached terms.
func (c *CachedFrequencies) Len() int { return c.cache.Len() }

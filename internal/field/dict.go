package field

import (
	"sort"
	"strings"
)

// TermDict is a sorted, immutable term dictionary used for build-time
// prefix expansion.
type TermDict struct {
	terms []string
}

// NewTermDict builds a dictionary from the given terms, sorted and
// deduplicated.
func NewTermDict(terms ...string) *TermDict {
	sorted := make([]string, len(terms))
	copy(sorted, terms)
	sort.Strings(sorted)

	deduped := sorted[:0]
	for i, t := range sorted {
		if i == 0 || sorted[i-1] != t {
			deduped = append(deduped, t)
		}
	}
	return &TermDict{terms: deduped}
}

// Len returns the number of terms in the dictionary.
func (d *TermDict) Len() int { return len(d.terms) }

// TermsWithPrefix returns up to max terms starting with prefix, in
// lexicographic order. A non-positive max returns nil.
func (d *TermDict) TermsWithPrefix(prefix []byte, max int) [][]byte {
	if max <= 0 {
		return nil
	}
	p := string(prefix)
	start := sort.SearchStrings(d.terms, p)

	var out [][]byte
	for i := start; i < len(d.terms) && len(out) < max; i++ {
		if !strings.HasPrefix(d.terms[i], p) {
			break
		}
		out = append(out, []byte(d.terms[i]))
	}
	return out
}

package analysis

import (
	"sync"

	// Imported for their registry side effects: each registers its
	// analyzer constructor under the name resolved below.
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/simple"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/web"
	"github.com/blevesearch/bleve/v2/registry"

	"github.com/searchforge/matchquery/internal/errors"
)

// Built-in analyzer names resolvable through every Registry.
const (
	StandardName = standard.Name
	SimpleName   = simple.Name
	KeywordName  = keyword.Name
	WebName      = web.Name
)

// Registry resolves analyzers by name. Lookups consult locally
// registered analyzers first, then bleve's analyzer registry.
//
// A Registry is safe for concurrent lookups; Register calls must finish
// before translation begins.
type Registry struct {
	mu     sync.RWMutex
	cache  *registry.Cache
	custom map[string]Analyzer
}

// NewRegistry creates a registry backed by a fresh bleve analyzer cache.
func NewRegistry() *Registry {
	return &Registry{
		cache:  registry.NewCache(),
		custom: make(map[string]Analyzer),
	}
}

// Register installs a custom analyzer under the given name, shadowing
// any bleve analyzer with the same name.
func (r *Registry) Register(name string, a Analyzer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.custom[name] = a
}

// Named resolves an analyzer by name.
func (r *Registry) Named(name string) (Analyzer, error) {
	r.mu.RLock()
	if a, ok := r.custom[name]; ok {
		r.mu.RUnlock()
		return a, nil
	}
	r.mu.RUnlock()

	inner, err := r.cache.AnalyzerNamed(name)
	if err != nil {
		return nil, errors.AnalyzerError("no analyzer found for ["+name+"]", err)
	}
	return NewBleveAnalyzer(name, inner), nil
}

// Default returns the standard analyzer (unicode tokenization,
// lowercasing, english stop word removal).
func (r *Registry) Default() Analyzer {
	a, err := r.Named(StandardName)
	if err != nil {
		// The standard analyzer is statically registered; failing to
		// resolve it means the registry itself is broken.
		panic(err)
	}
	return a
}

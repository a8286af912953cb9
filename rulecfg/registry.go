package rulecfg

import (
	"sort"
	"sync"

	"github.com/rmarchant/highlite/highlight"
)

// Registry holds named rule sets. It is the one shared, mutable piece
// of rule configuration, so it carries its own lock; everything else in
// the pipeline treats rule sets as immutable values.
type Registry struct {
	mu   sync.RWMutex
	sets map[string]highlight.RuleSet
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{sets: make(map[string]highlight.RuleSet)}
}

// Register adds or replaces a named rule set.
func (r *Registry) Register(name string, rules highlight.RuleSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sets[name] = rules
}

// RegisterAll adds or replaces every entry of sets.
func (r *Registry) RegisterAll(sets map[string]highlight.RuleSet) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for name, rules := range sets {
		r.sets[name] = rules
	}
}

// Get returns the rule set registered under name.
func (r *Registry) Get(name string) (highlight.RuleSet, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rules, ok := r.sets[name]
	return rules, ok
}

// Names returns all registered names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

package check

import "sync"

// Registry holds all registered rules. Registration order is
// preserved: the detector reports findings in the order rules were
// registered, independent of their position in the file.
type Registry struct {
	mu     sync.RWMutex
	byKind map[IssueKind]Rule
	byName map[string]Rule
	order  []IssueKind
}

// NewRegistry creates an empty rule registry.
func NewRegistry() *Registry {
	return &Registry{
		byKind: make(map[IssueKind]Rule),
		byName: make(map[string]Rule),
	}
}

// Register adds a rule to the registry. Registering a second rule for
// the same kind replaces the first but keeps its position.
func (r *Registry) Register(rule Rule) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byKind[rule.Kind()]; !exists {
		r.order = append(r.order, rule.Kind())
	}
	r.byKind[rule.Kind()] = rule
	r.byName[rule.Name()] = rule
}

// ByKind retrieves the rule registered for the given kind.
func (r *Registry) ByKind(kind IssueKind) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byKind[kind]
	return rule, ok
}

// ByName retrieves a rule by its human-readable name.
func (r *Registry) ByName(name string) (Rule, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.byName[name]
	return rule, ok
}

// Rules returns all registered rules in registration order.
func (r *Registry) Rules() []Rule {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]Rule, 0, len(r.order))
	for _, kind := range r.order {
		result = append(result, r.byKind[kind])
	}
	return result
}

// Names returns all registered rule names in registration order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]string, 0, len(r.order))
	for _, kind := range r.order {
		result = append(result, r.byKind[kind].Name())
	}
	return result
}

// DefaultRegistry is the global registry for built-in rules.
// Rules register themselves during init().
//
//nolint:gochecknoglobals // Global registry is intentional for rule registration
var DefaultRegistry = NewRegistry()

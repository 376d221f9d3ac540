// Package schema declares every entity's table and indexes exactly once, in
// a process-wide registry, and runs the idempotent migrations derived from
// those declarations.
package schema

import (
	"sort"
	"sync"
)

// Index is one named index over a model's table. CreateSQL must be safe to
// re-run against a database that already has the index; DropSQL must be safe
// against one that does not.
type Index struct {
	Name      string
	Field     string // natural-key field reported on duplicate-key conflicts
	Unique    bool
	CreateSQL string
	DropSQL   string
}

// Model binds an entity name to its table and index declarations.
type Model struct {
	Name      string
	Table     string
	CreateSQL string
	DropSQL   string
	Indexes   []Index
}

// Registry holds every declared model, keyed by entity name. It is created
// once at process start and torn down only at process exit.
type Registry struct {
	mu     sync.RWMutex
	models map[string]*Model
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry with every entity registered.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry()
		registerModels(defaultRegistry)
	})
	return defaultRegistry
}

func NewRegistry() *Registry {
	return &Registry{models: make(map[string]*Model)}
}

// GetOrCreate returns the already-registered model for name, or registers
// the one produced by build. Registering the same name twice is a no-op and
// always yields the first registration.
func (r *Registry) GetOrCreate(name string, build func() *Model) *Model {
	r.mu.RLock()
	if m, ok := r.models[name]; ok {
		r.mu.RUnlock()
		return m
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if m, ok := r.models[name]; ok {
		return m
	}
	m := build()
	r.models[name] = m
	return m
}

// Get returns the registered model for name, or nil.
func (r *Registry) Get(name string) *Model {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.models[name]
}

// All returns every registered model in a stable order.
func (r *Registry) All() []*Model {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.models))
	for name := range r.models {
		names = append(names, name)
	}
	sort.Strings(names)
	out := make([]*Model, 0, len(names))
	for _, name := range names {
		out = append(out, r.models[name])
	}
	return out
}

// ConstraintField resolves a violated unique constraint name to the entity
// and natural-key field it protects. Primary keys and unknown constraints
// return ok=false.
func (r *Registry) ConstraintField(constraint string) (entity, field string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.models {
		for _, idx := range m.Indexes {
			if idx.Unique && idx.Name == constraint {
				return m.Name, idx.Field, true
			}
		}
	}
	return "", "", false
}

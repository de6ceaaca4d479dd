package helper

import (
	"sort"
	"sync"

	"github.com/Fmanuel809/validra-sub002/pkg/verrors"
)

// Registry holds all registered helpers, keyed by name.
type Registry struct {
	mu         sync.RWMutex
	entries    map[string]Entry
	byCategory map[string][]Entry
}

// globalRegistry is the process-wide catalogue populated by this package's
// init() functions. The helper catalogue is read-only once built, so
// multiple engines may share it safely.
var globalRegistry = NewRegistry()

// NewRegistry creates an empty helper registry.
func NewRegistry() *Registry {
	return &Registry{
		entries:    make(map[string]Entry),
		byCategory: make(map[string][]Entry),
	}
}

// Register adds a helper to the registry. Returns an error if the name is
// already registered.
func (r *Registry) Register(e Entry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.entries[e.Name]; exists {
		return verrors.InvalidRule("helper \"" + e.Name + "\" already registered")
	}

	r.entries[e.Name] = e
	r.byCategory[e.Category] = append(r.byCategory[e.Category], e)
	return nil
}

// List returns helper metadata views ordered by category, then name. No
// resolver, params, or async flag leaks through this surface.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.entries))
	for _, e := range r.entries {
		infos = append(infos, e.info())
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Category != infos[j].Category {
			return infos[i].Category < infos[j].Category
		}
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Resolve returns the executable schema for a helper name. Fails with
// verrors.HelperNotFound when the name is absent.
func (r *Registry) Resolve(name string) (ResolverSchema, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.entries[name]
	if !ok {
		return ResolverSchema{}, verrors.HelperNotFound("helper \"" + name + "\" not found")
	}
	return e.schema(), nil
}

// Count returns the number of registered helpers.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// Categories returns all distinct category names, sorted.
func (r *Registry) Categories() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cats := make([]string, 0, len(r.byCategory))
	for c := range r.byCategory {
		cats = append(cats, c)
	}
	sort.Strings(cats)
	return cats
}

// Register adds a helper to the global registry. Intended to be called from
// init() in the category files of this package.
func Register(e Entry) {
	if err := globalRegistry.Register(e); err != nil {
		panic(err)
	}
}

// Global returns the process-wide helper registry.
func Global() *Registry {
	return globalRegistry
}

// List returns helper metadata from the global registry.
func List() []Info {
	return globalRegistry.List()
}

// Resolve looks up a helper by name in the global registry.
func Resolve(name string) (ResolverSchema, error) {
	return globalRegistry.Resolve(name)
}

// Count returns the helper count from the global registry.
func Count() int {
	return globalRegistry.Count()
}

// Package resolver manages the available remote-resolution backends.
package resolver

import (
	"fmt"
	"sort"

	"github.com/gitsleuth/gitsleuth/domain"
)

// Options holds the settings a backend may need at construction time.
type Options struct {
	// GitCommand is the command name or path of the git binary. Only used
	// by backends that shell out.
	GitCommand string
}

// Factory is a constructor function that creates a Resolver from options.
type Factory func(opts Options) domain.Resolver

// Registry manages all registered resolver backend implementations.
type Registry struct {
	backends map[string]Factory
}

// NewRegistry creates an empty resolver registry.
func NewRegistry() *Registry {
	return &Registry{
		backends: make(map[string]Factory),
	}
}

// Register adds a backend factory under the given name (e.g. "gitcli").
func (r *Registry) Register(name string, factory Factory) {
	r.backends[name] = factory
}

// Get returns a configured resolver instance for the given backend name.
func (r *Registry) Get(name string, opts Options) (domain.Resolver, error) {
	factory, ok := r.backends[name]
	if !ok {
		return nil, fmt.Errorf("unknown resolver backend: %q", name)
	}
	return factory(opts), nil
}

// Names returns the sorted list of registered backend names.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.backends))
	for name := range r.backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

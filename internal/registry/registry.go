package registry

import (
	"sort"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

// Module is the interface that every compiled-in pack must implement to be registered.
type Module interface {
	Register(r *Registry)
}

// Registry holds all the registered packs for a single application instance.
type Registry struct {
	packs map[string]*puzzle.Pack
}

// New creates and initializes a new Registry instance.
func New() *Registry {
	return &Registry{
		packs: make(map[string]*puzzle.Pack),
	}
}

// Pack looks up a pack by name.
func (r *Registry) Pack(name string) (*puzzle.Pack, bool) {
	p, ok := r.packs[name]
	return p, ok
}

// Packs returns a copy of the name to pack mapping.
func (r *Registry) Packs() map[string]*puzzle.Pack {
	out := make(map[string]*puzzle.Pack, len(r.packs))
	for name, p := range r.packs {
		out[name] = p
	}
	return out
}

// Names returns the registered pack names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.packs))
	for name := range r.packs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

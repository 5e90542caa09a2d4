package registry

import (
	"fmt"
	"log/slog"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

// RegisterPack adds a pack to the registry. Registering a nil pack or a
// second pack under the same name is a programming error and panics.
func (r *Registry) RegisterPack(p *puzzle.Pack) {
	if p == nil {
		panic("cannot register a nil pack")
	}
	if _, exists := r.packs[p.Name]; exists {
		panic(fmt.Sprintf("pack with name '%s' already registered", p.Name))
	}
	slog.Debug("Registering pack.", "name", p.Name, "days", len(p.Days()))
	r.packs[p.Name] = p
}

// ReplacePack swaps a registered pack for another with the same name. It is
// used to apply settings such as input layouts after registration.
func (r *Registry) ReplacePack(p *puzzle.Pack) {
	if p == nil {
		panic("cannot register a nil pack")
	}
	if _, exists := r.packs[p.Name]; !exists {
		panic(fmt.Sprintf("pack with name '%s' is not registered", p.Name))
	}
	r.packs[p.Name] = p
}

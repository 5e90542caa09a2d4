package testutil

import (
	"github.com/specialistvlad/daypack/internal/puzzle"
	"github.com/specialistvlad/daypack/internal/registry"
)

// SimpleModule is a test helper for easily creating a mock module that
// registers one or more in-memory packs.
type SimpleModule struct {
	Packs []*puzzle.Pack
}

// Register implements the registry.Module interface.
func (m *SimpleModule) Register(r *registry.Registry) {
	for _, p := range m.Packs {
		r.RegisterPack(p)
	}
}

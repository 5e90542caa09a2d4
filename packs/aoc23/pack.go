package aoc23

import (
	"github.com/specialistvlad/daypack/internal/puzzle"
	"github.com/specialistvlad/daypack/internal/registry"
)

// Name is the name the pack is registered under.
const Name = "aoc23"

// Pack builds the aoc23 pack with every day in order.
func Pack() *puzzle.Pack {
	return puzzle.NewPack(Name,
		day01(), day02(), day03(), day04(), day05(),
		day06(), day07(), day08(), day09(), day10(),
		day11(), day12(), day13(), day14(), day15(),
		day16(), day17(), day18(), day19(), day20(),
		day21(), day22(), day23(), day24(), day25(),
	)
}

// Module registers the aoc23 pack.
type Module struct{}

// Register implements the registry.Module interface.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPack(Pack())
}

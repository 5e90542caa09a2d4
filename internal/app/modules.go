package app

import (
	"github.com/specialistvlad/daypack/internal/registry"
	"github.com/specialistvlad/daypack/packs/aoc23"
	"github.com/specialistvlad/daypack/packs/euler"
)

// coreModules is the definitive list of all packs that are compiled into
// the daypack binary.
var coreModules = []registry.Module{
	&aoc23.Module{},
	&euler.Module{},
}

package euler

import (
	"github.com/specialistvlad/daypack/internal/puzzle"
	"github.com/specialistvlad/daypack/internal/registry"
)

// Name is the name the pack is registered under.
const Name = "euler"

func problem(name string, fn func(n int) int) *puzzle.Day {
	return puzzle.NewDay(name, puzzle.Part(1, answer(fn)))
}

// Pack builds the euler pack.
func Pack() *puzzle.Pack {
	return puzzle.NewPack(Name,
		problem("problem001", multiplesOf3Or5),
		problem("problem002", evenFibonacci),
		problem("problem003", largestPrimeFactor),
		problem("problem004", largestPalindromeProduct),
		problem("problem005", smallestMultiple),
		problem("problem006", sumSquareDifference),
		problem("problem007", nthPrime),
		problem("problem010", primeSum),
	)
}

// Module registers the euler pack.
type Module struct{}

// Register implements the registry.Module interface.
func (m *Module) Register(r *registry.Registry) {
	r.RegisterPack(Pack())
}

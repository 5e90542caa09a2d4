package aoc23

import (
	"strconv"

	"github.com/specialistvlad/daypack/internal/grid"
	"github.com/specialistvlad/daypack/internal/puzzle"
	"github.com/specialistvlad/daypack/internal/shortest"
)

const (
	gardenSteps         = 64
	infiniteGardenSteps = 26501365
)

func day21() *puzzle.Day {
	return puzzle.NewDay("day21",
		puzzle.Part(1, func(lines []string) string {
			return strconv.Itoa(reachable(grid.MustNew(lines), gardenSteps, false))
		}),
		puzzle.Part(2, func(lines []string) string {
			return strconv.Itoa(reachableInfinite(grid.MustNew(lines), infiniteGardenSteps))
		}),
	)
}

// reachable counts the plots the elf can stand on after exactly steps
// steps. A plot reached in d <= steps steps counts when d has the parity of
// steps, since the elf can step back and forth. With infinite set the map
// repeats in every direction.
func reachable(g *grid.Grid, steps int, infinite bool) int {
	start, ok := g.Find('S')
	puzzle.Assertf(ok, "no start")

	open := func(p grid.Point) bool {
		if infinite {
			return g.Wrapped(p) != '#'
		}
		b, ok := g.Get(p)
		return ok && b != '#'
	}
	next := func(p grid.Point) []grid.Point {
		out := make([]grid.Point, 0, 4)
		for _, d := range grid.Conn4 {
			if q := p.Add(d); open(q) {
				out = append(out, q)
			}
		}
		return out
	}

	count := 0
	for _, d := range shortest.BFS(start, next, steps) {
		if d%2 == steps%2 {
			count++
		}
	}
	return count
}

// reachableInfinite extrapolates reachable on the infinite map. With a
// square map, a centred start and steps landing on a map edge, the count
// grows quadratically in the number of maps crossed.
func reachableInfinite(g *grid.Grid, steps int) int {
	size := g.Height
	puzzle.Assertf(g.Width == size, "assumed square map but is %dx%d", g.Height, g.Width)
	half := size / 2
	start, _ := g.Find('S')
	puzzle.Assertf(start == grid.Point{R: half, C: half}, "assumed start would be in the middle")
	puzzle.Assertf((steps-half)%size == 0, "assumed steps would end on a map edge")

	var f [4]int
	for i := range f {
		f[i] = reachable(g, half+i*size, true)
	}
	puzzle.Assertf(f[3]-3*f[2]+3*f[1]-f[0] == 0, "assumed exact quadratic growth")

	x := (steps - half) / size
	return f[0] + x*(f[1]-f[0]) + x*(x-1)/2*(f[2]-2*f[1]+f[0])
}

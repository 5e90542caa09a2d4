package aoc23

import (
	"strconv"

	"github.com/specialistvlad/daypack/internal/grid"
	"github.com/specialistvlad/daypack/internal/puzzle"
	"github.com/specialistvlad/daypack/internal/shortest"
)

func day16() *puzzle.Day {
	return puzzle.NewDay("day16",
		puzzle.Part(1, func(lines []string) string {
			return strconv.Itoa(energized(grid.MustNew(lines), beam{grid.Point{}, grid.East}))
		}),
		puzzle.Part(2, bestEnergized),
	)
}

// beam is light entering tile at travelling in direction dir.
type beam struct {
	at, dir grid.Point
}

// deflect returns the directions light leaves tile with when it enters going dir.
func deflect(tile byte, dir grid.Point) []grid.Point {
	switch tile {
	case '.':
		return []grid.Point{dir}
	case '/':
		if dir.R == 0 {
			return []grid.Point{dir.TurnLeft()}
		}
		return []grid.Point{dir.TurnRight()}
	case '\\':
		if dir.R == 0 {
			return []grid.Point{dir.TurnRight()}
		}
		return []grid.Point{dir.TurnLeft()}
	case '|':
		if dir.R == 0 {
			return []grid.Point{grid.North, grid.South}
		}
		return []grid.Point{dir}
	case '-':
		if dir.C == 0 {
			return []grid.Point{grid.East, grid.West}
		}
		return []grid.Point{dir}
	default:
		puzzle.Failf("unknown tile %q", tile)
		return nil
	}
}

func energized(g *grid.Grid, start beam) int {
	next := func(b beam) []beam {
		var out []beam
		for _, d := range deflect(g.At(b.at), b.dir) {
			if q := b.at.Add(d); g.InBounds(q) {
				out = append(out, beam{q, d})
			}
		}
		return out
	}
	tiles := make(map[grid.Point]struct{})
	for b := range shortest.BFS(start, next, -1) {
		tiles[b.at] = struct{}{}
	}
	return len(tiles)
}

func bestEnergized(lines []string) string {
	g := grid.MustNew(lines)
	best := 0
	for r := 0; r < g.Height; r++ {
		best = max(best,
			energized(g, beam{grid.Point{R: r, C: 0}, grid.East}),
			energized(g, beam{grid.Point{R: r, C: g.Width - 1}, grid.West}))
	}
	for c := 0; c < g.Width; c++ {
		best = max(best,
			energized(g, beam{grid.Point{R: 0, C: c}, grid.South}),
			energized(g, beam{grid.Point{R: g.Height - 1, C: c}, grid.North}))
	}
	return strconv.Itoa(best)
}

package aoc23

import (
	"strconv"

	"github.com/specialistvlad/daypack/internal/grid"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day14() *puzzle.Day {
	return puzzle.NewDay("day14",
		puzzle.Part(1, func(lines []string) string {
			g := grid.MustNew(lines)
			tilt(g, grid.North)
			return strconv.Itoa(northLoad(g))
		}),
		puzzle.Part(2, func(lines []string) string {
			return strconv.Itoa(loadAfterSpins(grid.MustNew(lines), 1_000_000_000))
		}),
	)
}

// tilt rolls every round rock as far as it goes in direction dir.
func tilt(g *grid.Grid, dir grid.Point) {
	// Visit cells closest to the destination edge first.
	rows, cols := make([]int, g.Height), make([]int, g.Width)
	for i := range rows {
		rows[i] = i
		if dir == grid.South {
			rows[i] = g.Height - 1 - i
		}
	}
	for i := range cols {
		cols[i] = i
		if dir == grid.East {
			cols[i] = g.Width - 1 - i
		}
	}
	for _, r := range rows {
		for _, c := range cols {
			p := grid.Point{R: r, C: c}
			if g.At(p) != 'O' {
				continue
			}
			q := p
			for next := q.Add(dir); g.InBounds(next) && g.At(next) == '.'; next = next.Add(dir) {
				q = next
			}
			g.Set(p, '.')
			g.Set(q, 'O')
		}
	}
}

func northLoad(g *grid.Grid) int {
	load := 0
	for _, p := range g.FindAll('O') {
		load += g.Height - p.R
	}
	return load
}

// loadAfterSpins runs spin cycles (north, west, south, east) and skips ahead
// once the platform repeats a previous state.
func loadAfterSpins(g *grid.Grid, spins int) int {
	seen := map[string]int{g.String(): 0}
	var loads []int
	loads = append(loads, northLoad(g))
	for i := 1; i <= spins; i++ {
		for _, d := range []grid.Point{grid.North, grid.West, grid.South, grid.East} {
			tilt(g, d)
		}
		key := g.String()
		if first, ok := seen[key]; ok {
			period := i - first
			return loads[first+(spins-first)%period]
		}
		seen[key] = i
		loads = append(loads, northLoad(g))
	}
	return loads[spins]
}

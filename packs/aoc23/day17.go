package aoc23

import (
	"strconv"

	"github.com/specialistvlad/daypack/internal/grid"
	"github.com/specialistvlad/daypack/internal/puzzle"
	"github.com/specialistvlad/daypack/internal/shortest"
)

func day17() *puzzle.Day {
	return puzzle.NewDay("day17",
		puzzle.Part(1, func(lines []string) string { return strconv.Itoa(leastHeatLoss(lines, 1, 3)) }),
		puzzle.Part(2, func(lines []string) string { return strconv.Itoa(leastHeatLoss(lines, 4, 10)) }),
	)
}

// crucible is a position reached at the end of a straight run. The next run
// must turn, so only the axis of the last run matters.
type crucible struct {
	at       grid.Point
	vertical bool
}

// leastHeatLoss finds the cheapest route from the top-left to the
// bottom-right block when every straight run is minRun to maxRun blocks long.
func leastHeatLoss(lines []string, minRun, maxRun int) int {
	g := grid.MustNew(lines)
	goal := grid.Point{R: g.Height - 1, C: g.Width - 1}

	next := func(c crucible) []shortest.Edge[crucible] {
		dirs := []grid.Point{grid.North, grid.South}
		if c.vertical {
			dirs = []grid.Point{grid.East, grid.West}
		}
		var out []shortest.Edge[crucible]
		for _, d := range dirs {
			cost := 0
			p := c.at
			for run := 1; run <= maxRun; run++ {
				p = p.Add(d)
				if !g.InBounds(p) {
					break
				}
				cost += int(g.At(p) - '0')
				if run >= minRun {
					out = append(out, shortest.Edge[crucible]{To: crucible{p, d.C == 0}, Cost: cost})
				}
			}
		}
		return out
	}

	starts := []crucible{{grid.Point{}, true}, {grid.Point{}, false}}
	loss, ok := shortest.Dijkstra(starts, next, func(c crucible) bool { return c.at == goal })
	puzzle.Assertf(ok, "no path found")
	return loss
}

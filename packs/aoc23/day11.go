package aoc23

import (
	"strconv"

	"github.com/specialistvlad/daypack/internal/grid"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day11() *puzzle.Day {
	return puzzle.NewDay("day11",
		puzzle.Part(1, func(lines []string) string { return strconv.Itoa(galaxyDistances(lines, 2)) }),
		puzzle.Part(2, func(lines []string) string { return strconv.Itoa(galaxyDistances(lines, 1_000_000)) }),
	)
}

// galaxyDistances sums the pairwise distances between galaxies after every
// empty row and column has grown to factor rows or columns.
func galaxyDistances(lines []string, factor int) int {
	g := grid.MustNew(lines)
	galaxies := g.FindAll('#')

	rowUsed := make([]bool, g.Height)
	colUsed := make([]bool, g.Width)
	for _, p := range galaxies {
		rowUsed[p.R] = true
		colUsed[p.C] = true
	}
	expanded := func(used []bool) []int {
		pos := make([]int, len(used))
		at := 0
		for i, u := range used {
			pos[i] = at
			if u {
				at++
			} else {
				at += factor
			}
		}
		return pos
	}
	rows, cols := expanded(rowUsed), expanded(colUsed)

	total := 0
	for i, a := range galaxies {
		for _, b := range galaxies[i+1:] {
			pa := grid.Point{R: rows[a.R], C: cols[a.C]}
			pb := grid.Point{R: rows[b.R], C: cols[b.C]}
			total += pa.Manhattan(pb)
		}
	}
	return total
}

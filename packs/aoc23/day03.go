package aoc23

import (
	"strconv"

	"github.com/specialistvlad/daypack/internal/grid"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day03() *puzzle.Day {
	return puzzle.NewDay("day03",
		puzzle.Part(1, partNumberSum),
		puzzle.Part(2, gearRatioSum),
	)
}

type partNumber struct {
	value int
	row   int
	start int
	end   int // exclusive
}

// adjacent reports whether p touches the number, diagonals included.
func (n partNumber) adjacent(p grid.Point) bool {
	return p.R >= n.row-1 && p.R <= n.row+1 && p.C >= n.start-1 && p.C <= n.end
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isSymbol(b byte) bool { return b != '.' && !isDigit(b) }

func scanSchematic(lines []string) (*grid.Grid, []partNumber) {
	g := grid.MustNew(lines)
	var nums []partNumber
	for r := 0; r < g.Height; r++ {
		row := g.Row(r)
		for c := 0; c < len(row); {
			if !isDigit(row[c]) {
				c++
				continue
			}
			start := c
			for c < len(row) && isDigit(row[c]) {
				c++
			}
			nums = append(nums, partNumber{value: puzzle.MustInt(row[start:c]), row: r, start: start, end: c})
		}
	}
	return g, nums
}

func partNumberSum(lines []string) string {
	g, nums := scanSchematic(lines)
	sum := 0
	for _, n := range nums {
	search:
		for r := n.row - 1; r <= n.row+1; r++ {
			for c := n.start - 1; c <= n.end; c++ {
				if b, ok := g.Get(grid.Point{R: r, C: c}); ok && isSymbol(b) {
					sum += n.value
					break search
				}
			}
		}
	}
	return strconv.Itoa(sum)
}

func gearRatioSum(lines []string) string {
	g, nums := scanSchematic(lines)
	sum := 0
	for _, star := range g.FindAll('*') {
		var touching []int
		for _, n := range nums {
			if n.adjacent(star) {
				touching = append(touching, n.value)
			}
		}
		if len(touching) == 2 {
			sum += touching[0] * touching[1]
		}
	}
	return strconv.Itoa(sum)
}

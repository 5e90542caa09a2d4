package aoc23

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/grid"
	"github.com/specialistvlad/daypack/internal/mathx"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day18() *puzzle.Day {
	return puzzle.NewDay("day18",
		puzzle.Part(1, func(lines []string) string { return strconv.Itoa(lagoonSize(lines, digStep)) }),
		puzzle.Part(2, func(lines []string) string { return strconv.Itoa(lagoonSize(lines, colorStep)) }),
	)
}

var digDirs = map[string]grid.Point{"U": grid.North, "D": grid.South, "L": grid.West, "R": grid.East}

func digStep(line string) (grid.Point, int) {
	f := strings.Fields(line)
	puzzle.Assertf(len(f) == 3, "malformed dig step %q", line)
	d, ok := digDirs[f[0]]
	puzzle.Assertf(ok, "invalid direction %q", f[0])
	return d, puzzle.MustInt(f[1])
}

// colorStep decodes the step hidden in the hex color: five digits of length
// followed by a direction digit.
func colorStep(line string) (grid.Point, int) {
	f := strings.Fields(line)
	puzzle.Assertf(len(f) == 3, "malformed dig step %q", line)
	hex := strings.Trim(f[2], "(#)")
	puzzle.Assertf(len(hex) == 6, "invalid color %q", f[2])
	n := puzzle.Must(strconv.ParseInt(hex[:5], 16, 64))
	dirs := []grid.Point{grid.East, grid.South, grid.West, grid.North}
	i := int(hex[5] - '0')
	puzzle.Assertf(i >= 0 && i < len(dirs), "invalid direction digit in %q", f[2])
	return dirs[i], int(n)
}

// lagoonSize counts the cubes dug out: the polygon interior plus its trench,
// which adds half a cube per boundary cube and one for the corners.
func lagoonSize(lines []string, decode func(string) (grid.Point, int)) int {
	var xs, ys []int
	p := grid.Point{}
	perimeter := 0
	for _, line := range lines {
		d, n := decode(line)
		p = p.Add(d.Scale(n))
		xs, ys = append(xs, p.C), append(ys, p.R)
		perimeter += n
	}
	puzzle.Assertf(p == grid.Point{}, "dig plan does not return to the start")
	return mathx.Abs(mathx.Shoelace(xs, ys))/2 + perimeter/2 + 1
}

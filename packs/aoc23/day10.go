package aoc23

import (
	"strconv"

	"github.com/specialistvlad/daypack/internal/grid"
	"github.com/specialistvlad/daypack/internal/mathx"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day10() *puzzle.Day {
	return puzzle.NewDay("day10",
		puzzle.Part(1, func(lines []string) string { return strconv.Itoa(len(traceLoop(lines)) / 2) }),
		puzzle.Part(2, enclosedTiles).WithVariant("2"),
	)
}

var pipeExits = map[byte][2]grid.Point{
	'|': {grid.North, grid.South},
	'-': {grid.East, grid.West},
	'L': {grid.North, grid.East},
	'J': {grid.North, grid.West},
	'7': {grid.South, grid.West},
	'F': {grid.South, grid.East},
}

func connects(pipe byte, dir grid.Point) bool {
	exits, ok := pipeExits[pipe]
	return ok && (exits[0] == dir || exits[1] == dir)
}

// traceLoop follows the pipe loop through S and returns its tiles in order.
func traceLoop(lines []string) []grid.Point {
	g := grid.MustNew(lines)
	start, ok := g.Find('S')
	puzzle.Assertf(ok, "no start tile")

	var dir grid.Point
	found := false
	for _, d := range grid.Conn4 {
		if b, ok := g.Get(start.Add(d)); ok && connects(b, d.Neg()) {
			dir, found = d, true
			break
		}
	}
	puzzle.Assertf(found, "start tile is not connected to any pipe")

	loop := []grid.Point{start}
	for p := start.Add(dir); p != start; p = p.Add(dir) {
		loop = append(loop, p)
		exits, ok := pipeExits[g.At(p)]
		puzzle.Assertf(ok, "loop broken at %v", p)
		switch dir.Neg() {
		case exits[0]:
			dir = exits[1]
		case exits[1]:
			dir = exits[0]
		default:
			puzzle.Failf("pipe at %v does not connect back", p)
		}
		puzzle.Assertf(g.InBounds(p.Add(dir)), "loop leaves the map at %v", p)
	}
	return loop
}

// enclosedTiles counts the tiles inside the loop with Pick's theorem:
// A = i + b/2 - 1, where the area A comes from the shoelace formula.
func enclosedTiles(lines []string) string {
	loop := traceLoop(lines)
	xs, ys := make([]int, len(loop)), make([]int, len(loop))
	for i, p := range loop {
		xs[i], ys[i] = p.C, p.R
	}
	twiceArea := mathx.Abs(mathx.Shoelace(xs, ys))
	return strconv.Itoa((twiceArea-len(loop))/2 + 1)
}

package aoc23

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/grid"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day23() *puzzle.Day {
	return puzzle.NewDay("day23",
		puzzle.Part(1, func(lines []string) string { return strconv.Itoa(longestHike(lines, true)) }),
		puzzle.Part(2, func(lines []string) string { return strconv.Itoa(longestHike(lines, false)) }),
	)
}

var slopes = map[byte]grid.Point{'^': grid.North, '>': grid.East, 'v': grid.South, '<': grid.West}

type trail struct {
	to, length int
}

// trailGraph compresses the map into the junctions where paths fork, plus
// the entrance and the exit, joined by the corridors between them.
type trailGraph struct {
	start, end int
	edges      [][]trail
}

func buildTrailGraph(lines []string, icy bool) trailGraph {
	g := grid.MustNew(lines)
	start := grid.Point{R: 0, C: strings.IndexByte(lines[0], '.')}
	end := grid.Point{R: g.Height - 1, C: strings.IndexByte(lines[g.Height-1], '.')}
	puzzle.Assertf(start.C >= 0 && end.C >= 0, "no entrance or exit")

	open := func(p grid.Point) bool {
		b, ok := g.Get(p)
		return ok && b != '#'
	}
	canStep := func(p, d grid.Point) bool {
		if !open(p.Add(d)) {
			return false
		}
		b := g.At(p)
		if b == '.' || !icy {
			return true
		}
		slope, ok := slopes[b]
		puzzle.Assertf(ok, "unknown tile %q at %v", b, p)
		return slope == d
	}

	ids := map[grid.Point]int{start: 0, end: 1}
	for r := range g.Height {
		for c := range g.Width {
			p := grid.Point{R: r, C: c}
			if !open(p) {
				continue
			}
			exits := 0
			for _, q := range g.Neighbors(p, grid.Conn4) {
				if g.At(q) != '#' {
					exits++
				}
			}
			if _, known := ids[p]; !known && exits > 2 {
				ids[p] = len(ids)
			}
		}
	}

	tg := trailGraph{start: 0, end: 1, edges: make([][]trail, len(ids))}
	for from, id := range ids {
		for _, d := range grid.Conn4 {
			if !canStep(from, d) {
				continue
			}
			prev, cur, length := from, from.Add(d), 1
			for dead := false; !dead; {
				if to, ok := ids[cur]; ok {
					tg.edges[id] = append(tg.edges[id], trail{to: to, length: length})
					break
				}
				dead = true
				for _, nd := range grid.Conn4 {
					if n := cur.Add(nd); n != prev && canStep(cur, nd) {
						prev, cur, dead = cur, n, false
						length++
						break
					}
				}
			}
		}
	}
	return tg
}

// longestHike returns the length of the longest route from the entrance to
// the exit that never visits a tile twice.
func longestHike(lines []string, icy bool) int {
	tg := buildTrailGraph(lines, icy)
	puzzle.Assertf(len(tg.edges) <= 64, "too many junctions: %d", len(tg.edges))

	var walk func(node int, visited uint64) int
	walk = func(node int, visited uint64) int {
		if node == tg.end {
			return 0
		}
		best := -1
		for _, t := range tg.edges[node] {
			if visited&(1<<t.to) != 0 {
				continue
			}
			if rest := walk(t.to, visited|1<<t.to); rest >= 0 {
				best = max(best, rest+t.length)
			}
		}
		return best
	}

	longest := walk(tg.start, 1<<tg.start)
	puzzle.Assertf(longest >= 0, "no route to the exit")
	return longest
}

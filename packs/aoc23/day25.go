package aoc23

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

const wiresToCut = 3

func day25() *puzzle.Day {
	return puzzle.NewDay("day25",
		puzzle.Part(1, splitComponents),
		puzzle.Part(2, func([]string) string { return "Merry Christmas" }),
	)
}

func parseWiring(lines []string) [][]int {
	ids := map[string]int{}
	id := func(name string) int {
		if i, ok := ids[name]; ok {
			return i
		}
		ids[name] = len(ids)
		return ids[name]
	}
	var adj [][]int
	link := func(a, b int) {
		for len(adj) <= max(a, b) {
			adj = append(adj, nil)
		}
		adj[a] = append(adj[a], b)
		adj[b] = append(adj[b], a)
	}
	for _, line := range lines {
		from, to := puzzle.MustCut(line, ": ")
		a := id(from)
		for _, name := range strings.Fields(to) {
			link(a, id(name))
		}
	}
	return adj
}

// augment finds a path from s to t with spare capacity in the unit-capacity
// network and pushes one unit of flow along it. When no such path exists it
// returns the number of components reachable from s instead.
func augment(adj [][]int, flow map[[2]int]int, s, t int) (bool, int) {
	parent := map[int]int{s: s}
	queue := []int{s}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		if u == t {
			for v := t; v != s; v = parent[v] {
				flow[[2]int{parent[v], v}]++
				flow[[2]int{v, parent[v]}]--
			}
			return true, 0
		}
		for _, v := range adj[u] {
			if _, seen := parent[v]; seen || flow[[2]int{u, v}] >= 1 {
				continue
			}
			parent[v] = u
			queue = append(queue, v)
		}
	}
	return false, len(parent)
}

// splitComponents finds the three wires whose removal splits the machine in
// two and multiplies the sizes of both groups. Each component on the other
// side of the cut has a max flow of exactly three from the first component.
func splitComponents(lines []string) string {
	adj := parseWiring(lines)
	puzzle.Assertf(len(adj) > 1, "need at least two components")

	for t := 1; t < len(adj); t++ {
		flow := map[[2]int]int{}
		paths := 0
		for {
			ok, side := augment(adj, flow, 0, t)
			if ok {
				paths++
				if paths > wiresToCut {
					break
				}
				continue
			}
			puzzle.Assertf(paths == wiresToCut, "expected a cut of exactly %d wires, found %d", wiresToCut, paths)
			return strconv.Itoa(side * (len(adj) - side))
		}
	}
	puzzle.Failf("no cut of %d wires splits the machine", wiresToCut)
	return ""
}

package aoc23

import (
	"sort"
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/mathx"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day08() *puzzle.Day {
	return puzzle.NewDay("day08",
		puzzle.Part(1, stepsToZZZ),
		puzzle.Part(2, ghostSteps).WithVariant("2"),
	)
}

type network struct {
	path  string
	nodes map[string][2]string
}

func parseNetwork(lines []string) network {
	puzzle.Assertf(len(lines) > 2 && lines[1] == "", "expected path, blank line and nodes")
	n := network{path: lines[0], nodes: make(map[string][2]string, len(lines)-2)}
	for _, line := range lines[2:] {
		from, to := puzzle.MustCut(line, " = ")
		l, r := puzzle.MustCut(strings.Trim(to, "()"), ", ")
		n.nodes[from] = [2]string{l, r}
	}
	return n
}

func (n network) step(node string, steps int) string {
	next, ok := n.nodes[node]
	puzzle.Assertf(ok, "unknown node %q", node)
	switch n.path[steps%len(n.path)] {
	case 'L':
		return next[0]
	case 'R':
		return next[1]
	default:
		puzzle.Failf("invalid path char %q", n.path[steps%len(n.path)])
		return ""
	}
}

func stepsToZZZ(lines []string) string {
	n := parseNetwork(lines)
	steps := 0
	for node := "AAA"; node != "ZZZ"; steps++ {
		node = n.step(node, steps)
	}
	return strconv.Itoa(steps)
}

// ghostCycle describes a walk that, from step start on, repeats every length
// steps and reaches an end node exactly at steps end, end+length, ...
type ghostCycle struct {
	start, length, end int
}

func findGhostCycle(n network, from string) ghostCycle {
	type state struct {
		node string
		idx  int
	}
	seen := map[state]int{{from, 0}: 0}
	var ends []int
	node := from
	for steps := 0; ; {
		node = n.step(node, steps)
		steps++
		if strings.HasSuffix(node, "Z") {
			ends = append(ends, steps)
		}
		s := state{node, steps % len(n.path)}
		first, ok := seen[s]
		if !ok {
			seen[s] = steps
			continue
		}
		c := ghostCycle{start: first, length: steps - first}
		var inCycle []int
		for _, e := range ends {
			if e >= first && e < steps {
				inCycle = append(inCycle, e)
			}
		}
		puzzle.Assertf(len(inCycle) > 0, "ghost from %s never reaches an end", from)
		// Evenly spaced ends shorten the cycle to one end per period.
		period := c.length / len(inCycle)
		for i, e := range inCycle {
			puzzle.Assertf(c.length%len(inCycle) == 0 && e == inCycle[0]+i*period,
				"expected exactly one end per cycle from %s", from)
		}
		c.length, c.end = period, inCycle[0]
		return c
	}
}

func ghostSteps(lines []string) string {
	n := parseNetwork(lines)
	var starts []string
	for node := range n.nodes {
		if strings.HasSuffix(node, "A") {
			starts = append(starts, node)
		}
	}
	puzzle.Assertf(len(starts) > 0, "no start nodes")
	sort.Strings(starts)

	cycles := make([]ghostCycle, len(starts))
	for i, s := range starts {
		cycles[i] = findGhostCycle(n, s)
	}

	steps, delta := cycles[0].end, cycles[0].length
	for _, c := range cycles[1:] {
		for steps < c.end || (steps-c.end)%c.length != 0 {
			steps += delta
		}
		delta = mathx.LCM(delta, c.length)
	}
	return strconv.Itoa(steps)
}

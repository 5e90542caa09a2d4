package aoc23

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day12() *puzzle.Day {
	return puzzle.NewDay("day12",
		puzzle.Part(1, func(lines []string) string { return springSum(lines, 1) }),
		puzzle.Part(2, func(lines []string) string { return springSum(lines, 5) }),
	)
}

// arrangements counts the ways the unknown springs in row can be filled so
// that the damaged runs match groups.
func arrangements(row string, groups []int) int {
	type key struct{ i, g int }
	memo := make(map[key]int)

	var count func(i, g int) int
	count = func(i, g int) int {
		if g == len(groups) {
			if strings.Contains(row[min(i, len(row)):], "#") {
				return 0
			}
			return 1
		}
		if i >= len(row) {
			return 0
		}
		k := key{i, g}
		if v, ok := memo[k]; ok {
			return v
		}
		n := 0
		if row[i] != '#' {
			n += count(i+1, g)
		}
		if size := groups[g]; i+size <= len(row) &&
			!strings.Contains(row[i:i+size], ".") &&
			(i+size == len(row) || row[i+size] != '#') {
			n += count(i+size+1, g+1)
		}
		memo[k] = n
		return n
	}
	return count(0, 0)
}

func springSum(lines []string, folds int) string {
	total := 0
	for _, line := range lines {
		row, sizes := puzzle.MustCut(line, " ")
		for _, c := range row {
			puzzle.Assertf(c == '.' || c == '#' || c == '?', "invalid spring %q in %q", c, line)
		}
		groups := puzzle.Ints(sizes)

		rows := make([]string, folds)
		var all []int
		for i := range rows {
			rows[i] = row
			all = append(all, groups...)
		}
		total += arrangements(strings.Join(rows, "?"), all)
	}
	return strconv.Itoa(total)
}

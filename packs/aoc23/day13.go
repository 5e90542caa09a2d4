package aoc23

import (
	"strconv"

	"github.com/specialistvlad/daypack/internal/grid"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day13() *puzzle.Day {
	return puzzle.NewDay("day13",
		puzzle.Part(1, func(lines []string) string { return mirrorSummary(lines, 0) }),
		puzzle.Part(2, func(lines []string) string { return mirrorSummary(lines, 1) }),
	)
}

// reflectionRow returns the number of rows above a horizontal mirror line
// across which exactly smudges cells differ, or 0 when there is none.
func reflectionRow(rows []string, smudges int) int {
	for above := 1; above < len(rows); above++ {
		diff := 0
		for i, j := above-1, above; i >= 0 && j < len(rows) && diff <= smudges; i, j = i-1, j+1 {
			for c := range rows[i] {
				if rows[i][c] != rows[j][c] {
					diff++
				}
			}
		}
		if diff == smudges {
			return above
		}
	}
	return 0
}

func mirrorSummary(lines []string, smudges int) string {
	total := 0
	for _, pattern := range puzzle.Sections(lines) {
		if r := reflectionRow(pattern, smudges); r > 0 {
			total += 100 * r
			continue
		}
		c := reflectionRow(grid.Transpose(pattern), smudges)
		puzzle.Assertf(c > 0, "no mirror found in pattern starting %q", pattern[0])
		total += c
	}
	return strconv.Itoa(total)
}

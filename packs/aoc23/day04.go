package aoc23

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day04() *puzzle.Day {
	return puzzle.NewDay("day04",
		puzzle.Part(1, scratchcardPoints),
		puzzle.Part(2, scratchcardCount),
	)
}

// cardMatches returns how many of each card's numbers are winning numbers.
func cardMatches(lines []string) []int {
	out := make([]int, 0, len(lines))
	for _, line := range lines {
		_, numbers := puzzle.MustCut(line, ": ")
		winning, have := puzzle.MustCut(numbers, " | ")
		wins := make(map[int]bool)
		for _, n := range strings.Fields(winning) {
			wins[puzzle.MustInt(n)] = true
		}
		count := 0
		for _, n := range strings.Fields(have) {
			if wins[puzzle.MustInt(n)] {
				count++
			}
		}
		out = append(out, count)
	}
	return out
}

func scratchcardPoints(lines []string) string {
	total := 0
	for _, m := range cardMatches(lines) {
		if m > 0 {
			total += 1 << (m - 1)
		}
	}
	return strconv.Itoa(total)
}

func scratchcardCount(lines []string) string {
	matches := cardMatches(lines)
	copies := make([]int, len(matches))
	total := 0
	for i, m := range matches {
		copies[i]++
		total += copies[i]
		for j := i + 1; j <= i+m && j < len(copies); j++ {
			copies[j] += copies[i]
		}
	}
	return strconv.Itoa(total)
}

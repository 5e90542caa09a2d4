package aoc23

import (
	"strconv"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day09() *puzzle.Day {
	return puzzle.NewDay("day09",
		puzzle.Part(1, func(lines []string) string { return extrapolateAll(lines, false) }),
		puzzle.Part(2, func(lines []string) string { return extrapolateAll(lines, true) }),
	)
}

// extrapolate predicts the next value of seq from its repeated differences.
func extrapolate(seq []int) int {
	allZero := true
	for _, v := range seq {
		allZero = allZero && v == 0
	}
	if allZero {
		return 0
	}
	puzzle.Assertf(len(seq) > 1, "sequence does not converge")
	diffs := make([]int, len(seq)-1)
	for i := range diffs {
		diffs[i] = seq[i+1] - seq[i]
	}
	return seq[len(seq)-1] + extrapolate(diffs)
}

func extrapolateAll(lines []string, backwards bool) string {
	sum := 0
	for _, line := range lines {
		seq := puzzle.Ints(line)
		if backwards {
			for i, j := 0, len(seq)-1; i < j; i, j = i+1, j-1 {
				seq[i], seq[j] = seq[j], seq[i]
			}
		}
		sum += extrapolate(seq)
	}
	return strconv.Itoa(sum)
}

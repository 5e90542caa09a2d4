package aoc23

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day01() *puzzle.Day {
	return puzzle.NewDay("day01",
		puzzle.Part(1, func(lines []string) string { return calibrationSum(lines, false) }),
		puzzle.Part(2, func(lines []string) string { return calibrationSum(lines, true) }).WithVariant("2"),
	)
}

var spelledDigits = []string{"zero", "one", "two", "three", "four", "five", "six", "seven", "eight", "nine"}

// digitsIn returns the digits of line in order. Spelled-out digits may overlap,
// as in "eightwo".
func digitsIn(line string, spelled bool) []int {
	var out []int
	for i, r := range line {
		if unicode.IsDigit(r) {
			out = append(out, int(r-'0'))
			continue
		}
		if !spelled {
			continue
		}
		for d, word := range spelledDigits {
			if strings.HasPrefix(line[i:], word) {
				out = append(out, d)
				break
			}
		}
	}
	return out
}

func calibrationSum(lines []string, spelled bool) string {
	sum := 0
	for _, line := range lines {
		digits := digitsIn(line, spelled)
		puzzle.Assertf(len(digits) > 0, "no digit in line %q", line)
		sum += digits[0]*10 + digits[len(digits)-1]
	}
	return strconv.Itoa(sum)
}

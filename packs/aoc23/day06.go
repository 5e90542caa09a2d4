package aoc23

import (
	"math"
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day06() *puzzle.Day {
	return puzzle.NewDay("day06",
		puzzle.Part(1, func(lines []string) string { return raceProduct(parseRaces(lines), waysToWin) }),
		puzzle.Unit{Label: "Part 1 (fast)", Solve: func(lines []string) string { return raceProduct(parseRaces(lines), waysToWinFast) }},
		puzzle.Part(2, func(lines []string) string { return raceProduct(parseJoinedRace(lines), waysToWin) }),
		puzzle.Unit{Label: "Part 2 (fast)", Solve: func(lines []string) string { return raceProduct(parseJoinedRace(lines), waysToWinFast) }},
	)
}

type race struct {
	time, distance int
}

func parseRaces(lines []string) []race {
	puzzle.Assertf(len(lines) == 2, "expected a time line and a distance line")
	times, dists := puzzle.Ints(lines[0]), puzzle.Ints(lines[1])
	puzzle.Assertf(len(times) == len(dists), "times and distances differ in count")
	out := make([]race, len(times))
	for i := range times {
		out[i] = race{times[i], dists[i]}
	}
	return out
}

// parseJoinedRace reads each line as one number with the spaces removed.
func parseJoinedRace(lines []string) []race {
	puzzle.Assertf(len(lines) == 2, "expected a time line and a distance line")
	join := func(line string) int {
		_, v := puzzle.MustCut(line, ":")
		return puzzle.MustInt(strings.ReplaceAll(v, " ", ""))
	}
	return []race{{join(lines[0]), join(lines[1])}}
}

func raceProduct(races []race, ways func(race) int) string {
	product := 1
	for _, r := range races {
		product *= ways(r)
	}
	return strconv.Itoa(product)
}

// waysToWin tries every hold time.
func waysToWin(r race) int {
	n := 0
	for hold := 0; hold <= r.time; hold++ {
		if hold*(r.time-hold) > r.distance {
			n++
		}
	}
	return n
}

// waysToWinFast solves hold*(time-hold) > distance for the smallest hold and
// counts the winning holds, which are symmetric around time/2.
func waysToWinFast(r race) int {
	disc := float64(r.time*r.time - 4*r.distance)
	if disc < 0 {
		return 0
	}
	beats := func(h int) bool { return h*(r.time-h) > r.distance }
	lo := int(math.Floor((float64(r.time) - math.Sqrt(disc)) / 2))
	// Correct floating point error around the root.
	for lo > 0 && beats(lo-1) {
		lo--
	}
	for lo <= r.time/2 && !beats(lo) {
		lo++
	}
	if lo > r.time/2 {
		return 0
	}
	return r.time - 2*lo + 1
}

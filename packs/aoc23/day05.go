package aoc23

import (
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day05() *puzzle.Day {
	return puzzle.NewDay("day05",
		puzzle.Part(1, lowestSeedLocation),
		puzzle.Part(2, lowestSeedRangeLocation),
	)
}

type almanacRange struct {
	dst, src, n int
}

type almanac struct {
	seeds  []int
	stages [][]almanacRange
}

func parseAlmanac(lines []string) almanac {
	sections := puzzle.Sections(lines)
	puzzle.Assertf(len(sections) > 1, "expected seeds followed by maps")
	_, seeds := puzzle.MustCut(sections[0][0], ": ")
	a := almanac{seeds: puzzle.Ints(seeds)}
	for _, sec := range sections[1:] {
		puzzle.Assertf(strings.HasSuffix(sec[0], "map:"), "expected map header, got %q", sec[0])
		var stage []almanacRange
		for _, line := range sec[1:] {
			v := puzzle.Ints(line)
			puzzle.Assertf(len(v) == 3, "expected three numbers in %q", line)
			stage = append(stage, almanacRange{dst: v[0], src: v[1], n: v[2]})
		}
		a.stages = append(a.stages, stage)
	}
	return a
}

func lowestSeedLocation(lines []string) string {
	a := parseAlmanac(lines)
	best := -1
	for _, v := range a.seeds {
		for _, stage := range a.stages {
			for _, r := range stage {
				if v >= r.src && v < r.src+r.n {
					v = r.dst + v - r.src
					break
				}
			}
		}
		if best < 0 || v < best {
			best = v
		}
	}
	return strconv.Itoa(best)
}

// span is the half-open interval [lo, hi).
type span struct {
	lo, hi int
}

// mapSpans pushes spans through one stage, splitting them at range borders.
func mapSpans(spans []span, stage []almanacRange) []span {
	var out []span
	pending := spans
	for _, r := range stage {
		var rest []span
		srcEnd := r.src + r.n
		for _, s := range pending {
			lo, hi := max(s.lo, r.src), min(s.hi, srcEnd)
			if lo >= hi {
				rest = append(rest, s)
				continue
			}
			out = append(out, span{lo + r.dst - r.src, hi + r.dst - r.src})
			if s.lo < lo {
				rest = append(rest, span{s.lo, lo})
			}
			if hi < s.hi {
				rest = append(rest, span{hi, s.hi})
			}
		}
		pending = rest
	}
	return append(out, pending...)
}

func lowestSeedRangeLocation(lines []string) string {
	a := parseAlmanac(lines)
	puzzle.Assertf(len(a.seeds)%2 == 0, "seed ranges come in pairs")
	var spans []span
	for i := 0; i < len(a.seeds); i += 2 {
		spans = append(spans, span{a.seeds[i], a.seeds[i] + a.seeds[i+1]})
	}
	for _, stage := range a.stages {
		spans = mapSpans(spans, stage)
	}
	lows := make([]int, len(spans))
	for i, s := range spans {
		lows[i] = s.lo
	}
	return strconv.Itoa(slices.Min(lows))
}

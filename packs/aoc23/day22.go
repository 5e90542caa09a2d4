package aoc23

import (
	"slices"
	"strconv"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day22() *puzzle.Day {
	return puzzle.NewDay("day22",
		puzzle.Part(1, safeBricks),
		puzzle.Part(2, chainReactions),
	)
}

type brick struct {
	lo, hi [3]int
}

func parseBricks(lines []string) []brick {
	bricks := make([]brick, 0, len(lines))
	for _, line := range lines {
		v := puzzle.Ints(line)
		puzzle.Assertf(len(v) == 6, "invalid brick %q", line)
		b := brick{lo: [3]int{v[0], v[1], v[2]}, hi: [3]int{v[3], v[4], v[5]}}
		for i := range 3 {
			puzzle.Assertf(b.lo[i] <= b.hi[i], "assumed brick %q would be sorted", line)
		}
		bricks = append(bricks, b)
	}
	return bricks
}

// settle drops every brick as far as it goes and returns, per brick in
// settled order, the indices of the bricks resting directly below it.
// Supporters always come before the bricks they support.
func settle(bricks []brick) [][]int {
	bricks = slices.Clone(bricks)
	slices.SortFunc(bricks, func(a, b brick) int { return a.lo[2] - b.lo[2] })

	type top struct{ z, id int }
	tops := map[[2]int]top{}
	below := make([][]int, len(bricks))
	for i, b := range bricks {
		floor := 0
		for x := b.lo[0]; x <= b.hi[0]; x++ {
			for y := b.lo[1]; y <= b.hi[1]; y++ {
				floor = max(floor, tops[[2]int{x, y}].z)
			}
		}
		height := b.hi[2] - b.lo[2]
		for x := b.lo[0]; x <= b.hi[0]; x++ {
			for y := b.lo[1]; y <= b.hi[1]; y++ {
				cell := [2]int{x, y}
				if t, ok := tops[cell]; ok && t.z == floor && !slices.Contains(below[i], t.id) {
					below[i] = append(below[i], t.id)
				}
				tops[cell] = top{z: floor + 1 + height, id: i}
			}
		}
	}
	return below
}

func safeBricks(lines []string) string {
	below := settle(parseBricks(lines))
	needed := make([]bool, len(below))
	for _, supporters := range below {
		if len(supporters) == 1 {
			needed[supporters[0]] = true
		}
	}
	count := 0
	for _, n := range needed {
		if !n {
			count++
		}
	}
	return strconv.Itoa(count)
}

func chainReactions(lines []string) string {
	below := settle(parseBricks(lines))
	total := 0
	for i := range below {
		fallen := map[int]bool{i: true}
		for j := i + 1; j < len(below); j++ {
			if len(below[j]) == 0 {
				continue
			}
			falls := true
			for _, s := range below[j] {
				if !fallen[s] {
					falls = false
					break
				}
			}
			if falls {
				fallen[j] = true
			}
		}
		total += len(fallen) - 1
	}
	return strconv.Itoa(total)
}

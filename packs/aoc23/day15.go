package aoc23

import (
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day15() *puzzle.Day {
	return puzzle.NewDay("day15",
		puzzle.Part(1, hashSum),
		puzzle.Part(2, focusingPower),
	)
}

func holidayHash(s string) int {
	h := 0
	for i := 0; i < len(s); i++ {
		h = (h + int(s[i])) * 17 % 256
	}
	return h
}

func initSteps(lines []string) []string {
	return strings.Split(strings.Join(lines, ""), ",")
}

func hashSum(lines []string) string {
	sum := 0
	for _, step := range initSteps(lines) {
		sum += holidayHash(step)
	}
	return strconv.Itoa(sum)
}

type lens struct {
	label string
	focal int
}

func focusingPower(lines []string) string {
	var boxes [256][]lens
	for _, step := range initSteps(lines) {
		if label, ok := strings.CutSuffix(step, "-"); ok {
			b := holidayHash(label)
			boxes[b] = slices.DeleteFunc(boxes[b], func(l lens) bool { return l.label == label })
			continue
		}
		label, focal := puzzle.MustCut(step, "=")
		b := holidayHash(label)
		l := lens{label, puzzle.MustInt(focal)}
		if i := slices.IndexFunc(boxes[b], func(x lens) bool { return x.label == label }); i >= 0 {
			boxes[b][i] = l
		} else {
			boxes[b] = append(boxes[b], l)
		}
	}
	power := 0
	for b, box := range boxes {
		for slot, l := range box {
			power += (b + 1) * (slot + 1) * l.focal
		}
	}
	return strconv.Itoa(power)
}

package aoc23

import (
	"slices"
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day07() *puzzle.Day {
	return puzzle.NewDay("day07",
		puzzle.Part(1, func(lines []string) string { return camelWinnings(lines, false) }),
		puzzle.Part(2, func(lines []string) string { return camelWinnings(lines, true) }),
	)
}

type camelHand struct {
	cards string
	bid   int
	kind  int
	ranks []int
}

const (
	cardOrder      = "23456789TJQKA"
	jokerCardOrder = "J23456789TQKA"
)

// handKind scores a hand from high card (0) to five of a kind (6).
// Jokers join the most common other card.
func handKind(cards string, jokers bool) int {
	counts := make(map[rune]int)
	wild := 0
	for _, c := range cards {
		if jokers && c == 'J' {
			wild++
			continue
		}
		counts[c]++
	}
	sizes := make([]int, 0, len(counts))
	for _, n := range counts {
		sizes = append(sizes, n)
	}
	slices.Sort(sizes)
	slices.Reverse(sizes)
	if len(sizes) == 0 {
		sizes = []int{0}
	}
	sizes[0] += wild

	switch {
	case sizes[0] == 5:
		return 6
	case sizes[0] == 4:
		return 5
	case sizes[0] == 3 && sizes[1] == 2:
		return 4
	case sizes[0] == 3:
		return 3
	case sizes[0] == 2 && sizes[1] == 2:
		return 2
	case sizes[0] == 2:
		return 1
	default:
		return 0
	}
}

func camelWinnings(lines []string, jokers bool) string {
	order := cardOrder
	if jokers {
		order = jokerCardOrder
	}
	hands := make([]camelHand, 0, len(lines))
	for _, line := range lines {
		cards, bid := puzzle.MustCut(line, " ")
		puzzle.Assertf(len(cards) == 5, "expected five cards, got %q", cards)
		h := camelHand{cards: cards, bid: puzzle.MustInt(bid), kind: handKind(cards, jokers)}
		for _, c := range cards {
			r := strings.IndexRune(order, c)
			puzzle.Assertf(r >= 0, "invalid card %q", c)
			h.ranks = append(h.ranks, r)
		}
		hands = append(hands, h)
	}
	slices.SortFunc(hands, func(a, b camelHand) int {
		if a.kind != b.kind {
			return a.kind - b.kind
		}
		return slices.Compare(a.ranks, b.ranks)
	})
	total := 0
	for i, h := range hands {
		total += (i + 1) * h.bid
	}
	return strconv.Itoa(total)
}

package aoc23

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day19() *puzzle.Day {
	return puzzle.NewDay("day19",
		puzzle.Part(1, acceptedRatings),
		puzzle.Part(2, acceptedCombinations),
	)
}

type rule struct {
	category int // index into "xmas", -1 for the fallback rule
	less     bool
	value    int
	target   string
}

const categories = "xmas"

func parseWorkflows(lines []string) map[string][]rule {
	flows := make(map[string][]rule, len(lines))
	for _, line := range lines {
		name, body := puzzle.MustCut(strings.TrimSuffix(line, "}"), "{")
		var rules []rule
		for _, r := range strings.Split(body, ",") {
			cond, target, ok := strings.Cut(r, ":")
			if !ok {
				rules = append(rules, rule{category: -1, target: r})
				continue
			}
			puzzle.Assertf(len(cond) > 2, "invalid condition %q", cond)
			cat := strings.IndexByte(categories, cond[0])
			puzzle.Assertf(cat >= 0, "invalid category in %q", cond)
			puzzle.Assertf(cond[1] == '<' || cond[1] == '>', "invalid comparison in %q", cond)
			rules = append(rules, rule{category: cat, less: cond[1] == '<', value: puzzle.MustInt(cond[2:]), target: target})
		}
		flows[name] = rules
	}
	return flows
}

func parseWorkflowInput(lines []string) (map[string][]rule, [][4]int) {
	sections := puzzle.Sections(lines)
	puzzle.Assertf(len(sections) == 2, "expected workflows and parts")
	var parts [][4]int
	for _, line := range sections[1] {
		v := puzzle.Ints(line)
		puzzle.Assertf(len(v) == 4, "invalid part %q", line)
		parts = append(parts, [4]int{v[0], v[1], v[2], v[3]})
	}
	return parseWorkflows(sections[0]), parts
}

func acceptedRatings(lines []string) string {
	flows, parts := parseWorkflowInput(lines)
	total := 0
	for _, part := range parts {
		name := "in"
		for name != "A" && name != "R" {
			rules, ok := flows[name]
			puzzle.Assertf(ok, "unknown workflow %q", name)
			for _, r := range rules {
				if r.category < 0 ||
					(r.less && part[r.category] < r.value) ||
					(!r.less && part[r.category] > r.value) {
					name = r.target
					break
				}
			}
		}
		if name == "A" {
			total += part[0] + part[1] + part[2] + part[3]
		}
	}
	return strconv.Itoa(total)
}

// ratingBox holds an inclusive [lo, hi] range per category.
type ratingBox [4][2]int

func (b ratingBox) size() int {
	n := 1
	for _, r := range b {
		n *= r[1] - r[0] + 1
	}
	return n
}

func countAccepted(flows map[string][]rule, name string, box ratingBox) int {
	if name == "R" {
		return 0
	}
	if name == "A" {
		return box.size()
	}
	rules, ok := flows[name]
	puzzle.Assertf(ok, "unknown workflow %q", name)
	total := 0
	for _, r := range rules {
		if r.category < 0 {
			return total + countAccepted(flows, r.target, box)
		}
		lo, hi := box[r.category][0], box[r.category][1]
		match, rest := box, box
		if r.less {
			match[r.category][1] = min(hi, r.value-1)
			rest[r.category][0] = max(lo, r.value)
		} else {
			match[r.category][0] = max(lo, r.value+1)
			rest[r.category][1] = min(hi, r.value)
		}
		if match[r.category][0] <= match[r.category][1] {
			total += countAccepted(flows, r.target, match)
		}
		if rest[r.category][0] > rest[r.category][1] {
			return total
		}
		box = rest
	}
	return total
}

func acceptedCombinations(lines []string) string {
	flows, _ := parseWorkflowInput(lines)
	full := ratingBox{{1, 4000}, {1, 4000}, {1, 4000}, {1, 4000}}
	return strconv.Itoa(countAccepted(flows, "in", full))
}

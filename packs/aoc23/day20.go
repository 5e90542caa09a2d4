package aoc23

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/mathx"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day20() *puzzle.Day {
	return puzzle.NewDay("day20",
		puzzle.Part(1, pulseProduct),
		puzzle.Part(2, func(lines []string) string { return strconv.Itoa(pressesUntilRx(lines)) }),
	)
}

const (
	broadcaster = 'b'
	flipFlop    = '%'
	conjunction = '&'

	maxPresses = 1 << 20
)

type pulse struct {
	from, to string
	high     bool
}

type pulseModule struct {
	kind    byte
	outputs []string
	on      bool
	memory  map[string]bool
}

type pulseNetwork map[string]*pulseModule

func parsePulseNetwork(lines []string) pulseNetwork {
	n := make(pulseNetwork, len(lines))
	for _, line := range lines {
		name, outs := puzzle.MustCut(line, " -> ")
		m := &pulseModule{kind: broadcaster, memory: map[string]bool{}}
		switch name[0] {
		case flipFlop, conjunction:
			m.kind, name = name[0], name[1:]
		default:
			puzzle.Assertf(name == "broadcaster", "unknown module %q", name)
		}
		for _, o := range strings.Split(outs, ",") {
			m.outputs = append(m.outputs, strings.TrimSpace(o))
		}
		n[name] = m
	}
	for name, m := range n {
		for _, o := range m.outputs {
			if target, ok := n[o]; ok {
				target.memory[name] = false
			}
		}
	}
	return n
}

// press sends one low pulse to the broadcaster and delivers pulses in the
// order they were sent until the network settles. observe sees every pulse.
func (n pulseNetwork) press(observe func(pulse)) {
	queue := []pulse{{from: "button", to: "broadcaster"}}
	for len(queue) > 0 {
		p := queue[0]
		queue = queue[1:]
		observe(p)

		m, ok := n[p.to]
		if !ok {
			continue
		}
		out := p.high
		switch m.kind {
		case flipFlop:
			if p.high {
				continue
			}
			m.on = !m.on
			out = m.on
		case conjunction:
			m.memory[p.from] = p.high
			out = false
			for _, v := range m.memory {
				if !v {
					out = true
					break
				}
			}
		}
		for _, o := range m.outputs {
			queue = append(queue, pulse{from: p.to, to: o, high: out})
		}
	}
}

func pulseProduct(lines []string) string {
	n := parsePulseNetwork(lines)
	var low, high int
	for range 1000 {
		n.press(func(p pulse) {
			if p.high {
				high++
			} else {
				low++
			}
		})
	}
	return strconv.Itoa(low * high)
}

// pressesUntilRx counts the presses before rx first receives a low pulse.
// rx must be fed by a single conjunction whose inputs each send a high
// pulse at a fixed interval starting from press zero.
func pressesUntilRx(lines []string) int {
	n := parsePulseNetwork(lines)
	var feeders []string
	for name, m := range n {
		for _, o := range m.outputs {
			if o == "rx" {
				feeders = append(feeders, name)
			}
		}
	}
	puzzle.Assertf(len(feeders) == 1, "assumed only one input to rx, found %v", feeders)
	feeder := feeders[0]
	puzzle.Assertf(n[feeder].kind == conjunction, "assumed rx is fed by a conjunction, %s is not", feeder)

	seen := make(map[string][]int, len(n[feeder].memory))
	for input := range n[feeder].memory {
		seen[input] = nil
	}
	done := func() bool {
		for _, presses := range seen {
			if len(presses) < 2 {
				return false
			}
		}
		return true
	}

	for i := 1; !done(); i++ {
		puzzle.Assertf(i <= maxPresses, "inputs of %s did not cycle within %d presses", feeder, maxPresses)
		n.press(func(p pulse) {
			if p.to == feeder && p.high && len(seen[p.from]) < 2 {
				seen[p.from] = append(seen[p.from], i)
			}
		})
	}

	periods := make([]int, 0, len(seen))
	for input, presses := range seen {
		puzzle.Assertf(presses[1] == 2*presses[0], "assumed %s would loop from press zero", input)
		periods = append(periods, presses[0])
	}
	return mathx.LCM(periods...)
}

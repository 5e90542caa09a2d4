package aoc23

import (
	"strconv"
	"strings"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

func day02() *puzzle.Day {
	return puzzle.NewDay("day02",
		puzzle.Part(1, possibleGames),
		puzzle.Part(2, minimumPower),
	)
}

type cubes struct {
	red, green, blue int
}

func (c cubes) within(limit cubes) bool {
	return c.red <= limit.red && c.green <= limit.green && c.blue <= limit.blue
}

type cubeGame struct {
	id   int
	sets []cubes
}

func parseCubeGame(line string) cubeGame {
	head, rest := puzzle.MustCut(line, ": ")
	g := cubeGame{id: puzzle.MustInt(strings.TrimPrefix(head, "Game "))}
	for _, set := range strings.Split(rest, "; ") {
		var c cubes
		for _, draw := range strings.Split(set, ", ") {
			n, color := puzzle.MustCut(draw, " ")
			switch color {
			case "red":
				c.red = puzzle.MustInt(n)
			case "green":
				c.green = puzzle.MustInt(n)
			case "blue":
				c.blue = puzzle.MustInt(n)
			default:
				puzzle.Failf("invalid color %q", color)
			}
		}
		g.sets = append(g.sets, c)
	}
	return g
}

func possibleGames(lines []string) string {
	limit := cubes{red: 12, green: 13, blue: 14}
	sum := 0
	for _, line := range lines {
		g := parseCubeGame(line)
		ok := true
		for _, s := range g.sets {
			ok = ok && s.within(limit)
		}
		if ok {
			sum += g.id
		}
	}
	return strconv.Itoa(sum)
}

func minimumPower(lines []string) string {
	sum := 0
	for _, line := range lines {
		var m cubes
		for _, s := range parseCubeGame(line).sets {
			m.red = max(m.red, s.red)
			m.green = max(m.green, s.green)
			m.blue = max(m.blue, s.blue)
		}
		sum += m.red * m.green * m.blue
	}
	return strconv.Itoa(sum)
}

package puzzle

import (
	"regexp"
	"strconv"
	"strings"
)

// Must returns v as is. It panics with a *PreconditionError if err is non-nil.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(&PreconditionError{Message: err.Error()})
	}
	return v
}

// MustInt parses s as a base-10 integer, ignoring surrounding whitespace.
func MustInt(s string) int {
	return Must(strconv.Atoi(strings.TrimSpace(s)))
}

// MustCut splits s around the first sep, panicking when sep is absent.
func MustCut(s, sep string) (before, after string) {
	before, after, ok := strings.Cut(s, sep)
	Assertf(ok, "expected %q in %q", sep, s)
	return before, after
}

var intRx = regexp.MustCompile(`-?\d+`)

// Ints returns every integer in s, in order of appearance.
func Ints(s string) []int {
	matches := intRx.FindAllString(s, -1)
	out := make([]int, 0, len(matches))
	for _, m := range matches {
		out = append(out, MustInt(m))
	}
	return out
}

// Sections splits lines into blank-line separated groups.
func Sections(lines []string) [][]string {
	var (
		out     [][]string
		current []string
	)
	for _, l := range lines {
		if l == "" {
			if current != nil {
				out = append(out, current)
			}
			current = nil
			continue
		}
		current = append(current, l)
	}
	if current != nil {
		out = append(out, current)
	}
	return out
}

package testutil

import (
	"testing"

	"github.com/specialistvlad/daypack/internal/puzzle"
	"github.com/stretchr/testify/require"
)

// AssertExampleAnswers solves the units named in want against the example
// fixtures of a day and checks their answers.
func AssertExampleAnswers(t *testing.T, p *puzzle.Pack, day string, want map[string]string) {
	t.Helper()

	labels := make([]string, 0, len(want))
	for label := range want {
		labels = append(labels, label)
	}
	got := SolveExample(t, p, day, labels...)
	for label, answer := range want {
		require.Equal(t, answer, got[label], "day %s, unit %q", day, label)
	}
}

package testutil

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/specialistvlad/daypack/internal/puzzle"
	"github.com/stretchr/testify/require"
)

// SafeBuffer is a thread-safe buffer for capturing output in tests.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// InputRoot returns the repository's input directory by walking up from the
// test's working directory to the module root.
func InputRoot(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "input")
		}
		parent := filepath.Dir(dir)
		require.NotEqual(t, dir, parent, "go.mod not found above the test directory")
		dir = parent
	}
}

// SolveExample runs a day of the pack against its published example fixtures
// under the repository input directory and returns the answers by unit label.
// When labels are given only those units run.
func SolveExample(t *testing.T, p *puzzle.Pack, day string, labels ...string) map[string]string {
	t.Helper()

	p = p.WithLayout(puzzle.Layout{Root: InputRoot(t)})
	d, ok := p.Day(day)
	require.True(t, ok, "day %s not found in pack %s", day, p.Name)

	if len(labels) > 0 {
		var units []puzzle.Unit
		for _, label := range labels {
			found := false
			for _, u := range d.Units {
				if u.Label == label {
					units = append(units, u)
					found = true
				}
			}
			require.True(t, found, "day %s has no unit %q", day, label)
		}
		d = puzzle.NewDay(d.Name, units...)
	}

	read := func(name, variant string) ([]string, error) {
		return p.ReadLines(name, variant, true)
	}
	results, err := d.Solve(context.Background(), read, false, &bytes.Buffer{})
	require.NoError(t, err)

	answers := make(map[string]string, len(results))
	for _, r := range results {
		answers[r.Label] = r.Answer
	}
	return answers
}

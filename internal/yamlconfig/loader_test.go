package yamlconfig

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/daypack/internal/hcl"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, path, content string) string {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_MatchesHCL(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	yamlPath := write(t, filepath.Join(dir, "daypack.yaml"), `
inputs:
  root: fixtures
  extension: .in
output:
  censor_placeholder: "[redacted]"
packs:
  euler:
    input_root: euler-data
answers:
  - pack: aoc23
    day: day18
    unit: Part 2
    test: true
    value: 952408144115
  - pack: aoc23
    day: day25
    unit: Part 2
    value: Merry Christmas
  - pack: euler
    day: problem001
    unit: Part 1
    value: 1.0
  - pack: euler
    day: problem002
    unit: Part 1
    value: 4.5e1
  - pack: euler
    day: problem003
    unit: Part 1
    value: "1.0"
  - pack: euler
    day: problem004
    unit: Part 1
    value: true
`)
	hclPath := write(t, filepath.Join(dir, "daypack.hcl"), `
inputs {
  root      = "fixtures"
  extension = ".in"
}
output {
  censor_placeholder = "[redacted]"
}
pack "euler" {
  input_root = "euler-data"
}
answer "aoc23" "day18" "Part 2" {
  test  = true
  value = 952408144115
}
answer "aoc23" "day25" "Part 2" {
  value = "Merry Christmas"
}
answer "euler" "problem001" "Part 1" {
  value = 1.0
}
answer "euler" "problem002" "Part 1" {
  value = 4.5e1
}
answer "euler" "problem003" "Part 1" {
  value = "1.0"
}
answer "euler" "problem004" "Part 1" {
  value = true
}
`)

	// --- Act ---
	fromYAML, err := NewLoader().Load(context.Background(), yamlPath)
	require.NoError(t, err)
	fromHCL, err := hcl.NewLoader().Load(context.Background(), hclPath)
	require.NoError(t, err)

	// --- Assert ---
	if diff := cmp.Diff(fromHCL, fromYAML); diff != "" {
		t.Errorf("YAML and HCL settings differ (-hcl +yaml):\n%s", diff)
	}
	values := make([]string, 0, len(fromYAML.Answers))
	for _, a := range fromYAML.Answers {
		values = append(values, a.Value)
	}
	require.Equal(t, []string{"952408144115", "Merry Christmas", "1", "45", "1.0", "true"}, values)
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{name: "malformed", content: "inputs: [", errSubstr: "failed to decode YAML file"},
		{name: "missing value", content: "answers:\n  - {pack: a, day: b, unit: c}\n", errSubstr: "value is required"},
		{name: "null value", content: "answers:\n  - {pack: a, day: b, unit: c, value: null}\n", errSubstr: "must be a scalar"},
		{name: "list value", content: "answers:\n  - {pack: a, day: b, unit: c, value: [1]}\n", errSubstr: "must be a scalar"},
		{name: "missing unit", content: "answers:\n  - {pack: a, day: b, value: 1}\n", errSubstr: "are required"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := write(t, filepath.Join(t.TempDir(), "bad.yml"), tc.content)

			_, err := NewLoader().Load(context.Background(), path)

			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errSubstr)
		})
	}
}

func TestLoader_SkipsMissingPaths(t *testing.T) {
	model, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	require.Empty(t, model.Answers)
}

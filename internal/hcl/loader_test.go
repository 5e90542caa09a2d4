package hcl

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/specialistvlad/daypack/internal/config"
	"github.com/stretchr/testify/require"
)

func writeHCL(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_Load(t *testing.T) {
	t.Parallel()

	// --- Arrange ---
	dir := t.TempDir()
	writeHCL(t, dir, "daypack.hcl", `
inputs {
  root        = "fixtures"
  test_suffix = "_example"
}

output {
  censor_placeholder = "#####"
  timing             = true
}

pack "euler" {
  input_root = "euler-data"
}

answer "aoc23" "day01" "Part 1" {
  test  = true
  value = 142
}

answer "aoc23" "day25" "Part 2" {
  value = "Merry Christmas"
}
`)
	writeHCL(t, dir, "more/answers.hcl", `
answer "aoc23" "day18" "Part 2" {
  test  = true
  value = 952408144115
}
`)

	// --- Act ---
	model, err := NewLoader().Load(context.Background(), dir, filepath.Join(dir, "absent.hcl"))

	// --- Assert ---
	require.NoError(t, err)
	want := &config.Model{
		Inputs: &config.Inputs{Root: "fixtures", TestSuffix: "_example"},
		Packs:  map[string]*config.PackSettings{"euler": {Name: "euler", InputRoot: "euler-data"}},
		Output: &config.Output{CensorPlaceholder: "#####", Timing: true},
		Answers: []*config.Answer{
			{Pack: "aoc23", Day: "day01", Unit: "Part 1", Test: true, Value: "142"},
			{Pack: "aoc23", Day: "day25", Unit: "Part 2", Value: "Merry Christmas"},
			{Pack: "aoc23", Day: "day18", Unit: "Part 2", Test: true, Value: "952408144115"},
		},
	}
	if diff := cmp.Diff(want, model); diff != "" {
		t.Errorf("model mismatch (-want +got):\n%s", diff)
	}
}

func TestLoader_Errors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		content   string
		errSubstr string
	}{
		{
			name:      "syntax error",
			content:   `inputs {`,
			errSubstr: "failed to parse HCL file",
		},
		{
			name:      "missing answer value",
			content:   `answer "aoc23" "day01" "Part 1" {}`,
			errSubstr: "value is required",
		},
		{
			name:      "missing answer value with other attributes",
			content:   `answer "aoc23" "day01" "Part 1" { test = true }`,
			errSubstr: "value is required",
		},
		{
			name: "unknown attribute",
			content: `
answer "aoc23" "day01" "Part 1" {
  value  = 1
  colour = "red"
}
`,
			errSubstr: "failed to decode HCL file",
		},
		{
			name:      "null answer value",
			content:   `answer "aoc23" "day01" "Part 1" { value = null }`,
			errSubstr: "must not be null",
		},
		{
			name: "duplicate pack",
			content: `
pack "euler" {}
pack "euler" {}
`,
			errSubstr: "configured more than once",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			path := writeHCL(t, t.TempDir(), "bad.hcl", tc.content)

			// --- Act ---
			_, err := NewLoader().Load(context.Background(), path)

			// --- Assert ---
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.errSubstr)
		})
	}
}

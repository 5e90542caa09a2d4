package config

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestModelMerge(t *testing.T) {
	// --- Arrange ---
	base := NewModel()
	base.Inputs.Root = "input"
	base.Answers = []*Answer{{Pack: "aoc23", Day: "day01", Unit: "Part 1", Test: true, Value: "142"}}

	other := &Model{
		Inputs:  &Inputs{Extension: ".in"},
		Packs:   map[string]*PackSettings{"euler": {Name: "euler", InputRoot: "data"}},
		Output:  &Output{CensorPlaceholder: "#", Timing: true},
		Answers: []*Answer{{Pack: "aoc23", Day: "day01", Unit: "Part 1", Test: true, Value: "143"}},
	}

	// --- Act ---
	base.Merge(other)

	// --- Assert ---
	require.Equal(t, &Inputs{Root: "input", Extension: ".in"}, base.Inputs)
	require.Equal(t, "data", base.Packs["euler"].InputRoot)
	require.Equal(t, &Output{CensorPlaceholder: "#", Timing: true}, base.Output)
	require.Len(t, base.Answers, 2)

	idx := base.AnswerIndex()
	require.Equal(t, "143", idx[AnswerKey{Pack: "aoc23", Day: "day01", Unit: "Part 1", Test: true}], "later answers win")
}

// fakeLoader returns a model naming the file it was asked to load.
type fakeLoader struct {
	exts []string
}

func (f *fakeLoader) Extensions() []string { return f.exts }

func (f *fakeLoader) Load(_ context.Context, paths ...string) (*Model, error) {
	m := NewModel()
	for _, p := range paths {
		m.Answers = append(m.Answers, &Answer{Pack: filepath.Base(p)})
	}
	return m, nil
}

func TestMultiLoader_DispatchesByExtension(t *testing.T) {
	// --- Arrange ---
	dir := t.TempDir()
	for _, name := range []string{"a.hcl", "b.yaml", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	loader := NewMultiLoader(&fakeLoader{exts: []string{".hcl"}}, &fakeLoader{exts: []string{".yaml", ".yml"}})

	// --- Act ---
	model, err := loader.Load(context.Background(), dir, filepath.Join(dir, "missing.hcl"))

	// --- Assert ---
	require.NoError(t, err)
	var got []string
	for _, a := range model.Answers {
		got = append(got, a.Pack)
	}
	if diff := cmp.Diff([]string{"a.hcl", "b.yaml"}, got); diff != "" {
		t.Errorf("loaded files mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiLoader_RejectsUnknownExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	loader := NewMultiLoader(&fakeLoader{exts: []string{".hcl"}})

	_, err := loader.Load(context.Background(), path)

	require.True(t, errors.Is(err, ErrUnsupportedFormat))
}

func TestNewMultiLoader_DuplicateExtensionPanics(t *testing.T) {
	require.Panics(t, func() {
		NewMultiLoader(&fakeLoader{exts: []string{".hcl"}}, &fakeLoader{exts: []string{".HCL"}})
	})
}

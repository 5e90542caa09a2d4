package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/specialistvlad/daypack/internal/config"
	"github.com/specialistvlad/daypack/internal/puzzle"
	"github.com/specialistvlad/daypack/internal/testutil"
	"github.com/stretchr/testify/require"
)

// sumPack reads numbers and reports their sum and count.
func sumPack() *puzzle.Pack {
	sum := func(lines []string) string {
		total := 0
		for _, l := range lines {
			total += puzzle.MustInt(l)
		}
		return strconv.Itoa(total)
	}
	count := func(lines []string) string { return strconv.Itoa(len(lines)) }
	return puzzle.NewPack("demo",
		puzzle.NewDay("day01", puzzle.Part(1, sum), puzzle.Part(2, count).WithVariant("2")),
		puzzle.NewDay("day02", puzzle.Part(1, func([]string) string {
			puzzle.Failf("assumed square map")
			return ""
		})),
	)
}

// writeInputs creates the demo pack input files under a temp root.
func writeInputs(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		path := filepath.Join(root, "demo", name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
	return root
}

// staticLoader returns a fixed model, or a fixed error, regardless of the path.
type staticLoader struct {
	model *config.Model
	err   error
	calls int
}

func (s *staticLoader) Extensions() []string { return []string{".hcl"} }

func (s *staticLoader) Load(context.Context, ...string) (*config.Model, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.model, nil
}

func TestRun_Dispatch(t *testing.T) {
	t.Parallel()

	root := writeInputs(t, map[string]string{
		"day01.txt":        "1\n2\n",
		"day01_test.txt":   "1\n1\n1\n",
		"day01_test_2.txt": "9\n",
	})

	testCases := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "real input", cfg: Config{PackName: "demo", Day: "day01"}, want: "Part 1: 3\nPart 2: 2\n"},
		{name: "test input uses variant", cfg: Config{PackName: "demo", Day: "day01", Test: true}, want: "Part 1: 3\nPart 2: 1\n"},
		{name: "censored", cfg: Config{PackName: "demo", Day: "day01", Censor: true}, want: "Part 1: *****\nPart 2: *****\n"},
		{name: "unknown pack", cfg: Config{PackName: "nope", Day: "day01"}, want: "Pack nope not found\n"},
		{name: "unknown day", cfg: Config{PackName: "demo", Day: "day09"}, want: "Day day09 not found in pack demo\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			cfg := tc.cfg
			cfg.InputDir = root
			a, out, _ := SetupAppTest(t, &cfg, nil, &testutil.SimpleModule{Packs: []*puzzle.Pack{sumPack()}})

			// --- Act ---
			err := a.Run(context.Background(), &cfg)

			// --- Assert ---
			require.NoError(t, err)
			require.Equal(t, tc.want, out.String())
		})
	}
}

func TestRun_UnknownPackReadsNothing(t *testing.T) {
	t.Parallel()

	cfg := &Config{PackName: "demo", Day: "day01", InputDir: t.TempDir()}
	a, out, logs := SetupAppTest(t, cfg, nil, &testutil.SimpleModule{Packs: []*puzzle.Pack{sumPack()}})

	err := a.Run(context.Background(), &Config{PackName: "other", Day: "day01"})

	require.NoError(t, err)
	require.Equal(t, "Pack other not found\n", out.String())
	require.NotContains(t, logs.String(), "Reading input.")
}

func TestRun_MissingInputIsFatal(t *testing.T) {
	t.Parallel()

	cfg := &Config{PackName: "demo", Day: "day01", InputDir: t.TempDir()}
	a, out, _ := SetupAppTest(t, cfg, nil, &testutil.SimpleModule{Packs: []*puzzle.Pack{sumPack()}})

	err := a.Run(context.Background(), cfg)

	require.True(t, errors.Is(err, puzzle.ErrInputNotFound))
	require.Empty(t, out.String())
}

func TestRun_SolverPanicPropagates(t *testing.T) {
	t.Parallel()

	root := writeInputs(t, map[string]string{"day02.txt": "x\n"})
	cfg := &Config{PackName: "demo", Day: "day02", InputDir: root}
	a, _, _ := SetupAppTest(t, cfg, nil, &testutil.SimpleModule{Packs: []*puzzle.Pack{sumPack()}})

	require.PanicsWithError(t, "precondition violated: assumed square map", func() {
		_ = a.Run(context.Background(), cfg)
	})
}

func TestRun_AnswerCheck(t *testing.T) {
	t.Parallel()

	root := writeInputs(t, map[string]string{"day01.txt": "1\n2\n"})
	settings := config.NewModel()
	settings.Output.CensorPlaceholder = "###"
	settings.Answers = []*config.Answer{
		{Pack: "demo", Day: "day01", Unit: "Part 1", Value: "3"},
		{Pack: "demo", Day: "day01", Unit: "Part 2", Value: "5"},
		{Pack: "demo", Day: "day01", Unit: "Part 2", Test: true, Value: "2"},
	}

	testCases := []struct {
		name   string
		censor bool
		want   string
	}{
		{name: "plain", want: "Part 1: 3 ✓\nPart 2: 2 ✗ (want 5)\n"},
		{name: "censored", censor: true, want: "Part 1: ### ✓\nPart 2: ### ✗ (want ###)\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			cfg := &Config{PackName: "demo", Day: "day01", Censor: tc.censor, InputDir: root, SettingsPath: "daypack.hcl"}
			a, out, _ := SetupAppTest(t, cfg, &staticLoader{model: settings}, &testutil.SimpleModule{Packs: []*puzzle.Pack{sumPack()}})

			err := a.Run(context.Background(), cfg)

			require.True(t, errors.Is(err, ErrAnswerMismatch))
			require.Contains(t, err.Error(), "1 of 2 units")
			require.Equal(t, tc.want, out.String())
		})
	}
}

func TestConfigure_AppliesLayouts(t *testing.T) {
	t.Parallel()

	settings := config.NewModel()
	settings.Inputs = &config.Inputs{Root: "global", Extension: ".in"}
	settings.Packs["demo"] = &config.PackSettings{Name: "demo", InputRoot: "demo-only"}
	other := puzzle.NewPack("other", puzzle.NewDay("d", puzzle.Part(1, func([]string) string { return "" })))

	cfg := &Config{PackName: "demo", Day: "day01", SettingsPath: "daypack.hcl"}
	a, _, _ := SetupAppTest(t, cfg, &staticLoader{model: settings}, &testutil.SimpleModule{Packs: []*puzzle.Pack{sumPack(), other}})
	require.NoError(t, a.configure(context.Background(), cfg))

	demo, _ := a.Registry().Pack("demo")
	require.Equal(t, puzzle.Layout{Root: "demo-only", TestSuffix: "_test", Extension: ".in"}, demo.Layout())
	o, _ := a.Registry().Pack("other")
	require.Equal(t, "global", o.Layout().Root)

	cfg.InputDir = "flag"
	a, _, _ = SetupAppTest(t, cfg, &staticLoader{model: settings}, &testutil.SimpleModule{Packs: []*puzzle.Pack{sumPack()}})
	require.NoError(t, a.configure(context.Background(), cfg))
	demo, _ = a.Registry().Pack("demo")
	require.Equal(t, "flag", demo.Layout().Root, "the command line wins over settings")
}

func TestRun_InvalidAnswersFail(t *testing.T) {
	t.Parallel()

	settings := config.NewModel()
	settings.Answers = []*config.Answer{{Pack: "demo", Day: "day07", Unit: "Part 1", Value: "1"}}
	cfg := &Config{PackName: "demo", Day: "day01", InputDir: t.TempDir(), SettingsPath: "daypack.hcl"}
	a, out, _ := SetupAppTest(t, cfg, &staticLoader{model: settings}, &testutil.SimpleModule{Packs: []*puzzle.Pack{sumPack()}})

	err := a.Run(context.Background(), cfg)

	require.Error(t, err)
	require.Contains(t, err.Error(), "day 'day07' not found in pack 'demo'")
	require.Empty(t, out.String())
}

func TestRun_LookupMissSkipsSettings(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		cfg  Config
		want string
	}{
		{name: "unknown pack", cfg: Config{PackName: "nope", Day: "day01"}, want: "Pack nope not found\n"},
		{name: "unknown day", cfg: Config{PackName: "demo", Day: "day09"}, want: "Day day09 not found in pack demo\n"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			cfg := tc.cfg
			cfg.SettingsPath = "broken.hcl"
			loader := &staticLoader{err: errors.New("failed to parse HCL file broken.hcl")}
			a, out, _ := SetupAppTest(t, &cfg, loader, &testutil.SimpleModule{Packs: []*puzzle.Pack{sumPack()}})

			// --- Act ---
			err := a.Run(context.Background(), &cfg)

			// --- Assert ---
			require.NoError(t, err)
			require.Equal(t, tc.want, out.String())
			require.Zero(t, loader.calls, "settings must not be loaded")
		})
	}
}

func TestRun_SettingsErrorIsFatal(t *testing.T) {
	t.Parallel()

	cfg := &Config{PackName: "demo", Day: "day01", InputDir: t.TempDir(), SettingsPath: "broken.hcl"}
	loader := &staticLoader{err: errors.New("failed to parse HCL file broken.hcl")}
	a, out, _ := SetupAppTest(t, cfg, loader, &testutil.SimpleModule{Packs: []*puzzle.Pack{sumPack()}})

	err := a.Run(context.Background(), cfg)

	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to load settings")
	require.Equal(t, 1, loader.calls)
	require.Empty(t, out.String())
}

func TestNewApp_InvalidPackPanics(t *testing.T) {
	t.Parallel()

	empty := puzzle.NewPack("empty")

	require.Panics(t, func() {
		SetupAppTest(t, &Config{PackName: "empty", Day: "day01"}, nil, &testutil.SimpleModule{Packs: []*puzzle.Pack{empty}})
	})
}

func TestNewApp_CoreModules(t *testing.T) {
	t.Parallel()

	a, _, logs := SetupAppTest(t, &Config{PackName: "aoc23", Day: "day01"}, nil)

	require.Equal(t, []string{"aoc23", "euler"}, a.Registry().Names())
	require.Contains(t, logs.String(), "run_id=")
}

func TestNewConfig(t *testing.T) {
	_, err := NewConfig(Config{Day: "day01"})
	require.Error(t, err)
	_, err = NewConfig(Config{PackName: "aoc23"})
	require.Error(t, err)
	_, err = NewConfig(Config{PackName: "aoc23", Day: "day01", LogLevel: "loud"})
	require.Error(t, err)

	cfg, err := NewConfig(Config{PackName: "aoc23", Day: "day01"})
	require.NoError(t, err)
	require.Equal(t, "aoc23", cfg.PackName)
}

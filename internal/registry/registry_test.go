package registry

import (
	"context"
	"testing"

	"github.com/specialistvlad/daypack/internal/config"
	"github.com/specialistvlad/daypack/internal/puzzle"
	"github.com/stretchr/testify/require"
)

func echo(lines []string) string { return lines[0] }

func newTestPack(name string) *puzzle.Pack {
	return puzzle.NewPack(name,
		puzzle.NewDay("day01", puzzle.Part(1, echo), puzzle.Part(2, echo)),
	)
}

type testModule struct{ name string }

func (m testModule) Register(r *Registry) { r.RegisterPack(newTestPack(m.name)) }

func TestRegistry_LookupAndNames(t *testing.T) {
	// --- Arrange ---
	r := New()
	for _, m := range []Module{testModule{"zeta"}, testModule{"alpha"}} {
		m.Register(r)
	}

	// --- Act ---
	p, ok := r.Pack("alpha")
	_, missing := r.Pack("beta")

	// --- Assert ---
	require.True(t, ok)
	require.Equal(t, "alpha", p.Name)
	require.False(t, missing)
	require.Equal(t, []string{"alpha", "zeta"}, r.Names())
}

func TestRegistry_PacksReturnsCopy(t *testing.T) {
	r := New()
	r.RegisterPack(newTestPack("aoc23"))

	packs := r.Packs()
	delete(packs, "aoc23")

	_, ok := r.Pack("aoc23")
	require.True(t, ok, "mutating the returned map must not affect the registry")
}

func TestRegistry_RegisterPanics(t *testing.T) {
	r := New()
	r.RegisterPack(newTestPack("aoc23"))

	require.PanicsWithValue(t, "pack with name 'aoc23' already registered", func() {
		r.RegisterPack(newTestPack("aoc23"))
	})
	require.Panics(t, func() { r.RegisterPack(nil) })
	require.Panics(t, func() { r.ReplacePack(newTestPack("euler")) })
}

func TestValidateRegistry(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		packs     []*puzzle.Pack
		answers   []*config.Answer
		errSubstr []string
	}{
		{
			name:  "valid packs and answers",
			packs: []*puzzle.Pack{newTestPack("aoc23")},
			answers: []*config.Answer{
				{Pack: "aoc23", Day: "day01", Unit: "Part 2", Value: "1"},
			},
		},
		{
			name:      "pack without days",
			packs:     []*puzzle.Pack{puzzle.NewPack("empty")},
			errSubstr: []string{"pack 'empty': has no days"},
		},
		{
			name: "broken units",
			packs: []*puzzle.Pack{puzzle.NewPack("bad",
				puzzle.NewDay("day01"),
				puzzle.NewDay("day02", puzzle.Unit{Solve: echo}, puzzle.Part(1, nil)),
				puzzle.NewDay("day03", puzzle.Part(1, echo), puzzle.Part(1, echo)),
			)},
			errSubstr: []string{
				"day 'day01': has no units",
				"day 'day02': unit #1 has no label",
				`day 'day02': unit "Part 1" has no solver`,
				`day 'day03': duplicate unit label "Part 1"`,
			},
		},
		{
			name:  "answers naming unknown code",
			packs: []*puzzle.Pack{newTestPack("aoc23")},
			answers: []*config.Answer{
				{Pack: "aoc22", Day: "day01", Unit: "Part 1"},
				{Pack: "aoc23", Day: "day26", Unit: "Part 1"},
				{Pack: "aoc23", Day: "day01", Unit: "Part 3"},
			},
			errSubstr: []string{
				"pack 'aoc22' is not registered",
				"day 'day26' not found in pack 'aoc23'",
				`day has no unit labelled "Part 3"`,
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// --- Arrange ---
			r := New()
			for _, p := range tc.packs {
				r.RegisterPack(p)
			}

			// --- Act ---
			err := r.ValidateRegistry(context.Background(), tc.answers)

			// --- Assert ---
			if len(tc.errSubstr) == 0 {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			for _, s := range tc.errSubstr {
				require.Contains(t, err.Error(), s)
			}
		})
	}
}

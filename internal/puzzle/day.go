package puzzle

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/specialistvlad/daypack/internal/ctxlog"
)

// DefaultPlaceholder replaces answers when censoring is on.
const DefaultPlaceholder = "*****"

// SolverFunc computes the answer for one puzzle part from the raw input lines.
type SolverFunc func(lines []string) string

// Unit is one labelled solver of a Day.
type Unit struct {
	Label string
	// Variant selects an alternate test fixture for this unit only. It is
	// ignored for real inputs.
	Variant string
	Solve   SolverFunc
}

// Part builds a unit labelled "Part <n>".
func Part(n int, fn SolverFunc) Unit {
	return Unit{Label: fmt.Sprintf("Part %d", n), Solve: fn}
}

// WithVariant returns a copy of u reading the given test fixture variant.
func (u Unit) WithVariant(variant string) Unit {
	u.Variant = variant
	return u
}

// Day is a named, ordered group of solver units. It is immutable once built.
type Day struct {
	Name  string
	Units []Unit
}

// NewDay creates a Day from its units, kept in declaration order.
func NewDay(name string, units ...Unit) *Day {
	cp := make([]Unit, len(units))
	copy(cp, units)
	return &Day{Name: name, Units: cp}
}

// LineReader supplies the input lines for a day and fixture variant.
type LineReader func(day, variant string) ([]string, error)

// Result is the outcome of running a single unit.
type Result struct {
	Label   string
	Answer  string
	Elapsed time.Duration
}

// Annotator returns an optional suffix printed after a unit's result.
type Annotator func(r Result, censor bool) string

// SolveOption tunes how Solve prints results.
type SolveOption func(*solveOptions)

type solveOptions struct {
	placeholder string
	timing      bool
	annotate    Annotator
}

// WithPlaceholder overrides the text printed in place of censored answers.
func WithPlaceholder(p string) SolveOption {
	return func(o *solveOptions) {
		if p != "" {
			o.placeholder = p
		}
	}
}

// WithTiming appends the elapsed time of each unit to its printed line.
func WithTiming(on bool) SolveOption {
	return func(o *solveOptions) { o.timing = on }
}

// WithAnnotator installs a hook whose output is appended to each printed line.
func WithAnnotator(a Annotator) SolveOption {
	return func(o *solveOptions) { o.annotate = a }
}

// Censor masks a non-empty answer with placeholder. Empty answers stay empty.
func Censor(answer, placeholder string) string {
	if answer == "" {
		return ""
	}
	return placeholder
}

// Solve runs every unit in order against the lines supplied by read and
// prints "<label>: <answer>" for each of them to out.
//
// A read failure stops the run and is returned. Panics raised by a unit are
// not recovered: they signal malformed input or a broken assumption and must
// abort the process.
func (d *Day) Solve(ctx context.Context, read LineReader, censor bool, out io.Writer, opts ...SolveOption) ([]Result, error) {
	o := solveOptions{placeholder: DefaultPlaceholder}
	for _, opt := range opts {
		opt(&o)
	}
	logger := ctxlog.FromContext(ctx)

	results := make([]Result, 0, len(d.Units))
	for _, u := range d.Units {
		lines, err := read(d.Name, u.Variant)
		if err != nil {
			return results, fmt.Errorf("reading input for %s %s: %w", d.Name, u.Label, err)
		}
		logger.Debug("Running unit.", "day", d.Name, "unit", u.Label, "lines", len(lines))

		start := time.Now()
		answer := u.Solve(lines)
		r := Result{Label: u.Label, Answer: answer, Elapsed: time.Since(start)}
		results = append(results, r)

		shown := answer
		if censor {
			shown = Censor(answer, o.placeholder)
		}
		line := fmt.Sprintf("%s: %s", r.Label, shown)
		if o.annotate != nil {
			line += o.annotate(r, censor)
		}
		if o.timing {
			line += fmt.Sprintf(" (took %s)", r.Elapsed.Round(time.Microsecond))
		}
		fmt.Fprintln(out, line)

		if censor {
			logger.Debug("Unit finished.", "unit", u.Label, "elapsed", r.Elapsed)
		} else {
			logger.Debug("Unit finished.", "unit", u.Label, "elapsed", r.Elapsed, "answer", answer)
		}
	}
	return results, nil
}

package app

import (
	"context"
	"fmt"

	"github.com/specialistvlad/daypack/internal/config"
	"github.com/specialistvlad/daypack/internal/ctxlog"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

// Run resolves the requested pack and day and prints the result of every
// unit of the day. An unknown pack or day is reported on the output and is
// not an error; nothing is read from disk in that case, settings included.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.With(ctxlog.WithLogger(ctx, a.logger), "pack", appConfig.PackName, "day", appConfig.Day)
	logger := ctxlog.FromContext(ctx)
	logger.Debug("App.Run method started.", "test", appConfig.Test, "censor", appConfig.Censor)

	pack, ok := a.registry.Pack(appConfig.PackName)
	if !ok {
		logger.Info("Pack lookup missed.", "known", a.registry.Names())
		fmt.Fprintf(a.outW, "Pack %s not found\n", appConfig.PackName)
		return nil
	}

	day, ok := pack.Day(appConfig.Day)
	if !ok {
		logger.Info("Day lookup missed.")
		fmt.Fprintf(a.outW, "Day %s not found in pack %s\n", appConfig.Day, appConfig.PackName)
		return nil
	}

	if err := a.configure(ctx, appConfig); err != nil {
		return err
	}
	// Layouts replace the registered pack.
	pack, _ = a.registry.Pack(pack.Name)

	read := func(dayName, variant string) ([]string, error) {
		logger.Debug("Reading input.", "path", pack.Layout().Path(pack.Name, dayName, variant, appConfig.Test))
		return pack.ReadLines(dayName, variant, appConfig.Test)
	}

	results, err := day.Solve(ctx, read, appConfig.Censor, a.outW,
		puzzle.WithPlaceholder(a.settings.Output.CensorPlaceholder),
		puzzle.WithTiming(appConfig.Timing || a.settings.Output.Timing),
		puzzle.WithAnnotator(a.annotator(pack.Name, day.Name, appConfig.Test)),
	)
	if err != nil {
		return fmt.Errorf("solving %s %s: %w", pack.Name, day.Name, err)
	}

	mismatched := 0
	for _, r := range results {
		if want, ok := a.answers[a.key(pack.Name, day.Name, r.Label, appConfig.Test)]; ok && want != r.Answer {
			mismatched++
		}
	}
	if mismatched > 0 {
		return fmt.Errorf("%w: %d of %d units in %s %s", ErrAnswerMismatch, mismatched, len(results), pack.Name, day.Name)
	}

	logger.Debug("App.Run method finished.", "units", len(results))
	return nil
}

func (a *App) key(pack, day, unit string, test bool) config.AnswerKey {
	return config.AnswerKey{Pack: pack, Day: day, Unit: unit, Test: test}
}

// annotator marks each printed result against the known answers, if any.
func (a *App) annotator(pack, day string, test bool) puzzle.Annotator {
	placeholder := a.settings.Output.CensorPlaceholder
	if placeholder == "" {
		placeholder = puzzle.DefaultPlaceholder
	}
	return func(r puzzle.Result, censor bool) string {
		want, ok := a.answers[a.key(pack, day, r.Label, test)]
		if !ok {
			return ""
		}
		if want == r.Answer {
			return " ✓"
		}
		if censor {
			want = puzzle.Censor(want, placeholder)
		}
		return fmt.Sprintf(" ✗ (want %s)", want)
	}
}

package registry

import (
	"context"
	"fmt"
	"strings"

	"github.com/specialistvlad/daypack/internal/config"
	"github.com/specialistvlad/daypack/internal/ctxlog"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

// ValidateRegistry performs a strict integrity check over the registered
// packs and a parity check between the configured answers and the code.
func (r *Registry) ValidateRegistry(ctx context.Context, answers []*config.Answer) error {
	var errs []string
	logger := ctxlog.FromContext(ctx)

	for _, name := range r.Names() {
		errs = append(errs, validatePack(name, r.packs[name])...)
	}

	for _, a := range answers {
		p, ok := r.packs[a.Pack]
		if !ok {
			errs = append(errs, fmt.Sprintf("answer for %s/%s/%q: pack '%s' is not registered", a.Pack, a.Day, a.Unit, a.Pack))
			continue
		}
		d, ok := p.Day(a.Day)
		if !ok {
			errs = append(errs, fmt.Sprintf("answer for %s/%s/%q: day '%s' not found in pack '%s'", a.Pack, a.Day, a.Unit, a.Day, a.Pack))
			continue
		}
		if !hasUnit(d, a.Unit) {
			errs = append(errs, fmt.Sprintf("answer for %s/%s/%q: day has no unit labelled %q", a.Pack, a.Day, a.Unit, a.Unit))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("registry validation failed:\n- %s", strings.Join(errs, "\n- "))
	}

	logger.Debug("Registry validated.", "packs", len(r.packs), "answers", len(answers))
	return nil
}

func validatePack(name string, p *puzzle.Pack) []string {
	var errs []string
	if name == "" {
		errs = append(errs, puzzle.ErrEmptyName.Error())
	}
	days := p.Days()
	if len(days) == 0 {
		errs = append(errs, fmt.Sprintf("pack '%s': has no days", name))
	}
	for _, d := range days {
		if d.Name == "" {
			errs = append(errs, fmt.Sprintf("pack '%s': %s", name, puzzle.ErrEmptyName))
			continue
		}
		if len(d.Units) == 0 {
			errs = append(errs, fmt.Sprintf("pack '%s', day '%s': has no units", name, d.Name))
		}
		seen := make(map[string]struct{}, len(d.Units))
		for i, u := range d.Units {
			if u.Label == "" {
				errs = append(errs, fmt.Sprintf("pack '%s', day '%s': unit #%d has no label", name, d.Name, i+1))
			}
			if u.Solve == nil {
				errs = append(errs, fmt.Sprintf("pack '%s', day '%s': unit %q has no solver", name, d.Name, u.Label))
			}
			if _, dup := seen[u.Label]; dup {
				errs = append(errs, fmt.Sprintf("pack '%s', day '%s': duplicate unit label %q", name, d.Name, u.Label))
			}
			seen[u.Label] = struct{}{}
		}
	}
	return errs
}

func hasUnit(d *puzzle.Day, label string) bool {
	for _, u := range d.Units {
		if u.Label == label {
			return true
		}
	}
	return false
}

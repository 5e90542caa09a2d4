package hcl

import (
	"context"
	"fmt"

	"github.com/specialistvlad/daypack/internal/config"
)

// translate converts the decoded HCL blocks of one file into the agnostic model.
func (l *Loader) translate(ctx context.Context, root *fileRoot) (*config.Model, error) {
	m := config.NewModel()
	if root.Inputs != nil {
		m.Inputs = &config.Inputs{
			Root:       root.Inputs.Root,
			TestSuffix: root.Inputs.TestSuffix,
			Extension:  root.Inputs.Extension,
		}
	}
	if root.Output != nil {
		m.Output = &config.Output{
			CensorPlaceholder: root.Output.CensorPlaceholder,
			Timing:            root.Output.Timing,
		}
	}
	for _, p := range root.Packs {
		if _, exists := m.Packs[p.Name]; exists {
			return nil, fmt.Errorf("pack '%s' is configured more than once", p.Name)
		}
		m.Packs[p.Name] = &config.PackSettings{Name: p.Name, InputRoot: p.InputRoot}
	}
	for _, a := range root.Answers {
		value, err := l.answerValue(ctx, a.Value)
		if err != nil {
			return nil, fmt.Errorf("answer %s/%s/%q: %w", a.Pack, a.Day, a.Unit, err)
		}
		m.Answers = append(m.Answers, &config.Answer{
			Pack:  a.Pack,
			Day:   a.Day,
			Unit:  a.Unit,
			Test:  a.Test,
			Value: value,
		})
	}
	return m, nil
}

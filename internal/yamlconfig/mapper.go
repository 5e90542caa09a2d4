package yamlconfig

import (
	"fmt"
	"strings"

	"github.com/specialistvlad/daypack/internal/config"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"gopkg.in/yaml.v3"
)

// mapFile converts a decoded YAML file into the agnostic model.
func mapFile(path string, f yamlFile) (*config.Model, error) {
	m := config.NewModel()
	if f.Inputs != nil {
		m.Inputs = &config.Inputs{
			Root:       f.Inputs.Root,
			TestSuffix: f.Inputs.TestSuffix,
			Extension:  f.Inputs.Extension,
		}
	}
	if f.Output != nil {
		m.Output = &config.Output{
			CensorPlaceholder: f.Output.CensorPlaceholder,
			Timing:            f.Output.Timing,
		}
	}
	for name, p := range f.Packs {
		if strings.TrimSpace(name) == "" {
			return nil, invalidField(path, "packs", "pack name is required")
		}
		s := &config.PackSettings{Name: name}
		if p != nil {
			s.InputRoot = p.InputRoot
		}
		m.Packs[name] = s
	}
	for i, a := range f.Answers {
		field := fmt.Sprintf("answers[%d]", i)
		if a.Pack == "" || a.Day == "" || a.Unit == "" {
			return nil, invalidField(path, field, "pack, day and unit are required")
		}
		value, err := scalarValue(a.Value)
		if err != nil {
			return nil, invalidField(path, field+".value", err.Error())
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

// scalarValue returns an answer as the string a solver would print. Numbers
// and bools go through cty so that they read the same as in HCL settings;
// quoted scalars are kept verbatim.
func scalarValue(n yaml.Node) (string, error) {
	if n.Kind == 0 {
		return "", fmt.Errorf("value is required")
	}
	if n.Kind != yaml.ScalarNode || n.ShortTag() == "!!null" {
		return "", fmt.Errorf("value must be a scalar")
	}

	var val cty.Value
	switch n.ShortTag() {
	case "!!int", "!!float":
		num, err := cty.ParseNumberVal(n.Value)
		if err != nil {
			var i int64
			if n.ShortTag() != "!!int" || n.Decode(&i) != nil {
				return "", fmt.Errorf("invalid number %q", n.Value)
			}
			num = cty.NumberIntVal(i)
		}
		val = num
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return "", fmt.Errorf("invalid bool %q", n.Value)
		}
		val = cty.BoolVal(b)
	default:
		return n.Value, nil
	}

	converted, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", fmt.Errorf("cannot convert %s to string: %w", val.Type().FriendlyName(), err)
	}
	return converted.AsString(), nil
}

func invalidField(path, field, msg string) error {
	return fmt.Errorf("%s: field %s: %s", path, field, msg)
}

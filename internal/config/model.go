package config

// Model is the unified, format-agnostic representation of the daypack
// settings.
type Model struct {
	Inputs  *Inputs
	Packs   map[string]*PackSettings
	Output  *Output
	Answers []*Answer
}

// Inputs sets the global input file layout.
type Inputs struct {
	Root       string
	TestSuffix string
	Extension  string
}

// PackSettings overrides the input layout of a single pack.
type PackSettings struct {
	Name      string
	InputRoot string
}

// Output controls how results are printed.
type Output struct {
	CensorPlaceholder string
	Timing            bool
}

// Answer is a known answer for one unit of a day, for either the real input
// or the test fixture.
type Answer struct {
	Pack  string
	Day   string
	Unit  string
	Test  bool
	Value string
}

// AnswerKey identifies the unit an Answer belongs to.
type AnswerKey struct {
	Pack string
	Day  string
	Unit string
	Test bool
}

// Key returns the lookup key of the answer.
func (a *Answer) Key() AnswerKey {
	return AnswerKey{Pack: a.Pack, Day: a.Day, Unit: a.Unit, Test: a.Test}
}

// NewModel returns an empty model with default inputs and output settings.
func NewModel() *Model {
	return &Model{
		Inputs: &Inputs{},
		Packs:  make(map[string]*PackSettings),
		Output: &Output{},
	}
}

// Merge folds other into m. Scalar settings from other win when set, pack
// overrides are replaced by name and answers are appended.
func (m *Model) Merge(other *Model) {
	if other == nil {
		return
	}
	if other.Inputs != nil {
		if other.Inputs.Root != "" {
			m.Inputs.Root = other.Inputs.Root
		}
		if other.Inputs.TestSuffix != "" {
			m.Inputs.TestSuffix = other.Inputs.TestSuffix
		}
		if other.Inputs.Extension != "" {
			m.Inputs.Extension = other.Inputs.Extension
		}
	}
	for name, p := range other.Packs {
		m.Packs[name] = p
	}
	if other.Output != nil {
		if other.Output.CensorPlaceholder != "" {
			m.Output.CensorPlaceholder = other.Output.CensorPlaceholder
		}
		m.Output.Timing = m.Output.Timing || other.Output.Timing
	}
	m.Answers = append(m.Answers, other.Answers...)
}

// AnswerIndex returns the answers keyed by unit. When several answers share a
// key, the last one wins.
func (m *Model) AnswerIndex() map[AnswerKey]string {
	idx := make(map[AnswerKey]string, len(m.Answers))
	for _, a := range m.Answers {
		idx[a.Key()] = a.Value
	}
	return idx
}

package puzzle

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Layout describes where a pack's input files live on disk.
//
// Real input for a day is read from <Root>/<pack>/<day><Extension>, the test
// fixture from <Root>/<pack>/<day><TestSuffix><Extension>, and a fixture
// variant from <Root>/<pack>/<day><TestSuffix>_<variant><Extension>.
type Layout struct {
	Root       string
	TestSuffix string
	Extension  string
}

// DefaultLayout returns the layout used when no settings override it.
func DefaultLayout() Layout {
	return Layout{Root: "input", TestSuffix: "_test", Extension: ".txt"}
}

// withDefaults fills empty fields from DefaultLayout.
func (l Layout) withDefaults() Layout {
	def := DefaultLayout()
	if l.Root == "" {
		l.Root = def.Root
	}
	if l.TestSuffix == "" {
		l.TestSuffix = def.TestSuffix
	}
	if l.Extension == "" {
		l.Extension = def.Extension
	}
	return l
}

// Path returns the input file path for a day of the named pack.
func (l Layout) Path(pack, day, variant string, test bool) string {
	l = l.withDefaults()
	name := day
	if test {
		name += l.TestSuffix
		if variant != "" {
			name += "_" + variant
		}
	}
	return filepath.Join(l.Root, pack, name+l.Extension)
}

// Pack is a named collection of days. It is immutable once registered.
type Pack struct {
	Name   string
	layout Layout
	days   map[string]*Day
	order  []string
}

// NewPack builds a pack from its days. Duplicate day names are a programming
// error and panic.
func NewPack(name string, days ...*Day) *Pack {
	p := &Pack{
		Name:   name,
		layout: DefaultLayout(),
		days:   make(map[string]*Day, len(days)),
	}
	for _, d := range days {
		if _, exists := p.days[d.Name]; exists {
			panic(fmt.Sprintf("day '%s' already defined in pack '%s'", d.Name, name))
		}
		p.days[d.Name] = d
		p.order = append(p.order, d.Name)
	}
	return p
}

// WithLayout returns a copy of the pack reading its inputs from layout.
// Empty layout fields keep their defaults.
func (p *Pack) WithLayout(layout Layout) *Pack {
	cp := *p
	cp.layout = layout.withDefaults()
	return &cp
}

// Layout reports the file layout the pack reads its inputs from.
func (p *Pack) Layout() Layout {
	return p.layout
}

// Day looks up a day by name.
func (p *Pack) Day(name string) (*Day, bool) {
	d, ok := p.days[name]
	return d, ok
}

// Days returns all days in registration order.
func (p *Pack) Days() []*Day {
	out := make([]*Day, 0, len(p.order))
	for _, name := range p.order {
		out = append(out, p.days[name])
	}
	return out
}

// ReadLines loads the input lines of a day. In test mode a non-empty variant
// selects the variant fixture when it exists and falls back to the plain test
// fixture otherwise.
func (p *Pack) ReadLines(day, variant string, test bool) ([]string, error) {
	path := p.layout.Path(p.Name, day, "", test)
	if test && variant != "" {
		vpath := p.layout.Path(p.Name, day, variant, true)
		if _, err := os.Stat(vpath); err == nil {
			path = vpath
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrInputNotFound, path)
		}
		return nil, fmt.Errorf("failed to read input %s: %w", path, err)
	}
	return SplitLines(string(data)), nil
}

// SplitLines splits text into lines, accepting \r\n endings and ignoring the
// newline terminating the last line.
func SplitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return []string{}
	}
	return strings.Split(text, "\n")
}

package grid

import (
	"fmt"
	"strings"
)

// Grid is a rectangular matrix of bytes.
type Grid struct {
	Height, Width int
	cells         [][]byte
}

// New builds a Grid from equally long lines.
func New(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	g := &Grid{Height: len(lines), Width: len(lines[0]), cells: make([][]byte, len(lines))}
	for r, line := range lines {
		if len(line) != g.Width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), g.Width)
		}
		g.cells[r] = []byte(line)
	}
	return g, nil
}

// MustNew is like New but panics on malformed input.
func MustNew(lines []string) *Grid {
	g, err := New(lines)
	if err != nil {
		panic(err)
	}
	return g
}

// InBounds reports whether p lies inside the grid.
func (g *Grid) InBounds(p Point) bool {
	return p.R >= 0 && p.R < g.Height && p.C >= 0 && p.C < g.Width
}

// At returns the cell at p. p must be in bounds.
func (g *Grid) At(p Point) byte {
	return g.cells[p.R][p.C]
}

// Get returns the cell at p and whether p is in bounds.
func (g *Grid) Get(p Point) (byte, bool) {
	if !g.InBounds(p) {
		return 0, false
	}
	return g.cells[p.R][p.C], true
}

// Wrapped returns the cell at p on an infinite tiling of the grid.
func (g *Grid) Wrapped(p Point) byte {
	r, c := p.R%g.Height, p.C%g.Width
	if r < 0 {
		r += g.Height
	}
	if c < 0 {
		c += g.Width
	}
	return g.cells[r][c]
}

// Set overwrites the cell at p.
func (g *Grid) Set(p Point, b byte) {
	g.cells[p.R][p.C] = b
}

// Find returns the first cell holding b in row-major order.
func (g *Grid) Find(b byte) (Point, bool) {
	for r, row := range g.cells {
		for c, v := range row {
			if v == b {
				return Point{r, c}, true
			}
		}
	}
	return Point{}, false
}

// FindAll returns every cell holding b in row-major order.
func (g *Grid) FindAll(b byte) []Point {
	var out []Point
	for r, row := range g.cells {
		for c, v := range row {
			if v == b {
				out = append(out, Point{r, c})
			}
		}
	}
	return out
}

// Neighbors returns the in-bounds cells at the given offsets from p.
func (g *Grid) Neighbors(p Point, offsets []Point) []Point {
	out := make([]Point, 0, len(offsets))
	for _, d := range offsets {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Row returns row r as a string.
func (g *Grid) Row(r int) string {
	return string(g.cells[r])
}

// Rows returns all rows as strings.
func (g *Grid) Rows() []string {
	out := make([]string, g.Height)
	for r := range g.cells {
		out[r] = string(g.cells[r])
	}
	return out
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	cp := &Grid{Height: g.Height, Width: g.Width, cells: make([][]byte, g.Height)}
	for r, row := range g.cells {
		cp.cells[r] = append([]byte(nil), row...)
	}
	return cp
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	return strings.Join(g.Rows(), "\n")
}

// Transpose swaps rows and columns of equally long lines.
func Transpose(lines []string) []string {
	if len(lines) == 0 {
		return nil
	}
	out := make([]string, len(lines[0]))
	buf := make([]byte, len(lines))
	for c := range out {
		for r, line := range lines {
			buf[r] = line[c]
		}
		out[c] = string(buf)
	}
	return out
}

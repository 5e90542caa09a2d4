package grid

// Point is a cell position, or an offset between positions.
type Point struct {
	R, C int
}

// Direction offsets.
var (
	North = Point{-1, 0}
	East  = Point{0, 1}
	South = Point{1, 0}
	West  = Point{0, -1}
)

// Conn4 lists the orthogonal offsets clockwise from north.
var Conn4 = []Point{North, East, South, West}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.R + q.R, p.C + q.C}
}

// Sub returns the offset from q to p.
func (p Point) Sub(q Point) Point {
	return Point{p.R - q.R, p.C - q.C}
}

// Scale multiplies both coordinates by k.
func (p Point) Scale(k int) Point {
	return Point{p.R * k, p.C * k}
}

// Neg returns the opposite offset.
func (p Point) Neg() Point {
	return Point{-p.R, -p.C}
}

// TurnLeft rotates an offset a quarter turn counter-clockwise.
func (p Point) TurnLeft() Point {
	return Point{-p.C, p.R}
}

// TurnRight rotates an offset a quarter turn clockwise.
func (p Point) TurnRight() Point {
	return Point{p.C, -p.R}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return abs(p.R-q.R) + abs(p.C-q.C)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

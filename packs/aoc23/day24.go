package aoc23

import (
	"math/big"
	"strconv"

	"github.com/specialistvlad/daypack/internal/puzzle"
)

const (
	testAreaMin = 200000000000000
	testAreaMax = 400000000000000
)

func day24() *puzzle.Day {
	return puzzle.NewDay("day24",
		puzzle.Part(1, func(lines []string) string {
			return strconv.Itoa(crossingsWithin(parseHail(lines), testAreaMin, testAreaMax))
		}),
		puzzle.Part(2, func(lines []string) string { return rockThrow(parseHail(lines)).String() }),
	)
}

type hailstone struct {
	p, v [3]int64
}

func parseHail(lines []string) []hailstone {
	hail := make([]hailstone, 0, len(lines))
	for _, line := range lines {
		n := puzzle.Ints(line)
		puzzle.Assertf(len(n) == 6, "invalid hailstone %q", line)
		var h hailstone
		for i := range 3 {
			h.p[i], h.v[i] = int64(n[i]), int64(n[i+3])
		}
		hail = append(hail, h)
	}
	return hail
}

func rat(v int64) *big.Rat {
	return new(big.Rat).SetInt64(v)
}

// crossing returns the point where the x/y paths of a and b cross, if both
// hailstones reach it in the future.
func crossing(a, b hailstone) (x, y *big.Rat, ok bool) {
	det := a.v[0]*b.v[1] - a.v[1]*b.v[0]
	if det == 0 {
		return nil, nil, false
	}
	dx, dy := rat(b.p[0]-a.p[0]), rat(b.p[1]-a.p[1])
	ta := new(big.Rat).Sub(new(big.Rat).Mul(dx, rat(b.v[1])), new(big.Rat).Mul(dy, rat(b.v[0])))
	ta.Quo(ta, rat(det))
	tb := new(big.Rat).Sub(new(big.Rat).Mul(dx, rat(a.v[1])), new(big.Rat).Mul(dy, rat(a.v[0])))
	tb.Quo(tb, rat(det))
	if ta.Sign() < 0 || tb.Sign() < 0 {
		return nil, nil, false
	}
	x = new(big.Rat).Add(rat(a.p[0]), new(big.Rat).Mul(rat(a.v[0]), ta))
	y = new(big.Rat).Add(rat(a.p[1]), new(big.Rat).Mul(rat(a.v[1]), ta))
	return x, y, true
}

// crossingsWithin counts the pairs of hailstones whose future x/y paths
// cross inside the square test area [lo, hi].
func crossingsWithin(hail []hailstone, lo, hi int64) int {
	from, to := rat(lo), rat(hi)
	inside := func(v *big.Rat) bool { return v.Cmp(from) >= 0 && v.Cmp(to) <= 0 }
	count := 0
	for i := range hail {
		for j := i + 1; j < len(hail); j++ {
			if x, y, ok := crossing(hail[i], hail[j]); ok && inside(x) && inside(y) {
				count++
			}
		}
	}
	return count
}

// rockThrow finds the rock position and velocity that hit every hailstone
// and returns the sum of the position coordinates.
//
// For each hailstone (P - p) x (V - v) = 0. The terms quadratic in the
// unknowns are the same for every hailstone, so subtracting the equations of
// two hailstones in one coordinate plane leaves a linear equation in P and V.
func rockThrow(hail []hailstone) *big.Int {
	puzzle.Assertf(len(hail) >= 3, "need at least three hailstones, got %d", len(hail))

	var rows [][]*big.Rat
	planes := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	for j := 1; j < len(hail) && j <= 4; j++ {
		hi, hj := hail[0], hail[j]
		for _, pl := range planes {
			a, b := pl[0], pl[1]
			row := make([]*big.Rat, 7)
			for k := range row {
				row[k] = new(big.Rat)
			}
			row[a] = rat(hi.v[b] - hj.v[b])
			row[b] = rat(hj.v[a] - hi.v[a])
			row[3+a] = rat(hj.p[b] - hi.p[b])
			row[3+b] = rat(hi.p[a] - hj.p[a])
			lhs := new(big.Rat).Sub(new(big.Rat).Mul(rat(hi.p[a]), rat(hi.v[b])), new(big.Rat).Mul(rat(hi.p[b]), rat(hi.v[a])))
			rhs := new(big.Rat).Sub(new(big.Rat).Mul(rat(hj.p[a]), rat(hj.v[b])), new(big.Rat).Mul(rat(hj.p[b]), rat(hj.v[a])))
			row[6] = lhs.Sub(lhs, rhs)
			rows = append(rows, row)
		}
	}

	solution := solveLinear(rows, 6)
	sum := new(big.Rat)
	for _, v := range solution[:3] {
		sum.Add(sum, v)
	}
	puzzle.Assertf(sum.IsInt(), "rock position is not integral: %s", sum.RatString())
	return sum.Num()
}

// solveLinear reduces the augmented rows with Gauss-Jordan elimination and
// returns the unique values of the n unknowns.
func solveLinear(rows [][]*big.Rat, n int) []*big.Rat {
	for col := range n {
		pivot := -1
		for r := col; r < len(rows); r++ {
			if rows[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		puzzle.Assertf(pivot >= 0, "equations do not determine unknown %d", col)
		rows[col], rows[pivot] = rows[pivot], rows[col]

		inv := new(big.Rat).Inv(rows[col][col])
		for k := range rows[col] {
			rows[col][k].Mul(rows[col][k], inv)
		}
		for r := range rows {
			if r == col || rows[r][col].Sign() == 0 {
				continue
			}
			f := new(big.Rat).Set(rows[r][col])
			for k := range rows[r] {
				rows[r][k].Sub(rows[r][k], new(big.Rat).Mul(f, rows[col][k]))
			}
		}
	}
	for _, row := range rows[n:] {
		puzzle.Assertf(row[n].Sign() == 0, "equations are inconsistent")
	}

	out := make([]*big.Rat, n)
	for i := range out {
		out[i] = rows[i][n]
	}
	return out
}

// Package mathx holds the small number-theory helpers shared by the packs.
package mathx

import "golang.org/x/exp/constraints"

// Abs returns the absolute value of x.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// GCD returns the greatest common divisor of a and b.
func GCD[T constraints.Signed](a, b T) T {
	a, b = Abs(a), Abs(b)
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// LCM returns the least common multiple of all values, or 1 for none.
func LCM[T constraints.Signed](values ...T) T {
	var out T = 1
	for _, v := range values {
		out = out / GCD(out, v) * v
	}
	return out
}

// Sieve returns the primes not greater than n.
func Sieve(n int) []int {
	if n < 2 {
		return nil
	}
	composite := make([]bool, n+1)
	var primes []int
	for i := 2; i <= n; i++ {
		if composite[i] {
			continue
		}
		primes = append(primes, i)
		for j := i * i; j <= n; j += i {
			composite[j] = true
		}
	}
	return primes
}

// Shoelace returns twice the signed area of the closed polygon through
// points given as (x, y) pairs.
func Shoelace(xs, ys []int) int {
	n := len(xs)
	sum := 0
	for i := range xs {
		j := (i + 1) % n
		sum += xs[i]*ys[j] - xs[j]*ys[i]
	}
	return sum
}

package euler

import (
	"math"
	"strconv"

	"github.com/specialistvlad/daypack/internal/mathx"
	"github.com/specialistvlad/daypack/internal/puzzle"
)

// param reads the problem parameter from the single input line.
func param(lines []string) int {
	puzzle.Assertf(len(lines) == 1, "expected a single parameter line, got %d lines", len(lines))
	n := puzzle.MustInt(lines[0])
	puzzle.Assertf(n >= 0, "parameter must not be negative, got %d", n)
	return n
}

// answer adapts a numeric solver to a single-part day.
func answer(fn func(n int) int) puzzle.SolverFunc {
	return func(lines []string) string { return strconv.Itoa(fn(param(lines))) }
}

// multiplesOf3Or5 sums the natural numbers below n divisible by 3 or 5.
func multiplesOf3Or5(n int) int {
	below := func(k int) int {
		m := (n - 1) / k
		return k * m * (m + 1) / 2
	}
	if n <= 0 {
		return 0
	}
	return below(3) + below(5) - below(15)
}

// evenFibonacci sums the even Fibonacci numbers not exceeding n.
func evenFibonacci(n int) int {
	sum := 0
	for a, b := 1, 2; b <= n; a, b = b, a+b {
		if b%2 == 0 {
			sum += b
		}
	}
	return sum
}

// largestPrimeFactor returns the largest prime dividing n.
func largestPrimeFactor(n int) int {
	puzzle.Assertf(n > 1, "%d has no prime factors", n)
	largest := 1
	for f := 2; f*f <= n; f++ {
		for n%f == 0 {
			largest, n = f, n/f
		}
	}
	if n > 1 {
		largest = n
	}
	return largest
}

func isPalindrome(n int) bool {
	s := strconv.Itoa(n)
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		if s[i] != s[j] {
			return false
		}
	}
	return true
}

// largestPalindromeProduct returns the largest palindrome that is the
// product of two digits-digit numbers.
func largestPalindromeProduct(digits int) int {
	puzzle.Assertf(digits > 0, "need at least one digit")
	lo := int(math.Pow10(digits - 1))
	hi := lo*10 - 1
	best := 0
	for a := hi; a >= lo && a*hi > best; a-- {
		for b := hi; b >= a && a*b > best; b-- {
			if isPalindrome(a * b) {
				best = a * b
			}
		}
	}
	return best
}

// smallestMultiple returns the smallest number divisible by 1 to n.
func smallestMultiple(n int) int {
	values := make([]int, 0, n)
	for i := 1; i <= n; i++ {
		values = append(values, i)
	}
	return mathx.LCM(values...)
}

// sumSquareDifference returns the square of the sum of 1 to n minus the
// sum of their squares.
func sumSquareDifference(n int) int {
	sum := n * (n + 1) / 2
	squares := n * (n + 1) * (2*n + 1) / 6
	return sum*sum - squares
}

// nthPrime returns the nth prime, counting 2 as the first.
func nthPrime(n int) int {
	puzzle.Assertf(n > 0, "primes are counted from 1")
	limit := 15
	if n >= 6 {
		// p_n < n(ln n + ln ln n) for n >= 6.
		ln := math.Log(float64(n))
		limit = int(float64(n) * (ln + math.Log(ln)))
	}
	primes := mathx.Sieve(limit)
	puzzle.Assertf(len(primes) >= n, "sieve up to %d holds only %d primes", limit, len(primes))
	return primes[n-1]
}

// primeSum sums the primes below n.
func primeSum(n int) int {
	sum := 0
	for _, p := range mathx.Sieve(n - 1) {
		sum += p
	}
	return sum
}

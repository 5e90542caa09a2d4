package mathx

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGCDAndLCM(t *testing.T) {
	require.Equal(t, 6, GCD(12, -18))
	require.Equal(t, 5, GCD(0, 5))
	require.Equal(t, 2520, LCM(1, 2, 3, 4, 5, 6, 7, 8, 9, 10))
	require.Equal(t, 1, LCM[int]())
	require.Equal(t, int64(232792560), LCM[int64](16, 9, 5, 7, 11, 13, 17, 19))
}

func TestSieve(t *testing.T) {
	require.Equal(t, []int{2, 3, 5, 7}, Sieve(10))
	require.Nil(t, Sieve(1))
}

func TestShoelace(t *testing.T) {
	// unit square, counter-clockwise
	require.Equal(t, 2, Shoelace([]int{0, 1, 1, 0}, []int{0, 0, 1, 1}))
	require.Equal(t, 7, Abs(-7))
}

package euler

import (
	"testing"

	"github.com/specialistvlad/daypack/internal/registry"
	"github.com/specialistvlad/daypack/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPack_ExampleAnswers(t *testing.T) {
	testCases := []struct {
		problem string
		want    string
	}{
		{"problem001", "23"},
		{"problem002", "44"},
		{"problem003", "29"},
		{"problem004", "9009"},
		{"problem005", "2520"},
		{"problem006", "2640"},
		{"problem007", "13"},
		{"problem010", "17"},
	}

	p := Pack()
	for _, tc := range testCases {
		t.Run(tc.problem, func(t *testing.T) {
			testutil.AssertExampleAnswers(t, p, tc.problem, map[string]string{"Part 1": tc.want})
		})
	}
}

func TestProblems_KnownValues(t *testing.T) {
	assert.Equal(t, 233168, multiplesOf3Or5(1000))
	assert.Equal(t, 0, multiplesOf3Or5(0))
	assert.Equal(t, 4613732, evenFibonacci(4_000_000))
	assert.Equal(t, 6857, largestPrimeFactor(600851475143))
	assert.Equal(t, 906609, largestPalindromeProduct(3))
	assert.Equal(t, 232792560, smallestMultiple(20))
	assert.Equal(t, 25164150, sumSquareDifference(100))
	assert.Equal(t, 104743, nthPrime(10001))
	assert.Equal(t, 2, nthPrime(1))
	assert.Equal(t, 0, primeSum(2))
}

func TestParam_RejectsMalformedInput(t *testing.T) {
	testCases := []struct {
		name  string
		lines []string
	}{
		{name: "no lines", lines: []string{}},
		{name: "two lines", lines: []string{"1", "2"}},
		{name: "negative", lines: []string{"-4"}},
		{name: "not a number", lines: []string{"ten"}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Panics(t, func() { param(tc.lines) })
		})
	}
}

func TestModule_RegistersPack(t *testing.T) {
	// --- Arrange ---
	r := registry.New()

	// --- Act ---
	(&Module{}).Register(r)

	// --- Assert ---
	p, ok := r.Pack(Name)
	require.True(t, ok)
	require.Len(t, p.Days(), 8)
	_, ok = p.Day("problem008")
	require.False(t, ok)
}

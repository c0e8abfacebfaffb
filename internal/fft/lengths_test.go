package fft

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isSmooth(n int) bool {
	for _, p := range []int{2, 3, 5, 7, 11} {
		for n%p == 0 {
			n /= p
		}
	}

	return n == 1
}

func TestLargestPrimeFactor(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 2},
		{6, 3},
		{12, 3},
		{13, 13},
		{97, 97},
		{100, 5},
		{121, 11},
		{1009, 1009},
		{2 * 3 * 5 * 7 * 11, 11},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, largestPrimeFactor(tc.n), "largestPrimeFactor(%d)", tc.n)
	}
}

func TestGoodSizeIdentityBelow13(t *testing.T) {
	for n := 1; n <= 12; n++ {
		assert.Equal(t, n, goodSize(n))
	}
}

func TestGoodSizeProperties(t *testing.T) {
	for n := 1; n <= 2048; n++ {
		g := goodSize(n)
		require.GreaterOrEqual(t, g, n, "goodSize(%d)", n)

		if n > 12 {
			require.True(t, isSmooth(g), "goodSize(%d) = %d is not 11-smooth", n, g)

			// minimality: no smooth integer in [n, g)
			for m := n; m < g; m++ {
				require.False(t, isSmooth(m), "goodSize(%d) = %d skipped smooth %d", n, g, m)
			}
		}
	}
}

func TestGoodSizeKnownValues(t *testing.T) {
	cases := []struct {
		n, want int
	}{
		{13, 14},
		{17, 18},
		{23, 24},
		{97, 98},
		{101, 105},
		{193, 196},
		{1041, 1050},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, goodSize(tc.n), "goodSize(%d)", tc.n)
	}
}

func TestCostGuess(t *testing.T) {
	// n * sum of factor weights; factors above 5 cost 1.1x
	assert.InDelta(t, 8*(2.0+2+2), costGuess(8), 1e-9)
	assert.InDelta(t, 6*(2.0+3), costGuess(6), 1e-9)
	assert.InDelta(t, 97*1.1*97, costGuess(97), 1e-9)
	assert.InDelta(t, 14*(2+1.1*7), costGuess(14), 1e-9)

	// the heuristic must prefer smooth lengths over primes of similar size
	assert.Less(t, costGuess(96), costGuess(97))
}

func TestFactorizeLength(t *testing.T) {
	for n := 1; n <= 512; n++ {
		facts, err := factorizeLength(n)
		require.NoError(t, err)

		prod := 1
		for _, f := range facts {
			prod *= f
		}

		require.Equal(t, n, prod, "factor product for n=%d", n)
	}
}

func TestFactorizeOrder(t *testing.T) {
	// factor 4 is extracted before factor 2, and the 2 moves to the front
	facts, err := factorizeLength(24)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 3}, facts)

	facts, err = factorizeLength(32)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 4}, facts)

	facts, err = factorizeLength(60)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 5}, facts)

	facts, err = factorizeLength(13)
	require.NoError(t, err)
	assert.Equal(t, []int{13}, facts)
}

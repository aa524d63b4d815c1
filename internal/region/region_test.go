package region

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAddOverflowSafe(t *testing.T) {
	cases := []struct {
		a, b int
		sum  int
		ok   bool
	}{
		{0, 0, 0, true},
		{1, 2, 3, true},
		{math.MaxInt, 0, math.MaxInt, true},
		{math.MaxInt, 1, 0, false},
		{math.MinInt, -1, 0, false},
		{-5, 3, -2, true},
	}
	for _, tc := range cases {
		sum, ok := AddOverflowSafe(tc.a, tc.b)
		require.Equal(t, tc.ok, ok, "%d + %d", tc.a, tc.b)
		if ok {
			require.Equal(t, tc.sum, sum, "%d + %d", tc.a, tc.b)
		}
	}
}

func TestCheckSpan(t *testing.T) {
	end, err := CheckSpan(100, 10, 20)
	require.NoError(t, err)
	require.Equal(t, 30, end)

	_, err = CheckSpan(100, -1, 5)
	require.Error(t, err)
	_, err = CheckSpan(100, 5, -1)
	require.Error(t, err)
	_, err = CheckSpan(100, 90, 11)
	require.Error(t, err)
	_, err = CheckSpan(100, math.MaxInt, 1)
	require.Error(t, err)

	end, err = CheckSpan(0, 0, 0)
	require.NoError(t, err)
	require.Equal(t, 0, end)
}

func TestHas(t *testing.T) {
	b := make([]byte, 8)
	require.True(t, Has(b, 0, 8))
	require.True(t, Has(b, 8, 0))
	require.False(t, Has(b, 1, 8))
	require.False(t, Has(b, -1, 1))
}

package numeric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cssflow/layout/numeric"
)

func TestFloat64Hashable_NaNCollapsesToSentinel(t *testing.T) {
	var n numeric.Float64
	a := n.Hashable(math.NaN())
	b := n.Hashable(math.Inf(1))
	require.Equal(t, a, b, "NaN and +Inf must collapse to the same sentinel")
	require.NotEqual(t, a, n.Hashable(1.0))
}

func TestFloat32Hashable_StableAcrossEqualValues(t *testing.T) {
	var n numeric.Float32
	require.Equal(t, n.Hashable(10.5), n.Hashable(10.5))
	require.NotEqual(t, n.Hashable(10.5), n.Hashable(10.25))
}

func TestFixedRoundTrip(t *testing.T) {
	v := numeric.FixedFromFloat64(12.75)
	require.InDelta(t, 12.75, v.Float64(), 1.0/256.0)
}

func TestFixedArithmeticMatchesFloat(t *testing.T) {
	var n numeric.FixedNum
	a := numeric.FixedFromFloat64(3.5)
	b := numeric.FixedFromFloat64(2.0)
	require.InDelta(t, 7.0, n.Mul(a, b).Float64(), 0.01)
	require.InDelta(t, 5.5, n.Add(a, b).Float64(), 0.01)
}

func TestClampMinWinsOverMax(t *testing.T) {
	var n numeric.Float64
	got := numeric.Clamp[float64](n, 50, 80, 20) // min=80 > max=20
	require.Equal(t, 80.0, got)
}

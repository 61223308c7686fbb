package numeric

import "github.com/chewxy/math32"

// Float32 is the fast Num[float32] instantiation: platform rounding may
// vary slightly (as with any IEEE-754 float32 arithmetic), but it avoids
// the float64 round-trips of the default engine path. Useful for
// embedders doing layout on a large number of nodes per frame where the
// half-width float buys real cache and SIMD locality.
type Float32 struct{}

func (Float32) Zero() float32            { return 0 }
func (Float32) Add(a, b float32) float32 { return a + b }
func (Float32) Sub(a, b float32) float32 { return a - b }
func (Float32) Mul(a, b float32) float32 { return a * b }
func (Float32) Max(a, b float32) float32 { return math32.Max(a, b) }
func (Float32) Min(a, b float32) float32 { return math32.Min(a, b) }
func (Float32) Less(a, b float32) bool   { return a < b }

func (Float32) FromFloat64(f float64) float32 { return float32(f) }
func (Float32) ToFloat64(v float32) float64   { return float64(v) }

func (Float32) IsFinite(v float32) bool {
	return !math32.IsNaN(v) && !math32.IsInf(v, 0)
}

// Hashable projects a float32 onto its exact IEEE-754 bit pattern, folded
// into a uint64 so it shares a hash space with Fixed and Float64 keys.
// Non-finite values collapse to nanSentinel, same rule as Float64.
func (n Float32) Hashable(v float32) uint64 {
	if !n.IsFinite(v) {
		return nanSentinel
	}
	return uint64(math32.Float32bits(v))
}

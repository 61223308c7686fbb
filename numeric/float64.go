package numeric

import "math"

// Float64 is the default Num[float64] instantiation, used by the engine's
// cache-key construction for hashing its native float64 geometry.
type Float64 struct{}

func (Float64) Zero() float64                { return 0 }
func (Float64) Add(a, b float64) float64     { return a + b }
func (Float64) Sub(a, b float64) float64     { return a - b }
func (Float64) Mul(a, b float64) float64     { return a * b }
func (Float64) Max(a, b float64) float64     { return math.Max(a, b) }
func (Float64) Min(a, b float64) float64     { return math.Min(a, b) }
func (Float64) Less(a, b float64) bool       { return a < b }
func (Float64) FromFloat64(f float64) float64 { return f }
func (Float64) ToFloat64(v float64) float64  { return v }

func (Float64) IsFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Hashable projects a float64 onto its exact IEEE-754 bit pattern, except
// for non-finite values which collapse to nanSentinel so that two cache
// keys built from "the host returned NaN" always collide rather than
// never matching because NaN != NaN.
func (n Float64) Hashable(v float64) uint64 {
	if !n.IsFinite(v) {
		return nanSentinel
	}
	return math.Float64bits(v)
}

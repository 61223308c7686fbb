package numeric

import "math"

// Fixed is a 24.8 fixed-point number (8 fractional bits, stored in the
// low bits of an int32), giving bit-exact, platform-independent layout
// results at the cost of ~1/256px precision. Mirrors the Fix/Unfix
// convention used for glyph metrics in golang.org/x/image/math/fixed,
// just with 8 fractional bits instead of 6.
type Fixed int32

const fixedShift = 8
const fixedScale = 1 << fixedShift

// FixedFromFloat64 converts a float64 to Fixed, rounding to the nearest
// 1/256 pixel.
func FixedFromFloat64(f float64) Fixed {
	return Fixed(math.Round(f * fixedScale))
}

// Float64 converts a Fixed value back to float64.
func (v Fixed) Float64() float64 {
	return float64(v) / fixedScale
}

// FixedNum is the Num[Fixed] instantiation.
type FixedNum struct{}

func (FixedNum) Zero() Fixed            { return 0 }
func (FixedNum) Add(a, b Fixed) Fixed   { return a + b }
func (FixedNum) Sub(a, b Fixed) Fixed   { return a - b }
func (FixedNum) Less(a, b Fixed) bool   { return a < b }

func (FixedNum) Max(a, b Fixed) Fixed {
	if a > b {
		return a
	}
	return b
}

func (FixedNum) Min(a, b Fixed) Fixed {
	if a < b {
		return a
	}
	return b
}

// Mul multiplies two fixed-point values, widening to int64 to avoid
// overflow before rescaling.
func (FixedNum) Mul(a, b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> fixedShift)
}

func (FixedNum) FromFloat64(f float64) Fixed { return FixedFromFloat64(f) }
func (FixedNum) ToFloat64(v Fixed) float64   { return v.Float64() }

// IsFinite is always true: fixed-point has no NaN/Inf representation.
func (FixedNum) IsFinite(Fixed) bool { return true }

// Hashable is the identity projection widened to uint64: a fixed-point
// value already has a single canonical bit pattern per numeric value, so
// no NaN-collapsing sentinel is needed.
func (FixedNum) Hashable(v Fixed) uint64 { return uint64(uint32(v)) }

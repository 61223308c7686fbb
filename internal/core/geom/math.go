package geom

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// MaxF64 returns the greater of two doubles.
func MaxF64(a, b float64) float64 {
	return math.Max(a, b)
}

// Fixed-Point Arithmetic

// Unfix converts a fixed.Int26_6 value (1/64 fractional precision) to float64.
// Used to turn glyph-metric results from golang.org/x/image/font back into
// the engine's plain float64 geometry.
func Unfix(x fixed.Int26_6) float64 {
	const shift, mask = 6, 1<<6 - 1
	if x >= 0 {
		return float64(x>>shift) + float64(x&mask)/64
	}
	x = -x
	if x >= 0 {
		return -(float64(x>>shift) + float64(x&mask)/64)
	}
	return 0
}


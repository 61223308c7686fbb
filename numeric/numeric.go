// Package numeric provides the LengthNum abstraction: a small trait over
// the numeric type a layout engine computes with, so the same algorithms
// can run on IEEE-754 float32 (fast, platform-variable rounding) or a
// fixed-point type (deterministic across platforms).
//
// The engine package itself computes in float64 for simplicity; Num is
// used where an embedder wants bit-exact cache keys or determinism for an
// alternate numeric representation, and by the engine's cache-key
// construction (engine/cache_key.go) for the hashable projection every
// cache key is built from.
package numeric

// Num groups the arithmetic, conversion, and hashable-projection
// operations a layout engine needs from its numeric type L. Three concrete
// implementations are provided: Float32 (via chewxy/math32), Float64, and
// FixedNum (24.8 fixed-point, deterministic across platforms).
type Num[L any] interface {
	Zero() L
	Add(a, b L) L
	Sub(a, b L) L
	Mul(a, b L) L
	Max(a, b L) L
	Min(a, b L) L
	Less(a, b L) bool
	FromFloat64(f float64) L
	ToFloat64(v L) float64
	// IsFinite reports whether v is a representable, non-NaN, non-Inf
	// value. Fixed-point types are always finite.
	IsFinite(v L) bool
	// Hashable projects v into a bit-stable key for cache lookups.
	// NaN/Inf collapse to a fixed sentinel so caches stay stable across
	// calls that would otherwise hash inconsistently (NaN != NaN).
	Hashable(v L) uint64
}

// nanSentinel is the hashable projection used for any non-finite value,
// regardless of which Num implementation produced it.
const nanSentinel uint64 = 0xFFFFFFFFFFFFFFFF

// Clamp applies the uniform min/max clamping rule used throughout the
// engine: clamp(size, min, max) = max(min, min(size, max)), where min
// wins if min > max.
func Clamp[L any](n Num[L], size, min, max L) L {
	return n.Max(min, n.Min(size, max))
}

package engine

import "github.com/cssflow/layout/numeric"

var f64 numeric.Float64

// cacheKeyHash projects a float64 into the stable uint64 a cache.Key
// field needs, reusing numeric.Float64's NaN/Inf-collapsing Hashable so
// two distinct "unknown" sentinels never accidentally collide with a
// real measurement (spec §4.3/§4.9).
func cacheKeyHash(v float64) uint64 {
	return f64.Hashable(v)
}

// availableSpaceHash folds an AvailableSpace into a single uint64: the
// three non-definite kinds get fixed sentinels so MinContent and
// MaxContent requests never collide with a coincidentally-equal Definite
// width.
func availableSpaceHash(a AvailableSpace) uint64 {
	switch a.Kind {
	case SpaceDefinite:
		return cacheKeyHash(a.Value)
	case SpaceMinContent:
		return 1<<63 | 1
	case SpaceMaxContent:
		return 1<<63 | 2
	default: // SpaceIndefinite
		return 1<<63 | 3
	}
}

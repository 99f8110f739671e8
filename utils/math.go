package utils

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"
)

// Ordinals returns 0..N-1 as floats, used as per-entity id fields
func Ordinals(N int) (v []float64) {
	v = make([]float64, N)
	for i := range v {
		v[i] = float64(i)
	}
	return
}

// IsFinite is false if any component is NaN or infinite
func IsFinite(A any) bool {
	ok := func(f float64) bool { return !math.IsNaN(f) && !math.IsInf(f, 0) }
	switch v := A.(type) {
	case float64:
		return ok(v)
	case []float64:
		for _, f := range v {
			if !ok(f) {
				return false
			}
		}
	case [4]float64:
		return IsFinite(v[:])
	case r3.Vec:
		return ok(v.X) && ok(v.Y) && ok(v.Z)
	case []r3.Vec:
		for _, vec := range v {
			if !IsFinite(vec) {
				return false
			}
		}
	}
	return true
}

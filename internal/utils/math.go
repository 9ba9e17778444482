// internal/utils/math.go
package utils

import "math"

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

// Lerp performs linear interpolation.
func Lerp(from, to float32, t float32) float32 {
	return from + (to-from)*t
}

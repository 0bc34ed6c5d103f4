package mathutil

import "math"

// Lerp interpolates linearly between a and b. t is not clamped.
// Written as (1-t)*a + t*b so that t=0 and t=1 reproduce a and b exactly.
func Lerp(a, b, t float64) float64 {
	return (1-t)*a + t*b
}

// Clamp restricts v to [lo, hi]. NaN maps to lo.
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

package gamemath

import "math"

// Sign returns -1, 0 or 1 according to the sign of v.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// Axis returns +1 when only positive is held, -1 when only negative is held
// and 0 otherwise.
func Axis(negative, positive bool) float64 {
	var v float64
	if positive {
		v++
	}
	if negative {
		v--
	}
	return v
}

// Approach moves current toward target so that the remaining gap halves
// every halfLife seconds, independent of the frame rate.
func Approach(current, target, halfLife, dt float64) float64 {
	return current + (target-current)*(1-math.Pow(0.5, dt/halfLife))
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp restricts v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

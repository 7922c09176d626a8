package common

import "github.com/jakecoffman/cp"

func Lerp(a, b, t float64) float64 {
	return a + t*(b-a)
}

// Clamp bounds v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return cp.Clamp(v, lo, hi)
}

// FrameScale converts a delta time in milliseconds into a multiple of the
// reference frame that velocities are expressed in.
func FrameScale(dt float64) float64 {
	return dt / FrameMillis
}

// Sign returns -1, 0 or 1.
func Sign(v float64) float64 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

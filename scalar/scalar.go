package scalar

import "golang.org/x/exp/constraints"

// Numeric policy. These are the library-wide defaults; functions that
// compare values always take an explicit tolerance so callers can tighten
// or loosen per call site.
const (
	// DefaultEpsilon is the non-negative tolerance used by approximate
	// equality checks throughout lvlgeo.
	DefaultEpsilon = 1e-9

	// DirectionTolerance bounds how far the magnitude of decoded direction
	// components may stray from 1 before the input is rejected.
	DirectionTolerance = 1e-6
)

// Min returns the smaller of a and b.
func Min[T constraints.Ordered](a, b T) T {
	if a < b {
		return a
	}

	return b
}

// Max returns the larger of a and b.
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}

	return b
}

// MinMax returns a and b in ascending order.
func MinMax[T constraints.Ordered](a, b T) (T, T) {
	if b < a {
		return b, a
	}

	return a, b
}

// Clamp limits v to the closed interval [lo, hi].
// Callers must ensure lo ≤ hi; the result is lo when v < lo, hi when v > hi.
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// Abs returns the absolute value of v.
func Abs[T constraints.Integer | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}

	return v
}

// Lerp linearly interpolates between a and b: t=0 yields a, t=1 yields b.
// t outside [0,1] extrapolates.
func Lerp[T constraints.Float](a, b, t T) T {
	return a + (b-a)*t
}

// EqualWithin reports whether a and b differ by at most tol.
// tol must be non-negative; NaN compares unequal to everything.
func EqualWithin[T constraints.Float](a, b, tol T) bool {
	return Abs(a-b) <= tol
}

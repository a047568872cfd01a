// Package numeric provides the generic floating-point abstraction shared by
// every other package in the module: a constraint over the precisions the
// core supports, an arithmetic trait that closes over platform-specific math
// libraries per precision, and small normalization/matrix helpers.
package numeric

import (
	"math"

	"github.com/chewxy/math32"
	"golang.org/x/exp/constraints"
)

// Float is the set of precisions the core can be instantiated at.
type Float interface {
	constraints.Float
}

// Ops closes the arithmetic gap left by the Float constraint: Go generics
// cannot dispatch math.Sqrt vs math32.Sqrt from the type parameter alone, so
// callers that need transcendental functions obtain an Ops[T] value (via
// OpsFor) and call through it.
type Ops[T Float] struct {
	Sqrt  func(T) T
	Cbrt  func(T) T
	Pow   func(T, T) T
	Powi  func(T, int) T
	Atan2 func(y, x T) T
	Sin   func(T) T
	Cos   func(T) T
	Abs   func(T) T
}

var f64Ops = Ops[float64]{
	Sqrt:  math.Sqrt,
	Cbrt:  math.Cbrt,
	Pow:   math.Pow,
	Powi:  func(v float64, n int) float64 { return math.Pow(v, float64(n)) },
	Atan2: math.Atan2,
	Sin:   math.Sin,
	Cos:   math.Cos,
	Abs:   math.Abs,
}

var f32Ops = Ops[float32]{
	Sqrt:  math32.Sqrt,
	Cbrt:  math32.Cbrt,
	Pow:   math32.Pow,
	Powi:  func(v float32, n int) float32 { return math32.Pow(v, float32(n)) },
	Atan2: math32.Atan2,
	Sin:   math32.Sin,
	Cos:   math32.Cos,
	Abs:   math32.Abs,
}

// OpsFor returns the arithmetic trait implementation for T. T must be
// float32 or float64; any other instantiation panics, since Go generics
// cannot express a closed sum over concrete precisions at compile time.
func OpsFor[T Float]() Ops[T] {
	var zero T
	switch any(zero).(type) {
	case float32:
		return any(f32Ops).(Ops[T])
	case float64:
		return any(f64Ops).(Ops[T])
	default:
		panic("numeric: unsupported float precision")
	}
}

// Normalize maps v from [lo, hi] to [0, 1].
func Normalize[T Float](v, lo, hi T) T {
	return (v - lo) / (hi - lo)
}

// Denormalize maps v from [0, 1] back to [lo, hi].
func Denormalize[T Float](v, lo, hi T) T {
	return v*(hi-lo) + lo
}

// Clamp restricts v to [lo, hi].
func Clamp[T Float](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FromInt converts any signed or unsigned integer to T.
func FromInt[T Float, I constraints.Integer](v I) T {
	return T(v)
}

// TruncToUint truncates v to a non-negative uint, clamping negative values
// to zero rather than wrapping (the core never receives negative indices).
func TruncToUint[T Float](v T) uint {
	if v < 0 {
		return 0
	}
	return uint(v)
}

// Min returns the smaller of a, b.
func Min[T Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of a, b.
func Max[T Float](a, b T) T {
	if a > b {
		return a
	}
	return b
}

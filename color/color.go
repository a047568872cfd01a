// Package color implements the device-independent color model: a CIE L*a*b*
// core with total, clamped conversions to every other space the palette
// pipeline and its callers need, plus perceptual color-difference metrics.
//
// Every conversion is total: out-of-gamut intermediate values are clamped
// rather than rejected, and construction never fails except for hex string
// parsing, which can be handed genuinely malformed input.
package color

import (
	"fmt"

	"github.com/t28hub/auto-palette-sub000/numeric"
)

// Color is a device-independent color stored internally as CIE L*a*b* under
// a fixed D65 white point. L is in [0, 100]; A and B are in [-128, 127].
type Color[T numeric.Float] struct {
	L, A, B T
}

// New builds a Color directly from Lab components, clamping each to its
// valid range.
func New[T numeric.Float](l, a, b T) Color[T] {
	return Color[T]{
		L: numeric.Clamp(l, 0, 100),
		A: numeric.Clamp(a, -128, 127),
		B: numeric.Clamp(b, -128, 127),
	}
}

// IsLight reports whether the color's lightness is strictly above 50.
func (c Color[T]) IsLight() bool { return c.L > 50 }

// IsDark reports whether the color's lightness is strictly above 50 is
// false, i.e. lightness at most 50.
func (c Color[T]) IsDark() bool { return !c.IsLight() }

// Lightness returns L.
func (c Color[T]) Lightness() T { return c.L }

// Chroma returns sqrt(a^2 + b^2).
func (c Color[T]) Chroma() T {
	ops := numeric.OpsFor[T]()
	return ops.Sqrt(c.A*c.A + c.B*c.B)
}

// Hue returns atan2(b, a) normalized to [0, 360).
func (c Color[T]) Hue() T {
	ops := numeric.OpsFor[T]()
	return normalizeHue(ops.Atan2(c.B, c.A) * T(180) / piT[T]())
}

// String renders the color as "Color(l: L.LL, a: A.AA, b: B.BB)".
func (c Color[T]) String() string {
	return fmt.Sprintf("Color(l: %.2f, a: %.2f, b: %.2f)", float64(c.L), float64(c.A), float64(c.B))
}

// piT returns pi at precision T without importing math/math32 into every
// call site.
func piT[T numeric.Float]() T {
	return T(3.14159265358979323846)
}

// normalizeHue wraps a hue angle in degrees to [0, 360).
func normalizeHue[T numeric.Float](h T) T {
	full := T(360)
	for h < 0 {
		h += full
	}
	for h >= full {
		h -= full
	}
	return h
}

package color

import "github.com/t28hub/auto-palette-sub000/numeric"

// HSL is the hue-saturation-lightness cylindrical representation of sRGB.
type HSL[T numeric.Float] struct {
	H, S, L T
}

// HSV is the hue-saturation-value cylindrical representation of sRGB.
type HSV[T numeric.Float] struct {
	H, S, V T
}

// ToHSL converts to HSL via normalized sRGB, using the teacher's max/min
// piecewise-hue formula (soypat/colorspace SRGB.HSL), generalized to T.
func (c Color[T]) ToHSL() HSL[T] {
	rgb := c.ToRGB()
	r, g, b := T(rgb.R)/255, T(rgb.G)/255, T(rgb.B)/255
	max := numeric.Max(r, numeric.Max(g, b))
	min := numeric.Min(r, numeric.Min(g, b))
	delta := max - min

	l := (max + min) / 2

	var h T
	switch {
	case delta == 0:
		h = 0
	case max == r:
		h = 60 * modT(((g-b)/delta), 6)
	case max == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	h = normalizeHue(h)

	var s T
	switch {
	case delta == 0:
		s = 0
	case l <= 0.5:
		s = delta / (max + min)
	default:
		s = delta / (2 - max - min)
	}
	return HSL[T]{H: h, S: s, L: l}
}

// ToHSV converts to HSV via normalized sRGB.
func (c Color[T]) ToHSV() HSV[T] {
	rgb := c.ToRGB()
	r, g, b := T(rgb.R)/255, T(rgb.G)/255, T(rgb.B)/255
	max := numeric.Max(r, numeric.Max(g, b))
	min := numeric.Min(r, numeric.Min(g, b))
	delta := max - min

	var h T
	switch {
	case delta == 0:
		h = 0
	case max == r:
		h = 60 * modT(((g-b)/delta), 6)
	case max == g:
		h = 60 * ((b-r)/delta + 2)
	default:
		h = 60 * ((r-g)/delta + 4)
	}
	h = normalizeHue(h)

	var s T
	if max > 0 {
		s = delta / max
	}
	return HSV[T]{H: h, S: s, V: max}
}

func modT[T numeric.Float](v T, m T) T {
	for v < 0 {
		v += m
	}
	for v >= m {
		v -= m
	}
	return v
}

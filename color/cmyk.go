package color

import "github.com/t28hub/auto-palette-sub000/numeric"

// CMYK is the subtractive print color model.
type CMYK[T numeric.Float] struct {
	C, M, Y, K T
}

// ToCMYK converts via normalized sRGB using the standard naive conversion.
func (c Color[T]) ToCMYK() CMYK[T] {
	rgb := c.ToRGB()
	r, g, b := T(rgb.R)/255, T(rgb.G)/255, T(rgb.B)/255
	k := 1 - numeric.Max(r, numeric.Max(g, b))
	if k >= 1 {
		return CMYK[T]{K: 1}
	}
	inv := 1 - k
	return CMYK[T]{
		C: (inv - r) / inv,
		M: (inv - g) / inv,
		Y: (inv - b) / inv,
		K: k,
	}
}

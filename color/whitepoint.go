package color

import "github.com/t28hub/auto-palette-sub000/numeric"

// WhitePoint is the XYZ coordinate of a scene's reference illuminant.
type WhitePoint[T numeric.Float] struct {
	X, Y, Z T
}

// D65 is the standard daylight illuminant used throughout this package.
func D65[T numeric.Float]() WhitePoint[T] {
	return WhitePoint[T]{X: 0.950470, Y: 1, Z: 1.08883}
}

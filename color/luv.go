package color

import "github.com/t28hub/auto-palette-sub000/numeric"

// Luv is the CIE L*u*v* color space, an alternative perceptually-motivated
// space to Lab, preferred for additive-light (display) workflows.
type Luv[T numeric.Float] struct {
	L, U, V T
}

// LCHuv is the cylindrical representation of Luv.
type LCHuv[T numeric.Float] struct {
	L, C, H T
}

func refUV[T numeric.Float](wp WhitePoint[T]) (uRef, vRef T) {
	denom := wp.X + 15*wp.Y + 3*wp.Z
	return 4 * wp.X / denom, 9 * wp.Y / denom
}

// ToLuv converts the color to CIE L*u*v* under D65.
func (c Color[T]) ToLuv() Luv[T] {
	xyz := c.ToXYZ()
	wp := D65[T]()
	uRef, vRef := refUV(wp)

	denom := xyz.X + 15*xyz.Y + 3*xyz.Z
	if denom == 0 {
		return Luv[T]{L: c.L}
	}
	uPrime := 4 * xyz.X / denom
	vPrime := 9 * xyz.Y / denom

	return Luv[T]{
		L: c.L,
		U: 13 * c.L * (uPrime - uRef),
		V: 13 * c.L * (vPrime - vRef),
	}
}

// ToLCHuv converts via Luv: C = sqrt(u^2+v^2), H = atan2(v,u) in [0,360).
func (c Color[T]) ToLCHuv() LCHuv[T] {
	luv := c.ToLuv()
	ops := numeric.OpsFor[T]()
	chroma := ops.Sqrt(luv.U*luv.U + luv.V*luv.V)
	hue := normalizeHue(ops.Atan2(luv.V, luv.U) * 180 / piT[T]())
	return LCHuv[T]{L: luv.L, C: chroma, H: hue}
}

// LCHab is the cylindrical representation of Lab.
type LCHab[T numeric.Float] struct {
	L, C, H T
}

// ToLCHab converts the Lab color to its cylindrical form.
func (c Color[T]) ToLCHab() LCHab[T] {
	return LCHab[T]{L: c.L, C: c.Chroma(), H: c.Hue()}
}

// FromLCHab builds a Color from the cylindrical representation:
// a = C*cos(h), b = C*sin(h).
func FromLCHab[T numeric.Float](v LCHab[T]) Color[T] {
	ops := numeric.OpsFor[T]()
	rad := v.H * piT[T]() / 180
	return New(v.L, v.C*ops.Cos(rad), v.C*ops.Sin(rad))
}

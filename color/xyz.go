package color

import "github.com/t28hub/auto-palette-sub000/numeric"

// XYZ is the CIE 1931 tristimulus color space: a device-independent space in
// which a mixture of two colors lies on the line between them, at the cost
// of not being perceptually uniform (that's what Lab/Luv are for).
type XYZ[T numeric.Float] struct {
	X, Y, Z T
}

// String renders as "XYZ(x, y, z)".
func (c XYZ[T]) String() string {
	return sprintf3("XYZ", c.X, c.Y, c.Z)
}

// linear sRGB <-> XYZ (D65), IEC 61966-2-1 matrix, rows as published.
func linSRGBToXYZMat[T numeric.Float]() mat3[T] {
	return mat3[T]{
		{0.412391, 0.357584, 0.180481},
		{0.212639, 0.715169, 0.072192},
		{0.019331, 0.119195, 0.950532},
	}
}

func xyzToLinSRGBMat[T numeric.Float]() mat3[T] {
	return mat3[T]{
		{3.240970, -1.537383, -0.498611},
		{-0.969244, 1.875968, 0.041555},
		{0.055630, -0.203977, 1.056972},
	}
}

// companding (sRGB gamma) forward: linear -> gamma-encoded.
func compand[T numeric.Float](v T) T {
	threshold := T(0.0031308)
	ops := numeric.OpsFor[T]()
	if v <= threshold {
		return v * 12.92
	}
	return T(1.055)*ops.Pow(v, 1.0/2.4) - T(0.055)
}

// decompand (inverse sRGB gamma): gamma-encoded -> linear.
func decompand[T numeric.Float](v T) T {
	threshold := T(0.04045)
	ops := numeric.OpsFor[T]()
	if v <= threshold {
		return v / 12.92
	}
	return ops.Pow((v+T(0.055))/T(1.055), 2.4)
}

// ToXYZ converts the color to CIE XYZ under D65.
func (c Color[T]) ToXYZ() XYZ[T] {
	return c.toXYZWhitePoint(D65[T]())
}

func (c Color[T]) toXYZWhitePoint(wp WhitePoint[T]) XYZ[T] {
	var (
		kappa = T(24389.0 / 27.0)
		eps   = T(216.0 / 24389.0)
	)
	fy := (c.L + 16) / 116
	fx := c.A/500 + fy
	fz := fy - c.B/200

	finv := func(f T) T { return f * f * f }

	var x, y, z T
	if fx3 := finv(fx); fx3 > eps {
		x = fx3
	} else {
		x = (116*fx - 16) / kappa
	}
	if c.L > kappa*eps {
		y = finv((c.L + 16) / 116)
	} else {
		y = c.L / kappa
	}
	if fz3 := finv(fz); fz3 > eps {
		z = fz3
	} else {
		z = (116*fz - 16) / kappa
	}
	return XYZ[T]{X: x * wp.X, Y: y * wp.Y, Z: z * wp.Z}
}

// FromXYZ builds a Color (Lab) from an XYZ value under D65.
func FromXYZ[T numeric.Float](v XYZ[T]) Color[T] {
	return fromXYZWhitePoint(v, D65[T]())
}

func fromXYZWhitePoint[T numeric.Float](v XYZ[T], wp WhitePoint[T]) Color[T] {
	var (
		eps   = T(216.0 / 24389.0)
		kappa = T(24389.0 / 27.0)
	)
	ops := numeric.OpsFor[T]()
	f := func(t T) T {
		if t > eps {
			return ops.Cbrt(t)
		}
		return (kappa*t + 16) / 116
	}
	fx := f(v.X / wp.X)
	fy := f(v.Y / wp.Y)
	fz := f(v.Z / wp.Z)
	return New(116*fy-16, 500*(fx-fy), 200*(fy-fz))
}

// ToRGB converts to gamma-encoded sRGB, 8 bits per channel, clamped.
func (c Color[T]) ToRGB() RGB {
	xyz := c.ToXYZ()
	lin := mulMatVec(xyzToLinSRGBMat[T](), vec3[T]{x: xyz.X, y: xyz.Y, z: xyz.Z})
	r := numeric.Clamp(compand(lin.x), 0, 1)
	g := numeric.Clamp(compand(lin.y), 0, 1)
	b := numeric.Clamp(compand(lin.z), 0, 1)
	return RGB{
		R: uint8(numeric.Clamp(r*255+0.5, 0, 255)),
		G: uint8(numeric.Clamp(g*255+0.5, 0, 255)),
		B: uint8(numeric.Clamp(b*255+0.5, 0, 255)),
	}
}

// FromRGB builds a Color (Lab) from gamma-encoded 8-bit sRGB.
func FromRGB[T numeric.Float](c RGB) Color[T] {
	r := decompand(T(c.R) / 255)
	g := decompand(T(c.G) / 255)
	b := decompand(T(c.B) / 255)
	xyz := mulMatVec(linSRGBToXYZMat[T](), vec3[T]{x: r, y: g, z: b})
	return FromXYZ(XYZ[T]{X: xyz.x, Y: xyz.y, Z: xyz.z})
}

func sprintf3[T numeric.Float](name string, a, b, c T) string {
	return name + "(" + ftoa(a) + ", " + ftoa(b) + ", " + ftoa(c) + ")"
}

func ftoa[T numeric.Float](v T) string {
	return fmtFloat(float64(v))
}

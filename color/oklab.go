package color

import "github.com/t28hub/auto-palette-sub000/numeric"

// Oklab is a perceptually uniform color space designed for better hue and
// lightness prediction and more stable blending than Lab. L is in [0,1]; A
// and B are roughly in [-0.5, 0.5].
type Oklab[T numeric.Float] struct {
	L, A, B T
}

// Oklch is the cylindrical representation of Oklab.
type Oklch[T numeric.Float] struct {
	L, C, H T
}

// matrices below are the published Oklab transform pair, generalized from
// the teacher's float32-only ms3.Mat3 literals (soypat/colorspace) to the
// package's generic T.
func xyzToLMSMat[T numeric.Float]() mat3[T] {
	return mat3[T]{
		{0.8189330101, 0.3618667424, -0.1288597137},
		{0.0329845436, 0.9293118715, 0.0361456387},
		{0.0482003018, 0.2643662691, 0.6338517070},
	}
}

func lmsToOklabMat[T numeric.Float]() mat3[T] {
	return mat3[T]{
		{0.2104542553, 0.7936177850, -0.0040720468},
		{1.9779984951, -2.4285922050, 0.4505937099},
		{0.0259040371, 0.7827717662, -0.8086757660},
	}
}

func oklabToLMSMat[T numeric.Float]() mat3[T] {
	return mat3[T]{
		{1, 0.3963377774, 0.2158037573},
		{1, -0.1055613458, -0.0638541728},
		{1, -0.0894841775, -1.2914855480},
	}
}

func lmsToXYZMat[T numeric.Float]() mat3[T] {
	return mat3[T]{
		{1.2270138511, -0.5577999807, 0.2812561490},
		{-0.0405801784, 1.1122568696, -0.0716766787},
		{-0.0763812845, -0.4214819784, 1.5861632204},
	}
}

// ToOklab converts the color to Oklab via XYZ and LMS.
func (c Color[T]) ToOklab() Oklab[T] {
	ops := numeric.OpsFor[T]()
	xyz := c.ToXYZ()
	lms := mulMatVec(xyzToLMSMat[T](), vec3[T]{x: xyz.X, y: xyz.Y, z: xyz.Z})
	nl := vec3[T]{x: ops.Cbrt(lms.x), y: ops.Cbrt(lms.y), z: ops.Cbrt(lms.z)}
	v := mulMatVec(lmsToOklabMat[T](), nl)
	return Oklab[T]{L: v.x, A: v.y, B: v.z}
}

// FromOklab builds a Color (Lab) from an Oklab value.
func FromOklab[T numeric.Float](c Oklab[T]) Color[T] {
	lmsNl := mulMatVec(oklabToLMSMat[T](), vec3[T]{x: c.L, y: c.A, z: c.B})
	lms := vec3[T]{x: lmsNl.x * lmsNl.x * lmsNl.x, y: lmsNl.y * lmsNl.y * lmsNl.y, z: lmsNl.z * lmsNl.z * lmsNl.z}
	xyz := mulMatVec(lmsToXYZMat[T](), lms)
	return FromXYZ(XYZ[T]{X: xyz.x, Y: xyz.y, Z: xyz.z})
}

// ToOklch converts the color to the cylindrical Oklch representation.
func (c Color[T]) ToOklch() Oklch[T] {
	ok := c.ToOklab()
	ops := numeric.OpsFor[T]()
	chroma := ops.Sqrt(ok.A*ok.A + ok.B*ok.B)
	hue := normalizeHue(ops.Atan2(ok.B, ok.A) * 180 / piT[T]())
	return Oklch[T]{L: ok.L, C: chroma, H: hue}
}

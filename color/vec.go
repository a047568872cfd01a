package color

import "github.com/t28hub/auto-palette-sub000/numeric"

// vec3 and mat3 are small generic linear-algebra helpers used internally by
// the XYZ/LMS/Oklab conversion chain. They mirror the shape of the teacher's
// ms3.Vec/ms3.Mat3 (soypat/geometry), generalized from fixed float32 to the
// package's generic T, since ms3 cannot be instantiated at float64.
type vec3[T numeric.Float] struct{ x, y, z T }

// mat3 stores rows in row-major order, matching how every conversion matrix
// in this package is written out in source (one row per literal line).
type mat3[T numeric.Float] [3][3]T

func mulMatVec[T numeric.Float](m mat3[T], v vec3[T]) vec3[T] {
	return vec3[T]{
		x: m[0][0]*v.x + m[0][1]*v.y + m[0][2]*v.z,
		y: m[1][0]*v.x + m[1][1]*v.y + m[1][2]*v.z,
		z: m[2][0]*v.x + m[2][1]*v.y + m[2][2]*v.z,
	}
}

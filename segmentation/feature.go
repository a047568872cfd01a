package segmentation

import (
	"github.com/t28hub/auto-palette-sub000/color"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// FeatureDim is the dimension of the pixel feature vector: Lab (3) plus
// normalized xy (2).
const FeatureDim = 5

// Feature builds the normalized 5-D pixel feature <L/100, (a+128)/255,
// (b+128)/255, (col+1)/W, (row+1)/H> from a Lab color and its grid
// position, keeping spatial and color distances commensurable under the
// Euclidean metric.
func Feature[T numeric.Float](c color.Color[T], col, row, width, height int) []T {
	return []T{
		c.L / 100,
		(c.A + 128) / 255,
		(c.B + 128) / 255,
		T(col+1) / T(width),
		T(row+1) / T(height),
	}
}

// DenormalizeColor inverts the Lab portion of Feature, recovering a Color
// from the first three normalized components.
func DenormalizeColor[T numeric.Float](feature []T) color.Color[T] {
	return color.New(feature[0]*100, feature[1]*255-128, feature[2]*255-128)
}

// DenormalizePosition inverts the spatial portion of Feature, recovering
// the (col, row) the feature was built from.
func DenormalizePosition[T numeric.Float](feature []T, width, height int) (col, row int) {
	col = int(feature[3]*T(width)+0.5) - 1
	row = int(feature[4]*T(height)+0.5) - 1
	return
}

package segmentation

import (
	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// Segmenter is the interface every algorithm in this package implements.
type Segmenter[T numeric.Float] interface {
	// SegmentWithMask segments a width x height grid of 5-D pixel features,
	// skipping any pixel whose mask entry is false. Fails with an
	// UnexpectedLength-kind error when len(features) != width*height.
	SegmentWithMask(width, height int, features [][]T, mask []bool) (*LabelImage[T], error)
}

// Segment runs s over an all-true mask, as a convenience for callers that
// don't need to exclude any pixels.
func Segment[T numeric.Float](s Segmenter[T], width, height int, features [][]T) (*LabelImage[T], error) {
	mask := make([]bool, width*height)
	for i := range mask {
		mask[i] = true
	}
	return s.SegmentWithMask(width, height, features, mask)
}

func checkLength[T numeric.Float](width, height int, features [][]T, mask []bool) error {
	n := width * height
	if len(features) != n {
		return xerrors.New(xerrors.DimensionMismatch, "expected %d features for %dx%d, got %d", n, width, height, len(features))
	}
	if len(mask) != n {
		return xerrors.New(xerrors.DimensionMismatch, "expected %d mask entries for %dx%d, got %d", n, width, height, len(mask))
	}
	return nil
}

func manhattan(col1, row1, col2, row2 int) int {
	d := col1 - col2
	if d < 0 {
		d = -d
	}
	d2 := row1 - row2
	if d2 < 0 {
		d2 = -d2
	}
	return d + d2
}

func isqrt(v int) int {
	if v <= 0 {
		return 0
	}
	r := 1
	for r*r <= v {
		r++
	}
	return r - 1
}

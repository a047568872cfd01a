package palette

import (
	"github.com/t28hub/auto-palette-sub000/color"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// Swatch is a single extracted color: its representative Lab color, the
// denormalized mean position of one of the segments folded into it, the
// total member pixel count of all those segments, and that count's ratio
// to the image's total active pixels.
type Swatch[T numeric.Float] struct {
	Color      color.Color[T]
	Position   [2]uint32
	Population uint32
	Ratio      T
}

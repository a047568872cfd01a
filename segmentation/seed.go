package segmentation

import "github.com/t28hub/auto-palette-sub000/numeric"

// SeedGenerator is the closed set of strategies SLIC/SNIC use to place
// initial seeds. The default (and currently only) strategy is a regular
// grid snapped to the local gradient minimum.
type SeedGenerator int

const (
	// GridSeedGenerator places seeds on a regular grid with step
	// floor(sqrt(cells/S)) and a half-step offset, then snaps each seed to
	// the masked-in pixel of lowest gradient in its 3x3 neighborhood.
	GridSeedGenerator SeedGenerator = iota
)

// generateSeeds returns the pixel indices chosen as initial seeds for S
// target segments over a width x height masked grid.
func generateSeeds[T numeric.Float](width, height, targetSegments int, features [][]T, mask []bool, _ SeedGenerator) []int {
	cells := width * height
	if targetSegments < 1 {
		targetSegments = 1
	}
	step := isqrt(cells / targetSegments)
	if step < 1 {
		step = 1
	}
	offset := step / 2

	featureGrid, _ := numeric.NewMatrix(width, height, features)
	maskGrid, _ := numeric.NewMatrix(width, height, mask)

	var seeds []int
	for row := offset; row < height; row += step {
		for col := offset; col < width; col += step {
			idx := featureGrid.Index(col, row)
			snapped := snapToLowestGradient(featureGrid, maskGrid, col, row)
			if snapped >= 0 {
				seeds = append(seeds, snapped)
			} else if mask[idx] {
				seeds = append(seeds, idx)
			}
		}
	}
	return seeds
}

// snapToLowestGradient returns the masked-in pixel index in the 3x3
// neighborhood of (col,row) with the lowest gradient (sum of axis distances
// to the 4-neighborhood), or -1 if none is masked-in. Boundary cells (ones
// whose 4-neighborhood isn't fully in-bounds) are penalized to +infinity so
// they're never chosen when an interior candidate exists.
func snapToLowestGradient[T numeric.Float](features numeric.Matrix[[]T], mask numeric.Matrix[bool], col, row int) int {
	candidates := append([]int{features.Index(col, row)}, features.Neighbors(col, row)...)

	best := -1
	var bestGrad T
	first := true
	for _, idx := range candidates {
		c, r := idx%features.Width(), idx/features.Width()
		if in, ok := mask.At(c, r); !ok || !in {
			continue
		}
		grad := gradientAt(features, c, r)
		if first || grad < bestGrad {
			best, bestGrad, first = idx, grad, false
		}
	}
	return best
}

func gradientAt[T numeric.Float](features numeric.Matrix[[]T], col, row int) T {
	inf := T(1e30)
	self, _ := features.At(col, row)
	left, ok1 := features.At(col-1, row)
	right, ok2 := features.At(col+1, row)
	up, ok3 := features.At(col, row-1)
	down, ok4 := features.At(col, row+1)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return inf
	}
	var grad T
	grad += axisDistance(self, left)
	grad += axisDistance(self, right)
	grad += axisDistance(self, up)
	grad += axisDistance(self, down)
	return grad
}

func axisDistance[T numeric.Float](a, b []T) T {
	var sum T
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		sum += d
	}
	return sum
}

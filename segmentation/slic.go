package segmentation

import (
	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/metric"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// SLICSegmenter is the Simple Linear Iterative Clustering superpixel
// algorithm: seeds are placed on a grid, then iteratively reassigned to the
// nearest center within a local window and re-centered, until convergence.
type SLICSegmenter[T numeric.Float] struct {
	TargetSegments int
	Compactness    T // reserved: not currently used to weight spatial vs feature distance, see DESIGN.md
	MaxIter        int
	Tolerance      T
	SeedGen        SeedGenerator
	Metric         metric.DistanceMetric
}

var _ Segmenter[float64] = SLICSegmenter[float64]{}

// SegmentWithMask implements Segmenter.
func (s SLICSegmenter[T]) SegmentWithMask(width, height int, features [][]T, mask []bool) (*LabelImage[T], error) {
	if err := checkLength(width, height, features, mask); err != nil {
		return nil, err
	}
	if s.TargetSegments < 1 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid target segment count %d", s.TargetSegments)
	}
	if s.Compactness < 0 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid compactness %v", s.Compactness)
	}
	if s.MaxIter < 1 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid iteration count %d", s.MaxIter)
	}
	if s.Tolerance <= 0 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid tolerance %v", s.Tolerance)
	}

	cells := width * height
	seedIdx := generateSeeds(width, height, s.TargetSegments, features, mask, s.SeedGen)
	if len(seedIdx) == 0 {
		return NewBuilder[T](width, height, FeatureDim).Build(), nil
	}

	featureGrid, _ := numeric.NewMatrix(width, height, features)
	maskGrid, _ := numeric.NewMatrix(width, height, mask)

	windowRadius := isqrt(cells/s.TargetSegments) // s = sqrt(cells/S); window is the (2s+1) x (2s+1) square
	if windowRadius < 1 {
		windowRadius = 1
	}

	centers := make([][]T, len(seedIdx))
	centerPos := make([][2]int, len(seedIdx))
	for i, idx := range seedIdx {
		centers[i] = append([]T(nil), features[idx]...)
		centerPos[i] = [2]int{idx % width, idx / width}
	}

	var builder *Builder[T]
	for iter := 0; iter < s.MaxIter; iter++ {
		builder = NewBuilder[T](width, height, FeatureDim)
		assigned := make([]int, cells)
		for i := range assigned {
			assigned[i] = Unlabelled
		}
		bestDist := make([]T, cells)
		for i := range bestDist {
			bestDist[i] = -1
		}

		for label, pos := range centerPos {
			col, row := pos[0], pos[1]
			window := append([]int{featureGrid.Index(col, row)}, featureGrid.NeighborsWithin(col, row, windowRadius)...)
			for _, idx := range window {
				c, r := idx%width, idx/width
				if in, ok := maskGrid.At(c, r); !ok || !in {
					continue
				}
				d := metric.Compute(s.Metric, features[idx], centers[label])
				if bestDist[idx] < 0 || d < bestDist[idx] {
					bestDist[idx] = d
					assigned[idx] = label
				}
			}
		}

		for idx, label := range assigned {
			if label == Unlabelled {
				continue
			}
			builder.Assign(idx, label, features[idx])
		}

		maxShift := T(0)
		for label := range centers {
			seg, ok := builder.segments[label]
			if !ok || seg.Len() == 0 {
				continue
			}
			newCenter := append([]T(nil), seg.Center()...)
			shift := metric.Compute(metric.Euclidean, centers[label], newCenter)
			maxShift = numeric.Max(maxShift, shift)
			centers[label] = newCenter
			col, row := DenormalizePosition(newCenter, width, height)
			centerPos[label] = [2]int{col, row}
		}
		if maxShift <= s.Tolerance {
			break
		}
	}
	return builder.Build(), nil
}

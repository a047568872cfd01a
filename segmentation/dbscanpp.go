package segmentation

import (
	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/metric"
	"github.com/t28hub/auto-palette-sub000/neighbor"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// DBSCANPPSegmenter is DBSCAN segmentation's core-sampling variant: it
// strides the masked-in pixel list to find "core" candidates, expands
// clusters only over that subset, then assigns every masked-in pixel to
// the label of its nearest core (if within epsilon).
type DBSCANPPSegmenter[T numeric.Float] struct {
	MinPixels   int
	Epsilon     T
	Probability T
	Metric      metric.DistanceMetric
}

var _ Segmenter[float64] = DBSCANPPSegmenter[float64]{}

// SegmentWithMask implements Segmenter.
func (s DBSCANPPSegmenter[T]) SegmentWithMask(width, height int, features [][]T, mask []bool) (*LabelImage[T], error) {
	if err := checkLength(width, height, features, mask); err != nil {
		return nil, err
	}
	if s.MinPixels < 1 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid min_pixels %d", s.MinPixels)
	}
	if s.Probability <= 0 || s.Probability > 1 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid probability %v", s.Probability)
	}

	radius := s.Epsilon
	if s.Metric == metric.SquaredEuclidean {
		radius = numeric.OpsFor[T]().Sqrt(s.Epsilon)
	}

	var activeIdx []int
	for i, ok := range mask {
		if ok {
			activeIdx = append(activeIdx, i)
		}
	}
	full := neighbor.NewKDTree(features)

	step := int(T(1)/s.Probability + 0.5)
	if step < 1 {
		step = 1
	}

	var coreIdx []int
	for pos := 0; pos < len(activeIdx); pos += step {
		idx := activeIdx[pos]
		if len(full.SearchWithinRadius(features[idx], radius)) >= s.MinPixels {
			coreIdx = append(coreIdx, idx)
		}
	}

	builder := NewBuilder[T](width, height, FeatureDim)
	if len(coreIdx) == 0 {
		return builder.Build(), nil
	}

	coreFeatures := make([][]T, len(coreIdx))
	for i, idx := range coreIdx {
		coreFeatures[i] = features[idx]
	}
	coreTreeForExpand := neighbor.NewKDTree(coreFeatures)
	corePos := make(map[int]int, len(coreIdx))
	for i, idx := range coreIdx {
		corePos[idx] = i
	}

	coreLabel := make([]int, len(coreIdx))
	for i := range coreLabel {
		coreLabel[i] = Unlabelled
	}
	nextLabel := 0

	regionQuery := func(pos int) []int {
		results := coreTreeForExpand.SearchWithinRadius(coreFeatures[pos], radius)
		out := make([]int, 0, len(results))
		for _, r := range results {
			out = append(out, r.Index)
		}
		return out
	}

	for i := range coreIdx {
		if coreLabel[i] != Unlabelled {
			continue
		}
		neighbors := regionQuery(i)
		if len(neighbors) < s.MinPixels {
			coreLabel[i] = Noise
			continue
		}
		label := nextLabel
		nextLabel++
		coreLabel[i] = label
		builder.Assign(coreIdx[i], label, coreFeatures[i])

		queue := append([]int{}, neighbors...)
		for len(queue) > 0 {
			j := queue[0]
			queue = queue[1:]
			if coreLabel[j] == Noise {
				coreLabel[j] = label
				builder.Assign(coreIdx[j], label, coreFeatures[j])
				continue
			}
			if coreLabel[j] != Unlabelled {
				continue
			}
			coreLabel[j] = label
			builder.Assign(coreIdx[j], label, coreFeatures[j])
			jn := regionQuery(j)
			if len(jn) >= s.MinPixels {
				queue = append(queue, jn...)
			}
		}
	}

	// Assign every masked-in pixel to the label of its nearest core within
	// epsilon; unmapped pixels remain unlabeled.
	coreOnlyTree := neighbor.NewLinear(coreFeatures)
	for _, idx := range activeIdx {
		if _, ok := corePos[idx]; ok {
			continue // already assigned during expansion
		}
		n, ok := coreOnlyTree.SearchNearest(features[idx])
		if !ok || n.Distance > radius {
			continue
		}
		label := coreLabel[n.Index]
		if label < 0 {
			continue
		}
		builder.Assign(idx, label, features[idx])
	}

	return builder.Build(), nil
}

package segmentation

import (
	"github.com/t28hub/auto-palette-sub000/clustering"
	"github.com/t28hub/auto-palette-sub000/internal/rng"
	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/metric"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// KMeansSegmenter adapts the generic clustering.KMeans algorithm (C5) to
// the image segmentation interface: each resulting cluster becomes a
// segment, labeled by its position in the cluster slice.
type KMeansSegmenter[T numeric.Float] struct {
	TargetSegments int
	MaxIter        int
	Tolerance      T
	Metric         metric.DistanceMetric
	Init           clustering.Initializer
	RNG            rng.Source
}

var _ Segmenter[float64] = KMeansSegmenter[float64]{}

// SegmentWithMask implements Segmenter.
func (s KMeansSegmenter[T]) SegmentWithMask(width, height int, features [][]T, mask []bool) (*LabelImage[T], error) {
	if err := checkLength(width, height, features, mask); err != nil {
		return nil, err
	}

	var active [][]T
	activeIdx := make([]int, 0, len(features))
	for i, ok := range mask {
		if ok {
			active = append(active, features[i])
			activeIdx = append(activeIdx, i)
		}
	}
	builder := NewBuilder[T](width, height, FeatureDim)
	if len(active) == 0 {
		return builder.Build(), nil
	}

	clusters, err := clustering.KMeans(active, clustering.KMeansParams[T]{
		K:         s.TargetSegments,
		MaxIter:   s.MaxIter,
		Tolerance: s.Tolerance,
		Metric:    s.Metric,
		Init:      s.Init,
		RNG:       s.RNG,
	})
	if err != nil {
		return nil, xerrors.Wrap(xerrors.ExtractionFailure, err, "kmeans segmentation failed")
	}

	for label, c := range clusters {
		for _, localIdx := range c.Members() {
			pixelIdx := activeIdx[localIdx]
			builder.Assign(pixelIdx, label, features[pixelIdx])
		}
	}
	return builder.Build(), nil
}

package segmentation

import (
	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/metric"
	"github.com/t28hub/auto-palette-sub000/neighbor"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// DBSCANSegmenter groups pixels into segments by density over the 5-D
// feature space, constrained spatially so a segment cannot span farther
// than a radius derived from the target segment count.
type DBSCANSegmenter[T numeric.Float] struct {
	TargetSegments int
	MinPixels      int
	Epsilon        T
	Metric         metric.DistanceMetric
}

var _ Segmenter[float64] = DBSCANSegmenter[float64]{}

// SegmentWithMask implements Segmenter.
func (s DBSCANSegmenter[T]) SegmentWithMask(width, height int, features [][]T, mask []bool) (*LabelImage[T], error) {
	if err := checkLength(width, height, features, mask); err != nil {
		return nil, err
	}
	if s.TargetSegments < 1 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid target segment count %d", s.TargetSegments)
	}
	area := width * height
	spatialRadius := isqrt(area / s.TargetSegments)
	if spatialRadius < 1 {
		spatialRadius = 1
	}
	capacity := area / s.TargetSegments
	if capacity < 1 {
		capacity = 1
	}

	var active [][]T
	activeIdx := make([]int, 0, area)
	for i, ok := range mask {
		if ok {
			active = append(active, features[i])
			activeIdx = append(activeIdx, i)
		}
	}
	tree := neighbor.NewKDTree(active)

	radius := s.Epsilon
	if s.Metric == metric.SquaredEuclidean {
		radius = numeric.OpsFor[T]().Sqrt(s.Epsilon)
	}

	builder := NewBuilder[T](width, height, FeatureDim)
	labels := make([]int, len(active)) // position in active slice -> Unlabelled/Noise or a real label
	for i := range labels {
		labels[i] = Unlabelled
	}
	nextLabel := 0

	regionQuery := func(pos int) []int {
		col, row := DenormalizePosition(active[pos], width, height)
		results := tree.SearchWithinRadius(active[pos], radius)
		out := make([]int, 0, len(results))
		for _, r := range results {
			rc, rr := DenormalizePosition(active[r.Index], width, height)
			if manhattan(col, row, rc, rr) <= spatialRadius {
				out = append(out, r.Index)
			}
		}
		return out
	}

	for i := range active {
		if labels[i] != Unlabelled {
			continue
		}
		neighbors := regionQuery(i)
		if len(neighbors) < s.MinPixels {
			labels[i] = Noise
			continue
		}
		label := nextLabel
		nextLabel++
		labels[i] = label
		builder.Assign(activeIdx[i], label, active[i])

		queue := append([]int{}, neighbors...)
		for len(queue) > 0 && builder.GetMut(label).Len() < capacity {
			j := queue[0]
			queue = queue[1:]
			if labels[j] == Noise {
				labels[j] = label
				builder.Assign(activeIdx[j], label, active[j])
				continue
			}
			if labels[j] != Unlabelled {
				continue
			}
			labels[j] = label
			builder.Assign(activeIdx[j], label, active[j])
			jn := regionQuery(j)
			if len(jn) >= s.MinPixels {
				queue = append(queue, jn...)
			}
		}
	}

	mergeSmallSegments(builder, int(T(capacity)*0.5))
	dropTiny(builder, s.MinPixels)

	return builder.Build(), nil
}

// mergeSmallSegments merges every segment smaller than threshold into its
// nearest segment (by feature-center distance), one merge at a time: after
// every merge it rebuilds a k-d tree over the remaining centers (excluding
// the small segment itself), until no segment is below threshold or fewer
// than two remain.
func mergeSmallSegments[T numeric.Float](b *Builder[T], threshold int) {
	for {
		labels, centers := segmentCenters(b)
		if len(labels) < 2 {
			return
		}
		small := -1
		for i, lbl := range labels {
			if b.GetMut(lbl).Len() < threshold {
				small = i
				break
			}
		}
		if small == -1 {
			return
		}
		tree := neighbor.NewKDTree(withoutIndex(centers, small))
		n, ok := tree.SearchNearest(centers[small])
		if !ok {
			return
		}
		bestIdx := n.Index
		if bestIdx >= small {
			bestIdx++ // withoutIndex removed `small`, so indices past it shift down by one
		}
		b.Merge(labels[small], labels[bestIdx])
	}
}

func dropTiny[T numeric.Float](b *Builder[T], minPixels int) {
	labels, _ := segmentCenters(b)
	for _, lbl := range labels {
		if seg, ok := b.segments[lbl]; ok && seg.Len() < minPixels {
			b.Remove(lbl)
		}
	}
}

func segmentCenters[T numeric.Float](b *Builder[T]) ([]int, [][]T) {
	labels := make([]int, 0, len(b.segments))
	centers := make([][]T, 0, len(b.segments))
	for lbl, seg := range b.segments {
		labels = append(labels, lbl)
		centers = append(centers, seg.Center())
	}
	return labels, centers
}

func withoutIndex[T any](s []T, idx int) []T {
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:idx]...)
	out = append(out, s[idx+1:]...)
	return out
}

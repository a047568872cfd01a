package segmentation

import (
	"container/heap"

	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/metric"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// SNICSegmenter is Simple Non-Iterative Clustering: seeds are placed once,
// then a priority queue ordered by ascending feature distance to the
// popping segment's running center grows every segment outward in a single
// pass, without SLIC's iterate-and-recenter loop.
type SNICSegmenter[T numeric.Float] struct {
	TargetSegments int
	SeedGen        SeedGenerator
	Metric         metric.DistanceMetric
}

var _ Segmenter[float64] = SNICSegmenter[float64]{}

type snicEntry[T numeric.Float] struct {
	distance T
	seq      int // insertion order, for stable tie-breaking
	pixel    int
	label    int
}

type snicQueue[T numeric.Float] []snicEntry[T]

func (q snicQueue[T]) Len() int { return len(q) }
func (q snicQueue[T]) Less(i, j int) bool {
	// NaN compares as Less, so NaN distances surface early but
	// deterministically rather than breaking heap ordering.
	di, dj := q[i].distance, q[j].distance
	iNaN, jNaN := di != di, dj != dj
	switch {
	case iNaN && jNaN:
		return q[i].seq < q[j].seq
	case iNaN:
		return true
	case jNaN:
		return false
	case di != dj:
		return di < dj
	default:
		return q[i].seq < q[j].seq
	}
}
func (q snicQueue[T]) Swap(i, j int)      { q[i], q[j] = q[j], q[i] }
func (q *snicQueue[T]) Push(x interface{}) { *q = append(*q, x.(snicEntry[T])) }
func (q *snicQueue[T]) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

// SegmentWithMask implements Segmenter.
func (s SNICSegmenter[T]) SegmentWithMask(width, height int, features [][]T, mask []bool) (*LabelImage[T], error) {
	if err := checkLength(width, height, features, mask); err != nil {
		return nil, err
	}
	if s.TargetSegments < 1 {
		return nil, xerrors.New(xerrors.InvalidParameter, "invalid target segment count %d", s.TargetSegments)
	}

	builder := NewBuilder[T](width, height, FeatureDim)
	seedIdx := generateSeeds(width, height, s.TargetSegments, features, mask, s.SeedGen)
	featureGrid, _ := numeric.NewMatrix(width, height, features)

	labeled := make([]bool, width*height)
	for i, ok := range mask {
		if !ok {
			builder.MarkSentinel(i, Ignored)
			labeled[i] = true
		}
	}

	q := &snicQueue[T]{}
	heap.Init(q)
	seq := 0
	for label, idx := range seedIdx {
		heap.Push(q, snicEntry[T]{distance: 0, seq: seq, pixel: idx, label: label})
		seq++
	}

	for q.Len() > 0 {
		e := heap.Pop(q).(snicEntry[T])
		if labeled[e.pixel] {
			continue
		}
		labeled[e.pixel] = true
		builder.Assign(e.pixel, e.label, features[e.pixel])
		seg := builder.GetMut(e.label)

		col, row := e.pixel%width, e.pixel/width
		for _, n := range featureGrid.Neighbors4(col, row) {
			if labeled[n] {
				continue
			}
			d := metric.Compute(s.Metric, seg.Center(), features[n])
			heap.Push(q, snicEntry[T]{distance: d, seq: seq, pixel: n, label: e.label})
			seq++
		}
	}
	return builder.Build(), nil
}

package neighbor

import "github.com/t28hub/auto-palette-sub000/numeric"

// Linear is the simplest Searcher: it scans every point for each query. It
// borrows the input slice for its entire lifetime; callers must keep it
// alive and not mutate it.
type Linear[T numeric.Float] struct {
	points [][]T
}

// NewLinear builds a Linear searcher over points (not copied).
func NewLinear[T numeric.Float](points [][]T) *Linear[T] {
	return &Linear[T]{points: points}
}

var _ Searcher[float64] = (*Linear[float64])(nil)

// Search returns the k closest neighbors, ascending distance, using a
// bounded max-heap of size k.
func (l *Linear[T]) Search(query []T, k int) []Neighbor[T] {
	if k <= 0 {
		return nil
	}
	h := make(maxHeap[T], 0, k)
	for i, p := range l.points {
		d := euclidean(query, p)
		offerBounded(&h, Neighbor[T]{Index: i, Distance: d}, k)
	}
	return sortedAscending(h)
}

// SearchNearest returns the single closest neighbor.
func (l *Linear[T]) SearchNearest(query []T) (Neighbor[T], bool) {
	if len(l.points) == 0 {
		return Neighbor[T]{}, false
	}
	best := Neighbor[T]{Index: 0, Distance: euclidean(query, l.points[0])}
	for i := 1; i < len(l.points); i++ {
		d := euclidean(query, l.points[i])
		if d < best.Distance {
			best = Neighbor[T]{Index: i, Distance: d}
		}
	}
	return best, true
}

// SearchWithinRadius returns every point within r of query.
func (l *Linear[T]) SearchWithinRadius(query []T, r T) []Neighbor[T] {
	if r < 0 {
		return nil
	}
	var out []Neighbor[T]
	for i, p := range l.points {
		d := euclidean(query, p)
		if d <= r {
			out = append(out, Neighbor[T]{Index: i, Distance: d})
		}
	}
	return out
}

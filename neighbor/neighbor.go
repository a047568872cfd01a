// Package neighbor implements nearest-neighbor search over N-dimensional
// point sets: a linear scan and a k-d tree, sharing one Searcher interface.
package neighbor

import "github.com/t28hub/auto-palette-sub000/numeric"

// Neighbor is a search result: the index of a point in the original slice
// and its distance to the query.
type Neighbor[T numeric.Float] struct {
	Index    int
	Distance T
}

// Searcher is the shared query interface for Linear and KDTree.
type Searcher[T numeric.Float] interface {
	// Search returns the k closest neighbors to query, ascending distance,
	// distinct indices. Empty when k == 0.
	Search(query []T, k int) []Neighbor[T]
	// SearchNearest returns the single closest neighbor, or false if the
	// searcher holds no points.
	SearchNearest(query []T) (Neighbor[T], bool)
	// SearchWithinRadius returns every point within r of query (order
	// unspecified). Empty when r < 0.
	SearchWithinRadius(query []T, r T) []Neighbor[T]
}

func squaredDistance[T numeric.Float](a, b []T) T {
	var sum T
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func euclidean[T numeric.Float](a, b []T) T {
	return numeric.OpsFor[T]().Sqrt(squaredDistance(a, b))
}

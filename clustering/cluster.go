// Package clustering implements k-means, DBSCAN, and DBSCAN++ over generic
// N-D point sets (points are represented as []T; dimension is implied by
// slice length rather than a Go const-generic parameter).
package clustering

import "github.com/t28hub/auto-palette-sub000/numeric"

// Cluster is an incremental mean over a set of member point indices: adding
// a member updates the centroid in O(dim) without rescanning prior members.
type Cluster[T numeric.Float] struct {
	centroid []T
	members  []int
}

// NewCluster creates an empty cluster for points of the given dimension.
func NewCluster[T numeric.Float](dim int) *Cluster[T] {
	return &Cluster[T]{centroid: make([]T, dim)}
}

// Centroid returns the cluster's current mean (borrowed; do not mutate).
func (c *Cluster[T]) Centroid() []T { return c.centroid }

// Members returns the member point indices (borrowed; do not mutate).
func (c *Cluster[T]) Members() []int { return c.members }

// Len reports the number of members.
func (c *Cluster[T]) Len() int { return len(c.members) }

// Add incorporates point (at index idx) into the cluster, updating the
// centroid incrementally: new_mean = old_mean + (point - old_mean) / n.
func (c *Cluster[T]) Add(idx int, point []T) {
	n := T(len(c.members) + 1)
	for i, v := range point {
		c.centroid[i] += (v - c.centroid[i]) / n
	}
	c.members = append(c.members, idx)
}

// Absorb unions other's members into c via a population-weighted mean, then
// clears other.
func (c *Cluster[T]) Absorb(other *Cluster[T]) {
	total := T(c.Len() + other.Len())
	if total == 0 {
		return
	}
	wc, wo := T(c.Len())/total, T(other.Len())/total
	for i := range c.centroid {
		c.centroid[i] = c.centroid[i]*wc + other.centroid[i]*wo
	}
	c.members = append(c.members, other.members...)
	other.members = nil
	for i := range other.centroid {
		other.centroid[i] = 0
	}
}

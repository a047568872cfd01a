// Package segmentation implements the image segmentation engine: DBSCAN,
// DBSCAN++, SLIC, and SNIC superpixel algorithms operating on 5-D pixel
// features (Lab + normalized xy), plus the label-image data structure they
// build into.
package segmentation

import "github.com/t28hub/auto-palette-sub000/numeric"

// Sentinel labels, distinct from any non-negative real segment label.
const (
	Unlabelled = -1
	Ignored    = -2
	Noise      = -3
)

// Segment is a group of pixels sharing a label: a running mean of member
// pixel features (the center) plus the set of member pixel indices. The
// center always equals the arithmetic mean of its members' features.
type Segment[T numeric.Float] struct {
	Label  int
	center []T
	members []int
}

// newSegment creates an empty segment for the given label and feature
// dimension (5 for the pipeline's Lab+xy features, kept generic here since
// nothing in this type depends on the dimension being exactly 5).
func newSegment[T numeric.Float](label, dim int) *Segment[T] {
	return &Segment[T]{Label: label, center: make([]T, dim)}
}

// Center returns the segment's mean feature vector (borrowed).
func (s *Segment[T]) Center() []T { return s.center }

// Members returns the segment's member pixel indices (borrowed).
func (s *Segment[T]) Members() []int { return s.members }

// Len reports the number of member pixels.
func (s *Segment[T]) Len() int { return len(s.members) }

// Add incorporates a member pixel into the segment, updating the center
// incrementally.
func (s *Segment[T]) Add(index int, feature []T) {
	n := T(len(s.members) + 1)
	for i, v := range feature {
		s.center[i] += (v - s.center[i]) / n
	}
	s.members = append(s.members, index)
}

// Absorb unions other's members into s via a population-weighted mean of
// centers, then clears other.
func (s *Segment[T]) Absorb(other *Segment[T]) {
	total := T(s.Len() + other.Len())
	if total == 0 {
		return
	}
	ws, wo := T(s.Len())/total, T(other.Len())/total
	for i := range s.center {
		s.center[i] = s.center[i]*ws + other.center[i]*wo
	}
	s.members = append(s.members, other.members...)
	other.members = nil
	for i := range other.center {
		other.center[i] = 0
	}
}

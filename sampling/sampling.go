// Package sampling implements the farthest-point-traversal family used to
// down-select a large point set to a small representative subset: plain
// farthest-point, weighted farthest-point, and diversity (score- and
// dissimilarity-rank blended) sampling.
package sampling

import (
	"sort"

	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// Sample runs farthest-point traversal and returns min(n, len(points))
// indices into points. Empty when n == 0 or points is empty. The initial
// index is 0 and the distance function is squared Euclidean.
func Sample[T numeric.Float](points [][]T, n int) []int {
	return runIndexed(points, n, 0, func(_ int, d T) T { return d }, sqDist[T])
}

// SampleWeighted runs weighted farthest-point traversal: distance to the
// selected set is multiplied by weights[candidate]. The initial index is
// argmax(weights). Fails with LengthMismatch when len(weights) != len(points).
func SampleWeighted[T numeric.Float](points [][]T, n int, weights []T) ([]int, error) {
	if len(weights) != len(points) {
		return nil, xerrors.New(xerrors.LengthMismatch, "weights length %d != points length %d", len(weights), len(points))
	}
	initial := argmax(weights)
	distFn := func(a, b []T) T { return sqDist(a, b) }
	result := runIndexed(points, n, initial, func(neighborIdx int, d T) T {
		return d * weights[neighborIdx]
	}, distFn)
	return result, nil
}

// SampleDiversity blends a static per-point score rank with a live
// dissimilarity rank under weight lambda in [0,1]. The initial index is
// argmax(scores).
func SampleDiversity[T numeric.Float](points [][]T, n int, lambda T, scores []T) ([]int, error) {
	if lambda < 0 || lambda > 1 || lambda != lambda {
		return nil, xerrors.New(xerrors.InvalidParameter, "diversity lambda %v out of [0,1]", lambda)
	}
	if len(scores) == 0 {
		return nil, xerrors.New(xerrors.Empty, "diversity scores vector is empty")
	}
	if len(scores) != len(points) {
		return nil, xerrors.New(xerrors.LengthMismatch, "scores length %d != points length %d", len(scores), len(points))
	}
	if len(points) == 0 || n <= 0 {
		return nil, nil
	}
	count := n
	if count > len(points) {
		count = len(points)
	}

	selected := make([]bool, len(points))
	minDist := make([]T, len(points))
	for i := range minDist {
		minDist[i] = maxT[T]()
	}

	// static score rank: descending score -> rank 0 is the best score.
	scoreRank := descendingRank(scores)

	initial := argmax(scores)
	out := make([]int, 0, count)
	out = append(out, initial)
	selected[initial] = true
	updateMinDist(points, minDist, selected, initial, sqDist[T])

	for len(out) < count {
		dissimRank := descendingRankMasked(minDist, selected)
		best := -1
		var bestCombined T
		for i := range points {
			if selected[i] {
				continue
			}
			combined := (1-lambda)*T(scoreRank[i]+1) + lambda*T(dissimRank[i]+1)
			if best == -1 || combined < bestCombined {
				best = i
				bestCombined = combined
			}
		}
		if best == -1 {
			break
		}
		out = append(out, best)
		selected[best] = true
		updateMinDist(points, minDist, selected, best, sqDist[T])
	}
	return out, nil
}

func sqDist[T numeric.Float](a, b []T) T {
	var sum T
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}

func maxT[T numeric.Float]() T {
	var v T
	v = 1
	for i := 0; i < 1100; i++ { // push well past any realistic squared-distance scale
		v *= 10
	}
	return v
}

func argmax[T numeric.Float](v []T) int {
	best := 0
	for i := 1; i < len(v); i++ {
		if v[i] > v[best] {
			best = i
		}
	}
	return best
}

// descendingRank returns, for each index, its 0-based rank when values are
// sorted descending (rank 0 = largest value). Ties keep stable input order.
func descendingRank[T numeric.Float](values []T) []int {
	idx := make([]int, len(values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(i, j int) bool { return values[idx[i]] > values[idx[j]] })
	rank := make([]int, len(values))
	for r, i := range idx {
		rank[i] = r
	}
	return rank
}

// descendingRankMasked ranks only the unselected indices by descending
// value; selected indices receive an arbitrary rank that is never read.
func descendingRankMasked[T numeric.Float](values []T, selected []bool) []int {
	idx := make([]int, 0, len(values))
	for i, s := range selected {
		if !s {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(i, j int) bool { return values[idx[i]] > values[idx[j]] })
	rank := make([]int, len(values))
	for r, i := range idx {
		rank[i] = r
	}
	return rank
}

func updateMinDist[T numeric.Float](points [][]T, minDist []T, selected []bool, newIdx int, distFn func(a, b []T) T) {
	for i := range points {
		if selected[i] {
			continue
		}
		d := distFn(points[i], points[newIdx])
		minDist[i] = numeric.Min(minDist[i], d)
	}
}

// runIndexed is the shared farthest-point skeleton: pick an initial index,
// maintain each point's min distance to the selected set, repeatedly add
// the unselected point with the largest stored distance, then fold in its
// distance to the new point via the min operator.
//
// weightFn adjusts the raw distance to a candidate before comparison: Sample
// passes it through unchanged, SampleWeighted multiplies by the candidate's
// weight.
func runIndexed[T numeric.Float](points [][]T, n, initial int, weightFn func(candidateIdx int, d T) T, distFn func(a, b []T) T) []int {
	if n <= 0 || len(points) == 0 {
		return nil
	}
	count := n
	if count > len(points) {
		count = len(points)
	}
	selected := make([]bool, len(points))
	minDist := make([]T, len(points))
	for i := range minDist {
		minDist[i] = maxT[T]()
	}

	out := make([]int, 0, count)
	out = append(out, initial)
	selected[initial] = true
	for i := range points {
		if selected[i] {
			continue
		}
		minDist[i] = weightFn(i, distFn(points[i], points[initial]))
	}

	for len(out) < count {
		best := -1
		for i := range points {
			if selected[i] {
				continue
			}
			if best == -1 || minDist[i] > minDist[best] {
				best = i
			}
		}
		if best == -1 {
			break
		}
		out = append(out, best)
		selected[best] = true
		for i := range points {
			if selected[i] {
				continue
			}
			d := weightFn(i, distFn(points[i], points[best]))
			minDist[i] = numeric.Min(minDist[i], d)
		}
	}
	return out
}

package neighbor

import (
	"sort"

	"github.com/t28hub/auto-palette-sub000/numeric"
)

const defaultLeafSize = 16

// kdNode is either an internal split (Axis, Pivot index, optional children)
// or a leaf holding a bucket of point indices.
type kdNode struct {
	axis        int
	pivot       int // index into points, valid when not a leaf
	left, right *kdNode
	leafIndices []int // valid only at leaves
}

func (n *kdNode) isLeaf() bool { return n.leafIndices != nil }

// KDTree is a k-d tree Searcher built from an index permutation: each node
// sorts its indices along axis = depth mod dimension and splits at the
// median, recursing until leaves of size <= leafSize. Construction is
// O(n log^2 n); queries average O(log n).
type KDTree[T numeric.Float] struct {
	points   [][]T
	root     *kdNode
	leafSize int
	dim      int
}

// NewKDTree builds a k-d tree over points (borrowed, not copied), using the
// default leaf size of 16.
func NewKDTree[T numeric.Float](points [][]T) *KDTree[T] {
	return NewKDTreeWithLeafSize(points, defaultLeafSize)
}

// NewKDTreeWithLeafSize builds a k-d tree with a custom leaf size.
func NewKDTreeWithLeafSize[T numeric.Float](points [][]T, leafSize int) *KDTree[T] {
	if leafSize < 1 {
		leafSize = defaultLeafSize
	}
	t := &KDTree[T]{points: points, leafSize: leafSize}
	if len(points) > 0 {
		t.dim = len(points[0])
	}
	indices := make([]int, len(points))
	for i := range indices {
		indices[i] = i
	}
	t.root = t.build(indices, 0)
	return t
}

var _ Searcher[float64] = (*KDTree[float64])(nil)

func (t *KDTree[T]) build(indices []int, depth int) *kdNode {
	if len(indices) <= t.leafSize {
		return &kdNode{leafIndices: indices}
	}
	axis := depth % t.dim
	sort.Slice(indices, func(i, j int) bool {
		return t.points[indices[i]][axis] < t.points[indices[j]][axis]
	})
	mid := len(indices) / 2
	pivot := indices[mid]
	left := t.build(indices[:mid], depth+1)
	right := t.build(indices[mid+1:], depth+1)
	return &kdNode{axis: axis, pivot: pivot, left: left, right: right}
}

// Search returns the k closest neighbors to query, ascending distance.
func (t *KDTree[T]) Search(query []T, k int) []Neighbor[T] {
	if k <= 0 || t.root == nil {
		return nil
	}
	h := make(maxHeap[T], 0, k)
	t.searchNode(t.root, query, k, &h)
	return sortedAscending(h)
}

func (t *KDTree[T]) searchNode(n *kdNode, query []T, k int, h *maxHeap[T]) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		for _, idx := range n.leafIndices {
			d := euclidean(query, t.points[idx])
			offerBounded(h, Neighbor[T]{Index: idx, Distance: d}, k)
		}
		return
	}
	d := euclidean(query, t.points[n.pivot])
	offerBounded(h, Neighbor[T]{Index: n.pivot, Distance: d}, k)

	diff := query[n.axis] - t.points[n.pivot][n.axis]
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	t.searchNode(near, query, k, h)

	if h.Len() < k || numeric.OpsFor[T]().Abs(diff) < (*h)[0].Distance {
		t.searchNode(far, query, k, h)
	}
}

// SearchNearest is an iterative single-best variant of Search.
func (t *KDTree[T]) SearchNearest(query []T) (Neighbor[T], bool) {
	if t.root == nil {
		return Neighbor[T]{}, false
	}
	best := Neighbor[T]{Distance: -1}
	t.searchNearestNode(t.root, query, &best)
	if best.Distance < 0 {
		return Neighbor[T]{}, false
	}
	return best, true
}

func (t *KDTree[T]) searchNearestNode(n *kdNode, query []T, best *Neighbor[T]) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		for _, idx := range n.leafIndices {
			d := euclidean(query, t.points[idx])
			if best.Distance < 0 || d < best.Distance {
				*best = Neighbor[T]{Index: idx, Distance: d}
			}
		}
		return
	}
	d := euclidean(query, t.points[n.pivot])
	if best.Distance < 0 || d < best.Distance {
		*best = Neighbor[T]{Index: n.pivot, Distance: d}
	}
	diff := query[n.axis] - t.points[n.pivot][n.axis]
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	t.searchNearestNode(near, query, best)
	if best.Distance < 0 || numeric.OpsFor[T]().Abs(diff) < best.Distance {
		t.searchNearestNode(far, query, best)
	}
}

// SearchWithinRadius returns every point within r of query; order is
// unspecified. Descends both children whenever the axis-gap is <= r.
func (t *KDTree[T]) SearchWithinRadius(query []T, r T) []Neighbor[T] {
	if r < 0 || t.root == nil {
		return nil
	}
	var out []Neighbor[T]
	t.searchRadiusNode(t.root, query, r, &out)
	return out
}

func (t *KDTree[T]) searchRadiusNode(n *kdNode, query []T, r T, out *[]Neighbor[T]) {
	if n == nil {
		return
	}
	if n.isLeaf() {
		for _, idx := range n.leafIndices {
			d := euclidean(query, t.points[idx])
			if d <= r {
				*out = append(*out, Neighbor[T]{Index: idx, Distance: d})
			}
		}
		return
	}
	d := euclidean(query, t.points[n.pivot])
	if d <= r {
		*out = append(*out, Neighbor[T]{Index: n.pivot, Distance: d})
	}
	diff := query[n.axis] - t.points[n.pivot][n.axis]
	near, far := n.left, n.right
	if diff > 0 {
		near, far = n.right, n.left
	}
	t.searchRadiusNode(near, query, r, out)
	if numeric.OpsFor[T]().Abs(diff) <= r {
		t.searchRadiusNode(far, query, r, out)
	}
}

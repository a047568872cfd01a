package neighbor

import (
	"container/heap"

	"github.com/t28hub/auto-palette-sub000/numeric"
)

// maxHeap is a bounded max-heap of Neighbor[T] ordered by descending
// distance, so the worst of the current best-k sits at the root and can be
// evicted in O(log k) when a closer candidate arrives.
type maxHeap[T numeric.Float] []Neighbor[T]

func (h maxHeap[T]) Len() int            { return len(h) }
func (h maxHeap[T]) Less(i, j int) bool  { return h[i].Distance > h[j].Distance }
func (h maxHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *maxHeap[T]) Push(x interface{}) { *h = append(*h, x.(Neighbor[T])) }
func (h *maxHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// offerBounded inserts n, evicting the current worst if the heap already holds k
// elements and n is closer.
func offerBounded[T numeric.Float](h *maxHeap[T], n Neighbor[T], k int) {
	if h.Len() < k {
		heap.Push(h, n)
		return
	}
	if k == 0 {
		return
	}
	if n.Distance < (*h)[0].Distance {
		heap.Pop(h)
		heap.Push(h, n)
	}
}

// sortedAscending drains the heap into an ascending-distance slice.
func sortedAscending[T numeric.Float](h maxHeap[T]) []Neighbor[T] {
	n := len(h)
	out := make([]Neighbor[T], n)
	cp := make(maxHeap[T], n)
	copy(cp, h)
	for i := n - 1; i >= 0; i-- {
		out[i] = heap.Pop(&cp).(Neighbor[T])
	}
	return out
}

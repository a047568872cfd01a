package neighbor

import (
	"math"
	"testing"
)

func fixturePoints() [][]float64 {
	return [][]float64{
		{0, 0}, {1, 0}, {0, 1}, {5, 5}, {5, 6}, {6, 5}, {-3, -3}, {10, 10}, {2, 2}, {2, 3},
	}
}

func TestLinearSearchNearest(t *testing.T) {
	l := NewLinear(fixturePoints())
	n, ok := l.SearchNearest([]float64{0.1, 0.1})
	if !ok {
		t.Fatal("SearchNearest returned ok=false")
	}
	if n.Index != 0 {
		t.Errorf("SearchNearest index = %d, want 0", n.Index)
	}
}

func TestKDTreeMatchesLinear(t *testing.T) {
	points := fixturePoints()
	linear := NewLinear(points)
	tree := NewKDTree(points)

	queries := [][]float64{{0, 0}, {4.5, 5.5}, {-2, -2}, {9, 9}, {2.5, 2.5}}
	for _, q := range queries {
		ln, lok := linear.SearchNearest(q)
		tn, tok := tree.SearchNearest(q)
		if lok != tok {
			t.Fatalf("SearchNearest(%v) ok mismatch: linear=%v tree=%v", q, lok, tok)
		}
		if math.Abs(ln.Distance-tn.Distance) > 1e-9 {
			t.Errorf("SearchNearest(%v) distance mismatch: linear=%v tree=%v", q, ln.Distance, tn.Distance)
		}
	}
}

func TestKDTreeSearchKMatchesLinear(t *testing.T) {
	points := fixturePoints()
	linear := NewLinear(points)
	tree := NewKDTree(points)

	q := []float64{1, 1}
	lr := linear.Search(q, 4)
	tr := tree.Search(q, 4)
	if len(lr) != len(tr) {
		t.Fatalf("Search length mismatch: linear=%d tree=%d", len(lr), len(tr))
	}
	for i := range lr {
		if math.Abs(lr[i].Distance-tr[i].Distance) > 1e-9 {
			t.Errorf("Search[%d] distance mismatch: linear=%v tree=%v", i, lr[i].Distance, tr[i].Distance)
		}
	}
}

func TestKDTreeSearchWithinRadiusMatchesLinear(t *testing.T) {
	points := fixturePoints()
	linear := NewLinear(points)
	tree := NewKDTree(points)

	q := []float64{0, 0}
	lr := linear.SearchWithinRadius(q, 3)
	tr := tree.SearchWithinRadius(q, 3)
	if len(lr) != len(tr) {
		t.Fatalf("SearchWithinRadius length mismatch: linear=%d tree=%d", len(lr), len(tr))
	}
}

func TestSearchZeroK(t *testing.T) {
	tree := NewKDTree(fixturePoints())
	if got := tree.Search([]float64{0, 0}, 0); got != nil {
		t.Errorf("Search(k=0) = %v, want nil", got)
	}
}

func TestSearchNearestEmpty(t *testing.T) {
	tree := NewKDTree[float64](nil)
	if _, ok := tree.SearchNearest([]float64{0, 0}); ok {
		t.Error("SearchNearest on empty tree returned ok=true")
	}
}

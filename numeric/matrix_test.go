package numeric

import "testing"

func TestNewMatrixDimensionMismatch(t *testing.T) {
	_, err := NewMatrix(2, 2, []int{1, 2, 3})
	if err == nil {
		t.Fatal("expected a dimension mismatch error")
	}
}

func TestMatrixAt(t *testing.T) {
	m, err := NewMatrix(3, 2, []int{0, 1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewMatrix failed: %v", err)
	}
	if v, ok := m.At(1, 1); !ok || v != 4 {
		t.Fatalf("At(1,1) = %d, %v; want 4, true", v, ok)
	}
	if _, ok := m.At(-1, 0); ok {
		t.Fatal("At(-1,0) should be out of bounds")
	}
	if _, ok := m.At(3, 0); ok {
		t.Fatal("At(3,0) should be out of bounds")
	}
}

func TestMatrixInBounds(t *testing.T) {
	m, _ := NewMatrix(3, 2, []int{0, 1, 2, 3, 4, 5})
	cases := []struct {
		col, row int
		want     bool
	}{
		{0, 0, true},
		{2, 1, true},
		{3, 0, false},
		{0, 2, false},
		{-1, 0, false},
	}
	for _, c := range cases {
		if got := m.InBounds(c.col, c.row); got != c.want {
			t.Errorf("InBounds(%d,%d) = %v, want %v", c.col, c.row, got, c.want)
		}
	}
}

func TestMatrixNeighborsCorner(t *testing.T) {
	m, _ := NewMatrix(3, 3, make([]int, 9))
	got := m.Neighbors(0, 0)
	want := map[int]bool{1: true, 3: true, 4: true}
	if len(got) != len(want) {
		t.Fatalf("Neighbors(0,0) = %v, want 3 neighbors", got)
	}
	for _, idx := range got {
		if !want[idx] {
			t.Errorf("unexpected neighbor index %d", idx)
		}
	}
}

func TestMatrixNeighborsWithinCenter(t *testing.T) {
	m, _ := NewMatrix(5, 5, make([]int, 25))
	got := m.NeighborsWithin(2, 2, 1)
	if len(got) != 8 {
		t.Fatalf("NeighborsWithin(2,2,1) interior = %d indices, want 8", len(got))
	}
}

func TestMatrixNeighbors4(t *testing.T) {
	m, _ := NewMatrix(3, 3, make([]int, 9))
	got := m.Neighbors4(1, 1)
	want := map[int]bool{1: true, 3: true, 5: true, 7: true}
	if len(got) != 4 {
		t.Fatalf("Neighbors4(1,1) = %v, want 4 neighbors", got)
	}
	for _, idx := range got {
		if !want[idx] {
			t.Errorf("unexpected neighbor index %d", idx)
		}
	}
}

func TestMatrixNeighbors4Corner(t *testing.T) {
	m, _ := NewMatrix(3, 3, make([]int, 9))
	got := m.Neighbors4(0, 0)
	if len(got) != 2 {
		t.Fatalf("Neighbors4(0,0) = %v, want 2 neighbors", got)
	}
}

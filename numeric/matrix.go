package numeric

import "github.com/t28hub/auto-palette-sub000/internal/xerrors"

// Matrix is a read-only (width, height, data) view over a flat row-major
// pixel/point grid: data[row*width+col].
type Matrix[T any] struct {
	width, height int
	data          []T
}

// NewMatrix builds a Matrix view over data, failing with a dimension
// mismatch error when width*height != len(data).
func NewMatrix[T any](width, height int, data []T) (Matrix[T], error) {
	if width*height != len(data) {
		return Matrix[T]{}, xerrors.New(xerrors.DimensionMismatch, "%dx%d != %d elements", width, height, len(data))
	}
	return Matrix[T]{width: width, height: height, data: data}, nil
}

// Width reports the matrix width in cells.
func (m Matrix[T]) Width() int { return m.width }

// Height reports the matrix height in cells.
func (m Matrix[T]) Height() int { return m.height }

// Index returns the flat index of (col, row).
func (m Matrix[T]) Index(col, row int) int { return row*m.width + col }

// At returns the element at (col, row) and whether it was in bounds.
func (m Matrix[T]) At(col, row int) (T, bool) {
	var zero T
	if col < 0 || col >= m.width || row < 0 || row >= m.height {
		return zero, false
	}
	return m.data[m.Index(col, row)], true
}

// Get returns the flat-indexed element without bounds checking, for callers
// that already validated the index via Index/At.
func (m Matrix[T]) Get(index int) T { return m.data[index] }

// InBounds reports whether (col, row) lies within the matrix.
func (m Matrix[T]) InBounds(col, row int) bool {
	return col >= 0 && col < m.width && row >= 0 && row < m.height
}

// Neighbors returns the up-to-8 indices adjacent to (col, row) within radius
// 1, center excluded, in row-major order.
func (m Matrix[T]) Neighbors(col, row int) []int {
	return m.NeighborsWithin(col, row, 1)
}

// Neighbors4 returns the up-to-4 orthogonally adjacent indices to (col, row)
// (left, right, up, down), bounds-checked so edge cells simply omit the
// missing directions.
func (m Matrix[T]) Neighbors4(col, row int) []int {
	out := make([]int, 0, 4)
	for _, d := range [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		nc, nr := col+d[0], row+d[1]
		if m.InBounds(nc, nr) {
			out = append(out, m.Index(nc, nr))
		}
	}
	return out
}

// NeighborsWithin returns the (2r+1)^2-1 cells of the square neighborhood of
// (col, row), center excluded, row-major order, bounds-checked so cells near
// the edges of the grid are simply omitted.
func (m Matrix[T]) NeighborsWithin(col, row, r int) []int {
	out := make([]int, 0, (2*r+1)*(2*r+1)-1)
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := col+dx, row+dy
			if m.InBounds(nx, ny) {
				out = append(out, m.Index(nx, ny))
			}
		}
	}
	return out
}

package color

import (
	"fmt"

	"github.com/t28hub/auto-palette-sub000/numeric"
)

// Lab is the explicit CIE L*a*b* view of a Color: Color already stores Lab
// internally, but to_lab is a documented conversion in its own right with
// its own print format, so it gets its own type rather than being folded
// silently into Color's.
type Lab[T numeric.Float] struct {
	L, A, B T
}

// String renders as "Lab(L, a, b)" at two-decimal precision, distinct from
// Color's "Color(l: L.LL, a: A.AA, b: B.BB)" format.
func (l Lab[T]) String() string {
	return fmt.Sprintf("Lab(%.2f, %.2f, %.2f)", float64(l.L), float64(l.A), float64(l.B))
}

// ToLab converts the color to its explicit Lab view.
func (c Color[T]) ToLab() Lab[T] {
	return Lab[T]{L: c.L, A: c.A, B: c.B}
}

// FromLab builds a Color from an explicit Lab value.
func FromLab[T numeric.Float](l Lab[T]) Color[T] {
	return New(l.L, l.A, l.B)
}

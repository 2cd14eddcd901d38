package aoc

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type Pt = Pt2[int]

type Pt2[T constraints.Signed] struct {
	X, Y T
}

func (p Pt2[T]) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// MDist returns the manhattan distance between a and b.
func (a Pt2[T]) MDist(b Pt2[T]) T {
	return AbsDiff(a.X, b.X) + AbsDiff(a.Y, b.Y)
}

// Bounds returns the lower-left and upper-right corners of the axis-aligned
// box that has a and b as opposite corners.
func Bounds[T constraints.Signed](a, b Pt2[T]) (lo, hi Pt2[T]) {
	lo.X, hi.X = MinMax(a.X, b.X)
	lo.Y, hi.Y = MinMax(a.Y, b.Y)
	return lo, hi
}

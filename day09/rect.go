package day09

import (
	"errors"
	"fmt"

	aoc "github.com/maisem/aoc2025"
)

var ErrNoCandidates = errors.New("need at least 2 points to form a rectangle")

// Rect is a candidate rectangle with A and B as opposite corners.
type Rect struct {
	A, B aoc.Pt
}

func (r Rect) String() string {
	return fmt.Sprintf("[%v %v]", r.A, r.B)
}

// Min returns the corner with the smallest coordinates.
func (r Rect) Min() aoc.Pt {
	lo, _ := aoc.Bounds(r.A, r.B)
	return lo
}

// Max returns the corner with the largest coordinates.
func (r Rect) Max() aoc.Pt {
	_, hi := aoc.Bounds(r.A, r.B)
	return hi
}

// Area returns the number of grid cells covered by r, counting both
// boundary rows and columns.
func (r Rect) Area() int64 {
	w := int64(aoc.AbsDiff(r.A.X, r.B.X)) + 1
	h := int64(aoc.AbsDiff(r.A.Y, r.B.Y)) + 1
	return aoc.CheckedMul(w, h)
}

// Candidates returns every unordered pair of distinct points as a Rect, in
// enumeration order: (0,1), (0,2), ..., (1,2), ...
func Candidates(pts []aoc.Pt) []Rect {
	if len(pts) < 2 {
		return nil
	}
	out := make([]Rect, 0, len(pts)*(len(pts)-1)/2)
	for i, p1 := range pts {
		for _, p2 := range pts[i+1:] {
			out = append(out, Rect{A: p1, B: p2})
		}
	}
	return out
}

// MaxPairwiseRectangleArea returns the largest area of any rectangle with
// two of pts as opposite corners. No containment check is done.
func MaxPairwiseRectangleArea(pts []aoc.Pt) (int64, error) {
	if len(pts) < 2 {
		return 0, ErrNoCandidates
	}
	if err := checkCoords(pts); err != nil {
		return 0, err
	}
	var best int64
	for i, p1 := range pts {
		for _, p2 := range pts[i+1:] {
			best = max(best, Rect{A: p1, B: p2}.Area())
		}
	}
	return best, nil
}

// Package day09 finds large rectangles whose opposite corners are vertices
// of a rectilinear polygon.
//
// Two questions are answered: the largest rectangle spanned by any two
// vertices, and the largest such rectangle whose open interior is not
// crossed by any polygon edge. Areas count grid cells, so a rectangle from
// (0,0) to (10,5) has area 11*6.
package day09

import aoc "github.com/maisem/aoc2025"

// MaxInteriorRectangleArea returns the area of the largest rectangle with
// two vertices of the polygon pts as opposite corners whose interior is not
// crossed by the polygon boundary. It fails with ErrNoInteriorRect if there
// is none, and with one of the NewPolygon errors if pts is malformed.
func MaxInteriorRectangleArea(pts []aoc.Pt, opts *Options) (int64, error) {
	pg, err := NewPolygon(pts)
	if err != nil {
		return 0, err
	}
	r, err := pg.LargestInterior(opts)
	if err != nil {
		return 0, err
	}
	return r.Area(), nil
}

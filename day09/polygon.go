package day09

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	aoc "github.com/maisem/aoc2025"
	"tailscale.com/util/deephash"
)

// MaxCoord is the largest accepted vertex coordinate. It keeps every
// rectangle area comfortably inside an int64.
const MaxCoord = math.MaxInt32

var (
	ErrTooFewVertices  = errors.New("polygon needs at least 4 vertices")
	ErrNotRectilinear  = errors.New("polygon is not rectilinear")
	ErrDuplicateVertex = errors.New("duplicate polygon vertex")
	ErrCoordRange      = errors.New("coordinate out of range")
)

// Edge is one axis-aligned boundary segment. At is the fixed coordinate (x
// for a vertical edge, y for a horizontal one) and [Lo, Hi] the closed
// interval it covers on the other axis.
type Edge struct {
	At     int
	Lo, Hi int
}

// crosses reports whether e, sitting at a coordinate strictly between the
// candidate's sides, overlaps the open interval (lo, hi).
func (e Edge) crosses(lo, hi int) bool {
	return e.Lo < hi && e.Hi > lo
}

// Polygon is a closed simple rectilinear polygon together with its edge
// index. It is never modified after NewPolygon returns.
type Polygon struct {
	pts []aoc.Pt

	// vert and hori are sorted by At.
	vert []Edge
	hori []Edge

	longestVert Edge
	longestHori Edge
}

func checkCoords(pts []aoc.Pt) error {
	for i, p := range pts {
		if p.X < 0 || p.Y < 0 || p.X > MaxCoord || p.Y > MaxCoord {
			return fmt.Errorf("vertex %d (%v): %w", i, p, ErrCoordRange)
		}
	}
	return nil
}

// NewPolygon validates pts and builds the edge index. The last vertex is
// implicitly connected back to the first.
func NewPolygon(pts []aoc.Pt) (*Polygon, error) {
	if len(pts) < 4 {
		return nil, fmt.Errorf("got %d: %w", len(pts), ErrTooFewVertices)
	}
	if err := checkCoords(pts); err != nil {
		return nil, err
	}
	seen := make(map[aoc.Pt]int, len(pts))
	for i, p := range pts {
		if j, ok := seen[p]; ok {
			return nil, fmt.Errorf("vertices %d and %d at %v: %w", j, i, p, ErrDuplicateVertex)
		}
		seen[p] = i
	}

	pg := &Polygon{pts: append([]aoc.Pt(nil), pts...)}
	vertLen, horiLen := -1, -1
	for i, p1 := range pg.pts {
		p2 := pg.pts[(i+1)%len(pg.pts)]
		switch {
		case p1.X == p2.X:
			lo, hi := aoc.MinMax(p1.Y, p2.Y)
			e := Edge{At: p1.X, Lo: lo, Hi: hi}
			pg.vert = append(pg.vert, e)
			if l := p1.MDist(p2); l > vertLen {
				vertLen, pg.longestVert = l, e
			}
		case p1.Y == p2.Y:
			lo, hi := aoc.MinMax(p1.X, p2.X)
			e := Edge{At: p1.Y, Lo: lo, Hi: hi}
			pg.hori = append(pg.hori, e)
			if l := p1.MDist(p2); l > horiLen {
				horiLen, pg.longestHori = l, e
			}
		default:
			return nil, fmt.Errorf("edge %v -> %v: %w", p1, p2, ErrNotRectilinear)
		}
	}

	sort.SliceStable(pg.vert, func(i, j int) bool { return pg.vert[i].At < pg.vert[j].At })
	sort.SliceStable(pg.hori, func(i, j int) bool { return pg.hori[i].At < pg.hori[j].At })
	return pg, nil
}

// Points returns a copy of the polygon's vertices.
func (pg *Polygon) Points() []aoc.Pt {
	return append([]aoc.Pt(nil), pg.pts...)
}

// VerticalEdges returns the vertical edges sorted by x.
func (pg *Polygon) VerticalEdges() []Edge {
	return append([]Edge(nil), pg.vert...)
}

// HorizontalEdges returns the horizontal edges sorted by y.
func (pg *Polygon) HorizontalEdges() []Edge {
	return append([]Edge(nil), pg.hori...)
}

// firstAt returns the index of the first edge in es with At >= at.
func firstAt(es []Edge, at int) int {
	return sort.Search(len(es), func(i int) bool { return es[i].At >= at })
}

var hashPolygon = sync.OnceValue(func() func(*Polygon) deephash.Sum {
	return deephash.HasherForType[Polygon]()
})

// Hash returns a fingerprint of the polygon and its edge index.
func (pg *Polygon) Hash() deephash.Sum {
	return hashPolygon()(pg)
}

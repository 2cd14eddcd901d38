package day09

import "fmt"

// Strategy selects the containment test used by the selector.
type Strategy int

const (
	// Optimized prunes with the longest edges and then range-scans the
	// edges strictly inside the candidate.
	Optimized Strategy = iota
	// Baseline casts rays along every interior column and row.
	Baseline
)

func (s Strategy) String() string {
	switch s {
	case Optimized:
		return "optimized"
	case Baseline:
		return "baseline"
	}
	return fmt.Sprintf("Strategy(%d)", int(s))
}

// An Oracle decides whether a candidate's open interior is free of polygon
// edges. Edges lying on the candidate's own sides do not count.
type Oracle interface {
	Accepts(Rect) bool
}

// Oracle returns the containment test for s. It panics on an unknown
// strategy.
func (pg *Polygon) Oracle(s Strategy) Oracle {
	switch s {
	case Optimized:
		return intervalOracle{pg}
	case Baseline:
		return rayOracle{pg}
	}
	panic(fmt.Sprintf("unknown strategy %v", s))
}

// rayOracle casts four rays inset half a unit from the candidate's sides:
// along y0+½ and y1-½ over every interior column, and along x0+½ and x1-½
// over every interior row. A boundary edge on an interior line that covers
// one of those rays takes the ray outside the polygon, and the candidate is
// rejected. Because the polygon boundary is connected and passes through
// the candidate's corners, any edge inside the candidate must eventually
// cover one of the rays.
type rayOracle struct {
	pg *Polygon
}

func (o rayOracle) Accepts(r Rect) bool {
	lo, hi := r.Min(), r.Max()
	if lo.X == hi.X || lo.Y == hi.Y {
		return true
	}
	return !castRays(o.pg.vert, lo.X, hi.X, lo.Y, hi.Y) &&
		!castRays(o.pg.hori, lo.Y, hi.Y, lo.X, hi.X)
}

// castRays walks the lines lo < at < hi and reports whether an edge on one
// of them covers the near ray (near+½) or the far ray (far-½). An edge that
// covers both rays counts as a single crossing.
func castRays(es []Edge, lo, hi, near, far int) bool {
	for at := lo + 1; at < hi; at++ {
		outside := false
		for i := firstAt(es, at); i < len(es) && es[i].At == at; i++ {
			e := es[i]
			if e.Lo <= near && e.Hi > near || e.Lo < far && e.Hi >= far {
				outside = !outside
				break
			}
		}
		if outside {
			return true
		}
	}
	return false
}

// intervalOracle rejects candidates that contain the polygon's longest
// vertical or horizontal edge without any search, then binary searches the
// edge index for the edges strictly between the candidate's sides and
// checks their spans against the candidate's open interior.
type intervalOracle struct {
	pg *Polygon
}

func (o intervalOracle) Accepts(r Rect) bool {
	lo, hi := r.Min(), r.Max()
	if lo.X == hi.X || lo.Y == hi.Y {
		return true
	}
	if e := o.pg.longestVert; lo.X < e.At && e.At < hi.X && e.crosses(lo.Y, hi.Y) {
		return false
	}
	if e := o.pg.longestHori; lo.Y < e.At && e.At < hi.Y && e.crosses(lo.X, hi.X) {
		return false
	}
	return !anyCrossing(o.pg.vert, lo.X, hi.X, lo.Y, hi.Y) &&
		!anyCrossing(o.pg.hori, lo.Y, hi.Y, lo.X, hi.X)
}

// anyCrossing reports whether an edge with lo < At < hi overlaps the open
// interval (near, far).
func anyCrossing(es []Edge, lo, hi, near, far int) bool {
	for i := firstAt(es, lo+1); i < len(es) && es[i].At < hi; i++ {
		if es[i].crosses(near, far) {
			return true
		}
	}
	return false
}

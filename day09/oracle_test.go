package day09

import (
	"math/rand"
	"testing"

	aoc "github.com/maisem/aoc2025"
)

// slot is a square with a slot cut down from the top between x=3 and x=5.
var slot = []aoc.Pt{
	{X: 0, Y: 0},
	{X: 8, Y: 0},
	{X: 8, Y: 8},
	{X: 5, Y: 8},
	{X: 5, Y: 2},
	{X: 3, Y: 2},
	{X: 3, Y: 6},
	{X: 0, Y: 6},
}

// scanAll is the oracle without an index: it checks every edge.
func scanAll(pg *Polygon, r Rect) bool {
	lo, hi := r.Min(), r.Max()
	if lo.X == hi.X || lo.Y == hi.Y {
		return true
	}
	for _, e := range pg.vert {
		if lo.X < e.At && e.At < hi.X && e.Lo < hi.Y && e.Hi > lo.Y {
			return false
		}
	}
	for _, e := range pg.hori {
		if lo.Y < e.At && e.At < hi.Y && e.Lo < hi.X && e.Hi > lo.X {
			return false
		}
	}
	return true
}

func TestOracles(t *testing.T) {
	tests := []struct {
		name string
		pts  []aoc.Pt
		r    Rect
		want bool
	}{
		{
			name: "box-itself",
			pts:  box,
			r:    Rect{aoc.Pt{X: 0, Y: 0}, aoc.Pt{X: 10, Y: 5}},
			want: true,
		},
		{
			// The top side lies on the edge y=2 from x=2 to x=4.
			name: "touching-edge",
			pts:  lShape,
			r:    Rect{aoc.Pt{X: 0, Y: 0}, aoc.Pt{X: 4, Y: 2}},
			want: true,
		},
		{
			name: "edge-through-interior",
			pts:  sampleA,
			r:    Rect{aoc.Pt{X: 11, Y: 1}, aoc.Pt{X: 2, Y: 5}},
			want: false,
		},
		{
			// x=5 runs from y=2 to y=8, covering both the near and the far
			// ray of this candidate. That is one crossing, and it rejects.
			name: "edge-spans-full-height",
			pts:  slot,
			r:    Rect{aoc.Pt{X: 3, Y: 2}, aoc.Pt{X: 8, Y: 8}},
			want: false,
		},
		{
			// x=3 ends on the top side without entering the interior.
			name: "edge-ends-on-side",
			pts:  slot,
			r:    Rect{aoc.Pt{X: 0, Y: 0}, aoc.Pt{X: 5, Y: 2}},
			want: true,
		},
		{
			name: "edge-crosses-near-ray",
			pts:  slot,
			r:    Rect{aoc.Pt{X: 0, Y: 6}, aoc.Pt{X: 5, Y: 2}},
			want: false,
		},
		{
			name: "flat",
			pts:  sampleA,
			r:    Rect{aoc.Pt{X: 2, Y: 5}, aoc.Pt{X: 9, Y: 5}},
			want: true,
		},
		{
			// Outside the polygon, but no edge enters it.
			name: "notch",
			pts:  sampleA,
			r:    Rect{aoc.Pt{X: 9, Y: 7}, aoc.Pt{X: 2, Y: 5}},
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pg := aoc.MustGet(NewPolygon(tt.pts))
			for _, s := range []Strategy{Baseline, Optimized} {
				if got := pg.Oracle(s).Accepts(tt.r); got != tt.want {
					t.Errorf("%v.Accepts(%v) = %v, want %v", s, tt.r, got, tt.want)
				}
			}
			if got := scanAll(pg, tt.r); got != tt.want {
				t.Errorf("scanAll(%v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestOracleUnknownStrategy(t *testing.T) {
	pg := aoc.MustGet(NewPolygon(box))
	defer func() {
		if recover() == nil {
			t.Error("Oracle(Strategy(7)) did not panic")
		}
	}()
	pg.Oracle(Strategy(7))
}

// randomPolygon returns an x-monotone rectilinear polygon over cols columns.
// Column i spans [xs[i], xs[i+1]] horizontally and [bot[i], top[i]]
// vertically, and neighbouring columns overlap, so the result is simple.
func randomPolygon(rng *rand.Rand, cols, maxY int) []aoc.Pt {
	xs := make([]int, cols+1)
	for i := 1; i <= cols; i++ {
		xs[i] = xs[i-1] + 1 + rng.Intn(3)
	}
	bot := make([]int, cols)
	top := make([]int, cols)
	for i := 0; i < cols; i++ {
		for {
			b := rng.Intn(maxY)
			t := b + 1 + rng.Intn(maxY-b)
			if i == 0 || max(b, bot[i-1]) < min(t, top[i-1]) {
				bot[i], top[i] = b, t
				break
			}
		}
	}

	var raw []aoc.Pt
	for i := 0; i < cols; i++ {
		raw = append(raw, aoc.Pt{X: xs[i], Y: bot[i]}, aoc.Pt{X: xs[i+1], Y: bot[i]})
	}
	for i := cols - 1; i >= 0; i-- {
		raw = append(raw, aoc.Pt{X: xs[i+1], Y: top[i]}, aoc.Pt{X: xs[i], Y: top[i]})
	}
	return simplify(raw)
}

// simplify drops repeated and collinear vertices of a closed path.
func simplify(pts []aoc.Pt) []aoc.Pt {
	for changed := true; changed; {
		changed = false
		for i := 0; i < len(pts) && len(pts) > 2; i++ {
			prev := pts[(i+len(pts)-1)%len(pts)]
			cur := pts[i]
			next := pts[(i+1)%len(pts)]
			if cur == next ||
				prev.X == cur.X && cur.X == next.X ||
				prev.Y == cur.Y && cur.Y == next.Y {
				pts = append(pts[:i:i], pts[i+1:]...)
				changed = true
				i--
			}
		}
	}
	return pts
}

func TestRandomPolygonIsValid(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 200; i++ {
		pts := randomPolygon(rng, 1+rng.Intn(6), 8)
		if _, err := NewPolygon(pts); err != nil {
			t.Fatalf("randomPolygon produced %v: %v", pts, err)
		}
	}
}

func TestOraclesAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	for i := 0; i < 300; i++ {
		pts := randomPolygon(rng, 1+rng.Intn(6), 8)
		pg := aoc.MustGet(NewPolygon(pts))
		ray, interval := pg.Oracle(Baseline), pg.Oracle(Optimized)
		for _, r := range Candidates(pts) {
			want := scanAll(pg, r)
			if got := ray.Accepts(r); got != want {
				t.Fatalf("polygon %v: baseline.Accepts(%v) = %v, want %v", pts, r, got, want)
			}
			if got := interval.Accepts(r); got != want {
				t.Fatalf("polygon %v: optimized.Accepts(%v) = %v, want %v", pts, r, got, want)
			}
		}

		base := aoc.MustGet(pg.LargestInterior(&Options{Strategy: Baseline}))
		opt := aoc.MustGet(pg.LargestInterior(&Options{Strategy: Optimized, Workers: 3}))
		if base != opt {
			t.Fatalf("polygon %v: baseline picked %v, optimized picked %v", pts, base, opt)
		}
		if pair := aoc.MustGet(MaxPairwiseRectangleArea(pts)); base.Area() > pair {
			t.Fatalf("polygon %v: interior area %d > pairwise area %d", pts, base.Area(), pair)
		}
	}
}

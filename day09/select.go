package day09

import (
	"cmp"
	"errors"
	"slices"
	"sync/atomic"

	aoc "github.com/maisem/aoc2025"
	"tailscale.com/types/logger"
)

var ErrNoInteriorRect = errors.New("no rectangle fits inside the polygon")

// Options configures LargestInterior. A nil *Options is valid and selects
// the optimized strategy on a single goroutine with no logging.
type Options struct {
	Strategy Strategy

	// Workers is the number of goroutines evaluating candidates. Values
	// below 2 run the search on the calling goroutine.
	Workers int

	// Logf, if non-nil, receives a summary line per search.
	Logf logger.Logf
}

func (o *Options) strategy() Strategy {
	if o == nil {
		return Optimized
	}
	return o.Strategy
}

func (o *Options) workers() int {
	if o == nil || o.Workers < 1 {
		return 1
	}
	return o.Workers
}

func (o *Options) logf() logger.Logf {
	if o == nil || o.Logf == nil {
		return logger.Discard
	}
	return o.Logf
}

type scored struct {
	r    Rect
	area int64
}

// byAreaDesc returns all candidates of pts ordered by area, largest first.
// Equal areas keep enumeration order.
func byAreaDesc(pts []aoc.Pt) []scored {
	cands := Candidates(pts)
	out := make([]scored, len(cands))
	for i, r := range cands {
		out[i] = scored{r: r, area: r.Area()}
	}
	slices.SortStableFunc(out, func(a, b scored) int {
		return cmp.Compare(b.area, a.area)
	})
	return out
}

// LargestInterior returns the largest candidate rectangle whose open
// interior is not crossed by the polygon boundary.
func (pg *Polygon) LargestInterior(opts *Options) (Rect, error) {
	return largestAccepted(pg.pts, pg.Oracle(opts.strategy()), opts)
}

func largestAccepted(pts []aoc.Pt, oracle Oracle, opts *Options) (Rect, error) {
	cands := byAreaDesc(pts)
	var (
		idx      int
		rejected int64
	)
	if n := opts.workers(); n > 1 {
		idx, rejected = searchParallel(cands, oracle, n)
	} else {
		idx, rejected = search(cands, oracle)
	}
	logf := opts.logf()
	if idx < 0 {
		logf("day09: %v: rejected all %d candidates", opts.strategy(), len(cands))
		return Rect{}, ErrNoInteriorRect
	}
	logf("day09: %v: %v area %d (candidate %d of %d, %d rejected)",
		opts.strategy(), cands[idx].r, cands[idx].area, idx, len(cands), rejected)
	return cands[idx].r, nil
}

// search returns the index of the first candidate o accepts, or -1.
func search(cands []scored, o Oracle) (idx int, rejected int64) {
	for i, c := range cands {
		if o.Accepts(c.r) {
			return i, rejected
		}
		rejected++
	}
	return -1, rejected
}

// searchParallel stripes cands over n workers. Each worker stops at its
// first accepted candidate, and skips the rest of its stripe once the best
// accepted area seen by any worker is larger than what the stripe has left.
// The lowest accepted index wins, which is the same candidate search picks.
func searchParallel(cands []scored, o Oracle, n int) (idx int, rejected int64) {
	var (
		best     atomic.Int64 // largest accepted area so far
		nrejects atomic.Int64
	)
	stripes := make([]int, n)
	for i := range stripes {
		stripes[i] = i
	}
	idx = aoc.ParallelMapFold(stripes, func(w int) int {
		for i := w; i < len(cands); i += n {
			c := cands[i]
			if c.area < best.Load() {
				return -1
			}
			if !o.Accepts(c.r) {
				nrejects.Add(1)
				continue
			}
			for {
				cur := best.Load()
				if c.area <= cur || best.CompareAndSwap(cur, c.area) {
					break
				}
			}
			return i
		}
		return -1
	}, func(acc, i int) int {
		if i >= 0 && (acc < 0 || i < acc) {
			return i
		}
		return acc
	}, -1)
	return idx, nrejects.Load()
}

package closestpair

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/geocluster/cluster"
)

var (
	// ErrInsufficientClusters is returned when a search is given fewer
	// than two clusters.
	ErrInsufficientClusters = errors.New("at least two clusters are required")

	// ErrUnsorted is returned by FastSearch when the input is not in
	// ascending order of center x-coordinate.
	ErrUnsorted = errors.New("clusters are not sorted by center x-coordinate")
)

// stripWindow bounds how many y-successors each strip point is compared
// against. Within one half of the divide, surviving points are pairwise at
// least d apart, so a 2d wide, d tall slab of the strip holds at most 8 of
// them and 7 successors cover every candidate pair.
const stripWindow = 7

// Pair is the result of a closest-pair search: the distance between the two
// cluster centers and their indices into the searched slice, with I < J.
type Pair struct {
	Distance float64
	I        int
	J        int
}

// newPair builds a Pair with normalized index order.
func newPair(d float64, i, j int) Pair {
	if j < i {
		i, j = j, i
	}

	return Pair{Distance: d, I: i, J: j}
}

// noPair is the "nothing found" value: infinite distance, indices -1.
func noPair() Pair {
	return Pair{Distance: math.Inf(1), I: -1, J: -1}
}

// Found reports whether the pair refers to two actual clusters. Strip
// searches over thin strips may come back empty.
func (p Pair) Found() bool {
	return p.I >= 0
}

// String returns a string representation of the pair.
func (p Pair) String() string {
	return fmt.Sprintf("Pair(distance=%g, i=%d, j=%d)", p.Distance, p.I, p.J)
}

// Options contains configuration options for a Finder.
type Options struct {
	// Parallel enables running the two half-recursions of FastSearch
	// concurrently.
	Parallel bool

	// MinParallel is the smallest half size that is still split into its
	// own goroutine. Halves below it always recurse serially.
	MinParallel int
}

// DefaultOptions contains the default configuration options for a Finder.
var DefaultOptions = Options{
	Parallel:    false,
	MinParallel: 2048,
}

// Finder runs closest-pair searches over slices of clusters. The zero-cost
// construction makes it cheap to create one per call site; a single Finder
// is safe for concurrent use.
type Finder struct {
	opts Options
}

// New creates a new Finder.
func New(optFns ...func(o *Options)) *Finder {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.MinParallel <= 0 {
		opts.MinParallel = DefaultOptions.MinParallel
	}

	return &Finder{opts: opts}
}

// BruteSearch scans every i < j pair and returns the closest one. Ties keep
// the first pair encountered in scan order. It does not require sorted
// input and runs in O(n^2).
func (f *Finder) BruteSearch(cs []*cluster.Cluster) (Pair, error) {
	if len(cs) < 2 {
		return noPair(), ErrInsufficientClusters
	}

	return bruteSearch(cs), nil
}

// FastSearch returns the closest pair by divide and conquer in
// O(n log^2 n). The input MUST be in ascending order of center
// x-coordinate; the precondition is verified in O(n) up front and violating
// it returns ErrUnsorted. The reported distance always equals the
// brute-force distance; which of several equidistant pairs is reported is
// algorithm-specific.
func (f *Finder) FastSearch(cs []*cluster.Cluster) (Pair, error) {
	if len(cs) < 2 {
		return noPair(), ErrInsufficientClusters
	}

	if !sortedByX(cs) {
		return noPair(), ErrUnsorted
	}

	return f.fastSearch(cs), nil
}

// StripSearch returns the closest pair among the clusters whose center
// x-coordinate lies within halfWidth (inclusive) of center, comparing each
// strip point against its next stripWindow neighbors in y-order. Indices
// refer to cs. When fewer than two clusters fall inside the strip the
// returned pair has infinite distance and indices -1 (check Found).
// The input does not need to be sorted.
func (f *Finder) StripSearch(cs []*cluster.Cluster, center, halfWidth float64) (Pair, error) {
	if len(cs) < 2 {
		return noPair(), ErrInsufficientClusters
	}

	return stripSearch(cs, center, halfWidth), nil
}

// fastSearch is the recursion behind FastSearch. It assumes len(cs) >= 2
// and ascending center x-order; indices in the result are local to cs.
func (f *Finder) fastSearch(cs []*cluster.Cluster) Pair {
	n := len(cs)
	if n <= 3 {
		return bruteSearch(cs)
	}

	m := n / 2

	var left, right Pair

	if f.opts.Parallel && m >= f.opts.MinParallel {
		var g errgroup.Group

		g.Go(func() error {
			left = f.fastSearch(cs[:m])
			return nil
		})
		g.Go(func() error {
			right = f.fastSearch(cs[m:])
			return nil
		})

		_ = g.Wait()
	} else {
		left = f.fastSearch(cs[:m])
		right = f.fastSearch(cs[m:])
	}

	// Left wins ties, and the halves win ties against the strip.
	best := left
	if right.Distance < best.Distance {
		best = Pair{Distance: right.Distance, I: right.I + m, J: right.J + m}
	}

	mid := (cs[m-1].Center().X + cs[m].Center().X) / 2
	if strip := stripSearch(cs, mid, best.Distance); strip.Distance < best.Distance {
		best = strip
	}

	return best
}

// bruteSearch assumes len(cs) >= 2.
func bruteSearch(cs []*cluster.Cluster) Pair {
	best := noPair()

	for i := 0; i < len(cs)-1; i++ {
		for j := i + 1; j < len(cs); j++ {
			if d := cs[i].Distance(cs[j]); d < best.Distance {
				best = Pair{Distance: d, I: i, J: j}
			}
		}
	}

	return best
}

func stripSearch(cs []*cluster.Cluster, center, halfWidth float64) Pair {
	strip := make([]int, 0, len(cs))

	for i, c := range cs {
		if math.Abs(c.Center().X-center) <= halfWidth {
			strip = append(strip, i)
		}
	}

	// Stable y-sort keeps equal-y strip points in cs order, which pins
	// down which of several equidistant pairs is reported.
	slices.SortStableFunc(strip, func(a, b int) int {
		ya, yb := cs[a].Center().Y, cs[b].Center().Y

		switch {
		case ya < yb:
			return -1
		case ya > yb:
			return 1
		default:
			return 0
		}
	})

	best := noPair()

	for u := 0; u < len(strip)-1; u++ {
		hi := min(u+stripWindow, len(strip)-1)

		for v := u + 1; v <= hi; v++ {
			if d := cs[strip[u]].Distance(cs[strip[v]]); d < best.Distance {
				best = newPair(d, strip[u], strip[v])
			}
		}
	}

	return best
}

func sortedByX(cs []*cluster.Cluster) bool {
	for i := 1; i < len(cs); i++ {
		if cs[i].Center().X < cs[i-1].Center().X {
			return false
		}
	}

	return true
}

var defaultFinder = New()

// BruteSearch runs Finder.BruteSearch on a default Finder.
func BruteSearch(cs []*cluster.Cluster) (Pair, error) {
	return defaultFinder.BruteSearch(cs)
}

// FastSearch runs Finder.FastSearch on a default Finder.
func FastSearch(cs []*cluster.Cluster) (Pair, error) {
	return defaultFinder.FastSearch(cs)
}

// Package kmeans implements partition-based clustering in the style of
// Lloyd's algorithm with a fixed iteration count and deterministic,
// population-based seeding.
package kmeans

import (
	"math"
	"slices"

	"github.com/hupe1980/geocluster/cluster"
	"github.com/hupe1980/geocluster/clusterer"
)

// Compile-time check to ensure Clusterer satisfies the strategy interface.
var _ clusterer.Clusterer = (*Clusterer)(nil)

// Options contains configuration options for k-means clustering.
type Options struct {
	// Iterations is the number of assign/update rounds. Zero returns the
	// seeded centers unchanged; negative is rejected by Cluster.
	Iterations int
}

// DefaultOptions contains the default configuration options for k-means
// clustering.
var DefaultOptions = Options{
	Iterations: 5,
}

// WithIterations configures the number of assign/update rounds.
func WithIterations(n int) func(o *Options) {
	return func(o *Options) {
		o.Iterations = n
	}
}

// Clusterer partitions cluster lists around k centers.
type Clusterer struct {
	opts Options
}

// New creates a new k-means Clusterer.
func New(optFns ...func(o *Options)) *Clusterer {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Clusterer{opts: opts}
}

// Name returns the name of the strategy.
func (*Clusterer) Name() string { return "KMeans" }

// Cluster partitions clusters into k clusters and returns them. The input
// slice and its clusters are never mutated; results are built from clones
// and fresh accumulators, so repeated calls over the same list are
// independent.
//
// Seeding is deterministic: the k most populous input clusters become the
// initial centers (stable population-descending order, so ties keep input
// order). When k exceeds the input size the remaining seeds are empty
// accumulators at the origin.
//
// Each round assigns every input cluster to the nearest round-start center
// (lowest index wins ties) and folds it into that center's fresh
// accumulator; the accumulators become the next round's centers.
func (c *Clusterer) Cluster(clusters []*cluster.Cluster, k int) ([]*cluster.Cluster, error) {
	if err := clusterer.ValidateK(k); err != nil {
		return nil, err
	}

	if c.opts.Iterations < 0 {
		return nil, clusterer.ErrInvalidIterations
	}

	// One stable sort fixes both the seed choice and the assignment order
	// for every round.
	ordered := slices.Clone(clusters)
	slices.SortStableFunc(ordered, func(a, b *cluster.Cluster) int {
		pa, pb := a.Population(), b.Population()

		switch {
		case pa > pb:
			return -1
		case pa < pb:
			return 1
		default:
			return 0
		}
	})

	centers := make([]*cluster.Cluster, k)
	for i := range centers {
		if i < len(ordered) {
			centers[i] = ordered[i].Clone()
		} else {
			centers[i] = cluster.Empty()
		}
	}

	for range c.opts.Iterations {
		acc := make([]*cluster.Cluster, k)
		for i := range acc {
			acc[i] = cluster.Empty()
		}

		for _, cl := range ordered {
			best := 0
			bestDist := math.Inf(1)

			for i, center := range centers {
				if d := cl.Distance(center); d < bestDist {
					bestDist = d
					best = i
				}
			}

			acc[best].Merge(cl)
		}

		centers = acc
	}

	return centers, nil
}

// Package hierarchical implements bottom-up agglomerative clustering: the
// globally closest pair of clusters is merged until the target count
// remains.
package hierarchical

import (
	"fmt"
	"slices"

	"github.com/hupe1980/geocluster/closestpair"
	"github.com/hupe1980/geocluster/cluster"
	"github.com/hupe1980/geocluster/clusterer"
)

// Compile-time check to ensure Clusterer satisfies the strategy interface.
var _ clusterer.Clusterer = (*Clusterer)(nil)

// Options contains configuration options for hierarchical clustering.
type Options struct {
	// Finder runs the closest-pair search of each reduction step. Nil
	// falls back to a default serial Finder.
	Finder *closestpair.Finder
}

// DefaultOptions contains the default configuration options for
// hierarchical clustering.
var DefaultOptions = Options{
	Finder: nil,
}

// Clusterer reduces cluster lists by repeatedly merging the closest pair.
type Clusterer struct {
	finder *closestpair.Finder
}

// New creates a new hierarchical Clusterer.
func New(optFns ...func(o *Options)) *Clusterer {
	opts := DefaultOptions

	for _, fn := range optFns {
		fn(&opts)
	}

	finder := opts.Finder
	if finder == nil {
		finder = closestpair.New()
	}

	return &Clusterer{finder: finder}
}

// Name returns the name of the strategy.
func (*Clusterer) Name() string { return "Hierarchical" }

// Cluster merges the closest pair until target clusters remain and returns
// the reduced list. Order of the returned entries is unspecified.
//
// Cluster CONSUMES its input: the slice is reordered and its clusters are
// merged in place. Callers that still need the originals must pass clones.
// A target of at least len(clusters) returns the input unchanged.
//
// Each reduction step re-sorts by center x-coordinate, which the
// divide-and-conquer search requires, then merges the winning pair and
// appends the result.
func (c *Clusterer) Cluster(clusters []*cluster.Cluster, target int) ([]*cluster.Cluster, error) {
	if err := clusterer.ValidateK(target); err != nil {
		return nil, err
	}

	for len(clusters) > target {
		sortByCenterX(clusters)

		pair, err := c.finder.FastSearch(clusters)
		if err != nil {
			return nil, fmt.Errorf("closest pair: %w", err)
		}

		merged := clusters[pair.I].Merge(clusters[pair.J])

		// Delete J before I so I's position stays valid (I < J).
		clusters = slices.Delete(clusters, pair.J, pair.J+1)
		clusters = slices.Delete(clusters, pair.I, pair.I+1)
		clusters = append(clusters, merged)
	}

	return clusters, nil
}

func sortByCenterX(cs []*cluster.Cluster) {
	slices.SortFunc(cs, func(a, b *cluster.Cluster) int {
		ax, bx := a.Center().X, b.Center().X

		switch {
		case ax < bx:
			return -1
		case ax > bx:
			return 1
		default:
			return 0
		}
	})
}

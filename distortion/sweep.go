package distortion

import (
	"fmt"
	"slices"

	"github.com/hupe1980/geocluster/cluster"
	"github.com/hupe1980/geocluster/clusterer/hierarchical"
	"github.com/hupe1980/geocluster/clusterer/kmeans"
)

// Options contains configuration options for Sweep.
type Options struct {
	// KMeans overrides the partition clusterer. When set, the iterations
	// argument of Sweep is ignored in favor of the clusterer's own
	// configuration.
	KMeans *kmeans.Clusterer

	// Hierarchical overrides the agglomerative clusterer.
	Hierarchical *hierarchical.Clusterer
}

// Sweep measures both strategies over every cluster count in [minK, maxK]
// and returns their distortion curves in ascending count order.
//
// K-means runs independently for each count over the unmutated singleton
// list. Hierarchical clustering works on a private clone of the singletons:
// it reduces once to maxK and then keeps reducing the same shrinking list
// one count at a time down to minK, so each of its curve points continues
// the previous merge history rather than starting over. The two strategies
// therefore see identical inputs but accumulate state differently, which is
// the comparison the curves are meant to expose.
func Sweep(singletons []*cluster.Cluster, tbl cluster.Table, minK, maxK, iterations int, optFns ...func(o *Options)) (*Comparison, error) {
	if minK < 1 || minK > maxK {
		return nil, fmt.Errorf("%w: min %d, max %d", ErrInvalidRange, minK, maxK)
	}

	var opts Options
	for _, fn := range optFns {
		fn(&opts)
	}

	km := opts.KMeans
	if km == nil {
		km = kmeans.New(kmeans.WithIterations(iterations))
	}

	h := opts.Hierarchical
	if h == nil {
		h = hierarchical.New()
	}

	points := maxK - minK + 1

	kmCurve := make(Curve, 0, points)

	for k := minK; k <= maxK; k++ {
		cs, err := km.Cluster(singletons, k)
		if err != nil {
			return nil, fmt.Errorf("kmeans k=%d: %w", k, err)
		}

		d, err := Compute(cs, tbl)
		if err != nil {
			return nil, fmt.Errorf("kmeans k=%d: %w", k, err)
		}

		kmCurve = append(kmCurve, CurvePoint{Clusters: k, Distortion: d})
	}

	// Hierarchical clustering consumes its input, so it gets clones.
	work := make([]*cluster.Cluster, len(singletons))
	for i, c := range singletons {
		work[i] = c.Clone()
	}

	hCurve := make(Curve, 0, points)

	for k := maxK; k >= minK; k-- {
		var err error

		work, err = h.Cluster(work, k)
		if err != nil {
			return nil, fmt.Errorf("hierarchical k=%d: %w", k, err)
		}

		d, err := Compute(work, tbl)
		if err != nil {
			return nil, fmt.Errorf("hierarchical k=%d: %w", k, err)
		}

		hCurve = append(hCurve, CurvePoint{Clusters: k, Distortion: d})
	}

	slices.Reverse(hCurve)

	return &Comparison{KMeans: kmCurve, Hierarchical: hCurve}, nil
}

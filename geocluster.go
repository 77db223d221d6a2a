package geocluster

import (
	"cmp"
	"context"
	"slices"
	"time"

	"github.com/hupe1980/geocluster/blobstore"
	"github.com/hupe1980/geocluster/closestpair"
	"github.com/hupe1980/geocluster/cluster"
	"github.com/hupe1980/geocluster/clusterer/hierarchical"
	"github.com/hupe1980/geocluster/clusterer/kmeans"
	"github.com/hupe1980/geocluster/codec"
	"github.com/hupe1980/geocluster/dataset"
	"github.com/hupe1980/geocluster/distortion"
)

// GeoCluster clusters the rows of a point table and scores the results.
// Instances are safe for concurrent use: all operations read the
// immutable table and work on freshly minted cluster lists.
type GeoCluster struct {
	tbl     *dataset.Table
	finder  *closestpair.Finder
	codec   codec.Codec
	metrics MetricsCollector
	logger  *Logger
}

// New creates a GeoCluster over the given table.
func New(tbl *dataset.Table, optFns ...Option) (*GeoCluster, error) {
	if tbl == nil {
		return nil, ErrNilTable
	}

	opts := applyOptions(optFns)

	c := opts.codec
	if c == nil {
		c = codec.Default
	}

	finder := opts.finder
	if finder == nil {
		finder = closestpair.New()
	}

	return &GeoCluster{
		tbl:     tbl,
		finder:  finder,
		codec:   c,
		metrics: opts.metrics,
		logger:  opts.logger,
	}, nil
}

// Open loads the named table from a blob store and creates a GeoCluster
// over it. Compressed blobs (.zst, .gz, .lz4) are decompressed
// transparently.
func Open(ctx context.Context, store blobstore.BlobStore, name string, optFns ...Option) (*GeoCluster, error) {
	opts := applyOptions(optFns)

	start := time.Now()

	tbl, err := dataset.Open(ctx, store, name)
	duration := time.Since(start)

	if err != nil {
		opts.metrics.RecordLoad(0, duration, err)
		opts.logger.LogLoad(ctx, name, 0, err)
		return nil, err
	}

	opts.metrics.RecordLoad(tbl.Len(), duration, nil)
	opts.logger.LogLoad(ctx, name, tbl.Len(), nil)

	return New(tbl, optFns...)
}

// Table returns the underlying record table.
func (g *GeoCluster) Table() *dataset.Table {
	return g.tbl
}

// Singletons returns a fresh list of singleton clusters, one per table
// row in row order. Each call allocates new clusters.
func (g *GeoCluster) Singletons() []*cluster.Cluster {
	return g.tbl.Singletons()
}

// ClosestPair finds the two clusters with minimal center distance.
// The input may be in any order; the returned pair indexes into it.
func (g *GeoCluster) ClosestPair(clusters []*cluster.Cluster) (closestpair.Pair, error) {
	start := time.Now()

	order := make([]int, len(clusters))
	for i := range order {
		order[i] = i
	}

	slices.SortFunc(order, func(a, b int) int {
		return cmp.Compare(clusters[a].Center().X, clusters[b].Center().X)
	})

	sorted := make([]*cluster.Cluster, len(clusters))
	for i, idx := range order {
		sorted[i] = clusters[idx]
	}

	pair, err := g.finder.FastSearch(sorted)
	duration := time.Since(start)

	g.metrics.RecordSearch(len(clusters), duration, err)

	if err != nil {
		g.logger.LogSearch(len(clusters), 0, err)
		return pair, err
	}

	// Map the pair back to the caller's ordering.
	i, j := order[pair.I], order[pair.J]
	if i > j {
		i, j = j, i
	}
	pair.I, pair.J = i, j

	g.logger.LogSearch(len(clusters), pair.Distance, nil)

	return pair, nil
}

// Hierarchical merges the table's singletons down to target clusters by
// repeatedly combining the closest pair.
func (g *GeoCluster) Hierarchical(target int) ([]*cluster.Cluster, error) {
	start := time.Now()

	h := hierarchical.New(func(o *hierarchical.Options) {
		o.Finder = g.finder
	})

	out, err := h.Cluster(g.tbl.Singletons(), target)
	duration := time.Since(start)

	g.metrics.RecordReduce(h.Name(), target, duration, err)
	g.logger.LogReduce(h.Name(), g.tbl.Len(), target, err)

	return out, err
}

// KMeans clusters the table's rows into k clusters using the given number
// of assign/recenter rounds. Zero rounds returns the population-based
// seeds unchanged.
func (g *GeoCluster) KMeans(k, iterations int) ([]*cluster.Cluster, error) {
	start := time.Now()

	km := kmeans.New(kmeans.WithIterations(iterations))

	out, err := km.Cluster(g.tbl.Singletons(), k)
	duration := time.Since(start)

	g.metrics.RecordReduce(km.Name(), k, duration, err)
	g.logger.LogReduce(km.Name(), g.tbl.Len(), k, err)

	return out, err
}

// Distortion returns the population-weighted squared-distance error of a
// clustering over this table.
func (g *GeoCluster) Distortion(clusters []*cluster.Cluster) (float64, error) {
	v, err := distortion.Compute(clusters, g.tbl)

	g.logger.LogDistortion(len(clusters), v, err)

	return v, err
}

// Sweep computes distortion for both clusterers at every cluster count in
// [minK, maxK] and returns the two curves.
func (g *GeoCluster) Sweep(minK, maxK, iterations int) (*distortion.Comparison, error) {
	start := time.Now()

	comparison, err := distortion.Sweep(g.tbl.Singletons(), g.tbl, minK, maxK, iterations, func(o *distortion.Options) {
		o.Hierarchical = hierarchical.New(func(ho *hierarchical.Options) {
			ho.Finder = g.finder
		})
	})
	duration := time.Since(start)

	points := 0
	if comparison != nil {
		points = len(comparison.KMeans)
	}

	g.metrics.RecordSweep(minK, maxK, duration, err)
	g.logger.LogSweep(minK, maxK, points, err)

	return comparison, err
}

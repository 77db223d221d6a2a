// Package geocluster clusters population-weighted points in the plane.
//
// Geocluster groups the rows of a point table (for example US counties
// positioned on a map, weighted by census population) into a target
// number of clusters and scores the result by population-weighted
// distortion. Two clustering strategies are built in:
//
//   - Hierarchical: repeatedly merges the closest pair of clusters until
//     the target count is reached. Slower, usually lower distortion.
//   - KMeans: seeds centers on the most populous rows and refines them
//     over a fixed number of assign/recenter rounds. Fast, quality
//     depends on the seeding.
//
// The closest-pair step uses a divide and conquer search that is
// verified against the brute-force scan in tests and benchmarks.
//
// # Quick Start
//
//	ctx := context.Background()
//
//	store := blobstore.NewLocalStore("./data")
//	gc, err := geocluster.Open(ctx, store, "counties.csv.gz")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	clusters, err := gc.Hierarchical(16)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	d, _ := gc.Distortion(clusters)
//	fmt.Printf("16 clusters, distortion %.3e\n", d)
//
// Compare both strategies across a range of cluster counts:
//
//	comparison, err := gc.Sweep(6, 20, 5)
//	for _, p := range comparison.KMeans {
//		fmt.Println(p.Clusters, p.Distortion)
//	}
//
// # Storage
//
// Tables decode from five-field CSV rows (key, x, y, population,
// attribute) and load from any BlobStore: local directories, in-memory
// stores, S3, MinIO, optionally rate-limited and compressed (zstd, gzip,
// lz4).
//
// # Observability
//
// Every facade operation logs through a structured slog-based Logger and
// reports durations to a pluggable MetricsCollector. Both default to
// no-ops.
package geocluster

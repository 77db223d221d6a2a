// Package testutil provides testing utilities for geocluster.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded, thread-safe RNG with helpers for generating
// random points, singleton clusters and record tables.
//
//	rng := testutil.NewRNG(4711)
//	cs := rng.Clusters(100)      // singletons with centers in [-1, 1)
//	recs := rng.Records(100)     // records with distinct keys
package testutil

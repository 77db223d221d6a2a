// Package dataset loads and indexes point record tables.
//
// A Table assigns each record a RowID from its position, indexes keys for
// reverse lookups and mints singleton clusters for the clustering
// pipeline. Tables decode from five-field CSV rows (key, x, y,
// population, attribute), optionally compressed with zstd, gzip or lz4,
// and can be fetched from any blob store.
package dataset

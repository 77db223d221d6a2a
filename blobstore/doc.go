// Package blobstore provides the storage abstraction point tables are
// loaded through.
//
// BlobStore is the interface for reading named data blobs.
// Implementations must be safe for concurrent use.
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem rooted at a directory
//   - MemStore: in-memory store for tests
//   - ThrottledStore: decorator bounding aggregate read throughput
//   - CachedStore: decorator adding an in-memory LRU of whole blobs
//   - s3.Store: Amazon S3 streaming reads
//   - minio.Store: MinIO and other S3-compatible storage
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error) // open for reading
//	}
//
// Missing blobs must map to an error satisfying
// errors.Is(err, blobstore.ErrNotFound).
package blobstore

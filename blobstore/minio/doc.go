// Package minio implements blobstore.BlobStore on MinIO and other
// S3-compatible object stores. Missing keys map to blobstore.ErrNotFound.
package minio

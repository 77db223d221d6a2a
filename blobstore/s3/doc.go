// Package s3 implements blobstore.BlobStore on Amazon S3.
//
// Open streams objects with GetObject; Fetch downloads large objects in
// parallel parts through the transfer manager. Missing keys map to
// blobstore.ErrNotFound.
package s3

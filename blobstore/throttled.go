package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a BlobStore and bounds the aggregate read throughput
// of all blobs opened through it. Useful when table loads share bandwidth
// with latency-sensitive work.
type ThrottledStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewThrottledStore creates a ThrottledStore limited to bytesPerSec across
// all opened blobs. Burst equals the rate, so a single read never exceeds
// one second worth of budget.
func NewThrottledStore(inner BlobStore, bytesPerSec int) *ThrottledStore {
	return &ThrottledStore{
		inner:   inner,
		limiter: rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec),
	}
}

// Open opens a blob whose reads draw from the shared rate budget. The
// context also governs waiting for budget during later reads.
func (s *ThrottledStore) Open(ctx context.Context, name string) (Blob, error) {
	b, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	return &throttledBlob{Blob: b, limiter: s.limiter, ctx: ctx}, nil
}

type throttledBlob struct {
	Blob

	limiter *rate.Limiter
	ctx     context.Context
}

func (b *throttledBlob) Read(p []byte) (int, error) {
	// Cap the request at the burst so WaitN can always succeed.
	if burst := b.limiter.Burst(); len(p) > burst {
		p = p[:burst]
	}

	n, err := b.Blob.Read(p)
	if n > 0 {
		if waitErr := b.limiter.WaitN(b.ctx, n); waitErr != nil {
			return n, waitErr
		}
	}

	return n, err
}

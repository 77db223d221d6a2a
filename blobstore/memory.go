package blobstore

import (
	"bytes"
	"context"
	"sync"
)

// MemStore is an in-memory BlobStore implementation for testing.
// Thread-safe for concurrent reads and writes.
type MemStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemStore creates a new in-memory blob store.
func NewMemStore() *MemStore {
	return &MemStore{
		blobs: make(map[string][]byte),
	}
}

// Put stores a blob under the given name, replacing any previous content.
func (m *MemStore) Put(name string, data []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()

	// Copy to prevent external mutation.
	copied := make([]byte, len(data))
	copy(copied, data)

	m.blobs[name] = copied
}

// Open opens a blob for reading.
func (m *MemStore) Open(_ context.Context, name string) (Blob, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}

	copied := make([]byte, len(data))
	copy(copied, data)

	return &memBlob{Reader: bytes.NewReader(copied)}, nil
}

// memBlob implements Blob over a byte slice. bytes.Reader already provides
// Read and Size.
type memBlob struct {
	*bytes.Reader
}

func (b *memBlob) Close() error {
	return nil
}

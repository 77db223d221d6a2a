package blobstore

import (
	"bytes"
	"container/list"
	"context"
	"io"
	"sync"
	"sync/atomic"
)

// CachedStore wraps a BlobStore with an in-memory LRU cache of whole
// blobs. Tables are small relative to memory and read end to end, so
// caching complete payloads keyed by name beats block granularity.
//
// Cached blobs are treated as immutable: there is no invalidation. Use
// it in front of remote stores whose objects never change in place.
type CachedStore struct {
	inner BlobStore

	mu        sync.Mutex
	capacity  int64
	size      int64
	items     map[string]*list.Element
	evictList *list.List

	hits   atomic.Int64
	misses atomic.Int64
}

type cacheEntry struct {
	name string
	data []byte
}

// NewCachedStore creates a CachedStore with the given capacity in bytes.
// If capacity <= 0, it defaults to 64MB.
func NewCachedStore(inner BlobStore, capacity int64) *CachedStore {
	if capacity <= 0 {
		capacity = 64 << 20
	}

	return &CachedStore{
		inner:     inner,
		capacity:  capacity,
		items:     make(map[string]*list.Element),
		evictList: list.New(),
	}
}

// Open returns the named blob, serving it from the cache when possible.
func (s *CachedStore) Open(ctx context.Context, name string) (Blob, error) {
	if data, ok := s.get(name); ok {
		return &memBlob{Reader: bytes.NewReader(data)}, nil
	}

	blob, err := s.inner.Open(ctx, name)
	if err != nil {
		return nil, err
	}

	data, err := io.ReadAll(blob)
	closeErr := blob.Close()

	if err != nil {
		return nil, err
	}
	if closeErr != nil {
		return nil, closeErr
	}

	s.set(name, data)

	// bytes.Reader cannot expose the slice, so sharing it with the cache
	// is safe.
	return &memBlob{Reader: bytes.NewReader(data)}, nil
}

// Stats returns the number of cache hits and misses.
func (s *CachedStore) Stats() (hits, misses int64) {
	return s.hits.Load(), s.misses.Load()
}

// Size returns the current size of the cache in bytes.
func (s *CachedStore) Size() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.size
}

func (s *CachedStore) get(name string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ent, ok := s.items[name]; ok {
		s.hits.Add(1)
		s.evictList.MoveToFront(ent)
		return ent.Value.(*cacheEntry).data, true
	}

	s.misses.Add(1)
	return nil, false
}

func (s *CachedStore) set(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()

	itemSize := int64(len(data))

	if ent, ok := s.items[name]; ok {
		s.evictList.MoveToFront(ent)
		s.size += itemSize - int64(len(ent.Value.(*cacheEntry).data))
		ent.Value.(*cacheEntry).data = data
		s.evict()
		return
	}

	// Blobs larger than the whole cache are served but never cached.
	if itemSize > s.capacity {
		return
	}

	for s.size+itemSize > s.capacity {
		ent := s.evictList.Back()
		if ent == nil {
			break
		}
		s.removeElement(ent)
	}

	element := s.evictList.PushFront(&cacheEntry{name: name, data: data})
	s.items[name] = element
	s.size += itemSize
}

func (s *CachedStore) evict() {
	for s.size > s.capacity {
		element := s.evictList.Back()
		if element == nil {
			break
		}
		s.removeElement(element)
	}
}

func (s *CachedStore) removeElement(e *list.Element) {
	s.evictList.Remove(e)
	ent := e.Value.(*cacheEntry)
	delete(s.items, ent.name)
	s.size -= int64(len(ent.data))
}

package testutil

import (
	"fmt"
	"math/rand"
	"slices"
	"sync"

	"github.com/hupe1980/geocluster/cluster"
	"github.com/hupe1980/geocluster/model"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Float64 returns a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// Point returns a pseudo-random point with both coordinates in [-1, 1).
func (r *RNG) Point() model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.pointLocked()
}

// pointLocked is the internal implementation (caller must hold lock).
func (r *RNG) pointLocked() model.Point {
	return model.Point{
		X: r.rand.Float64()*2 - 1,
		Y: r.rand.Float64()*2 - 1,
	}
}

// Points returns num pseudo-random points with coordinates in [-1, 1).
func (r *RNG) Points(num int) []model.Point {
	r.mu.Lock()
	defer r.mu.Unlock()

	pts := make([]model.Point, num)
	for i := range pts {
		pts[i] = r.pointLocked()
	}

	return pts
}

// Clusters returns num singleton clusters with rows 0..num-1, centers in
// [-1, 1) and population 0. Zero population keeps them geometry-only,
// which is what closest-pair search exercises.
func (r *RNG) Clusters(num int) []*cluster.Cluster {
	r.mu.Lock()
	defer r.mu.Unlock()

	cs := make([]*cluster.Cluster, num)
	for i := range cs {
		cs[i] = cluster.NewSingleton(model.RowID(i), r.pointLocked(), 0, 0)
	}

	return cs
}

// Records returns num records with distinct keys, coordinates in [0, 100),
// populations in [1, 10000] and attributes in [0, 10).
func (r *RNG) Records(num int) []model.Record {
	r.mu.Lock()
	defer r.mu.Unlock()

	recs := make([]model.Record, num)
	for i := range recs {
		recs[i] = model.Record{
			Key: fmt.Sprintf("r%05d", i),
			Loc: model.Point{
				X: r.rand.Float64() * 100,
				Y: r.rand.Float64() * 100,
			},
			Population: int64(r.rand.Intn(10000)) + 1,
			Attribute:  r.rand.Float64() * 10,
		}
	}

	return recs
}

// SortByCenterX sorts clusters in place into ascending order of center
// x-coordinate, the precondition of the divide-and-conquer search.
func SortByCenterX(cs []*cluster.Cluster) {
	slices.SortFunc(cs, func(a, b *cluster.Cluster) int {
		ax, bx := a.Center().X, b.Center().X

		switch {
		case ax < bx:
			return -1
		case ax > bx:
			return 1
		default:
			return 0
		}
	})
}

// Package clusterer defines the contract shared by the clustering
// strategies and the argument validation they have in common.
package clusterer

import (
	"errors"

	"github.com/hupe1980/geocluster/cluster"
)

var (
	// ErrInvalidK is returned when k is not positive.
	ErrInvalidK = errors.New("k must be positive")

	// ErrInvalidIterations is returned when a negative iteration count is
	// configured.
	ErrInvalidIterations = errors.New("iterations must not be negative")
)

// Clusterer reduces a list of clusters to k clusters.
type Clusterer interface {
	// Cluster reduces clusters down to k and returns the result. Whether
	// the input slice and its clusters survive the call is
	// strategy-specific and documented on the implementation.
	Cluster(clusters []*cluster.Cluster, k int) ([]*cluster.Cluster, error)

	// Name returns the name of the strategy.
	Name() string
}

// ValidateK checks a target cluster count shared by all strategies.
func ValidateK(k int) error {
	if k <= 0 {
		return ErrInvalidK
	}

	return nil
}

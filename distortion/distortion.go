// Package distortion evaluates clusterings by their population-weighted
// within-cluster squared error and sweeps that measure across a range of
// cluster counts for both clustering strategies.
package distortion

import (
	"errors"
	"fmt"

	"github.com/hupe1980/geocluster/cluster"
)

// ErrInvalidRange is returned when a sweep range does not satisfy
// 1 <= min <= max.
var ErrInvalidRange = errors.New("invalid cluster count range")

// CurvePoint is the distortion of one clustering at a given cluster count.
type CurvePoint struct {
	Clusters   int     `json:"clusters"`
	Distortion float64 `json:"distortion"`
}

// Curve is a series of distortion measurements in ascending order of
// cluster count.
type Curve []CurvePoint

// Comparison holds the distortion curves of both strategies over the same
// cluster count range.
type Comparison struct {
	KMeans       Curve `json:"kmeans"`
	Hierarchical Curve `json:"hierarchical"`
}

// Compute returns the total distortion of a clustering against the point
// table: the sum of every cluster's population-weighted squared error. It
// is non-negative, and exactly 0 for a clustering of pure singletons.
func Compute(clusters []*cluster.Cluster, tbl cluster.Table) (float64, error) {
	var total float64

	for _, c := range clusters {
		e, err := c.Error(tbl)
		if err != nil {
			return 0, fmt.Errorf("cluster error: %w", err)
		}

		total += e
	}

	return total, nil
}

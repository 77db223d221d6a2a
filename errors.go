package geocluster

import (
	"errors"

	"github.com/hupe1980/geocluster/clusterer"
)

var (
	// ErrNilTable is returned when a GeoCluster is created without a table.
	ErrNilTable = errors.New("table must not be nil")

	// ErrInvalidK mirrors clusterer.ErrInvalidK so callers checking argument
	// errors only need this package.
	ErrInvalidK = clusterer.ErrInvalidK

	// ErrInvalidIterations mirrors clusterer.ErrInvalidIterations.
	ErrInvalidIterations = clusterer.ErrInvalidIterations
)

package distance

import (
	"math"

	"github.com/hupe1980/geocluster/model"
)

// Euclidean calculates the Euclidean distance between two points.
// It is symmetric and zero exactly when the points coincide.
func Euclidean(a, b model.Point) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// SquaredEuclidean calculates the squared Euclidean distance between two
// points. Used where only relative order or a squared-error sum is needed,
// avoiding the square root.
func SquaredEuclidean(a, b model.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y
	return dx*dx + dy*dy
}

// Func is a function type for distance calculation between two points.
type Func func(a, b model.Point) float64

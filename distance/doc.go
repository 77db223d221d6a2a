// Package distance provides planar distance calculations.
//
// Coordinates are fixed to two dimensions, so the functions take
// model.Point values directly and cannot fail: there is no dimension
// mismatch to detect.
//
// # Usage
//
//	d := distance.Euclidean(a, b)
//	d2 := distance.SquaredEuclidean(a, b)
package distance

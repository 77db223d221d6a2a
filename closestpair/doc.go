// Package closestpair finds the pair of clusters with minimal
// center-to-center Euclidean distance.
//
// Two strategies are provided with identical distance results: BruteSearch
// scans all pairs in O(n^2), FastSearch divides on the median x-coordinate
// and stitches the halves together with a vertical strip search. FastSearch
// requires its input sorted by center x-coordinate and fails fast with
// ErrUnsorted when it is not.
package closestpair

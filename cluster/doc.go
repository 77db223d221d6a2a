// Package cluster provides the mergeable, population-weighted cluster
// aggregate that all clustering strategies operate on.
//
// A cluster tracks its member rows as a roaring bitmap over table RowIDs,
// so unions stay cheap even for clusters that have absorbed thousands of
// rows. The center and secondary attribute are maintained incrementally as
// population-weighted averages during Merge and are never recomputed from
// the raw records.
package cluster

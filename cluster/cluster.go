package cluster

import (
	"fmt"
	"iter"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/geocluster/distance"
	"github.com/hupe1980/geocluster/model"
)

// Table resolves member rows against the external point table.
// *dataset.Table satisfies it; tests may supply small fakes.
type Table interface {
	// Record returns the record stored at the given row, and whether the
	// row exists.
	Record(id model.RowID) (model.Record, bool)
}

// ErrUnknownMember indicates a cluster member row that the point table
// cannot resolve.
type ErrUnknownMember struct {
	Row model.RowID
}

// Error returns the error message for an unresolvable member row.
func (e *ErrUnknownMember) Error() string {
	return fmt.Sprintf("unknown member row: %d", e.Row)
}

// Cluster is a mergeable aggregate of one or more point records.
//
// Members are tracked as a roaring bitmap of table RowIDs. The member sets
// of live clusters must stay pairwise disjoint; Merge relies on this and
// does not check it on the hot path. Callers that want to assert
// disjointness can use Intersects.
//
// The center and attribute are always the population-weighted combination
// of the clusters that were merged into this one. They are never recomputed
// from the raw records, so their exact floating-point values depend only on
// merge order.
type Cluster struct {
	members    *roaring.Bitmap
	center     model.Point
	population int64
	attribute  float64
}

// NewSingleton creates a cluster containing exactly one point record.
// Population must be non-negative.
func NewSingleton(id model.RowID, loc model.Point, population int64, attribute float64) *Cluster {
	members := roaring.New()
	members.Add(uint32(id))

	return &Cluster{
		members:    members,
		center:     loc,
		population: population,
		attribute:  attribute,
	}
}

// FromRecord creates a singleton cluster from a table record.
func FromRecord(id model.RowID, rec model.Record) *Cluster {
	return NewSingleton(id, rec.Loc, rec.Population, rec.Attribute)
}

// Empty creates a cluster with no members, population 0, attribute 0 and
// center at the origin. It is the identity element for Merge on populated
// clusters and is used as the running accumulator by partition clustering,
// so assignment loops need no first-fold special case.
func Empty() *Cluster {
	return &Cluster{
		members: roaring.New(),
	}
}

// Center returns the cluster center.
func (c *Cluster) Center() model.Point { return c.center }

// Population returns the summed population of all members.
func (c *Cluster) Population() int64 { return c.population }

// Attribute returns the population-weighted average of the members'
// secondary attribute. It is 0 when the population is 0.
func (c *Cluster) Attribute() float64 { return c.attribute }

// Len returns the number of member rows.
func (c *Cluster) Len() int {
	return int(c.members.GetCardinality())
}

// Contains reports whether the given row is a member of this cluster.
func (c *Cluster) Contains(id model.RowID) bool {
	return c.members.Contains(uint32(id))
}

// Intersects reports whether this cluster shares any member row with
// other. Live clusters must never intersect; this exists so callers can
// assert the Merge precondition where they choose to.
func (c *Cluster) Intersects(other *Cluster) bool {
	return c.members.Intersects(other.members)
}

// Members returns the member rows in ascending order.
func (c *Cluster) Members() []model.RowID {
	raw := c.members.ToArray()
	ids := make([]model.RowID, len(raw))
	for i, v := range raw {
		ids[i] = model.RowID(v)
	}
	return ids
}

// All returns an iterator over the member rows in ascending order.
func (c *Cluster) All() iter.Seq[model.RowID] {
	return func(yield func(model.RowID) bool) {
		it := c.members.Iterator()
		for it.HasNext() {
			if !yield(model.RowID(it.Next())) {
				return
			}
		}
	}
}

// Clone returns a deep copy of the cluster.
func (c *Cluster) Clone() *Cluster {
	return &Cluster{
		members:    c.members.Clone(),
		center:     c.center,
		population: c.population,
		attribute:  c.attribute,
	}
}

// Distance calculates the Euclidean distance between the centers of two
// clusters. It is symmetric and 0 exactly when the centers coincide, which
// is legal for distinct clusters at the same location.
func (c *Cluster) Distance(other *Cluster) float64 {
	return distance.Euclidean(c.center, other.center)
}

// Merge folds other into the receiver and returns the receiver: the member
// set becomes the union, the population the sum, and the center and
// attribute the population-weighted averages of the two inputs.
//
// Merge always mutates the receiver; the argument is left unchanged but is
// conceptually absorbed and must not be folded into any other live cluster
// afterward. The member sets must be disjoint (unchecked precondition).
//
// When the combined population is 0 there is no weighting to apply: the
// center keeps the receiver's center (the origin, for accumulators built
// with Empty) and the attribute is 0.
func (c *Cluster) Merge(other *Cluster) *Cluster {
	c.members.Or(other.members)

	total := c.population + other.population
	if total == 0 {
		c.attribute = 0
		return c
	}

	pa := float64(c.population)
	pb := float64(other.population)
	ft := float64(total)

	c.center = model.Point{
		X: (c.center.X*pa + other.center.X*pb) / ft,
		Y: (c.center.Y*pa + other.center.Y*pb) / ft,
	}
	c.attribute = (c.attribute*pa + other.attribute*pb) / ft
	c.population = total

	return c
}

// Error calculates the cluster's error against the point table: the sum
// over all member rows of the row's population times the squared Euclidean
// distance from the cluster center to the row's location.
func (c *Cluster) Error(tbl Table) (float64, error) {
	var sum float64

	for id := range c.All() {
		rec, ok := tbl.Record(id)
		if !ok {
			return 0, &ErrUnknownMember{Row: id}
		}
		sum += float64(rec.Population) * distance.SquaredEuclidean(c.center, rec.Loc)
	}

	return sum, nil
}

// String returns a string representation of the cluster.
func (c *Cluster) String() string {
	return fmt.Sprintf("Cluster(members=%d, center=%s, population=%d)", c.Len(), c.center, c.population)
}

package model

import "fmt"

// RowID is a dense identifier for a record within a single point table.
// The table's input ordering defines the RowID space: the first record is
// row 0, the second row 1, and so on. RowIDs are strictly 32-bit.
type RowID uint32

// MaxRowID is the maximum possible value for a RowID.
const MaxRowID = ^RowID(0)

// Point is a position in the plane.
type Point struct {
	X float64
	Y float64
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Record is one immutable input row of a point table: an opaque key
// (e.g. a county FIPS code), a plane location, a non-negative population
// count, and a secondary scalar attribute (e.g. a risk score).
type Record struct {
	Key        string
	Loc        Point
	Population int64
	Attribute  float64
}

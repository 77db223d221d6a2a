// Package model defines core types used throughout geocluster.
//
// # Identity Types
//
//   - RowID: Dense, table-local record identifier (uint32). The input
//     ordering of a point table defines the RowID space; clustering code
//     tracks cluster membership by RowID and resolves the user-facing
//     string key through the table only at reporting boundaries.
//
// # Data Types
//
//   - Point: Plane coordinates (X, Y)
//   - Record: Key, location, population, and secondary attribute of one
//     input point
package model

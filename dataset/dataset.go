package dataset

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hupe1980/geocluster/cluster"
	"github.com/hupe1980/geocluster/model"
)

// Compile-time check to ensure Table resolves cluster members.
var _ cluster.Table = (*Table)(nil)

// Table is an immutable, ordered collection of point records. Row order
// defines the RowID space clusters refer to; the key index answers
// identifier lookups from reporting code.
type Table struct {
	records []model.Record
	index   map[string]model.RowID
}

// New creates a Table from records, keeping their order. It rejects
// negative populations and duplicate keys with a RowError naming the
// offending 1-based row.
func New(records []model.Record) (*Table, error) {
	index := make(map[string]model.RowID, len(records))

	for i, rec := range records {
		if rec.Population < 0 {
			return nil, &RowError{Row: i + 1, Err: fmt.Errorf("%w: %d", ErrNegativePopulation, rec.Population)}
		}

		if _, ok := index[rec.Key]; ok {
			return nil, &RowError{Row: i + 1, Err: fmt.Errorf("%w: %q", ErrDuplicateKey, rec.Key)}
		}

		index[rec.Key] = model.RowID(i)
	}

	return &Table{records: slices.Clone(records), index: index}, nil
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.records)
}

// Record returns the record stored at the given row, and whether the row
// exists.
func (t *Table) Record(id model.RowID) (model.Record, bool) {
	if int(id) >= len(t.records) {
		return model.Record{}, false
	}

	return t.records[id], true
}

// Lookup returns the row holding the record with the given key.
func (t *Table) Lookup(key string) (model.RowID, bool) {
	id, ok := t.index[key]
	return id, ok
}

// Key returns the key of the record stored at the given row.
func (t *Table) Key(id model.RowID) (string, bool) {
	if int(id) >= len(t.records) {
		return "", false
	}

	return t.records[id].Key, true
}

// Records returns an iterator over all rows in order.
func (t *Table) Records() iter.Seq2[model.RowID, model.Record] {
	return func(yield func(model.RowID, model.Record) bool) {
		for i, rec := range t.records {
			if !yield(model.RowID(i), rec) {
				return
			}
		}
	}
}

// Singletons returns a fresh list of one singleton cluster per row, in row
// order. Each call allocates new clusters, so callers may freely consume
// the result.
func (t *Table) Singletons() []*cluster.Cluster {
	cs := make([]*cluster.Cluster, len(t.records))
	for i, rec := range t.records {
		cs[i] = cluster.FromRecord(model.RowID(i), rec)
	}

	return cs
}

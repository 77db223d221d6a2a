package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hupe1980/geocluster/model"
)

var (
	// ErrDuplicateKey is returned when two rows share a key.
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrNegativePopulation is returned when a row carries a negative population.
	ErrNegativePopulation = errors.New("negative population")
)

// RowError reports a malformed table row. Row numbers are 1-based.
type RowError struct {
	Row int
	Err error
}

// Error implements the error interface.
func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Row, e.Err)
}

// Unwrap implements the errors.Unwrap interface.
func (e *RowError) Unwrap() error {
	return e.Err
}

// DecodeCSV reads a table from CSV data. Each row carries five fields:
// key, x, y, population, attribute. Empty input yields an empty table.
func DecodeCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = 5

	var records []model.Record

	for row := 1; ; row++ {
		fields, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, &RowError{Row: row, Err: err}
		}

		rec, err := parseRecord(fields)
		if err != nil {
			return nil, &RowError{Row: row, Err: err}
		}

		records = append(records, rec)
	}

	return New(records)
}

func parseRecord(fields []string) (model.Record, error) {
	x, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return model.Record{}, fmt.Errorf("x coordinate: %w", err)
	}

	y, err := strconv.ParseFloat(strings.TrimSpace(fields[2]), 64)
	if err != nil {
		return model.Record{}, fmt.Errorf("y coordinate: %w", err)
	}

	population, err := strconv.ParseInt(strings.TrimSpace(fields[3]), 10, 64)
	if err != nil {
		return model.Record{}, fmt.Errorf("population: %w", err)
	}

	attribute, err := strconv.ParseFloat(strings.TrimSpace(fields[4]), 64)
	if err != nil {
		return model.Record{}, fmt.Errorf("attribute: %w", err)
	}

	return model.Record{
		Key:        strings.TrimSpace(fields[0]),
		Loc:        model.Point{X: x, Y: y},
		Population: population,
		Attribute:  attribute,
	}, nil
}

// Package dataset stores named columns of measurements and persists
// them as a compact, checksummed envelope.
//
// A Dataset maps column names to float64 series. Encode serializes the
// column map as JSON, compresses the payload with the configured codec
// and frames it with a magic tag, format version, compression type and
// an xxHash64 checksum; Decode reverses the process and rejects
// corrupted or foreign input. Save and Load wrap the two with file IO.
//
//	ds := dataset.New("pendulum")
//	ds.SetColumn("length", lengths)
//	ds.SetColumn("period", periods)
//	err := dataset.Save("pendulum.lsds", ds, dataset.WithCompression(format.CompressionZstd))
package dataset

import (
	"fmt"
	"sort"

	"github.com/arloliu/labstat/check"
	"github.com/arloliu/labstat/internal/hash"
)

// Dataset is a named collection of measurement columns.
type Dataset struct {
	// Name identifies the dataset; it is stored in the payload.
	Name string `json:"name,omitempty"`
	// Columns maps column names to measurement series.
	Columns map[string][]float64 `json:"columns"`
}

// New creates an empty dataset with the given name.
func New(name string) *Dataset {
	return &Dataset{
		Name:    name,
		Columns: make(map[string][]float64),
	}
}

// ID returns the stable xxHash64 identifier of the dataset name.
func (d *Dataset) ID() uint64 {
	return hash.ID(d.Name)
}

// SetColumn stores a measurement series under the given name,
// replacing any existing column. The series must be non-empty and
// all-finite (JSON cannot represent NaN or Inf).
func (d *Dataset) SetColumn(name string, values []float64) error {
	if name == "" {
		return fmt.Errorf("%w: column name cannot be empty", check.ErrValidation)
	}
	if err := check.Series(values); err != nil {
		return fmt.Errorf("column %q: %w", name, err)
	}

	if d.Columns == nil {
		d.Columns = make(map[string][]float64)
	}
	d.Columns[name] = values

	return nil
}

// Column returns the series stored under the given name.
func (d *Dataset) Column(name string) ([]float64, error) {
	values, ok := d.Columns[name]
	if !ok {
		return nil, fmt.Errorf("%w: no column %q", check.ErrValidation, name)
	}

	return values, nil
}

// Paired returns two columns validated as paired observations, ready
// for regression.
func (d *Dataset) Paired(xName, yName string) (x, y []float64, err error) {
	x, err = d.Column(xName)
	if err != nil {
		return nil, nil, err
	}
	y, err = d.Column(yName)
	if err != nil {
		return nil, nil, err
	}
	if err := check.Paired(x, y); err != nil {
		return nil, nil, fmt.Errorf("columns %q/%q: %w", xName, yName, err)
	}

	return x, y, nil
}

// ColumnNames returns the column names in sorted order.
func (d *Dataset) ColumnNames() []string {
	names := make([]string, 0, len(d.Columns))
	for name := range d.Columns {
		names = append(names, name)
	}
	sort.Strings(names)

	return names
}

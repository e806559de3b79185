// Package frame defines the host-native tabular structure that fetched
// enrollment data is converted into.
package frame

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/tiendc/go-deepcopy"
)

// Column is a single named column of values.
type Column struct {
	// Name is the column name as returned by the upstream package.
	Name string
	// Values holds one entry per row. Entries are string, json.Number,
	// bool, or nil for missing values.
	Values []any
}

// Frame is an ordered collection of equal-length columns. Column order is
// significant and matches what the upstream package returned.
type Frame struct {
	Columns []Column
}

// envelope is the wire layout exchanged with the bridge: column names in
// order, then per-column value slices in the same order.
type envelope struct {
	Columns []string `json:"columns"`
	Data    [][]any  `json:"data"`
}

// New creates a frame from column names and per-column value slices.
// All columns must have the same length.
func New(names []string, data [][]any) (*Frame, error) {
	if len(names) != len(data) {
		return nil, fmt.Errorf("frame: %d column names for %d data columns", len(names), len(data))
	}
	f := &Frame{Columns: make([]Column, len(names))}
	for i, name := range names {
		if i > 0 && len(data[i]) != len(data[0]) {
			return nil, fmt.Errorf("frame: column %q has %d rows, expected %d", name, len(data[i]), len(data[0]))
		}
		f.Columns[i] = Column{Name: name, Values: data[i]}
	}
	return f, nil
}

// NumCols returns the number of columns.
func (f *Frame) NumCols() int {
	return len(f.Columns)
}

// NumRows returns the number of rows.
func (f *Frame) NumRows() int {
	if len(f.Columns) == 0 {
		return 0
	}
	return len(f.Columns[0].Values)
}

// Names returns the column names in order.
func (f *Frame) Names() []string {
	names := make([]string, len(f.Columns))
	for i, col := range f.Columns {
		names[i] = col.Name
	}
	return names
}

// Col returns the named column, or false if no such column exists.
func (f *Frame) Col(name string) (*Column, bool) {
	for i := range f.Columns {
		if f.Columns[i].Name == name {
			return &f.Columns[i], true
		}
	}
	return nil, false
}

// Records returns the frame in row-major form: a header row of column
// names followed by one string slice per data row. Missing values render
// as empty strings.
func (f *Frame) Records() [][]string {
	records := make([][]string, 0, f.NumRows()+1)
	records = append(records, f.Names())
	for r := 0; r < f.NumRows(); r++ {
		row := make([]string, f.NumCols())
		for c, col := range f.Columns {
			row[c] = FormatValue(col.Values[r])
		}
		records = append(records, row)
	}
	return records
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() (*Frame, error) {
	var dst Frame
	if err := deepcopy.Copy(&dst, f); err != nil {
		return nil, err
	}
	return &dst, nil
}

// MarshalJSON encodes the frame in envelope form, preserving column order.
func (f *Frame) MarshalJSON() ([]byte, error) {
	env := envelope{
		Columns: f.Names(),
		Data:    make([][]any, len(f.Columns)),
	}
	for i, col := range f.Columns {
		if col.Values == nil {
			env.Data[i] = []any{}
		} else {
			env.Data[i] = col.Values
		}
	}
	return json.Marshal(env)
}

// UnmarshalJSON decodes envelope form. Numbers are kept as json.Number so
// integer-valued columns round-trip without float formatting artifacts.
func (f *Frame) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var env envelope
	if err := dec.Decode(&env); err != nil {
		return err
	}
	nf, err := New(env.Columns, env.Data)
	if err != nil {
		return err
	}
	*f = *nf
	return nil
}

// FormatValue renders a single cell value as a string. Missing values
// render as the empty string.
func FormatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	default:
		return fmt.Sprintf("%v", val)
	}
}

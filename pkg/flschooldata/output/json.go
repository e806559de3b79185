// Package output serializes fetched enrollment frames.
package output

import (
	"bytes"
	"encoding/json"

	"github.com/flschooldata/flschooldata-go/pkg/flschooldata/frame"
)

// ToJSON serializes a frame as an array of row objects. Keys appear in
// column order, which encoding/json maps would not preserve, so rows are
// assembled by hand.
func ToJSON(f *frame.Frame, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for r := 0; r < f.NumRows(); r++ {
		if r > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('{')
		for c, col := range f.Columns {
			if c > 0 {
				buf.WriteByte(',')
			}
			key, err := json.Marshal(col.Name)
			if err != nil {
				return nil, err
			}
			val, err := json.Marshal(col.Values[r])
			if err != nil {
				return nil, err
			}
			buf.Write(key)
			buf.WriteByte(':')
			buf.Write(val)
		}
		buf.WriteByte('}')
	}
	buf.WriteByte(']')

	if !pretty {
		return buf.Bytes(), nil
	}
	var indented bytes.Buffer
	if err := json.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	return indented.Bytes(), nil
}

// YearsToJSON serializes an available-years list.
func YearsToJSON(years []int, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(years, "", "  ")
	}
	return json.Marshal(years)
}

package output

import (
	"encoding/csv"
	"io"

	"github.com/flschooldata/flschooldata-go/pkg/flschooldata/frame"
)

// WriteCSV writes a frame as CSV with a header row of column names.
func WriteCSV(w io.Writer, f *frame.Frame) error {
	cw := csv.NewWriter(w)
	if err := cw.WriteAll(f.Records()); err != nil {
		return err
	}
	cw.Flush()
	return cw.Error()
}

package output

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/flschooldata/flschooldata-go/pkg/flschooldata/frame"
)

func testFrame(t *testing.T) *frame.Frame {
	t.Helper()
	f, err := frame.New(
		[]string{"school_id", "school_name", "enrollment"},
		[][]any{
			{"0011", "0021"},
			{"Alpha Elementary", "Beta Middle"},
			{json.Number("512"), nil},
		},
	)
	require.NoError(t, err)
	return f
}

func TestToJSON(t *testing.T) {
	data, err := ToJSON(testFrame(t), false)
	require.NoError(t, err)

	// Keys must appear in column order
	expected := `[{"school_id":"0011","school_name":"Alpha Elementary","enrollment":512},` +
		`{"school_id":"0021","school_name":"Beta Middle","enrollment":null}]`
	assert.Equal(t, expected, string(data))
}

func TestToJSONEmpty(t *testing.T) {
	data, err := ToJSON(&frame.Frame{}, false)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestToJSONPretty(t *testing.T) {
	data, err := ToJSON(testFrame(t), true)
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n")
	// Pretty output is still valid JSON with the same rows
	var rows []map[string]any
	require.NoError(t, json.Unmarshal(data, &rows))
	assert.Len(t, rows, 2)
}

func TestYearsToJSON(t *testing.T) {
	data, err := YearsToJSON([]int{2015, 2016}, false)
	require.NoError(t, err)
	assert.Equal(t, "[2015,2016]", string(data))
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, testFrame(t)))

	expected := "school_id,school_name,enrollment\n" +
		"0011,Alpha Elementary,512\n" +
		"0021,Beta Middle,\n"
	assert.Equal(t, expected, buf.String())
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "enr.xlsx")
	require.NoError(t, WriteXLSX(path, testFrame(t)))

	// Read the workbook back and verify cells
	book, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer book.Close()

	header, err := book.GetCellValue(sheetName, "A1")
	require.NoError(t, err)
	assert.Equal(t, "school_id", header)

	name, err := book.GetCellValue(sheetName, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Alpha Elementary", name)

	count, err := book.GetCellValue(sheetName, "C2")
	require.NoError(t, err)
	assert.Equal(t, "512", count)
}

func TestCellValue(t *testing.T) {
	tests := []struct {
		input    any
		expected any
	}{
		{json.Number("512"), int64(512)},
		{json.Number("3.25"), 3.25},
		{"text", "text"},
		{nil, nil},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, cellValue(tt.input), "cellValue(%v)", tt.input)
	}
}

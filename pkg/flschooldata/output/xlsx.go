package output

import (
	"encoding/json"

	"github.com/flschooldata/flschooldata-go/pkg/flschooldata/frame"
	"github.com/xuri/excelize/v2"
)

const sheetName = "enrollment"

// WriteXLSX writes a frame to an Excel workbook with a single sheet.
// Numeric columns become numeric cells so the workbook is usable for
// analysis without retyping.
func WriteXLSX(path string, f *frame.Frame) error {
	book := excelize.NewFile()
	defer book.Close()

	index, err := book.NewSheet(sheetName)
	if err != nil {
		return err
	}
	book.SetActiveSheet(index)
	if err := book.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	for c, col := range f.Columns {
		cell, err := excelize.CoordinatesToCellName(c+1, 1)
		if err != nil {
			return err
		}
		if err := book.SetCellValue(sheetName, cell, col.Name); err != nil {
			return err
		}
		for r, v := range col.Values {
			cell, err := excelize.CoordinatesToCellName(c+1, r+2)
			if err != nil {
				return err
			}
			if err := book.SetCellValue(sheetName, cell, cellValue(v)); err != nil {
				return err
			}
		}
	}

	return book.SaveAs(path)
}

// cellValue maps a frame value to the type excelize should store.
func cellValue(v any) any {
	num, ok := v.(json.Number)
	if !ok {
		return v
	}
	if i, err := num.Int64(); err == nil {
		return i
	}
	if fl, err := num.Float64(); err == nil {
		return fl
	}
	return num.String()
}

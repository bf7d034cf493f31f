// Package parser reads spreadsheet sheets into raw grids.
package parser

import (
	"errors"

	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
	"github.com/xuri/excelize/v2"
)

// ErrNoSheets indicates a workbook without any worksheet.
var ErrNoSheets = errors.New("workbook has no sheets")

// ReadGrid reads the displayed text of every cell of a sheet.
// Row and column indexes of the result are 0-based; trailing empty cells
// of a row are absent.
func ReadGrid(f *excelize.File, sheetName string) (models.RawTable, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	grid := make(models.RawTable, len(rows))
	for rowIdx, row := range rows {
		cells := make([]string, len(row))
		copy(cells, row)
		grid[rowIdx] = cells
	}
	return grid, nil
}

// ReadFirstSheet reads the first worksheet of the workbook.
func ReadFirstSheet(f *excelize.File) (models.RawTable, error) {
	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSheets
	}
	return ReadGrid(f, sheets[0])
}

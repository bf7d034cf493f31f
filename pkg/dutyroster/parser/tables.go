package parser

import (
	"strings"

	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
)

// Bounds is the bounding box (0-based, inclusive) of the non-blank cells of a grid.
type Bounds struct {
	MinRow, MaxRow int
	MinCol, MaxCol int
}

// Empty reports whether the bounds enclose no cell.
func (b Bounds) Empty() bool {
	return b.MinRow < 0
}

// DataBounds finds the bounding box of non-blank cells.
// Cells holding only whitespace count as blank.
func DataBounds(grid models.RawTable) Bounds {
	b := Bounds{MinRow: -1, MaxRow: -1, MinCol: -1, MaxCol: -1}

	for rowIdx, row := range grid {
		for colIdx, cell := range row {
			if isBlank(cell) {
				continue
			}
			if b.MinRow < 0 || rowIdx < b.MinRow {
				b.MinRow = rowIdx
			}
			if b.MaxRow < 0 || rowIdx > b.MaxRow {
				b.MaxRow = rowIdx
			}
			if b.MinCol < 0 || colIdx < b.MinCol {
				b.MinCol = colIdx
			}
			if b.MaxCol < 0 || colIdx > b.MaxCol {
				b.MaxCol = colIdx
			}
		}
	}

	return b
}

// CountNonEmpty counts non-blank cells within bounds.
func CountNonEmpty(grid models.RawTable, b Bounds) int {
	if b.Empty() {
		return 0
	}
	count := 0
	for rowIdx := b.MinRow; rowIdx <= b.MaxRow && rowIdx < len(grid); rowIdx++ {
		row := grid[rowIdx]
		for colIdx := b.MinCol; colIdx <= b.MaxCol && colIdx < len(row); colIdx++ {
			if !isBlank(row[colIdx]) {
				count++
			}
		}
	}
	return count
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

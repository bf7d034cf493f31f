// Package models defines data structures for duty roster extraction.
package models

// RawTable is an untyped grid of cell text read from a single sheet.
// Rows may have different lengths; a cell past the end of its row is absent.
type RawTable [][]string

// Cell returns the text at (row, col) (0-based) and whether the cell exists.
// Absent cells report ("", false).
func (t RawTable) Cell(row, col int) (string, bool) {
	if row < 0 || row >= len(t) || col < 0 || col >= len(t[row]) {
		return "", false
	}
	return t[row][col], true
}

// Text returns the text at (row, col), or "" when the cell is absent.
func (t RawTable) Text(row, col int) string {
	s, _ := t.Cell(row, col)
	return s
}

// Slice copies rows [r1, r2) and columns [0, cols) into a new grid.
// Every copied row has exactly cols cells; absent cells become "".
func (t RawTable) Slice(r1, r2, cols int) RawTable {
	if r1 < 0 {
		r1 = 0
	}
	if r2 > len(t) {
		r2 = len(t)
	}
	if r1 >= r2 {
		return nil
	}
	out := make(RawTable, 0, r2-r1)
	for r := r1; r < r2; r++ {
		row := make([]string, cols)
		for c := 0; c < cols; c++ {
			row[c] = t.Text(r, c)
		}
		out = append(out, row)
	}
	return out
}

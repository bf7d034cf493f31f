// Package testutil builds roster fixtures for tests.
package testutil

import (
	"bytes"

	"github.com/xuri/excelize/v2"

	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
)

// Dates are the labels of the fixture date row.
var Dates = []string{"Mon 1", "Tue 2", "Wed 3", "Thu 4", "Sun 7", "Mon 8", "Tue 9"}

// RosterGrid returns a combined roster: title rows, the date row at index 2,
// two morning rows, the sentinel, a repeated sub-header and two after-exam rows.
func RosterGrid() models.RawTable {
	header := append([]string{"Duty Role"}, Dates...)
	return models.RawTable{
		{"KBS Finals Duty Roster"},
		{"Morning Duty Roster"},
		header,
		{"Gate", "J. Smith + A. Lee", "B. Khan", "", "", "", "", ""},
		{"Hall Monitor", "C. Diaz", "J. Smith", "", "A. Lee"},
		{},
		{"after exams duty roster (13:00)"},
		header,
		{"Bus Line", "", "", "J. Smith", "", "", "", "B. Khan"},
		{"Library", "A. Lee", "", "", "", "", "", ""},
	}
}

// ProctoringGrid returns a proctoring sheet whose header repeats Dates.
func ProctoringGrid() models.RawTable {
	return models.RawTable{
		append([]string{"Room"}, Dates...),
		{"Room 4", "B. Khan", "", "", "", "", "", ""},
		{"Room 5", "J. Smith", "A. Lee + C. Diaz", "", "", "", "", "D. Omar"},
	}
}

// Workbook serializes grid into the first sheet of an xlsx workbook.
func Workbook(grid models.RawTable) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i, row := range grid {
		if len(row) == 0 {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		values := row
		if err := f.SetSheetRow("Sheet1", cell, &values); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

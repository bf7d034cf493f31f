package dutyroster

import (
	"strings"

	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/parser"
)

// Table names used in errors and roster summaries.
const (
	TableMorning    = "morning"
	TableAfterExam  = "after-exam"
	TableProctoring = "proctoring"
)

// FindSentinelRow returns the first row whose column 0 contains sentinel,
// compared case-insensitively.
func FindSentinelRow(grid models.RawTable, sentinel string) (int, bool) {
	needle := strings.ToLower(sentinel)
	for row := range grid {
		if strings.Contains(strings.ToLower(grid.Text(row, 0)), needle) {
			return row, true
		}
	}
	return -1, false
}

// ReadDateSchema reads the date labels from columns 1..DateCount of the date row.
func ReadDateSchema(grid models.RawTable, opts Options) (models.DateSchema, error) {
	opts = opts.withDefaults()

	schema := make(models.DateSchema, 0, opts.DateCount)
	for col := 1; col <= opts.DateCount; col++ {
		label := strings.TrimSpace(grid.Text(opts.DateRow, col))
		if label == "" {
			continue
		}
		schema = append(schema, label)
	}
	if len(schema) < opts.DateCount {
		return nil, malformed("row %d has %d date labels, want %d", opts.DateRow, len(schema), opts.DateCount)
	}
	return schema, nil
}

// SplitRoster splits the combined roster sheet into the morning and
// after-exam duty tables and returns the shared date schema.
//
// The morning block runs from the row after the date row up to the sentinel
// row; the after-exam block starts SkipAfterSentinel rows after the sentinel
// and runs to the end of the sheet.
func SplitRoster(grid models.RawTable, opts Options) (morning, after models.DutyTable, schema models.DateSchema, err error) {
	opts = opts.withDefaults()

	splitIdx, ok := FindSentinelRow(grid, opts.Sentinel)
	if !ok {
		return morning, after, nil, &SchemaNotFoundError{Sentinel: opts.Sentinel}
	}

	schema, err = ReadDateSchema(grid, opts)
	if err != nil {
		return morning, after, nil, err
	}

	cols := opts.DateCount + 1
	morningRows := grid.Slice(opts.DateRow+1, splitIdx, cols)
	afterRows := grid.Slice(splitIdx+1+opts.skip(), len(grid), cols)

	if parser.DataBounds(morningRows).Empty() {
		return morning, after, nil, malformed("morning duty block is empty")
	}
	if parser.DataBounds(afterRows).Empty() {
		return morning, after, nil, malformed("after-exam duty block is empty")
	}

	morning = newDutyTable(TableMorning, "Duty Role", schema, morningRows)
	after = newDutyTable(TableAfterExam, "Duty Role", schema, afterRows)
	return morning, after, schema, nil
}

// BuildProctoring turns the proctoring sheet into a table keyed by room.
// Row 0 is the sheet's own header; its date columns are assumed to line up
// with schema unless opts.VerifyAlignment is set.
func BuildProctoring(grid models.RawTable, schema models.DateSchema, opts Options) (models.DutyTable, error) {
	opts = opts.withDefaults()

	if opts.VerifyAlignment {
		for i, date := range schema {
			header := strings.TrimSpace(grid.Text(0, i+1))
			if header != date {
				return models.DutyTable{}, malformed("proctoring column %d is %q, roster date is %q", i+1, header, date)
			}
		}
	}

	rows := grid.Slice(1, len(grid), len(schema)+1)
	return newDutyTable(TableProctoring, "Room", schema, rows), nil
}

func newDutyTable(name, roleHeader string, schema models.DateSchema, rows models.RawTable) models.DutyTable {
	dates := make(models.DateSchema, len(schema))
	copy(dates, schema)
	return models.DutyTable{
		Name:       name,
		RoleHeader: roleHeader,
		Dates:      dates,
		Rows:       rows,
	}
}

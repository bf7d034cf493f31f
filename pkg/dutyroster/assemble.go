package dutyroster

import (
	"sort"
	"strings"

	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
)

// AssembleSchedule builds one record per date of schema, in schema order,
// by matching query against the morning, after-exam and proctoring tables.
// Either every date is filled (with a match or the no-assignment marker) or
// an error is returned.
func AssembleSchedule(schema models.DateSchema, morning, after, proctoring models.DutyTable, query string, opts Options) ([]models.ScheduleRecord, error) {
	if err := checkQuery(query); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()

	records := make([]models.ScheduleRecord, 0, len(schema))
	for i, date := range schema {
		room, err := lookup(proctoring, i, date, query, opts.NoAssignment)
		if err != nil {
			return nil, err
		}
		am, err := lookup(morning, i, date, query, opts.NoAssignment)
		if err != nil {
			return nil, err
		}
		pm, err := lookup(after, i, date, query, opts.NoAssignment)
		if err != nil {
			return nil, err
		}
		records = append(records, models.ScheduleRecord{
			Date:           date,
			ProctoringRoom: room,
			MorningDuty:    am,
			AfterExamDuty:  pm,
		})
	}
	return records, nil
}

// lookup resolves the column of date positionally first, so repeated date
// labels keep their own column.
func lookup(table models.DutyTable, pos int, date, query, none string) (string, error) {
	col := pos
	if col >= len(table.Dates) || table.Dates[col] != date {
		col = table.Dates.Index(date)
	}
	if col < 0 {
		return "", &UnknownDateError{Date: date, Table: table.Name}
	}
	return matchColumn(table, col, query, none), nil
}

// TeacherRoster returns the sorted distinct teacher names found in the date
// columns of tables. Packed cells are split on opts.Delimiter and trimmed.
func TeacherRoster(opts Options, tables ...models.DutyTable) []string {
	opts = opts.withDefaults()

	seen := make(map[string]struct{})
	for _, table := range tables {
		for row := range table.Rows {
			for col := range table.Dates {
				for _, part := range strings.Split(table.At(row, col), opts.Delimiter) {
					name := strings.TrimSpace(part)
					if name == "" {
						continue
					}
					seen[name] = struct{}{}
				}
			}
		}
	}

	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

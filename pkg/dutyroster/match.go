package dutyroster

import (
	"strings"

	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
)

// MatchTeacher returns the role (or room) of the first row whose cell for
// date contains query. Matching is a case-sensitive substring test, so a
// partial name resolves inside packed cells such as "J. Smith + A. Lee".
// Without a match the no-assignment marker is returned.
func MatchTeacher(table models.DutyTable, date, query string, opts Options) (string, error) {
	if err := checkQuery(query); err != nil {
		return "", err
	}
	col := table.Dates.Index(date)
	if col < 0 {
		return "", &UnknownDateError{Date: date, Table: table.Name}
	}
	return matchColumn(table, col, query, opts.withDefaults().NoAssignment), nil
}

func matchColumn(table models.DutyTable, col int, query, none string) string {
	for row := range table.Rows {
		cell := table.At(row, col)
		if cell == "" {
			continue
		}
		if strings.Contains(cell, query) {
			return table.Role(row)
		}
	}
	return none
}

func checkQuery(query string) error {
	if strings.TrimSpace(query) == "" {
		return ErrEmptyQuery
	}
	return nil
}

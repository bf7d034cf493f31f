package models

// DateSchema is the ordered list of date labels shared by every table of one
// extraction run. Order is chronological and significant.
type DateSchema []string

// Index returns the position of the first occurrence of date, or -1.
func (s DateSchema) Index(date string) int {
	for i, d := range s {
		if d == date {
			return i
		}
	}
	return -1
}

// Contains reports whether date is a label of the schema.
func (s DateSchema) Contains(date string) bool {
	return s.Index(date) >= 0
}

// DutyTable is a role (or room) column followed by one column per date.
// Cells in date columns hold zero or more packed teacher names.
type DutyTable struct {
	// Name identifies the table in errors ("morning", "after-exam", "proctoring").
	Name string `json:"name"`
	// RoleHeader labels the first column ("Duty Role" or "Room").
	RoleHeader string `json:"role_header"`
	// Dates is the column schema for the date columns.
	Dates DateSchema `json:"dates"`
	// Rows holds the role label followed by len(Dates) date cells per row.
	Rows [][]string `json:"rows"`
}

// Role returns the role (or room) label of a row.
func (t DutyTable) Role(row int) string {
	if row < 0 || row >= len(t.Rows) || len(t.Rows[row]) == 0 {
		return ""
	}
	return t.Rows[row][0]
}

// At returns the packed names of a row for the date column at index col
// (0-based within Dates), or "" if the cell is absent.
func (t DutyTable) At(row, col int) string {
	if row < 0 || row >= len(t.Rows) {
		return ""
	}
	c := col + 1
	if c < 1 || c >= len(t.Rows[row]) {
		return ""
	}
	return t.Rows[row][c]
}

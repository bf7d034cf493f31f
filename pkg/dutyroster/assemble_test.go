package dutyroster

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/dutyroster-go/internal/testutil"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
)

func TestAssembleScheduleExample(t *testing.T) {
	schema := models.DateSchema{"Mon 1", "Tue 2"}
	morning := models.DutyTable{Name: TableMorning, Dates: schema, Rows: [][]string{{"Hall Monitor", "J. Smith", ""}}}
	after := models.DutyTable{Name: TableAfterExam, Dates: schema, Rows: [][]string{{"Bus Line", "A. Lee", ""}}}
	proctoring := models.DutyTable{Name: TableProctoring, Dates: schema, Rows: [][]string{{"Room 4", "", "J. Smith"}}}

	records, err := AssembleSchedule(schema, morning, after, proctoring, "Smith", DefaultOptions())
	require.NoError(t, err)

	expected := []models.ScheduleRecord{
		{Date: "Mon 1", ProctoringRoom: "—", MorningDuty: "Hall Monitor", AfterExamDuty: "—"},
		{Date: "Tue 2", ProctoringRoom: "Room 4", MorningDuty: "—", AfterExamDuty: "—"},
	}
	assert.Equal(t, expected, records)
}

func TestAssembleScheduleUnknownDate(t *testing.T) {
	schema := models.DateSchema{"Mon 1", "Tue 2"}
	short := models.DutyTable{Name: TableProctoring, Dates: schema[:1]}

	records, err := AssembleSchedule(schema, short, short, short, "Smith", DefaultOptions())
	var dateErr *UnknownDateError
	require.ErrorAs(t, err, &dateErr)
	assert.Equal(t, "Tue 2", dateErr.Date)
	assert.Nil(t, records, "no partial results")
}

func TestAssembleScheduleRepeatedDateLabels(t *testing.T) {
	schema := models.DateSchema{"Mon", "Mon"}
	table := models.DutyTable{Name: TableMorning, Dates: schema, Rows: [][]string{
		{"Gate", "X", ""},
		{"Hall", "", "X"},
	}}

	records, err := AssembleSchedule(schema, table, table, table, "X", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Gate", records[0].MorningDuty)
	assert.Equal(t, "Hall", records[1].MorningDuty)
}

func TestExtractSchedule(t *testing.T) {
	records, err := ExtractSchedule("Smith", testutil.RosterGrid(), testutil.ProctoringGrid(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, records, DefaultDateCount)

	for i, rec := range records {
		assert.Equal(t, testutil.Dates[i], rec.Date)
	}
	assert.Equal(t, models.ScheduleRecord{Date: "Mon 1", ProctoringRoom: "Room 5", MorningDuty: "Gate", AfterExamDuty: "—"}, records[0])
	assert.Equal(t, models.ScheduleRecord{Date: "Tue 2", ProctoringRoom: "—", MorningDuty: "Hall Monitor", AfterExamDuty: "—"}, records[1])
	assert.Equal(t, models.ScheduleRecord{Date: "Wed 3", ProctoringRoom: "—", MorningDuty: "—", AfterExamDuty: "Bus Line"}, records[2])
	for _, rec := range records[3:] {
		assert.Equal(t, models.ScheduleRecord{Date: rec.Date, ProctoringRoom: "—", MorningDuty: "—", AfterExamDuty: "—"}, rec)
	}
}

func TestExtractScheduleNoMatch(t *testing.T) {
	records, err := ExtractSchedule("Nobody", testutil.RosterGrid(), testutil.ProctoringGrid(), DefaultOptions())
	require.NoError(t, err)
	require.Len(t, records, DefaultDateCount)
	for _, rec := range records {
		assert.Equal(t, NoAssignment, rec.ProctoringRoom)
		assert.Equal(t, NoAssignment, rec.MorningDuty)
		assert.Equal(t, NoAssignment, rec.AfterExamDuty)
	}
}

func TestExtractScheduleIdempotent(t *testing.T) {
	roster, proctoring := testutil.RosterGrid(), testutil.ProctoringGrid()
	first, err := ExtractSchedule("Lee", roster, proctoring, DefaultOptions())
	require.NoError(t, err)
	second, err := ExtractSchedule("Lee", roster, proctoring, DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, testutil.RosterGrid(), roster, "input grid is not modified")
}

func TestExtractScheduleErrors(t *testing.T) {
	_, err := ExtractSchedule("", testutil.RosterGrid(), testutil.ProctoringGrid(), DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyQuery)

	_, err = ExtractSchedule("Smith", models.RawTable{{"no sentinel"}}, testutil.ProctoringGrid(), DefaultOptions())
	var schemaErr *SchemaNotFoundError
	assert.ErrorAs(t, err, &schemaErr)
}

func TestTeacherRoster(t *testing.T) {
	r, err := Parse(testutil.RosterGrid(), testutil.ProctoringGrid(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []string{"A. Lee", "B. Khan", "C. Diaz", "D. Omar", "J. Smith"}, r.Teachers())
}

func TestTeacherRosterDelimiter(t *testing.T) {
	table := models.DutyTable{Dates: models.DateSchema{"Mon"}, Rows: [][]string{
		{"Gate", " X / Y /"},
		{"Hall", "Z+W"},
	}}
	opts := DefaultOptions()
	opts.Delimiter = "/"
	assert.Equal(t, []string{"X", "Y", "Z+W"}, TeacherRoster(opts, table))
}

func TestExtractAllTeachers(t *testing.T) {
	roster, proctoring := testutil.RosterGrid(), testutil.ProctoringGrid()
	all, err := ExtractAllTeachers(roster, proctoring, DefaultOptions())
	require.NoError(t, err)

	// Every name of every cell is a key.
	r, err := Parse(roster, proctoring, DefaultOptions())
	require.NoError(t, err)
	for _, table := range []models.DutyTable{r.Morning, r.AfterExam, r.Proctoring} {
		for row := range table.Rows {
			for col := range table.Dates {
				for _, part := range strings.Split(table.At(row, col), "+") {
					if name := strings.TrimSpace(part); name != "" {
						assert.Contains(t, all, name)
					}
				}
			}
		}
	}
	require.Len(t, all, 5)

	lee := all["A. Lee"]
	require.Len(t, lee, DefaultDateCount)
	assert.Equal(t, models.ScheduleRecord{Date: "Mon 1", ProctoringRoom: "—", MorningDuty: "Gate", AfterExamDuty: "Library"}, lee[0])
	assert.Equal(t, "Room 5", lee[1].ProctoringRoom)
	assert.Equal(t, "Hall Monitor", lee[3].MorningDuty)

	for name, records := range all {
		single, err := ExtractSchedule(name, roster, proctoring, DefaultOptions())
		require.NoError(t, err)
		assert.Equal(t, single, records, name)
	}
}

func TestExtractAllTeachersError(t *testing.T) {
	_, err := ExtractAllTeachers(models.RawTable{}, testutil.ProctoringGrid(), DefaultOptions())
	var schemaErr *SchemaNotFoundError
	assert.True(t, errors.As(err, &schemaErr))
}

func TestRosterAssignments(t *testing.T) {
	r, err := Parse(testutil.RosterGrid(), testutil.ProctoringGrid(), DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, map[string]int{
		TableMorning:    5,
		TableAfterExam:  3,
		TableProctoring: 4,
	}, r.Assignments())
}

package dutyroster

import (
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/parser"
)

// Roster holds the three duty tables of one extraction run.
type Roster struct {
	Schema     models.DateSchema
	Morning    models.DutyTable
	AfterExam  models.DutyTable
	Proctoring models.DutyTable

	opts Options
}

// Parse splits the roster grid and attaches the proctoring grid to the
// resulting date schema.
func Parse(rosterGrid, proctoringGrid models.RawTable, opts Options) (*Roster, error) {
	opts = opts.withDefaults()

	morning, after, schema, err := SplitRoster(rosterGrid, opts)
	if err != nil {
		return nil, err
	}
	proctoring, err := BuildProctoring(proctoringGrid, schema, opts)
	if err != nil {
		return nil, err
	}

	return &Roster{
		Schema:     schema,
		Morning:    morning,
		AfterExam:  after,
		Proctoring: proctoring,
		opts:       opts,
	}, nil
}

// Schedule assembles the records of the teachers matching query.
func (r *Roster) Schedule(query string) ([]models.ScheduleRecord, error) {
	return AssembleSchedule(r.Schema, r.Morning, r.AfterExam, r.Proctoring, query, r.opts)
}

// Teachers returns every distinct teacher name of the three tables.
func (r *Roster) Teachers() []string {
	return TeacherRoster(r.opts, r.Proctoring, r.Morning, r.AfterExam)
}

// All assembles a schedule for every name returned by Teachers.
func (r *Roster) All() (map[string][]models.ScheduleRecord, error) {
	all := make(map[string][]models.ScheduleRecord)
	for _, name := range r.Teachers() {
		records, err := r.Schedule(name)
		if err != nil {
			return nil, err
		}
		all[name] = records
	}
	return all, nil
}

// Assignments counts the filled date cells of each table, keyed by table name.
func (r *Roster) Assignments() map[string]int {
	counts := make(map[string]int, 3)
	for _, t := range []models.DutyTable{r.Morning, r.AfterExam, r.Proctoring} {
		dates := make(models.RawTable, len(t.Rows))
		for i, row := range t.Rows {
			if len(row) > 1 {
				dates[i] = row[1:]
			}
		}
		counts[t.Name] = parser.CountNonEmpty(dates, parser.DataBounds(dates))
	}
	return counts
}

// ExtractSchedule extracts the schedule of the teacher matching query from
// already-read roster and proctoring grids.
func ExtractSchedule(query string, rosterGrid, proctoringGrid models.RawTable, opts Options) ([]models.ScheduleRecord, error) {
	if err := checkQuery(query); err != nil {
		return nil, err
	}
	r, err := Parse(rosterGrid, proctoringGrid, opts)
	if err != nil {
		return nil, err
	}
	return r.Schedule(query)
}

// ExtractAllTeachers extracts the schedule of every teacher named anywhere
// in the three tables.
func ExtractAllTeachers(rosterGrid, proctoringGrid models.RawTable, opts Options) (map[string][]models.ScheduleRecord, error) {
	r, err := Parse(rosterGrid, proctoringGrid, opts)
	if err != nil {
		return nil, err
	}
	return r.All()
}

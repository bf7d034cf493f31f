// Package output renders schedules as JSON, xlsx and PDF documents.
package output

import (
	"encoding/json"
	"sort"
	"strings"

	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
)

// ToJSON serializes one teacher's records.
func ToJSON(records []models.ScheduleRecord, pretty bool) ([]byte, error) {
	if records == nil {
		records = []models.ScheduleRecord{}
	}
	return marshal(records, pretty)
}

// AllToJSON serializes every teacher's schedule as a list sorted by name.
func AllToJSON(all map[string][]models.ScheduleRecord, pretty bool) ([]byte, error) {
	return marshal(Sorted(all), pretty)
}

// Sorted turns a name-keyed result into TeacherSchedules ordered by name.
func Sorted(all map[string][]models.ScheduleRecord) []models.TeacherSchedule {
	names := make([]string, 0, len(all))
	for name := range all {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]models.TeacherSchedule, 0, len(names))
	for _, name := range names {
		out = append(out, models.TeacherSchedule{Teacher: name, Records: all[name]})
	}
	return out
}

// FileName builds the download name for a teacher's schedule, e.g.
// "Jane_Doe_Schedule.xlsx".
func FileName(teacher, ext string) string {
	r := strings.NewReplacer(" ", "_", "/", "_", "\\", "_")
	return r.Replace(strings.TrimSpace(teacher)) + "_Schedule." + strings.TrimPrefix(ext, ".")
}

func marshal(v any, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(v, "", "  ")
	}
	return json.Marshal(v)
}

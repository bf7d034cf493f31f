package models

// ScheduleRecord is one teacher's assignments for a single date.
// Unmatched fields hold the no-assignment marker rather than being empty.
type ScheduleRecord struct {
	// Date is the date label from the roster header row.
	Date string `json:"date"`
	// ProctoringRoom is the room the teacher proctors in.
	ProctoringRoom string `json:"proctoring_room"`
	// MorningDuty is the duty role before exams.
	MorningDuty string `json:"morning_duty"`
	// AfterExamDuty is the duty role after exams.
	AfterExamDuty string `json:"after_exam_duty"`
}

// RecordHeaders is the column order of a rendered schedule.
var RecordHeaders = []string{"Date", "Proctoring Room", "Morning Duty", "After Exam Duty"}

// Values returns the record fields in RecordHeaders order.
func (r ScheduleRecord) Values() []string {
	return []string{r.Date, r.ProctoringRoom, r.MorningDuty, r.AfterExamDuty}
}

// TeacherSchedule pairs a teacher name with their records.
type TeacherSchedule struct {
	// Teacher is the name the schedule was assembled for.
	Teacher string `json:"teacher"`
	// Records has one entry per date, in schema order.
	Records []ScheduleRecord `json:"records"`
}

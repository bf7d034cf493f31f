// Package dutyroster extracts a single teacher's exam-duty schedule from a
// combined duty roster sheet and a proctoring room sheet.
package dutyroster

// Layout defaults of the two-block roster sheet.
const (
	// DefaultSentinel marks the first row of the after-exam block.
	DefaultSentinel = "After Exams Duty Roster"
	// DefaultDateRow is the 0-based row holding the date labels.
	DefaultDateRow = 2
	// DefaultDateCount is the number of date columns (a 7-day exam window).
	DefaultDateCount = 7
	// DefaultSkipAfterSentinel is the number of sub-header rows dropped after the sentinel row.
	DefaultSkipAfterSentinel = 1
	// DefaultDelimiter separates teacher names packed into one cell.
	DefaultDelimiter = "+"
	// NoAssignment fills every schedule field that has no match.
	NoAssignment = "—"
)

// Options configures the roster layout.
type Options struct {
	// Sentinel is matched case-insensitively against column 0 to find the after-exam block.
	Sentinel string
	// DateRow is the 0-based row whose columns 1..DateCount hold the date labels.
	DateRow int
	// DateCount is the number of date columns expected.
	DateCount int
	// SkipAfterSentinel is the number of rows dropped right after the sentinel row.
	// If nil, DefaultSkipAfterSentinel is used.
	SkipAfterSentinel *int
	// Delimiter splits packed cells when building the teacher roster.
	Delimiter string
	// NoAssignment overrides the marker for unmatched fields.
	NoAssignment string
	// VerifyAlignment requires the proctoring header row to repeat the roster's
	// date labels. Off by default: the two documents are assumed aligned.
	VerifyAlignment bool
}

// DefaultOptions returns the layout used by the school's roster templates.
func DefaultOptions() Options {
	skip := DefaultSkipAfterSentinel
	return Options{
		Sentinel:          DefaultSentinel,
		DateRow:           DefaultDateRow,
		DateCount:         DefaultDateCount,
		SkipAfterSentinel: &skip,
		Delimiter:         DefaultDelimiter,
		NoAssignment:      NoAssignment,
	}
}

// withDefaults fills zero-valued fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Sentinel == "" {
		o.Sentinel = d.Sentinel
	}
	if o.DateRow <= 0 {
		o.DateRow = d.DateRow
	}
	if o.DateCount <= 0 {
		o.DateCount = d.DateCount
	}
	if o.SkipAfterSentinel == nil || *o.SkipAfterSentinel < 0 {
		o.SkipAfterSentinel = d.SkipAfterSentinel
	}
	if o.Delimiter == "" {
		o.Delimiter = d.Delimiter
	}
	if o.NoAssignment == "" {
		o.NoAssignment = d.NoAssignment
	}
	return o
}

func (o Options) skip() int {
	if o.SkipAfterSentinel == nil {
		return DefaultSkipAfterSentinel
	}
	return *o.SkipAfterSentinel
}

package dutyroster

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/dutyroster-go/internal/testutil"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
)

func writeWorkbook(t *testing.T, dir, name string, grid models.RawTable) string {
	t.Helper()
	data, err := testutil.Workbook(grid)
	require.NoError(t, err)
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestExtractFromFiles(t *testing.T) {
	dir := t.TempDir()
	roster := writeWorkbook(t, dir, "Main Roster Schedule.xlsx", testutil.RosterGrid())
	proctoring := writeWorkbook(t, dir, "Main Proctoring.xlsx", testutil.ProctoringGrid())

	records, err := Extract(roster, proctoring, "Smith", DefaultOptions())
	require.NoError(t, err)
	require.Len(t, records, DefaultDateCount)
	assert.Equal(t, "Room 5", records[0].ProctoringRoom)
	assert.Equal(t, "Gate", records[0].MorningDuty)
	assert.Equal(t, "Bus Line", records[2].AfterExamDuty)

	all, err := ExtractAll(roster, proctoring, DefaultOptions())
	require.NoError(t, err)
	assert.Len(t, all, 5)
	assert.Equal(t, records, all["J. Smith"])
}

func TestOpenReaders(t *testing.T) {
	rosterData, err := testutil.Workbook(testutil.RosterGrid())
	require.NoError(t, err)
	proctoringData, err := testutil.Workbook(testutil.ProctoringGrid())
	require.NoError(t, err)

	r, err := OpenReaders(bytes.NewReader(rosterData), bytes.NewReader(proctoringData), DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, models.DateSchema(testutil.Dates), r.Schema)
	assert.Equal(t, []string{"A. Lee", "B. Khan", "C. Diaz", "D. Omar", "J. Smith"}, r.Teachers())
}

func TestExtractFileErrors(t *testing.T) {
	dir := t.TempDir()
	roster := writeWorkbook(t, dir, "roster.xlsx", testutil.RosterGrid())
	notXLSX := filepath.Join(dir, "notes.xlsx")
	require.NoError(t, os.WriteFile(notXLSX, []byte("plain text"), 0o644))

	_, err := Extract(filepath.Join(dir, "missing.xlsx"), roster, "Smith", DefaultOptions())
	var extErr *ExtractionError
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, DocumentRoster, extErr.Document)
	assert.ErrorIs(t, err, ErrFileNotFound)

	_, err = Extract(roster, notXLSX, "Smith", DefaultOptions())
	require.ErrorAs(t, err, &extErr)
	assert.Equal(t, DocumentProctoring, extErr.Document)
	assert.ErrorIs(t, err, ErrInvalidFormat)

	_, err = Extract(roster, roster, "  ", DefaultOptions())
	assert.ErrorIs(t, err, ErrEmptyQuery)
}

func TestOptionsDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	assert.Equal(t, DefaultSentinel, opts.Sentinel)
	assert.Equal(t, DefaultDateRow, opts.DateRow)
	assert.Equal(t, DefaultDateCount, opts.DateCount)
	assert.Equal(t, DefaultSkipAfterSentinel, opts.skip())
	assert.Equal(t, DefaultDelimiter, opts.Delimiter)
	assert.Equal(t, NoAssignment, opts.NoAssignment)

	zero := 0
	opts = Options{SkipAfterSentinel: &zero}.withDefaults()
	assert.Equal(t, 0, opts.skip())
}

func TestErrorMessages(t *testing.T) {
	tests := []struct {
		err      error
		expected string
	}{
		{&SchemaNotFoundError{Sentinel: "X"}, `schema not found: no row contains "X"`},
		{&MalformedScheduleError{Reason: "morning duty block is empty"}, "malformed schedule: morning duty block is empty"},
		{&UnknownDateError{Date: "Mon"}, `unknown date "Mon"`},
		{&UnknownDateError{Date: "Mon", Table: TableMorning}, `unknown date "Mon" in morning table`},
		{NewExtractionError(DocumentRoster, "open", ErrFileNotFound), "extraction error in roster document (open): file not found"},
	}
	for _, tt := range tests {
		if tt.err.Error() != tt.expected {
			t.Errorf("Error() = %q, expected %q", tt.err.Error(), tt.expected)
		}
	}
}

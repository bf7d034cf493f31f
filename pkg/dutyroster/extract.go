package dutyroster

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/parser"
	"github.com/xuri/excelize/v2"
)

// Document names used in ExtractionError.
const (
	DocumentRoster     = "roster"
	DocumentProctoring = "proctoring"
)

// Load reads the first sheet of an xlsx workbook.
func Load(r io.Reader) (models.RawTable, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	defer f.Close()

	return parser.ReadFirstSheet(f)
}

// LoadFile reads the first sheet of the workbook at path.
func LoadFile(path string) (models.RawTable, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	if err != nil {
		return nil, err
	}
	return Load(bytes.NewReader(data))
}

// OpenReaders reads both documents and parses them into a Roster.
func OpenReaders(roster, proctoring io.Reader, opts Options) (*Roster, error) {
	rosterGrid, err := Load(roster)
	if err != nil {
		return nil, NewExtractionError(DocumentRoster, "read", err)
	}
	proctoringGrid, err := Load(proctoring)
	if err != nil {
		return nil, NewExtractionError(DocumentProctoring, "read", err)
	}
	return Parse(rosterGrid, proctoringGrid, opts)
}

// Open reads both documents from disk and parses them into a Roster.
func Open(rosterPath, proctoringPath string, opts Options) (*Roster, error) {
	rosterGrid, err := LoadFile(rosterPath)
	if err != nil {
		return nil, NewExtractionError(DocumentRoster, "open", err)
	}
	proctoringGrid, err := LoadFile(proctoringPath)
	if err != nil {
		return nil, NewExtractionError(DocumentProctoring, "open", err)
	}
	return Parse(rosterGrid, proctoringGrid, opts)
}

// Extract extracts one teacher's schedule from the two workbooks on disk.
func Extract(rosterPath, proctoringPath, query string, opts Options) ([]models.ScheduleRecord, error) {
	if err := checkQuery(query); err != nil {
		return nil, err
	}
	r, err := Open(rosterPath, proctoringPath, opts)
	if err != nil {
		return nil, err
	}
	return r.Schedule(query)
}

// ExtractAll extracts every teacher's schedule from the two workbooks on disk.
func ExtractAll(rosterPath, proctoringPath string, opts Options) (map[string][]models.ScheduleRecord, error) {
	r, err := Open(rosterPath, proctoringPath, opts)
	if err != nil {
		return nil, err
	}
	return r.All()
}

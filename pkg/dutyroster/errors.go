package dutyroster

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates an input document does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates an input document is not a readable xlsx workbook.
var ErrInvalidFormat = errors.New("invalid xlsx format")

// ErrEmptyQuery indicates a blank teacher name was given.
var ErrEmptyQuery = errors.New("empty teacher query")

// SchemaNotFoundError indicates no row of the roster contains the sentinel label.
type SchemaNotFoundError struct {
	Sentinel string
}

func (e *SchemaNotFoundError) Error() string {
	return fmt.Sprintf("schema not found: no row contains %q", e.Sentinel)
}

// MalformedScheduleError indicates the roster layout does not fit the
// two-block convention (short date row, empty block, misaligned header).
type MalformedScheduleError struct {
	Reason string
}

func (e *MalformedScheduleError) Error() string {
	return "malformed schedule: " + e.Reason
}

// UnknownDateError indicates a lookup for a date that is not in the table's schema.
type UnknownDateError struct {
	Date  string
	Table string
}

func (e *UnknownDateError) Error() string {
	if e.Table == "" {
		return fmt.Sprintf("unknown date %q", e.Date)
	}
	return fmt.Sprintf("unknown date %q in %s table", e.Date, e.Table)
}

// ExtractionError represents a failure while reading one of the input documents.
type ExtractionError struct {
	Document  string // "roster" or "proctoring"
	Component string // "open", "read", "split", "proctoring"
	Err       error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("extraction error in %s document (%s): %v", e.Document, e.Component, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// NewExtractionError creates a new ExtractionError.
func NewExtractionError(document, component string, err error) *ExtractionError {
	return &ExtractionError{
		Document:  document,
		Component: component,
		Err:       err,
	}
}

func malformed(format string, args ...any) error {
	return &MalformedScheduleError{Reason: fmt.Sprintf(format, args...)}
}

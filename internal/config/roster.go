package config

import (
	"fmt"

	"github.com/ukaji3/dutyroster-go/pkg/dutyroster"
)

// RosterConfig describes the layout of the combined duty roster sheet.
type RosterConfig struct {
	// Sentinel marks the start of the after-exam block in column 0.
	Sentinel string `koanf:"sentinel"`
	// DateRow is the 0-based row holding the date labels.
	DateRow int `koanf:"date_row"`
	// DateCount is the number of date columns.
	DateCount int `koanf:"date_count"`
	// SkipAfterSentinel is the number of sub-header rows after the sentinel.
	SkipAfterSentinel *int `koanf:"skip_after_sentinel"`
	// Delimiter separates names packed into one cell.
	Delimiter string `koanf:"delimiter"`
	// NoAssignment is written for dates without a match.
	NoAssignment string `koanf:"no_assignment"`
	// VerifyAlignment checks the proctoring header against the roster dates.
	VerifyAlignment bool `koanf:"verify_alignment"`
}

// SetDefaults applies the school template layout.
func (c *RosterConfig) SetDefaults() {
	d := dutyroster.DefaultOptions()
	if c.Sentinel == "" {
		c.Sentinel = d.Sentinel
	}
	if c.DateRow == 0 {
		c.DateRow = d.DateRow
	}
	if c.DateCount == 0 {
		c.DateCount = d.DateCount
	}
	if c.SkipAfterSentinel == nil {
		skip := *d.SkipAfterSentinel
		c.SkipAfterSentinel = &skip
	}
	if c.Delimiter == "" {
		c.Delimiter = d.Delimiter
	}
	if c.NoAssignment == "" {
		c.NoAssignment = d.NoAssignment
	}
}

// Validate rejects layouts that cannot hold two blocks.
func (c RosterConfig) Validate() error {
	if c.DateRow < 1 {
		return fmt.Errorf("date_row must be at least 1, got %d", c.DateRow)
	}
	if c.DateCount < 1 {
		return fmt.Errorf("date_count must be positive, got %d", c.DateCount)
	}
	if c.SkipAfterSentinel != nil && *c.SkipAfterSentinel < 0 {
		return fmt.Errorf("skip_after_sentinel must not be negative")
	}
	return nil
}

// Options converts the layout to extraction options.
func (c RosterConfig) Options() dutyroster.Options {
	return dutyroster.Options{
		Sentinel:          c.Sentinel,
		DateRow:           c.DateRow,
		DateCount:         c.DateCount,
		SkipAfterSentinel: c.SkipAfterSentinel,
		Delimiter:         c.Delimiter,
		NoAssignment:      c.NoAssignment,
		VerifyAlignment:   c.VerifyAlignment,
	}
}

package config

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// Default document locations, relative to the working directory.
const (
	DefaultRosterSource     = "Main Roster Schedule.xlsx"
	DefaultProctoringSource = "Main Proctoring.xlsx"
	DefaultOutputPath       = "Final_Schedule.xlsx"
)

// Output formats.
const (
	FormatXLSX = "xlsx"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)

// SourcesConfig locates the two input documents. Each entry is a file path
// or an http(s) URL.
type SourcesConfig struct {
	Roster     string `koanf:"roster"`
	Proctoring string `koanf:"proctoring"`
	// TimeoutSeconds bounds a remote fetch.
	TimeoutSeconds int `koanf:"timeout_seconds"`
}

func (c *SourcesConfig) SetDefaults() {
	if c.Roster == "" {
		c.Roster = DefaultRosterSource
	}
	if c.Proctoring == "" {
		c.Proctoring = DefaultProctoringSource
	}
	if c.TimeoutSeconds == 0 {
		c.TimeoutSeconds = 30
	}
}

func (c SourcesConfig) Validate() error {
	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must not be negative")
	}
	return nil
}

// Timeout returns TimeoutSeconds as a duration.
func (c SourcesConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// OutputConfig controls how the CLI writes schedules.
type OutputConfig struct {
	Format string `koanf:"format"`
	Path   string `koanf:"path"`
	Pretty bool   `koanf:"pretty"`
}

func (c *OutputConfig) SetDefaults() {
	if c.Format == "" {
		c.Format = FormatXLSX
	}
	if c.Path == "" {
		c.Path = DefaultOutputPath
	}
}

func (c OutputConfig) Validate() error {
	return ValidateFormat(c.Format)
}

// ValidateFormat checks an output format name.
func ValidateFormat(format string) error {
	switch format {
	case FormatXLSX, FormatJSON, FormatPDF:
		return nil
	}
	return fmt.Errorf("unknown format %s (must be xlsx, json or pdf)", format)
}

// ServerConfig configures the HTTP server.
type ServerConfig struct {
	Addr        string `koanf:"addr"`
	MaxUploadMB int    `koanf:"max_upload_mb"`
}

func (c *ServerConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
	if c.MaxUploadMB == 0 {
		c.MaxUploadMB = 16
	}
}

func (c ServerConfig) Validate() error {
	if c.MaxUploadMB < 0 {
		return fmt.Errorf("max_upload_mb must not be negative")
	}
	return nil
}

// LoggingConfig selects the log level and format.
type LoggingConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

func (c *LoggingConfig) SetDefaults() {
	if c.Level == "" {
		c.Level = "info"
	}
	if c.Format == "" {
		c.Format = "console"
	}
}

func (c LoggingConfig) Validate() error {
	if _, err := zerolog.ParseLevel(c.Level); err != nil {
		return err
	}
	if c.Format != "console" && c.Format != "json" {
		return fmt.Errorf("unknown format %s", c.Format)
	}
	return nil
}

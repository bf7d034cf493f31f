// Package main provides the CLI entry point for dutyroster.
package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ukaji3/dutyroster-go/internal/config"
	"github.com/ukaji3/dutyroster-go/internal/logger"
	"github.com/ukaji3/dutyroster-go/internal/server"
	"github.com/ukaji3/dutyroster-go/internal/source"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/models"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/output"
)

var (
	configPath     string
	logLevel       string
	teacher        string
	allTeachers    bool
	rosterPath     string
	proctoringPath string
	outputPath     string
	format         string
	pretty         bool
	addr           string

	cfg *config.Config
	log zerolog.Logger
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "dutyroster",
		Short: "Extract a teacher's exam-duty schedule",
		Long: `dutyroster reads the combined morning/after-exam duty roster and the
proctoring room sheet, and writes one teacher's schedule (or every teacher's)
as xlsx, json or pdf.`,
		Args:              cobra.NoArgs,
		PersistentPreRunE: setup,
		RunE:              run,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (yaml or json)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&rosterPath, "roster", "", "Duty roster xlsx (path or URL)")
	rootCmd.PersistentFlags().StringVar(&proctoringPath, "proctoring", "", "Proctoring xlsx (path or URL)")

	rootCmd.Flags().StringVar(&teacher, "teacher", "", "Full or partial name of the teacher")
	rootCmd.Flags().BoolVar(&allTeachers, "all", false, "Write schedules for every teacher")
	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (\"-\" for stdout)")
	rootCmd.Flags().StringVar(&format, "format", "", "Output format: xlsx, json, pdf (default: from output extension)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	teachersCmd := &cobra.Command{
		Use:   "teachers",
		Short: "List every teacher named in the documents",
		Args:  cobra.NoArgs,
		RunE:  runTeachers,
	}

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve schedule extraction over HTTP",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: from config)")

	rootCmd.AddCommand(teachersCmd, serveCmd)
	return rootCmd
}

// setup loads configuration and applies flag overrides.
func setup(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if rosterPath != "" {
		cfg.Sources.Roster = rosterPath
	}
	if proctoringPath != "" {
		cfg.Sources.Proctoring = proctoringPath
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	log, err = logger.New(os.Stderr, "cli", cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	return nil
}

func run(cmd *cobra.Command, args []string) error {
	if teacher == "" && !allTeachers {
		return fmt.Errorf("--teacher or --all is required")
	}

	path := cfg.Output.Path
	if outputPath != "" {
		path = outputPath
	}
	outFormat := resolveFormat(format, path, cfg.Output.Format)
	if err := config.ValidateFormat(outFormat); err != nil {
		return err
	}
	if allTeachers && outFormat == config.FormatPDF {
		return fmt.Errorf("pdf output supports a single teacher")
	}

	r, err := loadRoster(cmd.Context())
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if allTeachers {
		all, err := r.All()
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		log.Info().Int("teachers", len(all)).Msg("extracted schedules")
		if err := writeAll(&buf, all, outFormat); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	} else {
		records, err := r.Schedule(teacher)
		if err != nil {
			return fmt.Errorf("extraction failed: %w", err)
		}
		log.Info().Str("teacher", teacher).Int("dates", len(records)).Msg("extracted schedule")
		if err := writeOne(&buf, records, outFormat); err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
	}

	if path == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	log.Info().Str("path", path).Str("format", outFormat).Msg("schedule saved")
	return nil
}

func runTeachers(cmd *cobra.Command, args []string) error {
	r, err := loadRoster(cmd.Context())
	if err != nil {
		return err
	}
	for _, name := range r.Teachers() {
		fmt.Fprintln(cmd.OutOrStdout(), name)
	}
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	if addr != "" {
		cfg.Server.Addr = addr
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srvLog, err := logger.New(os.Stderr, "server", cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	fetcher := source.New(cfg.Sources.Timeout(), srvLog)
	return server.New(cfg, srvLog, fetcher).Run(ctx)
}

func loadRoster(ctx context.Context) (*dutyroster.Roster, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	fetcher := source.New(cfg.Sources.Timeout(), log)

	roster, err := fetcher.Fetch(ctx, cfg.Sources.Roster)
	if err != nil {
		return nil, fmt.Errorf("roster document: %w", err)
	}
	proctoring, err := fetcher.Fetch(ctx, cfg.Sources.Proctoring)
	if err != nil {
		return nil, fmt.Errorf("proctoring document: %w", err)
	}

	r, err := dutyroster.OpenReaders(bytes.NewReader(roster), bytes.NewReader(proctoring), cfg.Roster.Options())
	if err != nil {
		return nil, fmt.Errorf("extraction failed: %w", err)
	}
	log.Debug().
		Strs("dates", r.Schema).
		Interface("assignments", r.Assignments()).
		Msg("roster parsed")
	return r, nil
}

// resolveFormat prefers the explicit flag, then the output extension, then the configured default.
func resolveFormat(flag, path, fallback string) string {
	if flag != "" {
		return strings.ToLower(flag)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return config.FormatXLSX
	case ".json":
		return config.FormatJSON
	case ".pdf":
		return config.FormatPDF
	}
	return fallback
}

func writeOne(w io.Writer, records []models.ScheduleRecord, outFormat string) error {
	switch outFormat {
	case config.FormatJSON:
		data, err := output.ToJSON(records, pretty || cfg.Output.Pretty)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	case config.FormatPDF:
		return output.WritePDF(w, "Schedule for: "+teacher, records)
	}
	return output.WriteXLSX(w, records)
}

func writeAll(w io.Writer, all map[string][]models.ScheduleRecord, outFormat string) error {
	if outFormat == config.FormatJSON {
		data, err := output.AllToJSON(all, pretty || cfg.Output.Pretty)
		if err != nil {
			return err
		}
		_, err = w.Write(append(data, '\n'))
		return err
	}
	return output.WriteAllXLSX(w, all)
}

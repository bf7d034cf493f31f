// Package server exposes schedule extraction over HTTP.
package server

import (
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/ukaji3/dutyroster-go/internal/config"
	"github.com/ukaji3/dutyroster-go/internal/source"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster"
)

// Server serves the schedule endpoints.
type Server struct {
	cfg     *config.Config
	log     zerolog.Logger
	fetcher *source.Fetcher
	router  *gin.Engine
}

// New builds the router. Uploaded documents take precedence over the
// configured default sources.
func New(cfg *config.Config, log zerolog.Logger, fetcher *source.Fetcher) *Server {
	gin.SetMode(gin.ReleaseMode)

	s := &Server{
		cfg:     cfg,
		log:     log,
		fetcher: fetcher,
		router:  gin.New(),
	}
	s.router.MaxMultipartMemory = int64(cfg.Server.MaxUploadMB) << 20
	s.router.Use(gin.Recovery(), requestLogger(log))
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := s.router.Group("/api")
	api.GET("/teachers", s.handleTeachers)
	api.POST("/teachers", s.handleTeachers)
	api.POST("/schedule", s.handleSchedule)
	api.POST("/schedules", s.handleSchedules)
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on the configured address until ctx is done.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", srv.Addr).Msg("listening")
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.log.Info().Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	}
}

// sourceError marks a failure to obtain an input document.
type sourceError struct {
	document string
	err      error
}

func (e *sourceError) Error() string {
	return e.document + " document: " + e.err.Error()
}

func (e *sourceError) Unwrap() error {
	return e.err
}

// loadRoster reads the uploaded documents, falling back to configured sources.
func (s *Server) loadRoster(c *gin.Context) (*dutyroster.Roster, error) {
	roster, err := s.document(c, dutyroster.DocumentRoster, s.cfg.Sources.Roster)
	if err != nil {
		return nil, err
	}
	proctoring, err := s.document(c, dutyroster.DocumentProctoring, s.cfg.Sources.Proctoring)
	if err != nil {
		return nil, err
	}
	return dutyroster.OpenReaders(roster, proctoring, s.cfg.Roster.Options())
}

func (s *Server) document(c *gin.Context, field, fallback string) (io.Reader, error) {
	fh, err := c.FormFile(field)
	switch {
	case err == nil:
		data, err := readUpload(fh)
		if err != nil {
			return nil, &sourceError{document: field, err: err}
		}
		return bytes.NewReader(data), nil
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
	default:
		return nil, &sourceError{document: field, err: err}
	}

	data, err := s.fetcher.Fetch(c.Request.Context(), fallback)
	if err != nil {
		return nil, &sourceError{document: field, err: err}
	}
	return bytes.NewReader(data), nil
}

func readUpload(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}

func requestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ev := log.Info()
		if c.Writer.Status() >= http.StatusInternalServerError {
			ev = log.Error()
		}
		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Msg("request")
	}
}

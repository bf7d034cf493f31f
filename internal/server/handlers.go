package server

import (
	"bytes"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ukaji3/dutyroster-go/internal/config"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster"
	"github.com/ukaji3/dutyroster-go/pkg/dutyroster/output"
)

const (
	mimeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	mimePDF  = "application/pdf"
)

func (s *Server) handleTeachers(c *gin.Context) {
	r, err := s.loadRoster(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dates": r.Schema, "teachers": r.Teachers()})
}

func (s *Server) handleSchedule(c *gin.Context) {
	teacher := strings.TrimSpace(c.PostForm("teacher"))
	if teacher == "" {
		teacher = strings.TrimSpace(c.Query("teacher"))
	}
	if teacher == "" {
		s.fail(c, dutyroster.ErrEmptyQuery)
		return
	}
	format, ok := s.format(c)
	if !ok {
		return
	}

	r, err := s.loadRoster(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	records, err := r.Schedule(teacher)
	if err != nil {
		s.fail(c, err)
		return
	}

	var buf bytes.Buffer
	switch format {
	case config.FormatJSON:
		c.JSON(http.StatusOK, gin.H{"teacher": teacher, "records": records})
		return
	case config.FormatXLSX:
		err = output.WriteXLSX(&buf, records)
		s.attach(c, err, output.FileName(teacher, "xlsx"), mimeXLSX, buf.Bytes())
	case config.FormatPDF:
		err = output.WritePDF(&buf, "Schedule for: "+teacher, records)
		s.attach(c, err, output.FileName(teacher, "pdf"), mimePDF, buf.Bytes())
	}
}

func (s *Server) handleSchedules(c *gin.Context) {
	format, ok := s.format(c)
	if !ok {
		return
	}
	if format == config.FormatPDF {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pdf output supports a single teacher"})
		return
	}

	r, err := s.loadRoster(c)
	if err != nil {
		s.fail(c, err)
		return
	}
	all, err := r.All()
	if err != nil {
		s.fail(c, err)
		return
	}

	if format == config.FormatJSON {
		c.JSON(http.StatusOK, gin.H{"schedules": output.Sorted(all)})
		return
	}
	var buf bytes.Buffer
	err = output.WriteAllXLSX(&buf, all)
	s.attach(c, err, "All_Schedules.xlsx", mimeXLSX, buf.Bytes())
}

// format reads the requested output format, defaulting to json.
func (s *Server) format(c *gin.Context) (string, bool) {
	format := c.DefaultPostForm("format", c.DefaultQuery("format", config.FormatJSON))
	format = strings.ToLower(format)
	if err := config.ValidateFormat(format); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return "", false
	}
	return format, true
}

func (s *Server) attach(c *gin.Context, err error, name, mime string, data []byte) {
	if err != nil {
		s.fail(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+name+`"`)
	c.Data(http.StatusOK, mime, data)
}

// fail maps extraction errors to status codes.
func (s *Server) fail(c *gin.Context, err error) {
	status := http.StatusInternalServerError

	var (
		srcErr      *sourceError
		schemaErr   *dutyroster.SchemaNotFoundError
		malformed   *dutyroster.MalformedScheduleError
		unknownDate *dutyroster.UnknownDateError
	)
	switch {
	case errors.Is(err, dutyroster.ErrEmptyQuery):
		status = http.StatusBadRequest
	case errors.As(err, &srcErr):
		status = http.StatusBadGateway
	case errors.As(err, &schemaErr), errors.As(err, &malformed), errors.As(err, &unknownDate),
		errors.Is(err, dutyroster.ErrInvalidFormat):
		status = http.StatusUnprocessableEntity
	}

	if status >= http.StatusInternalServerError {
		s.log.Error().Err(err).Msg("request failed")
	} else {
		s.log.Warn().Err(err).Int("status", status).Msg("request rejected")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

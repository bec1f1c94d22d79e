// Package api serves SAUCE inspection and stripping over HTTP.
package api

import (
	"fmt"
	"net/http"
	"path"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v5"

	"github.com/samcharles93/sauce/internal/logger"
	"github.com/samcharles93/sauce/internal/render"
	"github.com/samcharles93/sauce/internal/version"
	"github.com/samcharles93/sauce/pkg/sauce"
)

const (
	headerRecordsRemoved = "X-Sauce-Records-Removed"
	headerEOFRemoved     = "X-Sauce-EOF-Removed"

	defaultMaxUpload = 64 << 20
)

type Config struct {
	// MaxUploadBytes bounds request bodies. Zero means 64 MiB.
	MaxUploadBytes int64
	// DefaultStripMode applies when /v1/strip has no mode parameter.
	DefaultStripMode sauce.StripMode
	// Codepage names the decoder used for text fields.
	Codepage string
	// StoreCapacity bounds the number of reports kept in memory.
	StoreCapacity int
	Logger        logger.Logger
}

type Server struct {
	cfg     Config
	decoder render.TextDecoder
	store   *ReportStore
	log     logger.Logger
	clock   func() time.Time
}

func NewServer(cfg Config) (*Server, error) {
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = defaultMaxUpload
	}
	dec, err := render.DecoderFor(cfg.Codepage)
	if err != nil {
		return nil, err
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Discard()
	}
	return &Server{
		cfg:     cfg,
		decoder: dec,
		store:   NewReportStore(cfg.StoreCapacity),
		log:     log,
		clock:   time.Now,
	}, nil
}

func (s *Server) Register(e *echo.Echo) {
	e.Use(requestID)

	e.GET("/healthz", s.handleHealth)
	e.GET("/v1/version", s.handleVersion)

	e.POST("/v1/inspect", s.handleInspect)
	e.GET("/v1/reports/:id", s.handleGetReport)
	e.DELETE("/v1/reports/:id", s.handleDeleteReport)

	e.POST("/v1/strip", s.handleStrip)
}

func (s *Server) requestLog(c *echo.Context) logger.Logger {
	id, _ := c.Get(requestIDKey).(string)
	return s.log.With("request_id", id)
}

func (s *Server) handleHealth(c *echo.Context) error {
	return writeJSON(c, http.StatusOK, HealthResponse{Status: "ok", Reports: s.store.Len()})
}

func (s *Server) handleVersion(c *echo.Context) error {
	return writeJSON(c, http.StatusOK, version.Resolve())
}

// handleInspect decodes the trailer of the request body and stores the
// result so it can be fetched again by id.
func (s *Server) handleInspect(c *echo.Context) error {
	body, err := readBody(c, s.cfg.MaxUploadBytes)
	if err != nil {
		return writeFailure(c, err)
	}
	raw, err := parseBool(c.QueryParam("raw"))
	if err != nil {
		return writeFailure(c, err)
	}

	view, err := render.Inspect(body, render.Options{Decoder: s.decoder, Raw: raw})
	if err != nil {
		return writeFailure(c, newInvalidRequest(err.Error()))
	}
	log := s.requestLog(c)
	for _, w := range view.Warnings {
		log.Warn("inspect", "warning", w, "size", len(body))
	}

	report := &Report{
		ID:        uuid.NewString(),
		Object:    "sauce.report",
		CreatedAt: s.clock().Unix(),
		Filename:  path.Base(c.QueryParam("filename")),
		View:      view,
	}
	if report.Filename == "." {
		report.Filename = ""
	}
	s.store.Put(report)
	log.Debug("inspected", "report", report.ID, "found", view.Found)
	return writeJSON(c, http.StatusOK, report)
}

func (s *Server) handleGetReport(c *echo.Context) error {
	r, ok := s.store.Get(c.Param("id"))
	if !ok {
		return writeFailure(c, fmt.Errorf("%w: report %q", ErrNotFound, c.Param("id")))
	}
	return writeJSON(c, http.StatusOK, r)
}

func (s *Server) handleDeleteReport(c *echo.Context) error {
	id := c.Param("id")
	if !s.store.Delete(id) {
		return writeFailure(c, fmt.Errorf("%w: report %q", ErrNotFound, id))
	}
	return writeJSON(c, http.StatusOK, map[string]any{"id": id, "object": "sauce.report.deleted", "deleted": true})
}

// handleStrip returns the body with trailing records removed.
func (s *Server) handleStrip(c *echo.Context) error {
	mode := s.cfg.DefaultStripMode
	if m := c.QueryParam("mode"); m != "" {
		var err error
		if mode, err = sauce.ParseStripMode(m); err != nil {
			return writeFailure(c, newInvalidRequest(err.Error()))
		}
	}
	body, err := readBody(c, s.cfg.MaxUploadBytes)
	if err != nil {
		return writeFailure(c, err)
	}

	res := sauce.StripWithStats(body, mode)
	h := c.Response().Header()
	h.Set(headerRecordsRemoved, strconv.Itoa(res.RecordsRemoved))
	h.Set(headerEOFRemoved, strconv.Itoa(res.EOFBytesRemoved))
	s.requestLog(c).Debug("stripped", "mode", mode.String(), "records", res.RecordsRemoved, "eof", res.EOFBytesRemoved)
	return c.Blob(http.StatusOK, echo.MIMEOctetStream, res.Data)
}

func parseBool(v string) (bool, error) {
	if v == "" {
		return false, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, newInvalidRequest(fmt.Sprintf("invalid boolean %q", v))
	}
	return b, nil
}

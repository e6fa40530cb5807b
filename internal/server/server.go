// Package server exposes the layout pipeline over HTTP.
//
// Routes:
//
//	GET  /healthz                      liveness and version
//	POST /v1/layouts                   lay out a form, store the frame
//	GET  /v1/layouts/{id}              fetch a stored frame
//	GET  /v1/layouts/{id}/{format}     export a stored frame (svg, png, json, txt)
//
// POST bodies are form documents. TOML is selected by a TOML content type or
// ?format=toml; anything else is read as JSON. Query parameters width and
// height override the form's container size.
//
// Frames are kept in the runner's cache under [cache.Keyer.FrameKey] for
// [cache.TTLFrame], so every instance sharing a Redis or MongoDB backend
// can serve every id.
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/river/pkg/buildinfo"
	"github.com/matzehuels/river/pkg/cache"
	"github.com/matzehuels/river/pkg/errors"
	"github.com/matzehuels/river/pkg/form"
	"github.com/matzehuels/river/pkg/frame"
	"github.com/matzehuels/river/pkg/observability"
	"github.com/matzehuels/river/pkg/pipeline"
)

// MaxBodyBytes bounds the size of a posted form document.
const MaxBodyBytes = 1 << 20

// Server handles layout API requests.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	newID  func() string
}

// New creates a server that lays out forms with runner and stores frames in
// the runner's cache.
func New(runner *pipeline.Runner, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{
		runner: runner,
		logger: logger.WithPrefix("http"),
		newID:  uuid.NewString,
	}
}

// Handler returns the chi router serving all routes.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(serverHeader)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1/layouts", func(r chi.Router) {
		r.Post("/", s.handleCreate)
		r.Get("/{id}", s.handleGet)
		r.Get("/{id}/{format}", s.handleExport)
	})
	return r
}

// LayoutResponse is the body returned by POST /v1/layouts.
type LayoutResponse struct {
	ID     string       `json:"id"`
	Cached bool         `json:"cached"`
	Frame  *frame.Frame `json:"frame"`
}

type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	f, err := form.Read(http.MaxBytesReader(w, r.Body, MaxBodyBytes), requestFormat(r))
	if err != nil {
		s.writeError(w, err)
		return
	}
	opts, err := layoutOptions(r)
	if err != nil {
		s.writeError(w, err)
		return
	}

	fr, hit, err := s.runner.LayoutWithCacheInfo(ctx, f, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}

	id := s.newID()
	data, err := frame.Marshal(fr)
	if err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "encode frame"))
		return
	}
	if err := s.runner.Cache.Set(ctx, s.runner.Keyer.FrameKey(id), data, cache.TTLFrame); err != nil {
		s.writeError(w, errors.Wrap(errors.ErrCodeInternal, err, "store frame"))
		return
	}
	observability.Cache().OnCacheSet(ctx, "frame", len(data))

	w.Header().Set("Location", "/v1/layouts/"+id)
	writeJSON(w, http.StatusCreated, LayoutResponse{ID: id, Cached: hit, Frame: fr})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	fr, err := s.loadFrame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, fr)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	format := chi.URLParam(r, "format")
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, err)
		return
	}
	fr, err := s.loadFrame(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	q := r.URL.Query()
	opts := pipeline.Options{
		Formats: []string{format},
		Rows:    q.Has("rows"),
		Color:   q.Has("color"),
	}
	if v := q.Get("scale"); v != "" {
		scale, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.writeError(w, errors.Wrap(errors.ErrCodeInvalidInput, err, "scale"))
			return
		}
		opts.Scale = scale
	}

	artifacts, err := s.runner.Render(r.Context(), fr, opts)
	if err != nil {
		s.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// loadFrame reads a stored frame. Unknown and expired ids are NOT_FOUND.
func (s *Server) loadFrame(ctx context.Context, id string) (*frame.Frame, error) {
	if err := uuid.Validate(id); err != nil {
		return nil, errors.New(errors.ErrCodeNotFound, "layout %q not found", id)
	}
	data, ok, err := s.runner.Cache.Get(ctx, s.runner.Keyer.FrameKey(id))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "load frame")
	}
	if !ok {
		observability.Cache().OnCacheMiss(ctx, "frame")
		return nil, errors.New(errors.ErrCodeNotFound, "layout %q not found", id)
	}
	observability.Cache().OnCacheHit(ctx, "frame")
	return frame.Unmarshal(data)
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
	pipeline.FormatTXT:  "text/plain; charset=utf-8",
}

// requestFormat picks the form format from ?format= or the content type.
func requestFormat(r *http.Request) string {
	if f := r.URL.Query().Get("format"); f != "" {
		return strings.ToLower(f)
	}
	if strings.Contains(r.Header.Get("Content-Type"), "toml") {
		return form.FormatTOML
	}
	return form.FormatJSON
}

// layoutOptions reads the width and height query parameters.
func layoutOptions(r *http.Request) (pipeline.Options, error) {
	var opts pipeline.Options
	q := r.URL.Query()
	for _, p := range []struct {
		name string
		dst  *int
	}{{"width", &opts.Width}, {"height", &opts.Height}} {
		v := q.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, errors.Wrap(errors.ErrCodeInvalidDimensions, err, "%s", p.name)
		}
		*p.dst = n
	}
	return opts, nil
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	status := errors.HTTPStatus(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "err", err)
	}
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	writeJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: code})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func serverHeader(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Server", buildinfo.UserAgent())
		next.ServeHTTP(w, r)
	})
}

// requestLogger logs every request and reports it to the HTTP hooks. The
// route pattern is read after the handler ran, when chi has resolved it.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		hooks := observability.HTTP()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
			route = rc.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		d := time.Since(start)
		hooks.OnResponse(r.Context(), r.Method, route, status, d)
		s.logger.Info("request",
			"method", r.Method,
			"route", route,
			"status", status,
			"bytes", ww.BytesWritten(),
			"duration", d.Round(time.Microsecond),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

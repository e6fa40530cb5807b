// Package pipeline runs form documents through layout and export.
//
// The pipeline has two stages:
//
//  1. Layout: build the panel tree for a form, size the root container and
//     capture the resulting geometry as a [frame.Frame]
//  2. Render: export a frame as SVG, PNG, JSON or a text wireframe
//
// Each stage can run on its own. [Runner] wraps both with caching so the CLI
// and the HTTP server share one code path.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, f, pipeline.Options{
//	    Width:   480,
//	    Formats: []string{"svg", "txt"},
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	fr, err := runner.Layout(ctx, f, opts)
//	artifacts, err := runner.Render(ctx, fr, opts)
package pipeline

import (
	"io"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/river/pkg/cache"
	"github.com/matzehuels/river/pkg/errors"
	"github.com/matzehuels/river/pkg/frame"
	"github.com/matzehuels/river/pkg/render/sink"
)

// Defaults shared by the CLI and the server.
const (
	// DefaultScale is the SVG and PNG output scale.
	DefaultScale = 1.0

	// MaxScale bounds the SVG and PNG output scale. The PNG canvas is
	// further bounded by sink.MaxCanvasPixels.
	MaxScale = 8.0
)

// Format constants for output formats.
const (
	FormatSVG  = "svg"
	FormatPNG  = "png"
	FormatJSON = "json"
	FormatTXT  = "txt"
)

// DefaultFormats is used when no format is requested.
var DefaultFormats = []string{FormatSVG}

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatSVG:  true,
	FormatPNG:  true,
	FormatJSON: true,
	FormatTXT:  true,
}

// Options configures a pipeline run. It supports JSON for API requests.
type Options struct {
	// Layout options. A zero dimension uses the form's own width or height,
	// and failing that the preferred size.
	Width  int `json:"width,omitempty"`
	Height int `json:"height,omitempty"`

	// Render options
	Formats []string `json:"formats,omitempty"`
	Scale   float64  `json:"scale,omitempty"`
	Rows    bool     `json:"rows,omitempty"`  // draw row guides in SVG and PNG
	Color   bool     `json:"color,omitempty"` // ANSI colors in text output

	// Refresh skips cache reads. Results are still written back.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`

	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Frame is the computed geometry.
	Frame *frame.Frame

	// FormHash is the content hash of the form document.
	FormHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats     Stats
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Components int
	Rows       int
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	LayoutHit bool
	RenderHit bool // all artifacts came from cache
}

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return errors.New(errors.ErrCodeInvalidFormat,
			"invalid format: %q (must be one of: svg, png, json, txt)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// ParseFormats splits a comma-separated format list, trimming blanks.
func ParseFormats(s string) []string {
	var out []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.ToLower(strings.TrimSpace(f)); f != "" {
			out = append(out, f)
		}
	}
	return out
}

// ValidateAndSetDefaults checks all fields and applies defaults. It is
// idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForLayout checks the container size.
func (o *Options) ValidateForLayout() error {
	o.setLogger()
	return errors.ValidateDimensions(o.Width, o.Height)
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = append([]string(nil), DefaultFormats...)
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	o.setLogger()
}

// ValidateForRender sets render defaults and checks formats and scale.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := ValidateFormats(o.Formats); err != nil {
		return err
	}
	if o.Scale < 0 || o.Scale > MaxScale {
		return errors.New(errors.ErrCodeInvalidInput, "scale %g out of range (0, %g]", o.Scale, MaxScale)
	}
	return nil
}

// ValidateCanvas checks that fr fits the PNG pixel budget at the requested
// scale. Formats other than PNG are not bounded.
func (o *Options) ValidateCanvas(fr *frame.Frame) error {
	if !slices.Contains(o.Formats, FormatPNG) {
		return nil
	}
	return sink.CheckCanvas(fr, o.Scale)
}

func (o *Options) setLogger() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts() cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{Width: o.Width, Height: o.Height}
}

// ArtifactKeyOpts returns cache key options for rendering one format. Only
// the options a format reads go into its key.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	k := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG, FormatPNG:
		k.Scale, k.Rows = o.Scale, o.Rows
	case FormatTXT:
		k.Color = o.Color
	}
	return k
}

package sink

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/matzehuels/river/pkg/errors"
	"github.com/matzehuels/river/pkg/frame"
)

// MaxCanvasPixels bounds the raster RenderPNG allocates: 32M pixels, 128 MiB
// of RGBA.
const MaxCanvasPixels = 1 << 25

// CanvasSize returns the pixel size of f rasterized at scale.
func CanvasSize(f *frame.Frame, scale float64) (width, height int) {
	if scale <= 0 {
		scale = 1
	}
	width = max(1, int(math.Ceil(float64(f.Width)*scale)))
	height = max(1, int(math.Ceil(float64(f.Height)*scale)))
	return width, height
}

// CheckCanvas reports an INVALID_INPUT error when f at scale exceeds
// [MaxCanvasPixels].
func CheckCanvas(f *frame.Frame, scale float64) error {
	w, h := CanvasSize(f, scale)
	if int64(w)*int64(h) > MaxCanvasPixels {
		return errors.New(errors.ErrCodeInvalidInput,
			"png canvas %dx%d exceeds %d pixels; lower the scale or the container size", w, h, MaxCanvasPixels)
	}
	return nil
}

// PNGOption configures [RenderPNG].
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	scale float64
	rows  bool
}

// WithPNGScale renders at s device pixels per layout pixel.
func WithPNGScale(s float64) PNGOption { return func(r *pngRenderer) { r.scale = s } }

// WithPNGRows draws a dashed guide around every row.
func WithPNGRows() PNGOption { return func(r *pngRenderer) { r.rows = true } }

// RenderPNG rasterizes the frame with the same styles as [RenderSVG]. Text
// uses gg's built-in 7x13 bitmap face.
func RenderPNG(f *frame.Frame, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}
	if err := CheckCanvas(f, r.scale); err != nil {
		return nil, err
	}

	w, h := CanvasSize(f, r.scale)
	dc := gg.NewContext(w, h)
	dc.Scale(r.scale, r.scale)

	dc.SetHexColor(backgroundColor)
	dc.Clear()
	dc.SetLineWidth(1)
	dc.DrawRectangle(0.5, 0.5, float64(f.Width)-1, float64(f.Height)-1)
	dc.SetHexColor(frameColor)
	dc.Stroke()

	if r.rows {
		dc.SetDash(4, 2)
		dc.SetHexColor(rowColor)
		for _, row := range f.Rows {
			dc.DrawRectangle(float64(row.X)+0.5, float64(row.Y)+0.5, float64(max(row.Width, 0)), float64(row.Height))
			dc.Stroke()
		}
		dc.SetDash()
	}

	for _, e := range f.Elements {
		if e.Width <= 0 || e.Height <= 0 {
			continue
		}
		drawElement(dc, e)
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawElement(dc *gg.Context, e frame.Element) {
	st := StyleFor(e.Kind)
	x, y := float64(e.X)+0.5, float64(e.Y)+0.5
	w, h := float64(e.Width)-1, float64(e.Height)-1

	if st.Radius > 0 {
		dc.DrawRoundedRectangle(x, y, w, h, st.Radius)
	} else {
		dc.DrawRectangle(x, y, w, h)
	}
	if st.Fill != "" {
		dc.SetHexColor(st.Fill)
		dc.FillPreserve()
	}
	if st.Dashed {
		dc.SetDash(2, 2)
	}
	dc.SetHexColor(st.Stroke)
	dc.Stroke()
	dc.SetDash()

	if e.Text == "" {
		return
	}
	tx, ty, anchor := textPosition(e, st)
	ax := 0.0
	if anchor == "middle" {
		ax = 0.5
	}
	dc.SetHexColor(st.Text)
	dc.DrawStringAnchored(firstLine(e.Text), tx, ty, ax, 0.5)
}

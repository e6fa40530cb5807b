package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/river/pkg/frame"
)

// SVGOption configures [RenderSVG].
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	scale float64
	rows  bool
}

// WithScale multiplies the output width and height; the viewBox stays in
// layout pixels.
func WithScale(s float64) SVGOption { return func(r *svgRenderer) { r.scale = s } }

// WithRows draws a dashed guide around every row.
func WithRows() SVGOption { return func(r *svgRenderer) { r.rows = true } }

// RenderSVG draws the frame as an SVG wireframe. Elements with a
// non-positive width or height are skipped.
func RenderSVG(f *frame.Frame, opts ...SVGOption) []byte {
	r := svgRenderer{scale: 1}
	for _, opt := range opts {
		opt(&r)
	}
	if r.scale <= 0 {
		r.scale = 1
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%.0f" height="%.0f">`+"\n",
		f.Width, f.Height, float64(f.Width)*r.scale, float64(f.Height)*r.scale)
	fmt.Fprintf(&buf, `  <rect class="frame" x="0" y="0" width="%d" height="%d" fill="%s" stroke="%s"/>`+"\n",
		f.Width, f.Height, backgroundColor, frameColor)
	if f.Title != "" {
		fmt.Fprintf(&buf, `  <title>%s</title>`+"\n", escapeXML(f.Title))
	}

	if r.rows {
		for i, row := range f.Rows {
			fmt.Fprintf(&buf, `  <rect class="row" data-row="%d" x="%d" y="%d" width="%d" height="%d" fill="none" stroke="%s" stroke-dasharray="4 2"/>`+"\n",
				i, row.X, row.Y, max(row.Width, 0), row.Height, rowColor)
		}
	}

	for _, e := range f.Elements {
		if e.Width <= 0 || e.Height <= 0 {
			continue
		}
		renderElement(&buf, e)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderElement(buf *bytes.Buffer, e frame.Element) {
	st := StyleFor(e.Kind)
	fill := st.Fill
	if fill == "" {
		fill = "none"
	}
	var extra strings.Builder
	if st.Radius > 0 {
		fmt.Fprintf(&extra, ` rx="%.0f"`, st.Radius)
	}
	if st.Dashed {
		extra.WriteString(` stroke-dasharray="2 2"`)
	}
	fmt.Fprintf(buf, `  <rect class="%s" id="%s" x="%d" y="%d" width="%d" height="%d" fill="%s" stroke="%s"%s/>`+"\n",
		escapeXML(e.Kind), escapeXML(e.ID), e.X, e.Y, e.Width, e.Height, fill, st.Stroke, extra.String())

	if e.Text == "" {
		return
	}
	x, y, anchor := textPosition(e, st)
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-family="sans-serif" font-size="%.0f" fill="%s" text-anchor="%s" dominant-baseline="middle">%s</text>`+"\n",
		x, y, fontSize, st.Text, anchor, escapeXML(firstLine(e.Text)))
}

// textPosition returns the text anchor point. Panel titles sit on the top
// edge; other text is vertically centred.
func textPosition(e frame.Element, st Style) (x, y float64, anchor string) {
	x = float64(e.X) + textInset
	y = float64(e.Y) + float64(e.Height)/2
	anchor = "start"
	if e.Kind == "panel" {
		y = float64(e.Y) + fontSize
	}
	if st.Centred {
		x = float64(e.X) + float64(e.Width)/2
		anchor = "middle"
	}
	return x, y, anchor
}

func firstLine(s string) string {
	line, _, _ := strings.Cut(s, "\n")
	return line
}

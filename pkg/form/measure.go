package form

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/river/pkg/core/river"
)

// Default widget sizes in character cells.
const (
	DefaultColumns  = 12
	DefaultAreaRows = 3
)

// Metrics converts text to pixels.
type Metrics struct {
	CharWidth  int // pixels per character cell
	LineHeight int // pixels per text line
	PadX       int // horizontal padding inside fields and buttons
	PadY       int // vertical padding inside fields and buttons
}

// DefaultMetrics approximates a 12px sans-serif UI font.
var DefaultMetrics = Metrics{CharWidth: 7, LineHeight: 16, PadX: 6, PadY: 3}

// Cells returns the display width of the widest line of s in cells and the
// number of lines.
func Cells(s string) (width, lines int) {
	for _, line := range strings.Split(s, "\n") {
		width = max(width, runewidth.StringWidth(line))
		lines++
	}
	return width, lines
}

// TextWidth returns the pixel width of the widest line of s.
func (m Metrics) TextWidth(s string) int {
	w, _ := Cells(s)
	return w * m.CharWidth
}

// Preferred returns the preferred size of a leaf component. Explicit width
// and height replace the measured value per axis.
func (m Metrics) Preferred(c *Component) river.Size {
	var s river.Size
	switch c.EffectiveKind() {
	case KindLabel:
		w, lines := Cells(c.Text)
		s = river.Size{Width: w * m.CharWidth, Height: lines * m.LineHeight}
	case KindButton:
		s = river.Size{
			Width:  m.TextWidth(c.Text) + 4*m.PadX,
			Height: m.LineHeight + 2*m.PadY,
		}
	case KindField:
		s = river.Size{
			Width:  m.columns(c)*m.CharWidth + 2*m.PadX,
			Height: m.LineHeight + 2*m.PadY,
		}
	case KindArea:
		rows := c.Rows
		if rows == 0 {
			rows = DefaultAreaRows
		}
		s = river.Size{
			Width:  m.columns(c)*m.CharWidth + 2*m.PadX,
			Height: rows*m.LineHeight + 2*m.PadY,
		}
	}
	if c.Width > 0 {
		s.Width = c.Width
	}
	if c.Height > 0 {
		s.Height = c.Height
	}
	return s
}

// Minimum returns the minimum size of a leaf component: min_width and
// min_height when given, otherwise the preferred size.
func (m Metrics) Minimum(c *Component) river.Size {
	s := m.Preferred(c)
	if c.MinWidth > 0 {
		s.Width = c.MinWidth
	}
	if c.MinHeight > 0 {
		s.Height = c.MinHeight
	}
	return s
}

// columns is the field width in cells: explicit columns, else wide enough
// for the placeholder text and at least DefaultColumns.
func (m Metrics) columns(c *Component) int {
	if c.Columns > 0 {
		return c.Columns
	}
	w, _ := Cells(c.Text)
	return max(w, DefaultColumns)
}

package sink

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/matzehuels/river/pkg/frame"
)

// Default text cell size in layout pixels.
const (
	DefaultCellWidth  = 7
	DefaultCellHeight = 8
)

// TextOption configures [RenderText].
type TextOption func(*textRenderer)

type textRenderer struct {
	cellW, cellH int
	color        bool
}

// WithCell sets how many layout pixels one character cell covers.
func WithCell(width, height int) TextOption {
	return func(r *textRenderer) { r.cellW, r.cellH = width, height }
}

// WithColor colors each element kind. Colors only show on terminals that
// support them.
func WithColor() TextOption { return func(r *textRenderer) { r.color = true } }

var kindColors = map[string]lipgloss.Color{
	"label":  lipgloss.Color("252"),
	"field":  lipgloss.Color("110"),
	"area":   lipgloss.Color("110"),
	"button": lipgloss.Color("214"),
	"box":    lipgloss.Color("245"),
	"panel":  lipgloss.Color("137"),
}

// RenderText draws the frame on a character grid and frames it with a
// rounded border. Labels are plain text, panels and boxes are outlined,
// fields and buttons are outlined with their text inside.
func RenderText(f *frame.Frame, opts ...TextOption) string {
	r := textRenderer{cellW: DefaultCellWidth, cellH: DefaultCellHeight}
	for _, opt := range opts {
		opt(&r)
	}
	r.cellW, r.cellH = max(r.cellW, 1), max(r.cellH, 1)

	g := newGrid(ceilDiv(f.Width, r.cellW), ceilDiv(f.Height, r.cellH))
	for _, e := range f.Elements {
		if e.Width <= 0 || e.Height <= 0 {
			continue
		}
		r.draw(g, e)
	}

	body := g.String(r.color)
	style := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())
	if f.Title == "" {
		return style.Render(body)
	}
	title := lipgloss.NewStyle().Bold(true).Render(f.Title)
	return lipgloss.JoinVertical(lipgloss.Left, title, style.Render(body))
}

func (r *textRenderer) draw(g *grid, e frame.Element) {
	c0, r0 := e.X/r.cellW, e.Y/r.cellH
	c1, r1 := (e.Right()-1)/r.cellW, (e.Bottom()-1)/r.cellH
	text := firstLine(e.Text)

	switch e.Kind {
	case "label":
		g.text(r0+(r1-r0)/2, c0, c1, text, e.Kind)
	case "panel":
		g.box(r0, c0, r1, c1, e.Kind)
		if text != "" {
			g.text(r0, c0+1, c1-1, " "+text+" ", e.Kind)
		}
	case "box":
		g.box(r0, c0, r1, c1, e.Kind)
		g.fill(r0+1, c0+1, r1-1, c1-1, '.', e.Kind)
	default:
		g.box(r0, c0, r1, c1, e.Kind)
		if text == "" || r1-r0 < 2 {
			return
		}
		if e.Kind == "button" {
			w := runewidth.StringWidth(text)
			c0 = max(c0+1, c0+(c1-c0+1-w)/2)
		} else {
			c0++
		}
		g.text(r0+(r1-r0)/2, c0, c1-1, text, e.Kind)
	}
}

// grid is a character canvas. A wide rune occupies its cell and marks the
// next one as a continuation.
type grid struct {
	cells [][]cell
}

type cell struct {
	r    rune
	kind string
	cont bool
}

func newGrid(cols, rows int) *grid {
	g := &grid{cells: make([][]cell, rows)}
	for i := range g.cells {
		g.cells[i] = make([]cell, cols)
		for j := range g.cells[i] {
			g.cells[i][j].r = ' '
		}
	}
	return g
}

func (g *grid) set(row, col int, r rune, kind string) {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return
	}
	g.cells[row][col] = cell{r: r, kind: kind}
}

func (g *grid) box(r0, c0, r1, c1 int, kind string) {
	if r1 <= r0 || c1 <= c0 {
		for c := c0; c <= c1; c++ {
			g.set(r0, c, '-', kind)
		}
		return
	}
	for c := c0 + 1; c < c1; c++ {
		g.set(r0, c, '-', kind)
		g.set(r1, c, '-', kind)
	}
	for r := r0 + 1; r < r1; r++ {
		g.set(r, c0, '|', kind)
		g.set(r, c1, '|', kind)
	}
	for _, p := range [][2]int{{r0, c0}, {r0, c1}, {r1, c0}, {r1, c1}} {
		g.set(p[0], p[1], '+', kind)
	}
}

func (g *grid) fill(r0, c0, r1, c1 int, ch rune, kind string) {
	for r := r0; r <= r1; r++ {
		for c := c0; c <= c1; c++ {
			g.set(r, c, ch, kind)
		}
	}
}

// text writes s on row from column c0, clipped at column c1.
func (g *grid) text(row, c0, c1 int, s, kind string) {
	col := c0
	for _, ch := range s {
		w := runewidth.RuneWidth(ch)
		if w == 0 {
			continue
		}
		if col+w-1 > c1 {
			return
		}
		g.set(row, col, ch, kind)
		if w == 2 && row >= 0 && row < len(g.cells) && col+1 < len(g.cells[row]) {
			g.cells[row][col+1] = cell{kind: kind, cont: true}
		}
		col += w
	}
}

func (g *grid) String(color bool) string {
	lines := make([]string, len(g.cells))
	for i, row := range g.cells {
		var b strings.Builder
		var run strings.Builder
		kind := ""
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if color && kind != "" {
				b.WriteString(lipgloss.NewStyle().Foreground(kindColors[kind]).Render(run.String()))
			} else {
				b.WriteString(run.String())
			}
			run.Reset()
		}
		for _, c := range row {
			if c.cont {
				continue
			}
			if c.kind != kind {
				flush()
				kind = c.kind
			}
			run.WriteRune(c.r)
		}
		flush()
		lines[i] = b.String()
	}
	return strings.Join(lines, "\n")
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

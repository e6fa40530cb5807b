package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/river/pkg/frame"
)

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorBlue   = lipgloss.Color("75")  // Light blue - commands
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleNumber for numeric values.
	StyleNumber = lipgloss.NewStyle().Foreground(colorCyan)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)
)

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleIconInfo    = lipgloss.NewStyle().Foreground(colorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(colorCyan)

	styleCached   = lipgloss.NewStyle().Foreground(colorGreen)
	styleComputed = lipgloss.NewStyle().Foreground(colorGray)

	styleCommand = lipgloss.NewStyle().Foreground(colorBlue)
	styleHeader  = lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	styleCell    = lipgloss.NewStyle().Padding(0, 1)
)

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconInfo    = "›"
	iconArrow   = "→"
	iconCached  = "cached"
	iconFresh   = "fresh"
)

// ui writes styled status lines. Each command gets one bound to the CLI's
// output so tests can capture it.
type ui struct {
	w io.Writer
}

func (u ui) success(format string, args ...any) {
	fmt.Fprintln(u.w, styleIconSuccess.Render(iconSuccess)+" "+fmt.Sprintf(format, args...))
}

func (u ui) error(format string, args ...any) {
	fmt.Fprintln(u.w, styleIconError.Render(iconError)+" "+fmt.Sprintf(format, args...))
}

func (u ui) warning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Fprintln(u.w, styleIconWarning.Render(iconWarning)+" "+StyleWarning.Render(msg))
}

func (u ui) info(format string, args ...any) {
	fmt.Fprintln(u.w, styleIconInfo.Render(iconInfo)+" "+fmt.Sprintf(format, args...))
}

func (u ui) detail(format string, args ...any) {
	fmt.Fprintln(u.w, "  "+StyleDim.Render(fmt.Sprintf(format, args...)))
}

// file prints an output file line.
func (u ui) file(path string) {
	fmt.Fprintln(u.w, "  "+StyleDim.Render(iconArrow)+" "+StyleValue.Render(path))
}

// stats prints frame statistics on a single line.
func (u ui) stats(fr *frame.Frame, cached bool) {
	status, statusStyle := iconFresh, styleComputed
	if cached {
		status, statusStyle = iconCached, styleCached
	}
	sep := StyleDim.Render(" · ")
	fmt.Fprintln(u.w, "  "+
		StyleDim.Render(fmt.Sprintf("%dx%d", fr.Width, fr.Height))+sep+
		StyleDim.Render(fmt.Sprintf("%d rows", len(fr.Rows)))+sep+
		StyleDim.Render(fmt.Sprintf("%d components", len(fr.Elements)))+sep+
		statusStyle.Render(status))
}

// sizes prints the preferred and minimum container sizes.
func (u ui) sizes(fr *frame.Frame) {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray).Width(12)
	for _, kv := range [][2]string{
		{"preferred", fmt.Sprintf("%dx%d", fr.Preferred.Width, fr.Preferred.Height)},
		{"minimum", fmt.Sprintf("%dx%d", fr.Minimum.Width, fr.Minimum.Height)},
	} {
		fmt.Fprintln(u.w, keyStyle.Render(kv[0])+" "+StyleNumber.Render(kv[1]))
	}
}

// nextStep prints a suggested next command.
func (u ui) nextStep(description, cmd string) {
	fmt.Fprintln(u.w, StyleDim.Render(description+":")+" "+styleCommand.Render(cmd))
}

func (u ui) newline() {
	fmt.Fprintln(u.w)
}

// geometryTable renders one table line per element with its row and bounds.
// Nested elements are indented by depth.
func geometryTable(fr *frame.Frame) string {
	rows := make([][]string, 0, len(fr.Elements))
	for _, e := range fr.Elements {
		rows = append(rows, []string{
			strings.Repeat("  ", e.Depth) + e.ID, e.Kind, strconv.Itoa(e.Row),
			strconv.Itoa(e.X), strconv.Itoa(e.Y),
			strconv.Itoa(e.Width), strconv.Itoa(e.Height),
			e.Constraints,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("Component", "Kind", "Row", "X", "Y", "W", "H", "Constraints").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 { // header
				return styleHeader.Padding(0, 1)
			}
			if col >= 2 && col <= 6 {
				return styleCell.Foreground(colorCyan).Align(lipgloss.Right)
			}
			return styleCell
		})
	return t.Render()
}

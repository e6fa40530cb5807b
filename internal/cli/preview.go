package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/river/pkg/core/river"
	"github.com/matzehuels/river/pkg/form"
	"github.com/matzehuels/river/pkg/frame"
	"github.com/matzehuels/river/pkg/render/sink"
)

const (
	defaultStep = 8
	maxStep     = 128
)

// previewCommand creates the preview command: an interactive wireframe that
// re-lays out the form as the container is resized.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		width, height int
		noColor       bool
	)

	cmd := &cobra.Command{
		Use:   "preview [form]",
		Short: "Resize a form interactively in the terminal",
		Long: `Show a text wireframe of a form and resize its container with the arrow
keys. Every key press runs a full layout pass, so fills, alignment and
vertical slack can be watched as they change.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := loadInput(args[0])
			if err != nil {
				return err
			}
			if in.Form == nil {
				return fmt.Errorf("%s is a frame; preview needs a form", args[0])
			}
			if width == 0 {
				width = in.Form.Width
			}
			if height == 0 {
				height = in.Form.Height
			}
			b, err := form.Build(in.Form)
			if err != nil {
				return err
			}
			b.Resize(width, height)

			p := tea.NewProgram(newPreviewModel(b, args[0], !noColor), tea.WithContext(cmd.Context()))
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "initial container width in pixels")
	cmd.Flags().IntVar(&height, "height", 0, "initial container height in pixels")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colors")

	return cmd
}

// previewModel is the bubbletea model behind "river preview".
type previewModel struct {
	built *form.Built
	path  string
	color bool

	size  river.Size
	step  int
	frame *frame.Frame
}

func newPreviewModel(b *form.Built, path string, color bool) previewModel {
	m := previewModel{built: b, path: path, color: color, size: b.Root.Size(), step: defaultStep}
	return m.relayout()
}

// relayout resizes the root panel to m.size and captures the new geometry.
func (m previewModel) relayout() previewModel {
	m.size = m.built.Resize(max(m.size.Width, 1), max(m.size.Height, 1))
	m.frame = frame.Capture(m.built)
	return m
}

func (m previewModel) Init() tea.Cmd {
	return nil
}

func (m previewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case "left", "h":
		m.size.Width -= m.step
	case "right", "l":
		m.size.Width += m.step
	case "up", "k":
		m.size.Height -= m.step
	case "down", "j":
		m.size.Height += m.step
	case "+", "=":
		m.step = min(m.step*2, maxStep)
		return m, nil
	case "-", "_":
		m.step = max(m.step/2, 1)
		return m, nil
	case "p":
		m.size = m.built.Root.PreferredSize()
	case "m":
		m.size = m.built.Root.MinimumSize()
	default:
		return m, nil
	}
	return m.relayout(), nil
}

func (m previewModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render(appName+" preview") + " " + StyleDim.Render(m.path))
	b.WriteString("\n\n")

	var opts []sink.TextOption
	if m.color {
		opts = append(opts, sink.WithColor())
	}
	b.WriteString(sink.RenderText(m.frame, opts...))
	b.WriteString("\n\n")

	fr := m.frame
	fmt.Fprintf(&b, "%s %s  %s %s  %s %s  %s %s\n",
		StyleDim.Render("size"), StyleNumber.Render(fmt.Sprintf("%dx%d", fr.Width, fr.Height)),
		StyleDim.Render("preferred"), StyleValue.Render(fmt.Sprintf("%dx%d", fr.Preferred.Width, fr.Preferred.Height)),
		StyleDim.Render("minimum"), StyleValue.Render(fmt.Sprintf("%dx%d", fr.Minimum.Width, fr.Minimum.Height)),
		StyleDim.Render("rows"), StyleValue.Render(fmt.Sprint(len(fr.Rows))))
	b.WriteString(StyleDim.Render(fmt.Sprintf("←/→ width  ↑/↓ height  +/- step (%dpx)  p preferred  m minimum  q quit", m.step)))

	return b.String()
}

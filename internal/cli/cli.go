package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/river/pkg/buildinfo"
	"github.com/matzehuels/river/pkg/cache"
	"github.com/matzehuels/river/pkg/form"
	"github.com/matzehuels/river/pkg/frame"
	"github.com/matzehuels/river/pkg/pipeline"
)

// appName is the application name used for display and output naming.
const appName = "river"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// Out receives command output that is not logging. Defaults to stdout.
	Out io.Writer
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level), Out: os.Stdout}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "River lays out form components in flowing rows",
		Long: `River is a flow layout engine for forms. Components flow left to right in
rows; constraints such as br, p, tab, hfill and vfill control breaks, tab
columns, alignment and stretching. The CLI computes layouts for form documents
and exports the geometry as JSON, SVG, PNG or text wireframes.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.SetOut(c.Out)

	root.AddCommand(c.layoutCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	ch, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(ch, nil, c.Logger), nil
}

// newCache opens the file cache. An unknown home directory disables caching
// instead of failing the command.
func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := cache.DefaultDir()
	if err != nil {
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// input is a loaded command argument: a form document or a frame JSON file
// written by "river layout".
type input struct {
	Path  string
	Form  *form.Form
	Frame *frame.Frame
}

// loadInput reads path as a form, or as a frame when it is a JSON file with
// an "elements" key.
func loadInput(path string) (*input, error) {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if isFrame(data) {
			fr, err := frame.Unmarshal(data)
			if err != nil {
				return nil, fmt.Errorf("load frame %s: %w", path, err)
			}
			return &input{Path: path, Frame: fr}, nil
		}
		f, err := form.Parse(data, form.FormatJSON)
		if err != nil {
			return nil, fmt.Errorf("load form %s: %w", path, err)
		}
		return &input{Path: path, Form: f}, nil
	}

	f, err := form.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load form %s: %w", path, err)
	}
	return &input{Path: path, Form: f}, nil
}

func isFrame(data []byte) bool {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		return false
	}
	_, ok := fields["elements"]
	return ok
}

// outputBase strips the extension and a ".frame" suffix from an input path:
// "forms/login.toml" and "forms/login.frame.json" both give "forms/login".
func outputBase(path string) string {
	base := strings.TrimSuffix(path, filepath.Ext(path))
	return strings.TrimSuffix(base, ".frame")
}

// outputPaths maps each format to its output file. A single format with an
// explicit output uses it verbatim; otherwise output (or the input base)
// gets one extension per format. JSON frames are named like layout output.
func outputPaths(inputPath, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if output != "" && len(formats) == 1 {
		paths[formats[0]] = output
		return paths
	}
	base := output
	if base == "" {
		base = outputBase(inputPath)
	} else {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	for _, f := range formats {
		ext := f
		if f == pipeline.FormatJSON {
			ext = "frame.json"
		}
		paths[f] = base + "." + ext
	}
	return paths
}

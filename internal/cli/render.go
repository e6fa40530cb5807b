package cli

import (
	"context"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/cobra"

	"github.com/matzehuels/river/pkg/frame"
	"github.com/matzehuels/river/pkg/pipeline"
)

// stdout is the output name that writes a single artifact to standard output.
const stdout = "-"

type renderFlags struct {
	output  string
	formats string
	width   int
	height  int
	scale   float64
	rows    bool
	color   bool
	noCache bool
	refresh bool
}

// renderCommand creates the render command for exporting wireframes.
func (c *CLI) renderCommand() *cobra.Command {
	flags := renderFlags{scale: pipeline.DefaultScale}

	cmd := &cobra.Command{
		Use:   "render [form|frame.json]",
		Short: "Export a form or frame as SVG, PNG, JSON or text",
		Long: `Export a form or frame as SVG, PNG, JSON or a text wireframe.

The input is either a form document (TOML or JSON), which is laid out first,
or a frame JSON file written by 'river layout', which is exported as is.

With a single format, -o names the output file ("-" writes to stdout). With
several formats, -o is a base path and each format adds its extension.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), ui{w: cmd.OutOrStdout()}, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&flags.formats, "format", "f", "", "output format(s): svg (default), png, json, txt (comma-separated)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "container width in pixels (forms only)")
	cmd.Flags().IntVar(&flags.height, "height", 0, "container height in pixels (forms only)")
	cmd.Flags().Float64Var(&flags.scale, "scale", flags.scale, "output scale for svg and png")
	cmd.Flags().BoolVar(&flags.rows, "rows", false, "draw row guides")
	cmd.Flags().BoolVar(&flags.color, "color", false, "color text wireframes")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute even when cached")

	return cmd
}

// runRender lays out a form (or loads a frame) and writes every format.
func (c *CLI) runRender(ctx context.Context, out ui, path string, flags renderFlags) error {
	opts := pipeline.Options{
		Width:   flags.width,
		Height:  flags.height,
		Formats: pipeline.ParseFormats(flags.formats),
		Scale:   flags.scale,
		Rows:    flags.rows,
		Color:   flags.color,
		Refresh: flags.refresh,
		Logger:  loggerFromContext(ctx),
	}
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return err
	}
	if flags.output == stdout && len(opts.Formats) != 1 {
		return fmt.Errorf("output %q needs exactly one format", stdout)
	}

	in, err := loadInput(path)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(opts.Logger)
	var (
		fr        *frame.Frame
		artifacts map[string][]byte
		cacheHit  bool
	)
	if in.Frame != nil {
		fr = in.Frame
		artifacts, cacheHit, err = runner.RenderWithCacheInfo(ctx, fr, opts)
	} else {
		var res *pipeline.Result
		res, err = runner.Execute(ctx, in.Form, opts)
		if res != nil {
			fr, artifacts = res.Frame, res.Artifacts
			cacheHit = res.CacheInfo.LayoutHit && res.CacheInfo.RenderHit
		}
	}
	if err != nil {
		out.error("Render failed")
		return err
	}
	prog.done("Rendered " + path)

	if flags.output == stdout {
		_, err := out.w.Write(artifacts[opts.Formats[0]])
		return err
	}

	paths := outputPaths(path, flags.output, opts.Formats)
	written := make([]string, 0, len(paths))
	for _, format := range opts.Formats {
		p := paths[format]
		if err := os.WriteFile(p, artifacts[format], 0644); err != nil {
			return fmt.Errorf("write %s: %w", p, err)
		}
		written = append(written, p)
	}
	slices.Sort(written)

	out.success("Rendered %d file(s)", len(written))
	for _, p := range written {
		out.file(p)
	}
	out.stats(fr, cacheHit)
	return nil
}

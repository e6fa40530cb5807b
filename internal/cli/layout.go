package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/river/pkg/frame"
	"github.com/matzehuels/river/pkg/pipeline"
)

type layoutFlags struct {
	output  string
	width   int
	height  int
	noCache bool
	refresh bool
	quiet   bool
}

// layoutCommand creates the layout command for computing form geometry.
func (c *CLI) layoutCommand() *cobra.Command {
	var flags layoutFlags

	cmd := &cobra.Command{
		Use:   "layout [form]",
		Short: "Compute the geometry of a form",
		Long: `Compute the geometry of a form document (TOML or JSON).

The layout command sizes the form's container, flows its components into rows
and writes the result as a frame JSON file (same format as 'render -f json').
Frames can be rendered to SVG, PNG or text with 'river render frame.json'.

Width and height default to the form's own size, then to its preferred size.
Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), ui{w: cmd.OutOrStdout()}, args[0], flags)
		},
	}

	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: <input>.frame.json)")
	cmd.Flags().IntVar(&flags.width, "width", 0, "container width in pixels")
	cmd.Flags().IntVar(&flags.height, "height", 0, "container height in pixels")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&flags.refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVarP(&flags.quiet, "quiet", "q", false, "do not print the geometry table")

	return cmd
}

// runLayout loads the form, computes the layout, and writes the frame.
func (c *CLI) runLayout(ctx context.Context, out ui, path string, flags layoutFlags) error {
	in, err := loadInput(path)
	if err != nil {
		return err
	}
	if in.Form == nil {
		return fmt.Errorf("%s is already a frame; use 'river render' to export it", path)
	}
	for _, w := range in.Form.Warnings() {
		out.warning("%s", w)
	}

	runner, err := c.newRunner(flags.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		Width:   flags.width,
		Height:  flags.height,
		Refresh: flags.refresh,
		Logger:  loggerFromContext(ctx),
	}

	prog := newProgress(opts.Logger)
	spinner := newSpinner(ctx, os.Stderr, "Computing layout...")
	spinner.Start()
	fr, cacheHit, err := runner.LayoutWithCacheInfo(ctx, in.Form, opts)
	spinner.Stop()
	if err != nil {
		out.error("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	prog.done("Laid out " + path)

	outputPath := flags.output
	if outputPath == "" {
		outputPath = outputBase(path) + ".frame.json"
	}
	if err := frame.WriteFile(fr, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	out.success("Layout complete")
	out.file(outputPath)
	out.stats(fr, cacheHit)
	out.sizes(fr)
	if !flags.quiet {
		fmt.Fprintln(out.w, geometryTable(fr))
	}
	out.newline()
	out.nextStep("Render", appName+" render "+outputPath)

	return nil
}

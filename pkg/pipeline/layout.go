package pipeline

import (
	"github.com/matzehuels/river/pkg/form"
	"github.com/matzehuels/river/pkg/frame"
)

// ComputeLayout builds the panel tree for f, sizes the root container and
// captures the geometry. opts.Width and opts.Height override the form's own
// size; a dimension left zero by both falls back to the preferred size.
func ComputeLayout(f *form.Form, opts Options) (*frame.Frame, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return nil, err
	}
	b, err := form.Build(f)
	if err != nil {
		return nil, err
	}

	width, height := f.Width, f.Height
	if opts.Width > 0 {
		width = opts.Width
	}
	if opts.Height > 0 {
		height = opts.Height
	}
	size := b.Resize(width, height)
	opts.Logger.Debug("sized container", "width", size.Width, "height", size.Height)

	return frame.Capture(b), nil
}

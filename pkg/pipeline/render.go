package pipeline

import (
	"fmt"

	"github.com/matzehuels/river/pkg/frame"
	"github.com/matzehuels/river/pkg/render/sink"
)

// RenderFrame exports fr in every requested format.
func RenderFrame(fr *frame.Frame, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if err := opts.ValidateCanvas(fr); err != nil {
		return nil, err
	}

	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := renderFormat(fr, format, opts)
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(fr *frame.Frame, format string, opts Options) ([]byte, error) {
	switch format {
	case FormatSVG:
		svgOpts := []sink.SVGOption{sink.WithScale(opts.Scale)}
		if opts.Rows {
			svgOpts = append(svgOpts, sink.WithRows())
		}
		return sink.RenderSVG(fr, svgOpts...), nil
	case FormatPNG:
		pngOpts := []sink.PNGOption{sink.WithPNGScale(opts.Scale)}
		if opts.Rows {
			pngOpts = append(pngOpts, sink.WithPNGRows())
		}
		return sink.RenderPNG(fr, pngOpts...)
	case FormatJSON:
		return sink.RenderJSON(fr)
	case FormatTXT:
		var txtOpts []sink.TextOption
		if opts.Color {
			txtOpts = append(txtOpts, sink.WithColor())
		}
		return []byte(sink.RenderText(fr, txtOpts...) + "\n"), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

// Package sink renders layout frames as wireframes.
//
// # Overview
//
// A "sink" turns a computed [frame.Frame] into an output format. The
// wireframes show the geometry the layout produced, not real widgets:
//
//   - JSON: the frame itself, for external tools and round trips
//   - SVG: vector wireframe with optional row guides
//   - PNG: raster wireframe drawn with fogleman/gg
//   - Text: character-cell wireframe for terminals, framed by lipgloss
//
// Basic usage:
//
//	svg := sink.RenderSVG(fr, sink.WithRows())
//	png, err := sink.RenderPNG(fr, sink.WithPNGScale(2))
//	txt := sink.RenderText(fr)
//
// Every element kind has one [Style] shared by the SVG and PNG sinks, so the
// two outputs look alike.
//
// [frame.Frame]: github.com/matzehuels/river/pkg/frame.Frame
package sink

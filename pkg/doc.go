// Package pkg provides the libraries behind river, a flow layout engine for
// form components.
//
// # Overview
//
// Components flow left to right in rows. Constraint tokens such as "br",
// "p", "tab", "hfill" and "vfill" attached to a component control row
// breaks, tab columns, alignment and stretching. The pkg directory is
// organized by stage:
//
//  1. [core/river] - The layout algorithm (panels, rows, tab stops, fills)
//  2. [form] - Form documents (TOML or JSON) and their component trees
//  3. [frame] - Captured geometry, the exchange format between stages
//  4. [render/sink] - Wireframe output (SVG, PNG, JSON, text)
//  5. [pipeline] - Orchestration (layout → render) with caching
//
// # Architecture
//
// The typical data flow through river:
//
//	Form document (TOML/JSON)
//	         ↓
//	    [form] package (decode, validate, measure, build panels)
//	         ↓
//	    [core/river] package (size the container, lay out rows)
//	         ↓
//	    [frame] package (capture absolute bounds)
//	         ↓
//	    [render/sink] package (SVG/PNG/JSON/text)
//
// # Quick Start
//
// Lay out a form and render it:
//
//	f, _ := form.Load("login.toml")
//	b, _ := form.Build(f)
//	b.Resize(320, 0) // zero height falls back to the preferred height
//	svg := sink.RenderSVG(frame.Capture(b), sink.WithRows())
//
// Or use the pipeline, which validates options and caches both stages:
//
//	runner := pipeline.NewRunner(cache.NewMemoryCache(), nil, logger)
//	res, _ := runner.Execute(ctx, f, pipeline.Options{Formats: []string{"svg", "png"}})
//
// # Supporting Packages
//
// [cache] - Cache backends (file, memory, Redis, MongoDB) and key derivation.
//
// [errors] - Coded errors shared by the CLI and the HTTP server.
//
// [observability] - Hooks for layout, cache and HTTP events.
//
// [buildinfo] - Version information injected at build time.
//
// [core/river]: https://pkg.go.dev/github.com/matzehuels/river/pkg/core/river
// [form]: https://pkg.go.dev/github.com/matzehuels/river/pkg/form
// [frame]: https://pkg.go.dev/github.com/matzehuels/river/pkg/frame
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/river/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/river/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/river/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/river/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/river/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/river/pkg/buildinfo
package pkg

// Package render groups the output stages of river.
//
// Rendering never changes geometry: every renderer consumes a captured
// [frame.Frame] and draws exactly the bounds the layout produced. The
// formats live in the [sink] subpackage.
//
// [frame.Frame]: https://pkg.go.dev/github.com/matzehuels/river/pkg/frame#Frame
// [sink]: https://pkg.go.dev/github.com/matzehuels/river/pkg/render/sink
package render

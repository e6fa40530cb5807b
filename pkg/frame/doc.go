// Package frame defines the serialized result of a river layout.
//
// A [Frame] records the container size, the preferred and minimum sizes,
// every row of every panel and the absolute bounds of every element. It is
// what the CLI writes with `river layout -o`, what the server stores under a
// layout ID, and what the render sinks draw.
//
// Frames carry both json and bson tags: JSON is the file and API format,
// BSON the MongoDB storage format.
//
// Use [Capture] to lay out a built form and record the result:
//
//	b, _ := form.Build(f)
//	fr := frame.Capture(b)
//	data, _ := frame.Marshal(fr)
package frame

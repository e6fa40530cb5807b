package sink

import (
	"github.com/matzehuels/river/pkg/frame"
)

// RenderJSON exports the frame as pretty-printed JSON. The output reads back
// with [frame.Unmarshal], so `river render frame.json` reproduces the
// same wireframes without re-running the layout.
func RenderJSON(f *frame.Frame) ([]byte, error) {
	return frame.Marshal(f)
}

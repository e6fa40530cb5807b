package frame

// Frame is a laid-out form.
type Frame struct {
	Title       string    `json:"title,omitempty" bson:"title,omitempty"`
	Width       int       `json:"width" bson:"width"`
	Height      int       `json:"height" bson:"height"`
	Preferred   Size      `json:"preferred" bson:"preferred"`
	Minimum     Size      `json:"minimum" bson:"minimum"`
	HGap        int       `json:"hgap" bson:"hgap"`
	VGap        int       `json:"vgap" bson:"vgap"`
	LeftToRight bool      `json:"ltr" bson:"ltr"`
	Rows        []Row     `json:"rows" bson:"rows"`
	Elements    []Element `json:"elements" bson:"elements"`
}

// Size is a width and height in pixels.
type Size struct {
	Width  int `json:"width" bson:"width"`
	Height int `json:"height" bson:"height"`
}

// Row is one row of one panel in absolute coordinates. X and Width span the
// panel's content area; Slack is the width left for alignment.
type Row struct {
	Panel  string   `json:"panel,omitempty" bson:"panel,omitempty"` // owning panel id, "" for the root
	X      int      `json:"x" bson:"x"`
	Y      int      `json:"y" bson:"y"`
	Width  int      `json:"width" bson:"width"`
	Height int      `json:"height" bson:"height"`
	Slack  int      `json:"slack" bson:"slack"`
	IDs    []string `json:"ids" bson:"ids"`
}

// Element is a component with its absolute bounds.
type Element struct {
	ID          string `json:"id" bson:"id"`
	Kind        string `json:"kind" bson:"kind"`
	Text        string `json:"text,omitempty" bson:"text,omitempty"`
	Constraints string `json:"constraints,omitempty" bson:"constraints,omitempty"`
	Parent      string `json:"parent,omitempty" bson:"parent,omitempty"`
	Depth       int    `json:"depth,omitempty" bson:"depth,omitempty"`
	Row         int    `json:"row" bson:"row"` // index into Frame.Rows
	X           int    `json:"x" bson:"x"`
	Y           int    `json:"y" bson:"y"`
	Width       int    `json:"width" bson:"width"`
	Height      int    `json:"height" bson:"height"`
}

// Right returns the x coordinate just past the element.
func (e Element) Right() int { return e.X + e.Width }

// Bottom returns the y coordinate just below the element.
func (e Element) Bottom() int { return e.Y + e.Height }

// Element looks up an element by id.
func (f *Frame) Element(id string) (Element, bool) {
	for _, e := range f.Elements {
		if e.ID == id {
			return e, true
		}
	}
	return Element{}, false
}

// Children returns the elements whose parent is id, in document order.
// An empty id selects the top-level elements.
func (f *Frame) Children(id string) []Element {
	var out []Element
	for _, e := range f.Elements {
		if e.Parent == id {
			out = append(out, e)
		}
	}
	return out
}

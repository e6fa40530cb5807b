package river

// Size is a width/height pair in integer pixels.
type Size struct {
	Width, Height int
}

// Point is a position relative to the parent container's origin.
type Point struct {
	X, Y int
}

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int { return r.X + r.Width }

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int { return r.Y + r.Height }

// Location returns the top-left corner.
func (r Rect) Location() Point { return Point{X: r.X, Y: r.Y} }

// Size returns the dimensions of the rectangle.
func (r Rect) Size() Size { return Size{Width: r.Width, Height: r.Height} }

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, Width: r.Width, Height: r.Height}
}

// Insets holds the space reserved on each side of a container.
type Insets struct {
	Top, Left, Bottom, Right int
}

// Horizontal returns the sum of Left and Right.
func (in Insets) Horizontal() int { return in.Left + in.Right }

// Vertical returns the sum of Top and Bottom.
func (in Insets) Vertical() int { return in.Top + in.Bottom }

// Add returns the side-wise sum of two insets.
func (in Insets) Add(o Insets) Insets {
	return Insets{
		Top:    in.Top + o.Top,
		Left:   in.Left + o.Left,
		Bottom: in.Bottom + o.Bottom,
		Right:  in.Right + o.Right,
	}
}

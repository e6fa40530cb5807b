package river

// Component is anything the layout can size and place.
//
// The layout only ever reads the intrinsic sizes and writes the extrinsic
// bounds; it never manages a component's lifecycle.
type Component interface {
	PreferredSize() Size
	MinimumSize() Size

	// Bounds returns the size and position last assigned by a layout.
	Bounds() Rect
	SetSize(Size)
	SetLocation(Point)
}

// Container supplies the ordered children and the frame they are laid out in.
type Container interface {
	// Components returns the children in registration order.
	Components() []Component

	// Insets returns the container's own border insets. The layout adds
	// its extra insets on top of these.
	Insets() Insets

	// Size returns the container's current outer size.
	Size() Size

	// LeftToRight reports the reading direction.
	LeftToRight() bool
}

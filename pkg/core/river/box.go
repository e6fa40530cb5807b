package river

// Box is a plain component with fixed intrinsic sizes.
type Box struct {
	ID        string
	Preferred Size
	Minimum   Size

	bounds Rect
}

// NewBox creates a box whose minimum size equals its preferred size.
func NewBox(id string, width, height int) *Box {
	s := Size{Width: width, Height: height}
	return &Box{ID: id, Preferred: s, Minimum: s}
}

func (b *Box) PreferredSize() Size { return b.Preferred }
func (b *Box) MinimumSize() Size   { return b.Minimum }
func (b *Box) Bounds() Rect        { return b.bounds }

func (b *Box) SetSize(s Size) {
	b.bounds.Width, b.bounds.Height = s.Width, s.Height
}

func (b *Box) SetLocation(p Point) {
	b.bounds.X, b.bounds.Y = p.X, p.Y
}

func (b *Box) String() string { return b.ID }

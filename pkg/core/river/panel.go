package river

import (
	"slices"
	"sync"
)

const (
	// DefaultTitleHeight is the height reserved for a panel title.
	DefaultTitleHeight = 16

	// etchedThickness is the width of the etched line around a titled panel.
	etchedThickness = 2

	// titleEdgeSpacing separates the etched line from the content.
	titleEdgeSpacing = 2
)

// Panel is a container laid out by a river Layout. A Panel is also a
// Component, so panels nest.
type Panel struct {
	mu          sync.Mutex
	layout      *Layout
	children    []Component
	border      Insets
	title       string
	titleHeight int
	rtl         bool
	bounds      Rect
}

// NewPanel creates an empty panel whose layout is configured by opts.
func NewPanel(opts ...Option) *Panel {
	return &Panel{layout: New(opts...), titleHeight: DefaultTitleHeight}
}

// NewTitledPanel creates a panel framed by a titled etched border.
func NewTitledPanel(title string, opts ...Option) *Panel {
	p := NewPanel(opts...)
	p.SetTitle(title)
	return p
}

// Layout returns the panel's layout manager.
func (p *Panel) Layout() *Layout { return p.layout }

// Add appends c and registers its constraints.
func (p *Panel) Add(c Component, constraints string) {
	p.layout.Register(c, constraints)
	p.mu.Lock()
	defer p.mu.Unlock()
	p.children = append(p.children, c)
}

// Remove drops c and its constraints. Removing an absent component is a no-op.
func (p *Panel) Remove(c Component) {
	p.mu.Lock()
	if i := slices.Index(p.children, c); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	p.mu.Unlock()
	p.layout.Unregister(c)
}

// Len returns the number of children.
func (p *Panel) Len() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.children)
}

// Components returns a snapshot of the children in insertion order.
func (p *Panel) Components() []Component {
	p.mu.Lock()
	defer p.mu.Unlock()
	return slices.Clone(p.children)
}

// Title returns the border title, or "" for an untitled panel.
func (p *Panel) Title() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.title
}

// SetTitle frames the panel with a titled etched border. An empty title
// removes the frame.
func (p *Panel) SetTitle(title string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.title = title
}

// SetTitleHeight sets the height reserved for the title text.
func (p *Panel) SetTitleHeight(h int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.titleHeight = h
}

// SetBorder sets the panel's own border insets, excluding any title frame.
func (p *Panel) SetBorder(in Insets) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.border = in
}

// Insets returns the border insets plus the title frame, if any.
func (p *Panel) Insets() Insets {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.title == "" {
		return p.border
	}
	edge := etchedThickness + titleEdgeSpacing
	return p.border.Add(Insets{
		Top:    edge + p.titleHeight,
		Left:   edge,
		Bottom: edge,
		Right:  edge,
	})
}

// SetLeftToRight sets the reading direction. Panels read left to right
// by default.
func (p *Panel) SetLeftToRight(ltr bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rtl = !ltr
}

// LeftToRight reports the reading direction.
func (p *Panel) LeftToRight() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.rtl
}

// Size returns the panel's current outer size.
func (p *Panel) Size() Size {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bounds.Size()
}

func (p *Panel) Bounds() Rect {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.bounds
}

func (p *Panel) SetSize(s Size) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bounds.Width, p.bounds.Height = s.Width, s.Height
}

func (p *Panel) SetLocation(pt Point) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.bounds.X, p.bounds.Y = pt.X, pt.Y
}

func (p *Panel) PreferredSize() Size { return p.layout.PreferredSize(p) }
func (p *Panel) MinimumSize() Size   { return p.layout.MinimumSize(p) }

// DoLayout lays out the panel at its current size, then every nested panel
// at the size it was just given. It returns the panel's own rows.
func (p *Panel) DoLayout() []Row {
	var rows []Row
	p.LayoutTree(func(q *Panel, r []Row) {
		if q == p {
			rows = r
		}
	})
	return rows
}

// LayoutTree performs the same passes as DoLayout and reports every panel's
// rows to fn, parents before children.
func (p *Panel) LayoutTree(fn func(*Panel, []Row)) {
	fn(p, p.layout.PerformLayout(p))
	for _, c := range p.Components() {
		if child, ok := c.(*Panel); ok {
			child.LayoutTree(fn)
		}
	}
}

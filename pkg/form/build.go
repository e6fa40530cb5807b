package form

import (
	"github.com/matzehuels/river/pkg/core/river"
)

// Element is a built component together with its document data.
type Element struct {
	ID          string
	Kind        string
	Text        string
	Constraints string
	Depth       int
	Parent      *Element // nil for top-level components

	Component river.Component
}

// Panel returns the element's panel when it is a nested panel.
func (e *Element) Panel() (*river.Panel, bool) {
	p, ok := e.Component.(*river.Panel)
	return p, ok
}

// Built is a form turned into a river panel tree.
type Built struct {
	Form     *Form
	Root     *river.Panel
	Elements []*Element // depth-first, in document order

	byID map[string]*Element
}

// Element looks up an element by component id.
func (b *Built) Element(id string) (*Element, bool) {
	e, ok := b.byID[id]
	return e, ok
}

// Build validates f and builds its panel tree using DefaultMetrics.
func Build(f *Form) (*Built, error) {
	return BuildWith(f, DefaultMetrics)
}

// BuildWith validates f and builds its panel tree, measuring leaves with m.
// The root panel is sized to the form's width and height; a zero dimension
// is taken from the preferred size.
func BuildWith(f *Form, m Metrics) (*Built, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	b := &Built{
		Form: f,
		Root: newPanel(f, f.Title),
		byID: make(map[string]*Element, f.Count()),
	}
	b.Root.SetBorder(f.Insets.river())
	b.add(b.Root, nil, f.Components, m)

	b.Resize(f.Width, f.Height)
	return b, nil
}

func newPanel(f *Form, title string) *river.Panel {
	p := river.NewTitledPanel(title, f.LayoutOptions()...)
	p.SetLeftToRight(!f.RTL)
	return p
}

func (b *Built) add(p *river.Panel, parent *Element, cs []Component, m Metrics) {
	depth := 0
	if parent != nil {
		depth = parent.Depth + 1
	}
	for i := range cs {
		c := &cs[i]
		e := &Element{
			ID:          c.ID,
			Kind:        c.EffectiveKind(),
			Text:        c.Text,
			Constraints: c.Constraints,
			Depth:       depth,
			Parent:      parent,
		}
		b.Elements = append(b.Elements, e)
		b.byID[c.ID] = e

		if e.Kind == KindPanel {
			child := newPanel(b.Form, c.Text)
			e.Component = child
			p.Add(child, c.Constraints)
			b.add(child, e, c.Components, m)
			continue
		}
		box := &river.Box{ID: c.ID, Preferred: m.Preferred(c), Minimum: m.Minimum(c)}
		e.Component = box
		p.Add(box, c.Constraints)
	}
}

// Resize sets the root panel size. A zero dimension falls back to the
// preferred size.
func (b *Built) Resize(width, height int) river.Size {
	pref := b.Root.PreferredSize()
	if width <= 0 {
		width = pref.Width
	}
	if height <= 0 {
		height = pref.Height
	}
	s := river.Size{Width: width, Height: height}
	b.Root.SetSize(s)
	return s
}

package frame

import (
	"github.com/matzehuels/river/pkg/core/river"
	"github.com/matzehuels/river/pkg/form"
)

// Capture lays out b at the root panel's current size and records the
// geometry. Nested panel coordinates are converted to absolute ones.
func Capture(b *form.Built) *Frame {
	root := b.Root
	size := root.Size()
	f := &Frame{
		Title:       b.Form.Title,
		Width:       size.Width,
		Height:      size.Height,
		Preferred:   fromSize(root.PreferredSize()),
		Minimum:     fromSize(root.MinimumSize()),
		HGap:        root.Layout().HGap(),
		VGap:        root.Layout().VGap(),
		LeftToRight: root.LeftToRight(),
	}

	ids := make(map[river.Component]string, len(b.Elements))
	owner := map[*river.Panel]string{root: ""}
	for _, e := range b.Elements {
		ids[e.Component] = e.ID
		if p, ok := e.Panel(); ok {
			owner[p] = e.ID
		}
	}

	origin := map[*river.Panel]river.Point{root: {}}
	rowOf := make(map[river.Component]int, len(b.Elements))
	root.LayoutTree(func(p *river.Panel, rows []river.Row) {
		o := origin[p]
		in := p.Layout().Insets(p)
		comps := p.Components()
		for _, c := range comps {
			if child, ok := c.(*river.Panel); ok {
				loc := child.Bounds().Location()
				origin[child] = river.Point{X: o.X + loc.X, Y: o.Y + loc.Y}
			}
		}
		for _, r := range rows {
			row := Row{
				Panel:  owner[p],
				X:      o.X + in.Left,
				Y:      o.Y + r.Y,
				Width:  p.Size().Width - in.Horizontal(),
				Height: r.Height,
				Slack:  r.Slack,
				IDs:    make([]string, 0, r.Len()),
			}
			for _, c := range comps[r.Start:r.End] {
				row.IDs = append(row.IDs, ids[c])
				rowOf[c] = len(f.Rows)
			}
			f.Rows = append(f.Rows, row)
		}
	})

	f.Elements = make([]Element, 0, len(b.Elements))
	for _, e := range b.Elements {
		parent, parentID := root, ""
		if e.Parent != nil {
			parent, _ = e.Parent.Panel()
			parentID = e.Parent.ID
		}
		o := origin[parent]
		bnd := e.Component.Bounds()
		f.Elements = append(f.Elements, Element{
			ID:          e.ID,
			Kind:        e.Kind,
			Text:        e.Text,
			Constraints: e.Constraints,
			Parent:      parentID,
			Depth:       e.Depth,
			Row:         rowOf[e.Component],
			X:           o.X + bnd.X,
			Y:           o.Y + bnd.Y,
			Width:       bnd.Width,
			Height:      bnd.Height,
		})
	}
	return f
}

func fromSize(s river.Size) Size {
	return Size{Width: s.Width, Height: s.Height}
}

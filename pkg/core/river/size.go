package river

// PreferredSize returns the size target needs to show every component at its
// preferred size, including the total insets.
func (l *Layout) PreferredSize(target Container) Size {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.estimate(target, false)
}

// MinimumSize returns the size target needs to show every component at its
// minimum size. Tab stops still come from the preferred widths.
func (l *Layout) MinimumSize(target Container) Size {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.estimate(target, true)
}

// estimate simulates the row breaks without touching any component's bounds.
// A tab component sets the row width to its stop instead of adding to it,
// because the ruler already accounts for everything before the stop.
func (l *Layout) estimate(target Container, minimum bool) Size {
	comps := target.Components()
	cons := l.resolve(comps)
	ruler := computeTabs(comps, cons, l.hgap)

	var dim, row Size
	first := true
	tab := 0
	for i, m := range comps {
		c := cons[i]
		if c.BreaksRow() {
			dim.Width = max(dim.Width, row.Width)
			dim.Height += row.Height + l.vgap
			if c.Has(ParagraphBreak) {
				dim.Height += 2 * l.vgap
			}
			row = Size{}
			first = true
			tab = 0
		}

		d := m.PreferredSize()
		if minimum {
			d = m.MinimumSize()
		}
		if c.Has(TabStop) {
			row.Width = ruler.Tab(tab)
			tab++
		} else if !first {
			row.Width += l.hgap
		}
		row.Width += d.Width
		row.Height = max(row.Height, d.Height)
		first = false
	}
	dim.Width = max(dim.Width, row.Width)
	dim.Height += row.Height

	in := l.insets(target)
	return Size{
		Width:  dim.Width + in.Horizontal(),
		Height: dim.Height + in.Vertical(),
	}
}

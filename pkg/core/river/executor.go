package river

// Row describes one laid-out row: the half-open component index range
// [Start, End), its top edge and height, and the horizontal slack that was
// left for alignment after any horizontal fill.
type Row struct {
	Start, End int
	Y          int
	Height     int
	Slack      int
}

// Len returns the number of components in the row.
func (r Row) Len() int { return r.End - r.Start }

// pass holds what the row positioner needs from the enclosing layout pass.
type pass struct {
	comps  []Component
	cons   []Constraint
	ruler  *Ruler
	insets Insets
	width  int
	hgap   int
	ltr    bool
	rows   []Row
}

// PerformLayout gives every component of target its preferred size, breaks
// rows at line and paragraph breaks, applies horizontal and vertical fill and
// positions each row. It returns the rows in order; there is always one more
// row than there are forced breaks.
func (l *Layout) PerformLayout(target Container) []Row {
	l.mu.Lock()
	defer l.mu.Unlock()

	comps := target.Components()
	cons := l.resolve(comps)
	insets := l.insets(target)
	size := target.Size()
	maxWidth := size.Width - insets.Horizontal()

	p := &pass{
		comps:  comps,
		cons:   cons,
		ruler:  computeTabs(comps, cons, l.hgap),
		insets: insets,
		width:  size.Width,
		hgap:   l.hgap,
		ltr:    target.LeftToRight(),
	}

	x, rowH, start, tab := 0, 0, 0, 0
	y := insets.Top + l.vgap
	first := true
	align := defaultAlign
	moveDownStart := -1
	var hfill, vfill Component

	for i, m := range comps {
		c := cons[i]
		d := m.PreferredSize()
		m.SetSize(d)

		if c.BreaksRow() {
			if vfill != nil && moveDownStart < 0 {
				moveDownStart = i
			}
			x = stretch(hfill, x, maxWidth)
			p.positionRow(start, i, y, rowH, maxWidth-x, align)
			y += l.vgap + rowH
			if c.Has(ParagraphBreak) {
				y += 2 * l.vgap
			}
			x, rowH, start, tab = 0, 0, i, 0
			first = true
			hfill = nil
		}

		if c.Has(TabStop) {
			x = p.ruler.Tab(tab)
			tab++
		} else if !first {
			x += l.hgap
		}
		x += d.Width
		rowH = max(rowH, d.Height)
		first = false

		if c.Has(HFill) {
			hfill = m
		}
		if c.Has(VFill) {
			vfill = m
		}
		align = align.apply(c)
	}

	if vfill != nil && moveDownStart < 0 {
		moveDownStart = len(comps)
	}
	x = stretch(hfill, x, maxWidth)
	p.positionRow(start, len(comps), y, rowH, maxWidth-x, align)

	if vfill != nil {
		yslack := size.Height - insets.Bottom - (y + rowH)
		if yslack != 0 {
			b := vfill.Bounds()
			vfill.SetSize(Size{Width: b.Width, Height: b.Height + yslack})
			shiftDown(comps[moveDownStart:], yslack)
			for i := range p.rows {
				if p.rows[i].Start >= moveDownStart {
					p.rows[i].Y += yslack
				}
			}
		}
	}
	return p.rows
}

// stretch grows the row's fill component by the remaining width and returns
// the new cursor. Negative slack shrinks it.
func stretch(fill Component, x, maxWidth int) int {
	if fill == nil {
		return x
	}
	b := fill.Bounds()
	fill.SetSize(Size{Width: b.Width + maxWidth - x, Height: b.Height})
	return maxWidth
}

// shiftDown moves components by dy, keeping their x positions.
func shiftDown(comps []Component, dy int) {
	for _, m := range comps {
		b := m.Bounds()
		m.SetLocation(Point{X: b.X, Y: b.Y + dy})
	}
}

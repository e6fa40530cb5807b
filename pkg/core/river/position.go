package river

// positionRow places components [start, end) on one row. The row starts at
// the left inset plus the alignment offset for slack; each component follows
// the previous one after the horizontal gap, except tab components, which
// jump to their ruler stop. Under right-to-left reading the x positions are
// mirrored inside the container width.
func (p *pass) positionRow(start, end, y, height, slack int, align alignState) {
	x := p.insets.Left + align.offset(slack, p.ltr)
	tab := 0
	for i := start; i < end; i++ {
		m := p.comps[i]
		if p.cons[i].Has(TabStop) {
			x = p.insets.Left + p.ruler.Tab(tab)
			tab++
		}
		b := m.Bounds()
		dy := 0
		if align.v != VTop {
			dy = (height - b.Height) / 2
		}
		if p.ltr {
			m.SetLocation(Point{X: x, Y: y + dy})
		} else {
			m.SetLocation(Point{X: p.width - x - b.Width, Y: y + dy})
		}
		x += b.Width + p.hgap
	}
	p.rows = append(p.rows, Row{Start: start, End: end, Y: y, Height: height, Slack: slack})
}

package river

// ComputeTabs walks target's components once and returns the tab stops they
// establish. The ruler is rebuilt on every pass and never cached.
func (l *Layout) ComputeTabs(target Container) *Ruler {
	l.mu.Lock()
	defer l.mu.Unlock()
	comps := target.Components()
	return computeTabs(comps, l.resolve(comps), l.hgap)
}

// computeTabs tracks an x cursor that restarts at every row. When a tab
// component is reached, the cursor becomes the stop's minimum position, or
// jumps forward to the stop if an earlier row already pushed it further.
func computeTabs(comps []Component, cons []Constraint, hgap int) *Ruler {
	r := &Ruler{}
	x, tab := 0, 0
	for i, m := range comps {
		c := cons[i]
		if i == 0 || c.BreaksRow() {
			x, tab = 0, 0
		} else {
			x += hgap
		}
		if c.Has(TabStop) {
			r.SetTab(tab, x)
			x = r.Tab(tab)
			tab++
		}
		x += m.PreferredSize().Width
	}
	return r
}

package river

// Alignment is the horizontal placement of a row within its slack.
type Alignment uint8

const (
	Left Alignment = iota
	Center
	Right
)

func (a Alignment) String() string {
	switch a {
	case Center:
		return "center"
	case Right:
		return "right"
	default:
		return "left"
	}
}

// VAlignment is the placement of a component within its row's height.
type VAlignment uint8

const (
	VCenter VAlignment = iota
	VTop
)

func (v VAlignment) String() string {
	if v == VTop {
		return "vtop"
	}
	return "vcenter"
}

// alignState is the sticky alignment carried through one layout pass.
type alignState struct {
	h Alignment
	v VAlignment
}

// defaultAlign is the state every pass starts from.
var defaultAlign = alignState{h: Left, v: VCenter}

// apply returns the state after a component's alignment tokens take effect.
// Within one set, left wins over right, right over center, vtop over vcenter.
func (s alignState) apply(c Constraint) alignState {
	switch {
	case c.Has(AlignLeft):
		s.h = Left
	case c.Has(AlignRight):
		s.h = Right
	case c.Has(AlignCenter):
		s.h = Center
	}
	switch {
	case c.Has(VAlignTop):
		s.v = VTop
	case c.Has(VAlignCenter):
		s.v = VCenter
	}
	return s
}

// offset returns the starting x offset for a row with the given slack.
// Under right-to-left reading the positions are mirrored afterwards, so
// left and right swap which side receives the slack.
func (s alignState) offset(slack int, ltr bool) int {
	switch s.h {
	case Center:
		return slack / 2
	case Right:
		if ltr {
			return slack
		}
		return 0
	default:
		if ltr {
			return 0
		}
		return slack
	}
}

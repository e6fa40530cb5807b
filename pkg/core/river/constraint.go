package river

import "strings"

// Constraint is the set of layout directives attached to a component when it
// is registered. It is parsed once from the whitespace-separated token
// string; unknown tokens are ignored.
type Constraint uint16

const (
	// LineBreak ("br") starts a new row.
	LineBreak Constraint = 1 << iota
	// ParagraphBreak ("p") starts a new row with extra vertical space.
	ParagraphBreak
	// TabStop ("tab") moves the component to the row's next tab stop.
	TabStop
	// HFill ("hfill") stretches the component over the row's slack.
	HFill
	// VFill ("vfill") stretches the component over the container's slack.
	VFill
	// AlignLeft ("left") left-aligns this and following rows.
	AlignLeft
	// AlignCenter ("center") centers this and following rows.
	AlignCenter
	// AlignRight ("right") right-aligns this and following rows.
	AlignRight
	// VAlignTop ("vtop") top-aligns components within their row.
	VAlignTop
	// VAlignCenter ("vcenter") vertically centers components within their row.
	VAlignCenter
)

// tokens lists the vocabulary in canonical order.
var tokens = []struct {
	name string
	flag Constraint
}{
	{"br", LineBreak},
	{"p", ParagraphBreak},
	{"tab", TabStop},
	{"hfill", HFill},
	{"vfill", VFill},
	{"left", AlignLeft},
	{"center", AlignCenter},
	{"right", AlignRight},
	{"vtop", VAlignTop},
	{"vcenter", VAlignCenter},
}

// ParseConstraints converts a constraint string such as "br tab hfill" into
// a Constraint set.
func ParseConstraints(s string) Constraint {
	var c Constraint
	for _, field := range strings.Fields(s) {
		for _, tok := range tokens {
			if field == tok.name {
				c |= tok.flag
				break
			}
		}
	}
	return c
}

// UnknownTokens returns the tokens of s that are not part of the constraint
// vocabulary. The layout ignores them; callers may use this to warn.
func UnknownTokens(s string) []string {
	var unknown []string
	for _, field := range strings.Fields(s) {
		if ParseConstraints(field) == 0 {
			unknown = append(unknown, field)
		}
	}
	return unknown
}

// Has reports whether every flag in f is set.
func (c Constraint) Has(f Constraint) bool { return c&f == f }

// BreaksRow reports whether the component starts a new row.
func (c Constraint) BreaksRow() bool { return c&(LineBreak|ParagraphBreak) != 0 }

// String renders the set as canonical, space-separated tokens.
func (c Constraint) String() string {
	var parts []string
	for _, tok := range tokens {
		if c.Has(tok.flag) {
			parts = append(parts, tok.name)
		}
	}
	return strings.Join(parts, " ")
}

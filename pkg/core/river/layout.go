package river

import "sync"

const (
	// DefaultHGap is the horizontal gap between components in a row.
	DefaultHGap = 10

	// DefaultVGap is the vertical gap between rows.
	DefaultVGap = 5
)

// Layout arranges a container's components like words on a page: they flow
// left to right and wrap only at explicit line or paragraph breaks.
//
// A Layout belongs to a single container. Its registry and every pass are
// guarded by one mutex, so passes on the same Layout never interleave.
type Layout struct {
	mu          sync.Mutex
	hgap        int
	vgap        int
	extraInsets Insets
	insetsSet   bool
	constraints map[Component]Constraint
}

// Option configures a Layout.
type Option func(*Layout)

// WithHGap sets the horizontal gap between components.
func WithHGap(gap int) Option { return func(l *Layout) { l.hgap = gap } }

// WithVGap sets the vertical gap between rows.
func WithVGap(gap int) Option { return func(l *Layout) { l.vgap = gap } }

// WithGaps sets both gaps.
func WithGaps(hgap, vgap int) Option {
	return func(l *Layout) { l.hgap, l.vgap = hgap, vgap }
}

// WithExtraInsets sets padding added inside the container's own insets.
// Without it the padding is zero on top and hgap on the other three sides.
func WithExtraInsets(in Insets) Option {
	return func(l *Layout) { l.extraInsets, l.insetsSet = in, true }
}

// New creates a Layout with a 10px horizontal and 5px vertical gap unless
// overridden by opts.
func New(opts ...Option) *Layout {
	l := &Layout{
		hgap:        DefaultHGap,
		vgap:        DefaultVGap,
		constraints: make(map[Component]Constraint),
	}
	for _, opt := range opts {
		opt(l)
	}
	if !l.insetsSet {
		l.extraInsets = Insets{Top: 0, Left: l.hgap, Bottom: l.hgap, Right: l.hgap}
	}
	return l
}

// HGap returns the horizontal gap.
func (l *Layout) HGap() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.hgap
}

// SetHGap changes the horizontal gap. The extra insets are left untouched.
func (l *Layout) SetHGap(gap int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hgap = gap
}

// VGap returns the vertical gap.
func (l *Layout) VGap() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.vgap
}

// SetVGap changes the vertical gap.
func (l *Layout) SetVGap(gap int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.vgap = gap
}

// ExtraInsets returns the padding added inside the container's insets.
func (l *Layout) ExtraInsets() Insets {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.extraInsets
}

// SetExtraInsets replaces the extra padding.
func (l *Layout) SetExtraInsets(in Insets) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.extraInsets = in
}

// Insets returns the total insets used for target: its own border insets
// plus the layout's extra insets.
func (l *Layout) Insets(target Container) Insets {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.insets(target)
}

func (l *Layout) insets(target Container) Insets {
	return target.Insets().Add(l.extraInsets)
}

// Register attaches a constraint string to c, replacing any earlier one.
// Components are map keys, so their dynamic type must be comparable;
// pointers are the usual choice.
func (l *Layout) Register(c Component, constraints string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.constraints[c] = ParseConstraints(constraints)
}

// Unregister forgets c's constraints.
func (l *Layout) Unregister(c Component) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.constraints, c)
}

// Constraints returns the parsed constraints registered for c. Components
// that were never registered have none.
func (l *Layout) Constraints(c Component) Constraint {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.constraints[c]
}

// resolve looks up the constraints of every component once per pass.
func (l *Layout) resolve(comps []Component) []Constraint {
	cons := make([]Constraint, len(comps))
	for i, m := range comps {
		cons[i] = l.constraints[m]
	}
	return cons
}

package form

import (
	"fmt"

	"github.com/matzehuels/river/pkg/core/river"
	"github.com/matzehuels/river/pkg/errors"
)

// Component kinds.
const (
	KindLabel  = "label"
	KindField  = "field"
	KindButton = "button"
	KindArea   = "area"
	KindBox    = "box"
	KindPanel  = "panel"
)

// Kinds lists every supported component kind.
var Kinds = []string{KindLabel, KindField, KindButton, KindArea, KindBox, KindPanel}

// Form is a form document.
type Form struct {
	Title       string      `toml:"title" json:"title,omitempty"`
	Width       int         `toml:"width" json:"width,omitempty"`
	Height      int         `toml:"height" json:"height,omitempty"`
	HGap        *int        `toml:"hgap" json:"hgap,omitempty"`
	VGap        *int        `toml:"vgap" json:"vgap,omitempty"`
	RTL         bool        `toml:"rtl" json:"rtl,omitempty"`
	Insets      *Insets     `toml:"insets" json:"insets,omitempty"`
	ExtraInsets *Insets     `toml:"extra_insets" json:"extra_insets,omitempty"`
	Components  []Component `toml:"component" json:"components"`
}

// Insets mirrors river.Insets with document tags.
type Insets struct {
	Top    int `toml:"top" json:"top"`
	Left   int `toml:"left" json:"left"`
	Bottom int `toml:"bottom" json:"bottom"`
	Right  int `toml:"right" json:"right"`
}

func (in *Insets) river() river.Insets {
	if in == nil {
		return river.Insets{}
	}
	return river.Insets{Top: in.Top, Left: in.Left, Bottom: in.Bottom, Right: in.Right}
}

// Component is one entry of a form. Only panels have children.
type Component struct {
	ID          string      `toml:"id" json:"id"`
	Kind        string      `toml:"kind" json:"kind,omitempty"`
	Text        string      `toml:"text" json:"text,omitempty"`
	Columns     int         `toml:"columns" json:"columns,omitempty"`
	Rows        int         `toml:"rows" json:"rows,omitempty"`
	Width       int         `toml:"width" json:"width,omitempty"`
	Height      int         `toml:"height" json:"height,omitempty"`
	MinWidth    int         `toml:"min_width" json:"min_width,omitempty"`
	MinHeight   int         `toml:"min_height" json:"min_height,omitempty"`
	Constraints string      `toml:"constraints" json:"constraints,omitempty"`
	Components  []Component `toml:"component" json:"components,omitempty"`
}

// EffectiveKind returns the kind, defaulting to a label.
func (c *Component) EffectiveKind() string {
	if c.Kind == "" {
		return KindLabel
	}
	return c.Kind
}

// LayoutOptions returns the river options for the form's panels.
func (f *Form) LayoutOptions() []river.Option {
	var opts []river.Option
	if f.HGap != nil {
		opts = append(opts, river.WithHGap(*f.HGap))
	}
	if f.VGap != nil {
		opts = append(opts, river.WithVGap(*f.VGap))
	}
	if f.ExtraInsets != nil {
		opts = append(opts, river.WithExtraInsets(f.ExtraInsets.river()))
	}
	return opts
}

// Count returns the number of components, nested ones included.
func (f *Form) Count() int {
	return count(f.Components)
}

func count(cs []Component) int {
	n := len(cs)
	for i := range cs {
		n += count(cs[i].Components)
	}
	return n
}

// Validate checks the whole document and returns the first problem as an
// INVALID_FORM or INVALID_DIMENSIONS error.
func (f *Form) Validate() error {
	if err := errors.ValidateDimensions(f.Width, f.Height); err != nil {
		return err
	}
	if f.HGap != nil && *f.HGap < 0 {
		return errors.New(errors.ErrCodeInvalidForm, "hgap cannot be negative: %d", *f.HGap)
	}
	if f.VGap != nil && *f.VGap < 0 {
		return errors.New(errors.ErrCodeInvalidForm, "vgap cannot be negative: %d", *f.VGap)
	}
	return validateComponents(f.Components, make(map[string]bool))
}

func validateComponents(cs []Component, seen map[string]bool) error {
	for i := range cs {
		c := &cs[i]
		if err := errors.ValidateComponentID(c.ID); err != nil {
			return err
		}
		if seen[c.ID] {
			return errors.New(errors.ErrCodeInvalidForm, "duplicate component id %q", c.ID)
		}
		seen[c.ID] = true

		if err := validateComponent(c); err != nil {
			return err
		}
		if err := validateComponents(c.Components, seen); err != nil {
			return err
		}
	}
	return nil
}

func validateComponent(c *Component) error {
	if err := errors.ValidateDimensions(c.Width, c.Height); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDimensions, err, "component %q", c.ID)
	}
	if err := errors.ValidateDimensions(c.MinWidth, c.MinHeight); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidDimensions, err, "component %q minimum", c.ID)
	}
	if c.Columns < 0 || c.Rows < 0 {
		return errors.New(errors.ErrCodeInvalidForm, "component %q: columns and rows cannot be negative", c.ID)
	}

	kind := c.EffectiveKind()
	if kind != KindPanel && len(c.Components) > 0 {
		return errors.New(errors.ErrCodeInvalidForm, "component %q: only panels can contain components", c.ID)
	}
	switch kind {
	case KindLabel, KindButton:
		if c.Text == "" && c.Width == 0 {
			return errors.New(errors.ErrCodeInvalidForm, "%s %q needs text or a width", kind, c.ID)
		}
	case KindField, KindArea:
	case KindBox:
		if c.Width == 0 || c.Height == 0 {
			return errors.New(errors.ErrCodeInvalidForm, "box %q needs a width and a height", c.ID)
		}
	case KindPanel:
		if c.Width != 0 || c.Height != 0 {
			return errors.New(errors.ErrCodeInvalidForm, "panel %q: size is computed from its components", c.ID)
		}
	default:
		return errors.New(errors.ErrCodeInvalidForm, "component %q: unknown kind %q", c.ID, c.Kind)
	}
	return nil
}

// Warnings reports problems that do not stop a layout, such as unknown
// constraint tokens, which the layout ignores.
func (f *Form) Warnings() []string {
	var out []string
	var walk func(cs []Component)
	walk = func(cs []Component) {
		for i := range cs {
			for _, tok := range river.UnknownTokens(cs[i].Constraints) {
				out = append(out, fmt.Sprintf("component %q: unknown constraint %q", cs[i].ID, tok))
			}
			walk(cs[i].Components)
		}
	}
	walk(f.Components)
	return out
}

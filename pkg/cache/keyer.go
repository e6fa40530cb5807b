package cache

// LayoutKeyOpts holds the inputs besides the form that change a layout.
type LayoutKeyOpts struct {
	Width  int `json:"w"`
	Height int `json:"h"`
}

// ArtifactKeyOpts holds the inputs that change a rendered artifact.
type ArtifactKeyOpts struct {
	Format string  `json:"f"`
	Scale  float64 `json:"s"`
	Rows   bool    `json:"r,omitempty"`
	Color  bool    `json:"c,omitempty"`
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey identifies the frame computed for a form.
	LayoutKey(formHash string, opts LayoutKeyOpts) string
	// ArtifactKey identifies a rendering of a frame.
	ArtifactKey(frameHash string, opts ArtifactKeyOpts) string
	// FrameKey identifies a frame stored by the server under id.
	FrameKey(id string) string
}

// DefaultKeyer is the standard keyspace: "layout:", "artifact:" and "frame:"
// prefixes followed by a hash of the inputs.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the standard keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

func (DefaultKeyer) LayoutKey(formHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", formHash, opts)
}

func (DefaultKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", frameHash, opts)
}

// FrameKey does not hash: ids are already opaque UUIDs.
func (DefaultKeyer) FrameKey(id string) string {
	return "frame:" + id
}

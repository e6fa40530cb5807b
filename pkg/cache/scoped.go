package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// The server scopes every key by deployment so several instances can share
// one Redis or MongoDB backend.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

func (k *ScopedKeyer) LayoutKey(formHash string, opts LayoutKeyOpts) string {
	return k.prefix + k.inner.LayoutKey(formHash, opts)
}

func (k *ScopedKeyer) ArtifactKey(frameHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(frameHash, opts)
}

func (k *ScopedKeyer) FrameKey(id string) string {
	return k.prefix + k.inner.FrameKey(id)
}

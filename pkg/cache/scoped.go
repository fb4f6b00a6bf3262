package cache

// ScopedKeyer prefixes every key of an inner Keyer, so several sigil
// deployments can share one Redis without reading each other's artifacts.
//
//	keyer := cache.NewScopedKeyer(nil, "sigil:staging:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer returns a Keyer that prepends prefix to the keys of inner,
// or of a [DefaultKeyer] when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ArtifactKey implements [Keyer].
func (k *ScopedKeyer) ArtifactKey(symbolHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(symbolHash, opts)
}

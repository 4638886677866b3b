package cache

// ScopedKeyer wraps a Keyer with a prefix so multiple projects can share
// one cache directory without key collisions.
//
// Example usage:
//
//	// Keys scoped to one signage project
//	projectKeyer := NewScopedKeyer(NewDefaultKeyer(), "project:acme-rooftop:")
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

// OutlineKey generates a prefixed key for outline caching.
func (k *ScopedKeyer) OutlineKey(pathHash string) string {
	return k.prefix + k.inner.OutlineKey(pathHash)
}

// PlanKey generates a prefixed key for plan caching.
func (k *ScopedKeyer) PlanKey(outlineHash string, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(outlineHash, opts)
}

// ReportKey generates a prefixed key for report caching.
func (k *ScopedKeyer) ReportKey(planHash string, opts ReportKeyOpts) string {
	return k.prefix + k.inner.ReportKey(planHash, opts)
}

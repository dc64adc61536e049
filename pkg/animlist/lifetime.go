package animlist

import "sync/atomic"

// Lifetime is a liveness handle for one mounted list. Deferred work checks
// it before touching state so nothing commits after Close.
type Lifetime struct {
	ended atomic.Bool
}

// NewLifetime returns a live handle.
func NewLifetime() *Lifetime { return &Lifetime{} }

// End marks the owner as torn down. It is safe to call more than once.
func (l *Lifetime) End() { l.ended.Store(true) }

// Alive reports whether End has not been called.
func (l *Lifetime) Alive() bool { return !l.ended.Load() }

package subscription

import (
	"context"
	"sync"
)

// Gate is a one-shot signal. Once released it stays released.
type Gate struct {
	once sync.Once
	ch   chan struct{}
}

// NewGate creates an unreleased gate.
func NewGate() *Gate {
	return &Gate{ch: make(chan struct{})}
}

// Release opens the gate. Calling Release more than once has no effect.
func (g *Gate) Release() {
	g.once.Do(func() {
		close(g.ch)
	})
}

// Released reports whether Release has been called.
func (g *Gate) Released() bool {
	select {
	case <-g.ch:
		return true
	default:
		return false
	}
}

// Done returns a channel that is closed when the gate is released.
func (g *Gate) Done() <-chan struct{} {
	return g.ch
}

// Wait blocks until the gate is released or ctx is done.
// It returns nil on release and ctx.Err() otherwise.
func (g *Gate) Wait(ctx context.Context) error {
	select {
	case <-g.ch:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

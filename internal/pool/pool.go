// Package pool provides a generic object pool that reuses instances
// instead of allocating new ones each frame.
package pool

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/minigame/internal/core"
)

// Resetter is implemented by pooled objects that need to restore their
// initial state when released back to the pool.
type Resetter interface {
	Reset()
}

// Destroyer is implemented by pooled objects that hold resources to be
// released when the pool is cleared.
type Destroyer interface {
	Destroy()
}

// Pool keeps every object it created in exactly one of two sequences:
// available (ready to hand out) or active (handed out, not yet released).
// Objects are matched by identity, so T is usually a pointer type.
type Pool[T comparable] struct {
	factory   func() T
	available []T
	active    []T
	created   int
}

// New creates a pool and preallocates initialSize objects.
// A nil factory is an invalid argument.
func New[T comparable](factory func() T, initialSize int) (*Pool[T], error) {
	if factory == nil {
		return nil, fmt.Errorf("pool: %w: nil factory", core.ErrInvalidArgument)
	}

	p := &Pool[T]{factory: factory}
	p.Preallocate(initialSize)
	return p, nil
}

// MustNew is like New but panics on error. It is meant for pools built
// from a package-level factory function.
func MustNew[T comparable](factory func() T, initialSize int) *Pool[T] {
	p, err := New(factory, initialSize)
	if err != nil {
		panic(err)
	}
	return p
}

// Acquire returns an available object, creating one when none is left.
func (p *Pool[T]) Acquire() T {
	var obj T
	if n := len(p.available); n > 0 {
		obj = p.available[n-1]
		var zero T
		p.available[n-1] = zero
		p.available = p.available[:n-1]
	} else {
		obj = p.create()
	}

	p.active = append(p.active, obj)
	return obj
}

// Release returns obj to the pool and resets it.
// Objects that are not currently active are ignored and Release returns false.
func (p *Pool[T]) Release(obj T) bool {
	idx := slices.Index(p.active, obj)
	if idx < 0 {
		return false
	}

	p.active = slices.Delete(p.active, idx, idx+1)
	if r, ok := any(obj).(Resetter); ok {
		r.Reset()
	}
	p.available = append(p.available, obj)
	return true
}

// ReleaseAll releases each object in order.
func (p *Pool[T]) ReleaseAll(objs []T) {
	for _, obj := range objs {
		p.Release(obj)
	}
}

// Preallocate creates n objects into the available sequence.
func (p *Pool[T]) Preallocate(n int) {
	for i := 0; i < n; i++ {
		p.available = append(p.available, p.create())
	}
}

// Clear destroys every object, active and available, and empties the pool.
// The factory count is kept.
func (p *Pool[T]) Clear() {
	for _, obj := range p.active {
		destroy(obj)
	}
	for _, obj := range p.available {
		destroy(obj)
	}
	p.active = nil
	p.available = nil
}

// AvailableCount returns the number of objects ready to be acquired.
func (p *Pool[T]) AvailableCount() int {
	return len(p.available)
}

// ActiveCount returns the number of acquired, unreleased objects.
func (p *Pool[T]) ActiveCount() int {
	return len(p.active)
}

// ActiveObjects returns a copy of the active sequence.
func (p *Pool[T]) ActiveObjects() []T {
	return slices.Clone(p.active)
}

// Created returns how many times the factory has been called.
func (p *Pool[T]) Created() int {
	return p.created
}

func (p *Pool[T]) create() T {
	p.created++
	return p.factory()
}

func destroy(obj any) {
	if d, ok := obj.(Destroyer); ok {
		d.Destroy()
	}
}

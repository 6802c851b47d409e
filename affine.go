// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

import (
	"sync/atomic"
)

// Affine wraps an outcome with one-shot consumption enforcement.
// The protocol assumes, without checking, that a deferred outcome is
// forwarded or resolved exactly once; Affine makes the assumption
// explicit. A second consumption panics (Resolve, or forwarding through
// the wrapper) or returns false (TryResolve).
type Affine[T, E any] struct {
	used    atomic.Uintptr
	outcome Outcome[T, E]
}

// Once wraps an outcome so it can be consumed at most once.
func Once[T, E any](o Outcome[T, E]) *Affine[T, E] {
	return &Affine[T, E]{outcome: o}
}

// force implements [Outcome]; forwarding through the wrapper counts as
// the one consumption.
func (a *Affine[T, E]) force(m Marker[E]) T {
	if a.used.Add(1) != 1 {
		panic("unwind: affine outcome consumed twice")
	}
	return a.outcome.force(m)
}

// Resolve materializes the wrapped outcome.
// Panics if the outcome has already been consumed.
func (a *Affine[T, E]) Resolve() Result[T, E] {
	if a.used.Add(1) != 1 {
		panic("unwind: affine outcome consumed twice")
	}
	return a.outcome.Resolve()
}

// TryResolve attempts to materialize the wrapped outcome.
// Returns (result, true) on first consumption, or (zero, false) if
// already consumed.
func (a *Affine[T, E]) TryResolve() (Result[T, E], bool) {
	if a.used.Add(1) != 1 {
		var zero Result[T, E]
		return zero, false
	}
	return a.outcome.Resolve(), true
}

// Discard marks the outcome as consumed without resolving it.
// This is useful for explicitly dropping an outcome that will not be used.
func (a *Affine[T, E]) Discard() {
	a.used.Store(1)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

// protocolViolation panics with a descriptive message for protocol misuse.
// Extracted as a noinline function so that the protocol entry points
// remain inlineable.
//
//go:noinline
func protocolViolation(msg string) {
	panic("unwind: " + msg)
}

// Outcome unifies the two representations of a fallible result:
// [Result] (direct, eagerly tagged) and [Deferred] (a suspended
// computation that signals failure through the payload slot instead of
// returning a tag).
//
// The interface is sealed: only the shapes defined by this package
// implement it. Callers interact with an Outcome in exactly two ways —
// forward it across a fallible boundary with [Forward] or [Propagate],
// or materialize it with Resolve. Anything else (storing a deferred
// outcome and consuming it twice, discarding it unconsumed) is not
// memory-unsafe but is outside the protocol; wrap with [Once] to make
// the one-shot discipline explicit.
type Outcome[T, E any] interface {
	// force produces the success value or writes the failure payload to
	// the boundary cell and raises the control-transfer signal. It is the
	// propagation half of the protocol; only Resolve pays for a tag.
	force(m Marker[E]) T

	// Resolve establishes a fresh catching boundary and materializes the
	// outcome as a conventional tagged [Result].
	Resolve() Result[T, E]
}

// Deferred is the suspended outcome shape: a computation that, when
// forced, returns the success value directly or raises the failure
// through the boundary cell carried by its [Marker].
//
// Construct with [Suspend]; fail with [Throw]; call into other fallible
// computations with [Forward] or [Propagate].
type Deferred[T, E any] func(Marker[E]) T

// Suspend creates a deferred outcome from its body function.
// The body runs once, when the outcome is forced or resolved; it receives
// the [Marker] for the boundary it is running under.
func Suspend[T, E any](f func(Marker[E]) T) Deferred[T, E] {
	return f
}

// force implements [Outcome] by invoking the suspended computation.
func (d Deferred[T, E]) force(m Marker[E]) T {
	return d(m)
}

// Resolve implements [Outcome]. It acquires a cleared boundary cell,
// forces the computation under a fresh [Marker], and catches the
// control-transfer signal belonging to this boundary. Any other panic
// value — a foreign panic, or a signal bound to an enclosing boundary —
// is re-raised unchanged.
func (d Deferred[T, E]) Resolve() (res Result[T, E]) {
	c := acquireCell()
	defer func() {
		r := recover()
		if r == nil {
			releaseCell(c)
			return
		}
		sig, ok := r.(raised)
		if !ok || sig.cell != c {
			panic(r)
		}
		e, ok := take[E](c)
		if !ok {
			protocolViolation("caught a signal with an empty payload slot")
		}
		releaseCell(c)
		res = Err[T, E](e)
	}()
	return Ok[T, E](d(Marker[E]{cell: c}))
}

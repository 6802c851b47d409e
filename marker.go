// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

import "reflect"

// Marker is the capability token for one propagation boundary.
// Marker[E] proves that the holder may treat the next cell write/read pair
// as type E: it is issued by Resolve when the boundary opens, retyped by
// [Forward] when the error type changes across a call, and consumed by
// [Throw] at the point of failure.
//
// Markers are freely copyable. The phantom parameter E carries the type
// discipline; the only runtime content is the boundary cell it threads
// through the call chain (Go has no implicit goroutine-local storage, so
// the slot travels with the token).
type Marker[E any] struct {
	cell *cell
}

// Throw writes the failure payload to the marker's boundary cell and
// raises the control-transfer signal. It never returns; the T result type
// lets a throw appear in expression position:
//
//	return unwind.Throw[int](m, ErrOverflow)
func Throw[T, E any](m Marker[E], e E) T {
	if m.cell == nil {
		protocolViolation("Throw on a zero Marker (no active boundary)")
	}
	m.cell.put(e)
	panic(raised{cell: m.cell})
}

// sameType reports whether E and F are the identical type.
// The comparison is two word-compares on cached type descriptors; it
// selects the forwarding path without ever invoking the conversion.
func sameType[E, F any]() bool {
	return reflect.TypeOf((*E)(nil)).Elem() == reflect.TypeOf((*F)(nil)).Elem()
}

// Forward is the boundary-crossing operator: it forces an Outcome[T, E]
// inside a function whose declared error type is F, converting the failure
// on the way through.
//
// On success it returns the forced value. On failure the payload written
// by the inner raise is converted in place, during the unwind, by a
// conversion guard — no tagged value is ever materialized.
//
// When E and F are the identical type the guard is elided entirely and
// convert is never invoked: the marker is retyped and the outcome forced
// directly. Exactly one of the two paths runs per call.
func Forward[T, E, F any](o Outcome[T, E], m Marker[F], convert func(E) F) T {
	if m.cell == nil {
		protocolViolation("Forward on a zero Marker (no active boundary)")
	}
	if sameType[E, F]() {
		return o.force(Marker[E]{cell: m.cell})
	}
	g := convGuard[E, F]{cell: m.cell, convert: convert, armed: true}
	defer g.fire()
	v := o.force(Marker[E]{cell: m.cell})
	g.disarm()
	return v
}

// Propagate forwards an outcome whose error type already matches the
// enclosing declared error type. It is the statically-resolved variant of
// the [Forward] identity path: no type comparison, no guard, no conversion
// — the force compiles to a plain call.
func Propagate[T, E any](o Outcome[T, E], m Marker[E]) T {
	return o.force(m)
}

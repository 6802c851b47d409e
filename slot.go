// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

// cell is the payload slot: single-value erased storage for the failure
// value in flight between a raise and the [Outcome.Resolve] boundary that
// catches it. Each boundary owns exactly one cell, threaded through the
// propagation by the [Marker], so the cell is goroutine-exclusive by
// construction and never needs synchronization.
//
// Between a put and its matching take the cell holds exactly one payload
// whose concrete type is known only by the Marker convention.
type cell struct {
	payload any
	full    bool
}

// put stores an erased payload, replacing any previous value.
func (c *cell) put(v any) {
	c.payload = v
	c.full = true
}

// take removes and returns the payload at type E.
// The type assertion is backed by the Marker convention rather than a
// runtime tag: writer and reader agreed on E when the Marker was issued.
// A stored nil interface value yields the zero E.
func take[E any](c *cell) (E, bool) {
	if !c.full {
		var zero E
		return zero, false
	}
	p := c.payload
	c.payload = nil
	c.full = false
	if p == nil {
		var zero E
		return zero, true
	}
	return p.(E), true
}

// raised is the control-transfer signal: the panic payload used by the
// protocol. It carries only the boundary discriminator; the failure value
// itself travels through the cell. Resolve re-raises any panic value that
// is not a raised for its own cell, so foreign panics and signals bound to
// an enclosing boundary escape unchanged.
type raised struct {
	cell *cell
}

// Error implements error so that a failure escaping without a Resolve
// boundary terminates the goroutine with a readable message.
func (raised) Error() string {
	return "unwind: failure escaped without a Resolve boundary"
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

// convGuard guarantees a pending E -> F payload conversion runs exactly
// once on the failure path, even though that path is an active panic
// unwind raised by the guard's own source outcome.
//
// States: armed (conversion pending), disarmed (success path, disarm was
// called before scope exit), fired (scope exited while armed). There are
// no further transitions; a fired or disarmed guard is inert.
type convGuard[E, F any] struct {
	cell    *cell
	convert func(E) F
	armed   bool
}

// disarm cancels the pending conversion on the success path.
func (g *convGuard[E, F]) disarm() {
	g.armed = false
}

// fire runs the pending conversion if the guard is still armed.
// Deferred at the point the guard is built, so it runs on every exit,
// including the unwind of the raise it is guarding.
//
// The payload is taken out of the cell before the conversion runs and put
// back after, rather than converted through a held reference: the
// conversion function may itself resolve nested fallible calls, and those
// open their own boundaries with their own cells while this one is empty.
// An empty cell at fire time means the unwind passing through is not this
// propagation (a foreign panic, or a signal bound to an enclosing
// boundary); there is nothing to convert.
func (g *convGuard[E, F]) fire() {
	if !g.armed {
		return
	}
	g.armed = false
	e, ok := take[E](g.cell)
	if !ok {
		return
	}
	g.cell.put(g.convert(e))
}

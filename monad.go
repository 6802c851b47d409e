// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

// Lazy combinators over outcomes.
//
// Each combinator wraps its argument in a new [Deferred] whose body forces
// the inner outcome under the same boundary marker. Failures pass through
// as signals; no combinator ever materializes a tag.

// Map applies a pure function to the success value of an outcome.
//
// The transformation runs only if the inner computation succeeds; a
// failure bypasses f entirely on its way to the boundary.
func Map[T, U, E any](o Outcome[T, E], f func(T) U) Outcome[U, E] {
	return Deferred[U, E](func(m Marker[E]) U {
		return f(o.force(m))
	})
}

// Bind sequences two fallible computations (monadic bind).
// It forces o, then passes the result to f to get the next outcome,
// forcing that under the same boundary.
func Bind[T, U, E any](o Outcome[T, E], f func(T) Outcome[U, E]) Outcome[U, E] {
	return Deferred[U, E](func(m Marker[E]) U {
		return f(o.force(m)).force(m)
	})
}

// Then sequences two outcomes, discarding the first success value.
// The first outcome is still forced: its failure aborts the sequence.
//
// Allocation note: Then avoids the closure capture of a function argument
// that Bind(o, func(T) Outcome[U, E] { return n }) would incur.
func Then[T, U, E any](o Outcome[T, E], n Outcome[U, E]) Outcome[U, E] {
	return Deferred[U, E](func(m Marker[E]) U {
		o.force(m)
		return n.force(m)
	})
}

// MapError applies a function to the failure value, leaving success
// untouched.
//
// For a direct [Result] the transform is the ordinary eager one. For a
// deferred outcome the conversion is itself deferred: the returned outcome
// arms a conversion guard around the inner force, so however many
// MapError wrappings compose, each conversion runs exactly once, in place,
// during the unwind. Unlike [Forward] there is no identity fast path:
// a conversion passed to MapError always runs on failure, side effects
// included.
func MapError[T, E, F any](o Outcome[T, E], convert func(E) F) Outcome[T, F] {
	if r, ok := any(o).(Result[T, E]); ok {
		if r.ok {
			return Ok[T, F](r.value)
		}
		return Err[T, F](convert(r.err))
	}
	return Deferred[T, F](func(m Marker[F]) T {
		g := convGuard[E, F]{cell: m.cell, convert: convert, armed: true}
		defer g.fire()
		v := o.force(Marker[E]{cell: m.cell})
		g.disarm()
		return v
	})
}

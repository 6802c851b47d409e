// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

// Result is the direct outcome shape: a conventional tagged value holding
// either a success value of type T or a failure value of type E.
// Result implements [Outcome], so a materialized value can be forwarded
// through the protocol exactly like a deferred one.
type Result[T, E any] struct {
	ok    bool
	value T
	err   E
}

// Ok creates a success Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: true, value: v}
}

// Err creates a failure Result.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e}
}

// IsOk returns true if this is a success value.
func (r Result[T, E]) IsOk() bool {
	return r.ok
}

// IsErr returns true if this is a failure value.
func (r Result[T, E]) IsErr() bool {
	return !r.ok
}

// Get returns the success value and true, or zero and false.
func (r Result[T, E]) Get() (T, bool) {
	if r.ok {
		return r.value, true
	}
	var zero T
	return zero, false
}

// GetErr returns the failure value and true, or zero and false.
func (r Result[T, E]) GetErr() (E, bool) {
	if !r.ok {
		return r.err, true
	}
	var zero E
	return zero, false
}

// MatchResult pattern matches on the Result, calling onOk or onErr.
func MatchResult[T, E, R any](r Result[T, E], onOk func(T) R, onErr func(E) R) R {
	if r.ok {
		return onOk(r.value)
	}
	return onErr(r.err)
}

// force implements [Outcome]. A direct failure writes its payload to the
// boundary cell and raises, exactly like a deferred one; a direct success
// returns the value with no cell traffic.
func (r Result[T, E]) force(m Marker[E]) T {
	if r.ok {
		return r.value
	}
	return Throw[T](m, r.err)
}

// Resolve implements [Outcome]. A direct outcome is already materialized,
// so no catching boundary is established.
func (r Result[T, E]) Resolve() Result[T, E] {
	return r
}

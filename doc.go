// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package unwind provides asymmetric fallible-result propagation in Go.
//
// A chain of fallible calls propagates failures through panic/recover —
// the runtime's control-transfer mechanism — instead of tagged return
// values, while still exposing a conventional tagged [Result] at the
// boundaries that need to inspect one. The success path carries no tag,
// no discriminant storage, and no per-call branching on an error slot;
// the failure path pays for the unwind instead.
//
// # Design Philosophy
//
// unwind provides:
//   - A dual representation of a fallible outcome: [Result] (direct,
//     eagerly tagged) and [Deferred] (a suspended computation that raises
//     failures through a payload slot)
//   - A capability token, [Marker], that keeps the erased slot's type
//     usage statically traceable across call boundaries
//   - A conversion guard that applies error-type conversions exactly once,
//     in place, during the unwind
//   - A type-identity fast path that elides the guard — and the conversion
//     — whenever source and target error types coincide
//
// # Protocol
//
// Each [Outcome.Resolve] call opens one catching boundary: it acquires a
// cleared payload cell, issues a Marker threading that cell through the
// computation, and recovers the protocol's signal. A failing computation
// writes its failure value into the cell and panics with an internal
// signal value; the write strictly precedes the raise, and the matching
// read strictly follows the catch. Only the signal bound to the
// boundary's own cell is caught — any other panic value, including a
// signal belonging to an enclosing boundary, re-escapes unchanged.
//
// A failure that never meets a Resolve terminates the goroutine like any
// other uncaught panic.
//
// Core operations:
//
//   - [Suspend]: Create a deferred outcome from a body function
//   - [Throw]: Raise a failure from inside a body
//   - [Forward]: Call a fallible computation, converting its error type
//   - [Propagate]: Call a fallible computation with the same error type
//   - [Outcome.Resolve]: Materialize a tagged [Result] at the boundary
//
// # Forwarding and Conversion
//
// [Forward] takes an Outcome[T, E] plus the Marker[F] of the enclosing
// function's declared error type and yields T, converting E into F on the
// failure path. Two algorithmically distinct paths:
//
//   - Identity: E and F are the identical type. The marker is retyped and
//     the outcome forced directly; the conversion function is never
//     invoked. This is the dominant, zero-conversion case.
//   - Converting: a conversion guard is armed around the force. On normal
//     return it is disarmed; on unwind it fires exactly once, rewriting
//     the payload sitting in the cell.
//
// Chained forwardings compose left to right: conversions fire innermost
// first as the unwind passes each guard, so three nested calls with
// conversions E→F→G deliver g(f(e)) to the boundary.
//
// [MapError] defers a conversion the same way without the identity fast
// path, and [OnError] uses the guard mechanism to run failure-path
// cleanup. [Map], [Bind], and [Then] sequence success values without ever
// materializing a tag.
//
// # One-Shot Discipline
//
// A deferred outcome must be forwarded or resolved exactly once,
// immediately. Violating this — resolving twice, or forcing a stored
// outcome long after its boundary closed — is not memory-unsafe, but its
// protocol behavior is unspecified and not detected. Wrap with [Once] to
// get runtime enforcement: the resulting [Affine] panics on a second
// consumption and supports [Affine.TryResolve] and [Affine.Discard].
//
// # Code Generation Contract
//
// The package is designed as the runtime half of a function-rewriting
// collaborator. A transformed function keeps a tagged result type in its
// public signature and internally returns a deferred outcome whose body
// is the original function body, with every fallible sub-call routed
// through [Forward] (or [Propagate] when the error types provably match)
// under the locally declared error type:
//
//	func Parse(src string) unwind.Outcome[Node, ParseError] {
//		return unwind.Suspend(func(m unwind.Marker[ParseError]) Node {
//			toks := unwind.Forward(Lex(src), m, lexToParseError)
//			...
//			return root
//		})
//	}
//
// Callers outside the transformed chain materialize with Resolve:
//
//	node, ok := Parse(src).Resolve().Get()
//
// # Example
//
//	func checkedDivide(a, b uint32) unwind.Outcome[uint32, string] {
//		return unwind.Suspend(func(m unwind.Marker[string]) uint32 {
//			if b == 0 {
//				return unwind.Throw[uint32](m, "cannot divide by zero")
//			}
//			return a / b
//		})
//	}
//
//	func divideByMany(a uint32, bs []uint32) unwind.Outcome[[]uint32, string] {
//		return unwind.Suspend(func(m unwind.Marker[string]) []uint32 {
//			out := make([]uint32, 0, len(bs))
//			for _, b := range bs {
//				out = append(out, unwind.Propagate(checkedDivide(a, b), m))
//			}
//			return out
//		})
//	}
//
//	result := divideByMany(5, []uint32{1, 2, 3, 0}).Resolve()
//	// result == unwind.Err[[]uint32, string]("cannot divide by zero")
package unwind

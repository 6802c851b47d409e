// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

// Failure-path cleanup for outcomes.

// OnError attaches a cleanup that runs only if the outcome fails.
// The failure value is passed to cleanup and then continues propagating
// unchanged. For a deferred outcome the cleanup runs during the unwind,
// at the point the wrapping was applied.
//
// Built on [MapError] with an identity conversion, so the cleanup always
// runs on failure even when no type conversion is involved.
func OnError[T, E any](o Outcome[T, E], cleanup func(E)) Outcome[T, E] {
	return MapError(o, func(e E) E {
		cleanup(e)
		return e
	})
}

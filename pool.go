// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind

import "sync"

// Boundary cells are pooled so that a success-path Resolve costs one
// pool round trip instead of a heap allocation per boundary.
// acquireCell returns a cleared cell; releaseCell zeroes before reuse.
// A cell abandoned mid-unwind by a foreign panic is left to the GC.

var cellPool = sync.Pool{
	New: func() any { return new(cell) },
}

func acquireCell() *cell {
	return cellPool.Get().(*cell)
}

func releaseCell(c *cell) {
	c.payload = nil
	c.full = false
	cellPool.Put(c)
}

// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package unwind_test

import (
	"strconv"
	"testing"

	"code.hybscloud.com/unwind"
)

func TestMapSuccess(t *testing.T) {
	comp := unwind.Map[int, string, string](succeedWith[string](21),
		func(v int) string { return strconv.Itoa(v * 2) })
	v, ok := comp.Resolve().Get()
	if !ok || v != "42" {
		t.Fatalf("got (%q, %v), want (\"42\", true)", v, ok)
	}
}

func TestMapBypassedOnFailure(t *testing.T) {
	calls := 0
	comp := unwind.Map[int, int, string](failWith("down"),
		func(v int) int { calls++; return v })
	e, ok := comp.Resolve().GetErr()
	if !ok || e != "down" {
		t.Fatalf("got (%q, %v), want (\"down\", true)", e, ok)
	}
	if calls != 0 {
		t.Fatalf("map function invoked %d times on failure, want 0", calls)
	}
}

func TestBindChains(t *testing.T) {
	comp := unwind.Bind[int, int](succeedWith[string](20),
		func(v int) unwind.Outcome[int, string] {
			return unwind.Ok[int, string](v + 22)
		})
	v, _ := comp.Resolve().Get()
	if v != 42 {
		t.Fatalf("got %d, want 42", v)
	}
}

func TestBindShortCircuits(t *testing.T) {
	calls := 0
	comp := unwind.Bind[int, int](failWith("stop"),
		func(v int) unwind.Outcome[int, string] {
			calls++
			return unwind.Ok[int, string](v)
		})
	e, ok := comp.Resolve().GetErr()
	if !ok || e != "stop" {
		t.Fatalf("got (%q, %v), want (\"stop\", true)", e, ok)
	}
	if calls != 0 {
		t.Fatalf("bind function invoked %d times after failure, want 0", calls)
	}
}

func TestThenDiscardsFirstValue(t *testing.T) {
	comp := unwind.Then[int, int, string](succeedWith[string](1), succeedWith[string](2))
	v, _ := comp.Resolve().Get()
	if v != 2 {
		t.Fatalf("got %d, want 2", v)
	}
}

func TestThenFirstFailureAborts(t *testing.T) {
	comp := unwind.Then[int, int, string](failWith("first"), succeedWith[string](2))
	e, ok := comp.Resolve().GetErr()
	if !ok || e != "first" {
		t.Fatalf("got (%q, %v), want (\"first\", true)", e, ok)
	}
}

func TestMapErrorDeferredFailure(t *testing.T) {
	comp := unwind.MapError[int](failWith(errSyntax("raw")),
		func(e errSyntax) errParse { return errParse("wrapped: " + string(e)) })
	e, ok := comp.Resolve().GetErr()
	if !ok || e != errParse("wrapped: raw") {
		t.Fatalf("got (%q, %v), want wrapped failure", e, ok)
	}
}

func TestMapErrorDeferredSuccess(t *testing.T) {
	calls := 0
	comp := unwind.MapError[int](succeedWith[errSyntax](13),
		func(e errSyntax) errParse { calls++; return errParse(e) })
	v, _ := comp.Resolve().Get()
	if v != 13 {
		t.Fatalf("got %d, want 13", v)
	}
	if calls != 0 {
		t.Fatalf("conversion invoked %d times on success, want 0", calls)
	}
}

func TestMapErrorDirectIsEager(t *testing.T) {
	calls := 0
	out := unwind.MapError[int](unwind.Err[int, errSyntax]("now"),
		func(e errSyntax) errParse { calls++; return errParse(e) })
	if calls != 1 {
		t.Fatalf("conversion invoked %d times for a direct failure, want 1 (eager)", calls)
	}
	e, ok := out.Resolve().GetErr()
	if !ok || e != errParse("now") {
		t.Fatalf("got (%q, %v), want (\"now\", true)", e, ok)
	}

	okOut := unwind.MapError[int](unwind.Ok[int, errSyntax](3),
		func(e errSyntax) errParse { calls++; return errParse(e) })
	v, _ := okOut.Resolve().Get()
	if v != 3 || calls != 1 {
		t.Fatalf("direct success disturbed: v=%d calls=%d", v, calls)
	}
}

func TestMapErrorComposesEachOnce(t *testing.T) {
	firstCalls, secondCalls := 0, 0
	step1 := unwind.MapError[int](failWith(errSyntax("e")),
		func(e errSyntax) errParse { firstCalls++; return errParse("f(" + string(e) + ")") })
	step2 := unwind.MapError[int](step1,
		func(e errParse) errLoad { secondCalls++; return errLoad("g(" + string(e) + ")") })
	e, ok := step2.Resolve().GetErr()
	if !ok || e != errLoad("g(f(e))") {
		t.Fatalf("got (%q, %v), want (\"g(f(e))\", true)", e, ok)
	}
	if firstCalls != 1 || secondCalls != 1 {
		t.Fatalf("conversions invoked (%d, %d) times, want (1, 1)", firstCalls, secondCalls)
	}
}

func TestMapErrorIdenticalTypesStillConverts(t *testing.T) {
	// Unlike Forward, MapError never elides the conversion: a side-effecting
	// same-type mapping must run.
	calls := 0
	comp := unwind.MapError[int](failWith("tagged"),
		func(e string) string { calls++; return "[" + e + "]" })
	e, _ := comp.Resolve().GetErr()
	if e != "[tagged]" {
		t.Fatalf("got %q, want %q", e, "[tagged]")
	}
	if calls != 1 {
		t.Fatalf("conversion invoked %d times, want 1", calls)
	}
}

package lox

import (
	"bytes"
	"strings"
	"testing"
)

func runSource(t *testing.T, source string) (string, *Diagnostics) {
	t.Helper()
	var out bytes.Buffer
	diag := NewDiagnostics(&out, nil)
	interp := NewInterpreter(&out)
	Run(source, interp, diag)
	return out.String(), diag
}

func TestInterpreterClosureCounter(t *testing.T) {
	out, diag := runSource(t, `
		fun makeCounter() {
			var i = 0;
			fun count() {
				i = i + 1;
				print i;
			}
			return count;
		}
		var counter = makeCounter();
		counter();
		counter();
		counter();
	`)
	if diag.HadError() || diag.HadRuntimeError() {
		t.Fatalf("unexpected diagnostic, output so far: %q", out)
	}
	want := "1\n2\n3\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestInterpreterInheritanceAndSuper(t *testing.T) {
	out, diag := runSource(t, `
		class A {
			greet() { print "A"; }
		}
		class B < A {
			greet() {
				super.greet();
				print "B";
			}
		}
		B().greet();
	`)
	if diag.HadError() || diag.HadRuntimeError() {
		t.Fatalf("unexpected diagnostic, output so far: %q", out)
	}
	want := "A\nB\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestInterpreterInitializerReturnsThis(t *testing.T) {
	out, diag := runSource(t, `
		class Box {
			init(v) {
				this.v = v;
				return;
			}
		}
		fun make() {
			return Box(42);
		}
		print make().v;
	`)
	if diag.HadError() || diag.HadRuntimeError() {
		t.Fatalf("unexpected diagnostic, output so far: %q", out)
	}
	want := "42\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestInterpreterForLoopContinueStillRunsIncrement(t *testing.T) {
	out, diag := runSource(t, `
		for (var i = 0; i < 5; i = i + 1) {
			if (i == 2) continue;
			print i;
		}
	`)
	if diag.HadError() || diag.HadRuntimeError() {
		t.Fatalf("unexpected diagnostic, output so far: %q", out)
	}
	want := "0\n1\n3\n4\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

func TestInterpreterSelfReferentialInitializerIsAStaticError(t *testing.T) {
	_, diag := runSource(t, "{ var a = a; }")
	if !diag.HadError() {
		t.Fatalf("expected a static error (exit 65) for a self-referential initializer")
	}
	if diag.HadRuntimeError() {
		t.Fatalf("this should be caught statically, not at runtime")
	}
}

func TestInterpreterArityMismatchIsARuntimeError(t *testing.T) {
	out, diag := runSource(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	if diag.HadError() {
		t.Fatalf("arity mismatch should not be a static error")
	}
	if !diag.HadRuntimeError() {
		t.Fatalf("expected a runtime error (exit 70) for an arity mismatch")
	}
	if !strings.Contains(out, "expected 2 arguments but got 1") {
		t.Fatalf("expected an arity message, got %q", out)
	}
}

func TestInterpreterUndefinedVariableIsARuntimeError(t *testing.T) {
	_, diag := runSource(t, "print nope;")
	if !diag.HadRuntimeError() {
		t.Fatalf("expected a runtime error for an undefined variable")
	}
}

func TestInterpreterBreakStopsLoopImmediately(t *testing.T) {
	out, diag := runSource(t, `
		for (var i = 0; i < 5; i = i + 1) {
			if (i == 2) break;
			print i;
		}
	`)
	if diag.HadError() || diag.HadRuntimeError() {
		t.Fatalf("unexpected diagnostic, output so far: %q", out)
	}
	want := "0\n1\n"
	if out != want {
		t.Fatalf("got %q, want %q", out, want)
	}
}

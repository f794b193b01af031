package lox

import "testing"

func resolveSource(t *testing.T, source string) *Diagnostics {
	t.Helper()
	diag := newTestDiagnostics()
	tokens := NewLexer(source, diag).ScanTokens()
	stmts := NewParser(tokens, diag).Parse()
	if diag.HadError() {
		t.Fatalf("unexpected parse error for %q", source)
	}
	interp := NewInterpreter(&discardWriter{})
	NewResolver(interp, diag).Resolve(stmts)
	return diag
}

type discardWriter struct{}

func (*discardWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestResolverRejectsSelfReferentialInitializer(t *testing.T) {
	diag := resolveSource(t, "{ var a = a; }")
	if !diag.HadError() {
		t.Fatalf("expected an error reading a local variable in its own initializer")
	}
}

func TestResolverAllowsRecursiveNamedFunction(t *testing.T) {
	diag := resolveSource(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
	`)
	if diag.HadError() {
		t.Fatalf("recursive named function should resolve cleanly")
	}
}

func TestResolverRejectsReturnOutsideFunction(t *testing.T) {
	diag := resolveSource(t, "return 1;")
	if !diag.HadError() {
		t.Fatalf("expected an error for return at top level")
	}
}

func TestResolverRejectsValueReturnFromInitializer(t *testing.T) {
	diag := resolveSource(t, `
		class Foo {
			init() { return 1; }
		}
	`)
	if !diag.HadError() {
		t.Fatalf("expected an error for returning a value from init")
	}
}

func TestResolverAllowsBareReturnFromInitializer(t *testing.T) {
	diag := resolveSource(t, `
		class Foo {
			init() { return; }
		}
	`)
	if diag.HadError() {
		t.Fatalf("a bare return from init should resolve cleanly")
	}
}

func TestResolverRejectsSuperOutsideClass(t *testing.T) {
	diag := resolveSource(t, "super.foo();")
	if !diag.HadError() {
		t.Fatalf("expected an error for super outside a class")
	}
}

func TestResolverRejectsSuperWithoutSuperclass(t *testing.T) {
	diag := resolveSource(t, `
		class Foo {
			bar() { return super.bar(); }
		}
	`)
	if !diag.HadError() {
		t.Fatalf("expected an error for super in a class with no superclass")
	}
}

func TestResolverRejectsDuplicateLocalDeclaration(t *testing.T) {
	diag := resolveSource(t, "{ var a = 1; var a = 2; }")
	if !diag.HadError() {
		t.Fatalf("expected an error for redeclaring a local in the same scope")
	}
}

func TestResolverRejectsClassInheritingItself(t *testing.T) {
	diag := resolveSource(t, "class Oops < Oops {}")
	if !diag.HadError() {
		t.Fatalf("expected an error for a class inheriting from itself")
	}
}

package lox

import "testing"

func TestEnvironmentDefineAndGet(t *testing.T) {
	env := NewEnvironment(nil)
	env.Define("x", 1.0)

	got, err := env.Get(NewToken(IDENTIFIER, "x", nil, 1))
	if err != nil || got != 1.0 {
		t.Fatalf("Get(x) = %v, %v, want 1.0, nil", got, err)
	}
}

func TestEnvironmentGetUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	_, err := env.Get(NewToken(IDENTIFIER, "missing", nil, 1))
	if err == nil {
		t.Fatalf("expected an error for an undefined variable")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("expected a *RuntimeError, got %T", err)
	}
}

func TestEnvironmentGetFallsThroughToEnclosing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", "outer")
	inner := NewEnvironment(outer)

	got, err := inner.Get(NewToken(IDENTIFIER, "x", nil, 1))
	if err != nil || got != "outer" {
		t.Fatalf("Get(x) = %v, %v, want outer, nil", got, err)
	}
}

func TestEnvironmentAssignUndefinedIsRuntimeError(t *testing.T) {
	env := NewEnvironment(nil)
	err := env.Assign(NewToken(IDENTIFIER, "missing", nil, 1), 1.0)
	if err == nil {
		t.Fatalf("expected an error assigning to an undefined variable")
	}
}

func TestEnvironmentAssignUpdatesEnclosing(t *testing.T) {
	outer := NewEnvironment(nil)
	outer.Define("x", 1.0)
	inner := NewEnvironment(outer)

	if err := inner.Assign(NewToken(IDENTIFIER, "x", nil, 1), 2.0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := outer.Get(NewToken(IDENTIFIER, "x", nil, 1))
	if got != 2.0 {
		t.Fatalf("outer x = %v, want 2.0", got)
	}
}

func TestEnvironmentGetAtAndAssignAt(t *testing.T) {
	grandparent := NewEnvironment(nil)
	grandparent.Define("x", 1.0)
	parent := NewEnvironment(grandparent)
	child := NewEnvironment(parent)

	if got := child.GetAt(2, "x"); got != 1.0 {
		t.Fatalf("GetAt(2, x) = %v, want 1.0", got)
	}
	child.AssignAt(2, NewToken(IDENTIFIER, "x", nil, 1), 9.0)
	if got := grandparent.values["x"]; got != 9.0 {
		t.Fatalf("grandparent.x = %v, want 9.0", got)
	}
}

package lox

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestDiagnosticsErrorWireFormat(t *testing.T) {
	var out bytes.Buffer
	diag := NewDiagnostics(&out, logrus.NewEntry(logrus.New()))

	diag.Error(3, "unexpected character '@'.")

	want := "[line 3] Error: unexpected character '@'.\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
	if !diag.HadError() {
		t.Fatalf("HadError() should be true after Error")
	}
}

func TestDiagnosticsErrorAtTokenWireFormat(t *testing.T) {
	var out bytes.Buffer
	diag := NewDiagnostics(&out, logrus.NewEntry(logrus.New()))

	tok := NewToken(IDENTIFIER, "foo", nil, 7)
	diag.ErrorAtToken(tok, "expect ';' after value.")

	want := "[line 7] Error at 'foo': expect ';' after value.\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestDiagnosticsErrorAtEOFToken(t *testing.T) {
	var out bytes.Buffer
	diag := NewDiagnostics(&out, logrus.NewEntry(logrus.New()))

	diag.ErrorAtToken(NewToken(EOF, "", nil, 9), "expect expression.")

	want := "[line 9] Error at end: expect expression.\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestDiagnosticsRuntimeErrWireFormat(t *testing.T) {
	var out bytes.Buffer
	diag := NewDiagnostics(&out, logrus.NewEntry(logrus.New()))

	tok := NewToken(IDENTIFIER, "x", nil, 5)
	diag.RuntimeErr(NewRuntimeError(tok, "undefined variable 'x'."))

	want := "undefined variable 'x'.\n[line 5]\n"
	if out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
	if !diag.HadRuntimeError() {
		t.Fatalf("HadRuntimeError() should be true")
	}
}

func TestDiagnosticsResetClearsFlagsNotOutput(t *testing.T) {
	var out bytes.Buffer
	diag := NewDiagnostics(&out, logrus.NewEntry(logrus.New()))

	diag.Error(1, "boom")
	diag.Reset()

	if diag.HadError() {
		t.Fatalf("Reset() should clear HadError")
	}
	want := "[line 1] Error: boom\n"
	if out.String() != want {
		t.Fatalf("Reset() should leave written output alone: got %q, want %q", out.String(), want)
	}
}

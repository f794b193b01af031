package lox

import "testing"

func parseSource(t *testing.T, source string) []Stmt {
	t.Helper()
	diag := newTestDiagnostics()
	tokens := NewLexer(source, diag).ScanTokens()
	stmts := NewParser(tokens, diag).Parse()
	if diag.HadError() {
		t.Fatalf("unexpected parse error for %q", source)
	}
	return stmts
}

func printStmts(stmts []Stmt) string {
	printer := &AstPrinter{}
	out := ""
	for _, s := range stmts {
		out += printer.printStmt(s)
	}
	return out
}

func TestParserExpressionPrecedence(t *testing.T) {
	stmts := parseSource(t, "1 + 2 * 3;")
	got := printStmts(stmts)
	want := "(; (+ 1 (* 2 3)))"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestParserForDesugarsToLoopWithIncrementField(t *testing.T) {
	stmts := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	if len(stmts) != 1 {
		t.Fatalf("expected a single block, got %d stmts", len(stmts))
	}
	block, ok := stmts[0].(*Block)
	if !ok || len(block.statements) != 2 {
		t.Fatalf("expected for to desugar to a 2-statement block, got %#v", stmts[0])
	}
	if _, ok := block.statements[0].(*Var); !ok {
		t.Fatalf("expected initializer var statement first, got %#v", block.statements[0])
	}
	loop, ok := block.statements[1].(*Loop)
	if !ok {
		t.Fatalf("expected a Loop statement, got %#v", block.statements[1])
	}
	if loop.increment == nil {
		t.Fatalf("expected the increment to be carried on the Loop node")
	}
}

func TestParserWhileHasNilIncrement(t *testing.T) {
	stmts := parseSource(t, "while (true) print 1;")
	loop, ok := stmts[0].(*Loop)
	if !ok {
		t.Fatalf("expected a Loop statement, got %#v", stmts[0])
	}
	if loop.increment != nil {
		t.Fatalf("while should not carry an increment")
	}
}

func TestParserNamedFunctionIsAStatement(t *testing.T) {
	stmts := parseSource(t, "fun greet() { print \"hi\"; }")
	if _, ok := stmts[0].(*Function); !ok {
		t.Fatalf("expected a Function statement, got %#v", stmts[0])
	}
}

func TestParserAnonymousFunctionIsAnExpression(t *testing.T) {
	stmts := parseSource(t, "var f = fun () { return 1; };")
	v, ok := stmts[0].(*Var)
	if !ok {
		t.Fatalf("expected a Var statement, got %#v", stmts[0])
	}
	if _, ok := v.initializer.(*Lambda); !ok {
		t.Fatalf("expected the initializer to be a Lambda, got %#v", v.initializer)
	}
}

func TestParserBreakOutsideLoopIsAnError(t *testing.T) {
	diag := newTestDiagnostics()
	tokens := NewLexer("break;", diag).ScanTokens()
	NewParser(tokens, diag).Parse()
	if !diag.HadError() {
		t.Fatalf("expected a parse error for break outside a loop")
	}
}

func TestParserInvalidAssignmentTargetIsAnError(t *testing.T) {
	diag := newTestDiagnostics()
	tokens := NewLexer("1 = 2;", diag).ScanTokens()
	NewParser(tokens, diag).Parse()
	if !diag.HadError() {
		t.Fatalf("expected a parse error for an invalid assignment target")
	}
}

func TestParserClassWithSuperclassAndMethods(t *testing.T) {
	stmts := parseSource(t, "class B < A { greet() { return 1; } }")
	class, ok := stmts[0].(*Class)
	if !ok {
		t.Fatalf("expected a Class statement, got %#v", stmts[0])
	}
	if class.superclass == nil || class.superclass.name.Lexeme != "A" {
		t.Fatalf("expected superclass A, got %#v", class.superclass)
	}
	if len(class.methods) != 1 || class.methods[0].name.Lexeme != "greet" {
		t.Fatalf("expected one method named greet, got %#v", class.methods)
	}
}

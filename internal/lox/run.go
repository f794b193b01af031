package lox

// Run executes one unit of source — a whole file, or a single REPL line —
// against interp, reporting diagnostics through diag. It is the pipeline
// spec §2 describes: Lexer -> Parser -> Resolver -> Interpreter, stopping
// after either static stage if diag has already recorded an error so a
// broken program is never handed to the resolver or interpreter.
//
// The caller (cmd/golox) owns diag's lifetime: for a REPL it passes a
// fresh per-line Diagnostics (from WithRun) and reuses the same interp so
// that globals persist across lines, per spec §7.
func Run(source string, interp *Interpreter, diag *Diagnostics) {
	lexer := NewLexer(source, diag)
	tokens := lexer.ScanTokens()

	parser := NewParser(tokens, diag)
	statements := parser.Parse()

	if diag.HadError() {
		return
	}

	resolver := NewResolver(interp, diag)
	resolver.Resolve(statements)

	if diag.HadError() {
		return
	}

	if err := interp.Interpret(statements); err != nil {
		if re, ok := err.(*RuntimeError); ok {
			diag.RuntimeErr(re)
			return
		}
		panic(err)
	}
}

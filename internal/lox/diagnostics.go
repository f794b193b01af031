package lox

import (
	"fmt"
	"io"
	"strconv"

	"github.com/sirupsen/logrus"
)

// Diagnostics is the process-wide error sink described abstractly in spec
// §9 ("Global had_error flags... pass it explicitly through the pipeline
// rather than relying on module-level mutable state"). A Diagnostics is
// threaded through the Lexer, Parser and Resolver constructors and handed
// the interpreter's returned *RuntimeError by Run. The REPL driver gives
// each line a fresh copy via WithRun, so error flags never carry over
// between lines while globals stay intact, per spec §7.
type Diagnostics struct {
	out    io.Writer
	log    *logrus.Entry
	hadErr bool
	hadRun bool
}

// NewDiagnostics builds a sink that writes the spec §6 wire format to out
// and structured trace entries to log (nil uses a disabled logger, so
// Diagnostics is safe to construct without a caller wiring up logrus).
func NewDiagnostics(out io.Writer, log *logrus.Entry) *Diagnostics {
	if log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		log = logrus.NewEntry(l)
	}
	return &Diagnostics{out: out, log: log}
}

func (d *Diagnostics) HadError() bool        { return d.hadErr }
func (d *Diagnostics) HadRuntimeError() bool { return d.hadRun }

// SetOutput redirects where the spec §6 wire format is written, letting the
// REPL point a per-run Diagnostics at a fresh buffer for each line.
func (d *Diagnostics) SetOutput(out io.Writer) {
	d.out = out
}

// Reset clears the sticky error flags between REPL lines without touching
// any bindings in globals.
func (d *Diagnostics) Reset() {
	d.hadErr = false
	d.hadRun = false
}

// Error reports a lex-time diagnostic: "[line L] Error: MSG".
func (d *Diagnostics) Error(line int, message string) {
	d.report(line, "", message)
}

// ErrorAtToken reports a parse/resolve-time diagnostic positioned at tok.
func (d *Diagnostics) ErrorAtToken(tok *Token, message string) {
	if tok.Type == EOF {
		d.report(tok.Line, " at end", message)
	} else {
		d.report(tok.Line, " at '"+tok.Lexeme+"'", message)
	}
}

func (d *Diagnostics) report(line int, where string, message string) {
	d.hadErr = true
	text := "[line " + strconv.Itoa(line) + "] Error" + where + ": " + message
	fmt.Fprintln(d.out, text)
	d.log.WithFields(logrus.Fields{"line": line, "stage": "static"}).Debug(message)
}

// RuntimeErr reports a category-4 failure: "MSG\n[line L]".
func (d *Diagnostics) RuntimeErr(err *RuntimeError) {
	d.hadRun = true
	fmt.Fprintln(d.out, err.Message+"\n[line "+strconv.Itoa(err.Token.Line)+"]")
	d.log.WithFields(logrus.Fields{"line": err.Token.Line, "stage": "runtime"}).Debug(err.Message)
}

// WithRun returns a Diagnostics whose structured log entries carry run as a
// correlation field, letting a REPL session's diagnostics be tied back to
// the specific line/file that produced them.
func (d *Diagnostics) WithRun(run string) *Diagnostics {
	clone := *d
	clone.log = d.log.WithField("run_id", run)
	return &clone
}

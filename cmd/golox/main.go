// Command golox is the spec §6 driver: run a single source file, or start
// a REPL when no file is given.
package main

import (
	"bufio"
	"bytes"
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"golox/internal/config"
	"golox/internal/lox"
)

const (
	exitOK      = 0
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
)

func main() {
	configPath := flag.String("config", "", "path to a .golox.toml settings file")
	noColor := flag.Bool("no-color", false, "disable colored REPL/error output")
	flag.Parse()

	settings, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUsage)
	}
	if *noColor {
		settings.Color = false
	}

	logger := logrus.New()
	logger.SetOutput(os.Stderr)
	if level, err := logrus.ParseLevel(settings.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	args := flag.Args()
	switch len(args) {
	case 0:
		runREPL(settings, logger)
	case 1:
		os.Exit(runFile(args[0], settings, logger))
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(exitUsage)
	}
}

func runFile(path string, settings config.Settings, logger *logrus.Logger) int {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return exitUsage
	}

	base := lox.NewDiagnostics(os.Stdout, logrus.NewEntry(logger))
	diag := base.WithRun(uuid.NewString())
	interp := lox.NewInterpreter(os.Stdout)

	lox.Run(string(source), interp, diag)

	if diag.HadError() {
		return exitStatic
	}
	if diag.HadRuntimeError() {
		return exitRuntime
	}
	return exitOK
}

// runREPL reads one line at a time, running each against the same
// interpreter so that globals persist across lines (spec §7). Diagnostics
// are captured into a buffer first and replayed through errStyle, keeping
// the wire format spec §6/§8 expect untouched by the ANSI codes lipgloss
// adds — print output still streams straight to stdout, uncolored.
func runREPL(settings config.Settings, logger *logrus.Logger) {
	errStyle := lipgloss.NewStyle()
	promptStyle := lipgloss.NewStyle()
	if settings.Color {
		errStyle = errStyle.Foreground(lipgloss.Color("9"))
		promptStyle = promptStyle.Foreground(lipgloss.Color("12"))
	}

	interp := lox.NewInterpreter(os.Stdout)
	scanner := bufio.NewScanner(os.Stdin)
	base := lox.NewDiagnostics(nil, logrus.NewEntry(logger))

	for {
		fmt.Print(promptStyle.Render(settings.Prompt))
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		line := scanner.Text()

		var diagOut bytes.Buffer
		diag := base.WithRun(uuid.NewString())
		diag.SetOutput(&diagOut)

		lox.Run(line, interp, diag)

		if diagOut.Len() > 0 {
			fmt.Print(errStyle.Render(diagOut.String()))
		}
	}
}

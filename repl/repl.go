/*
File    : lox/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop for the interpreter: an
interactive session that reads one line at a time, runs it through the
same lex -> parse -> resolve -> evaluate pipeline as file mode, and keeps
the global environment and resolution table alive across lines so later
input can see variables and functions declared earlier.

The REPL uses the readline library for enhanced line editing capabilities,
the same way the teacher's REPL does.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/eval"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/resolver"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl holds the banner text shown at startup and the prompt shown before
// each line of input.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a Repl with the given display configuration.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo writes the startup banner and usage hints to writer.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type Lox statements and press enter.")
	cyanColor.Fprintf(writer, "%s\n", "Press Ctrl+D to exit.")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop against writer until EOF (Ctrl+D), which
// exits with status 0 the way the driver contract requires. had_error is
// reset between lines; had_runtime_error is informational only and is
// never reset, so a prior runtime error stays visible in the Reporter for
// the remainder of the session.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	reporter := loxerr.NewReporter(writer)
	interp := eval.New(reporter, make(map[ast.Expr]int))
	interp.Stdout = writer

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("\n"))
			break
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rl.SaveHistory(line)

		r.evalLine(line, reporter, interp)
		reporter.Reset()
	}
}

// evalLine runs one line of input through the full pipeline, reusing
// interp's environment (and thus its globals and any previously declared
// top-level names) across calls.
func (r *Repl) evalLine(line string, reporter *loxerr.Reporter, interp *eval.Evaluator) {
	lex := lexer.NewLexer(line)
	tokens := lex.Tokens()
	reporter.Lexical(lex.Errors)
	if reporter.HadError {
		return
	}

	p := parser.NewParser(tokens, reporter)
	statements := p.Parse()
	if reporter.HadError {
		return
	}

	res := resolver.New(reporter)
	res.Resolve(statements)
	if reporter.HadError {
		return
	}

	// Merge rather than replace: Locals is keyed by AST node identity, so
	// entries from earlier lines never collide with this line's, and a
	// function or closure declared on an earlier line still resolves its
	// own body's locals correctly when called from a later one.
	for expr, distance := range res.Locals {
		interp.Locals[expr] = distance
	}

	interp.Interpret(statements)
}

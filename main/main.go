/*
File    : lox/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the interpreter. It provides three
modes of operation:
1. REPL Mode (default, no arguments): interactive Read-Eval-Print Loop
2. File Mode (one argument): execute a .lox source file
3. fmt subcommand: reformat a .lox file by parsing and re-printing it

The interpreter uses a lex -> parse -> resolve -> evaluate pipeline to
process Lox source.
*/
package main

import (
	"io"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/eval"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/repl"
	"github.com/akashmaji946/lox/resolver"
)

// VERSION represents the current version of the interpreter.
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the interpreter's author.
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license.
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in REPL mode.
var PROMPT = "lox> "

// BANNER is the ASCII art logo displayed when starting the REPL.
var BANNER = `
    ▄█           ▄██████▄  ▀████    ▐████▀
   ███          ███    ███   ███▌   ████▀
   ███          ███    ███    ███  ▐███
   ███          ███    ███    ▐███ ███
   ███          ███    ███     ███▄███
   ███          ███    ███     ████▀
   ███▌    ▄    ███    ███    ▐███
   █████▄▄██     ▀██████▀    ▄███
`

// LINE is a separator line used for visual formatting in the REPL.
var LINE = "----------------------------------------------------------------"

var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// main is the entry point of the interpreter. It mirrors the book's driver
// contract: no arguments starts the REPL, one argument runs a file, and
// more than one argument is a usage error. A leading "fmt" subcommand
// reformats a file instead of running it.
//
// Usage:
//
//	lox               - start in REPL (interactive) mode
//	lox <script>      - execute the named source file
//	lox fmt <script>  - reformat the named source file and print it
//	lox --help        - display help information
//	lox --version     - display version information
func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--help", "-h":
			showHelp()
			os.Exit(0)
		case "--version", "-v":
			showVersion()
			os.Exit(0)
		case "fmt":
			if len(os.Args) != 3 {
				redColor.Fprintln(os.Stderr, "Usage: lox fmt <script>")
				os.Exit(64)
			}
			runFmt(os.Args[2])
			return
		}
	}

	switch len(os.Args) {
	case 1:
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	case 2:
		os.Exit(runFile(os.Args[1]))
	default:
		redColor.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(64)
	}
}

func showHelp() {
	cyanColor.Println("Lox - A Tree-Walking Interpreter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  lox                  Start interactive REPL mode")
	yellowColor.Println("  lox <path-to-file>    Execute a Lox file (.lox)")
	yellowColor.Println("  lox fmt <path>        Reformat a Lox file and print it")
	yellowColor.Println("  lox --help            Display this help message")
	yellowColor.Println("  lox --version         Display version information")
}

func showVersion() {
	cyanColor.Println("Lox - A Tree-Walking Interpreter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
	cyanColor.Printf("Author : %s\n", AUTHOR)
}

// runFile reads and executes a Lox source file, returning the process exit
// code the driver contract assigns: 65 for a scan/parse/resolve error, 70
// for an uncaught runtime error, 0 otherwise.
func runFile(fileName string) int {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", fileName, err)
		return 66
	}
	return run(string(fileContent), os.Stdout, os.Stderr)
}

// run executes source through the full lex -> parse -> resolve -> evaluate
// pipeline, writing program output to stdout and diagnostics to stderr, and
// reports which exit code the driver contract assigns to the outcome.
func run(source string, stdout, stderr io.Writer) int {
	reporter := loxerr.NewReporter(stderr)

	lex := lexer.NewLexer(source)
	tokens := lex.Tokens()
	reporter.Lexical(lex.Errors)
	if reporter.HadError {
		return 65
	}

	p := parser.NewParser(tokens, reporter)
	statements := p.Parse()
	if reporter.HadError {
		return 65
	}

	res := resolver.New(reporter)
	res.Resolve(statements)
	if reporter.HadError {
		return 65
	}

	interp := eval.New(reporter, res.Locals)
	interp.Stdout = stdout
	interp.Interpret(statements)
	if reporter.HadRuntimeError {
		return 70
	}
	return 0
}

// runFmt reformats a Lox file by parsing it and re-printing the AST, the
// way a source formatter normalizes whitespace without changing meaning.
// A file with syntax errors is reported and left unformatted.
func runFmt(fileName string) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", fileName, err)
		os.Exit(66)
	}

	reporter := loxerr.NewReporter(os.Stderr)
	lex := lexer.NewLexer(string(fileContent))
	tokens := lex.Tokens()
	reporter.Lexical(lex.Errors)
	if reporter.HadError {
		os.Exit(65)
	}

	p := parser.NewParser(tokens, reporter)
	statements := p.Parse()
	if reporter.HadError {
		os.Exit(65)
	}

	os.Stdout.WriteString(ast.Print(statements))
}

/*
File    : lox/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements Lox's tree-walking Interpreter: statement and
// expression evaluation over the AST the resolver has already annotated.
// It follows the shape of a classic Evaluator struct driving per-concern
// eval methods split across files, with one scope pointer swapped in and
// out around block/call entry, generalized from an error-as-return-value
// convention to idiomatic Go (value, error) returns plus an explicit
// returnSignal type for non-local control flow.
package eval

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/objects"
	"github.com/akashmaji946/lox/scope"
	"github.com/akashmaji946/lox/std"
)

// returnSignal unwinds the evaluator from a `return` statement up to the
// enclosing function call. It implements error so it can be propagated
// through the same Go error-return plumbing as a RuntimeError; executeBlock
// passes it through unchanged (after restoring the environment) and
// callFunction catches it, so it never reaches the diagnostic sink as a
// reported error.
type returnSignal struct {
	Value objects.LoxObject
}

func (r *returnSignal) Error() string { return "return" }

// Evaluator walks statements and expressions. It holds the global
// environment, the environment currently active, the resolver's
// resolution table, and the diagnostic sink.
type Evaluator struct {
	Globals  *scope.Environment
	Env      *scope.Environment
	Locals   map[ast.Expr]int
	Reporter *loxerr.Reporter
	Stdout   io.Writer
}

// New creates an Evaluator with every native global defined, using locals
// (the resolver's resolution table) for distance-indexed lookups.
func New(r *loxerr.Reporter, locals map[ast.Expr]int) *Evaluator {
	globals := scope.NewGlobal()
	for _, builtin := range std.Builtins {
		globals.Define(builtin.Name, builtin)
	}
	return &Evaluator{
		Globals:  globals,
		Env:      globals,
		Locals:   locals,
		Reporter: r,
		Stdout:   os.Stdout,
	}
}

// Interpret runs statements to completion, reporting any runtime error
// through the diagnostic sink and returning it to the caller (the CLI
// uses this to pick an exit code).
func (e *Evaluator) Interpret(statements []ast.Stmt) *loxerr.RuntimeError {
	for _, stmt := range statements {
		if err := e.execute(stmt); err != nil {
			rtErr, ok := err.(*loxerr.RuntimeError)
			if !ok {
				// A bare returnSignal escaping to top level would be an
				// interpreter defect, not a user program error.
				panic(fmt.Sprintf("uncaught non-runtime error at top level: %v", err))
			}
			e.Reporter.Runtime(rtErr)
			return rtErr
		}
	}
	return nil
}

func (e *Evaluator) execute(stmt ast.Stmt) error {
	_, err := stmt.AcceptStmt(e)
	return err
}

func (e *Evaluator) evaluate(expr ast.Expr) (objects.LoxObject, error) {
	value, err := expr.AcceptExpr(e)
	if err != nil {
		return nil, err
	}
	return value.(objects.LoxObject), nil
}

// isTruthy applies Lox's truthiness rule: everything is truthy except nil
// and the boolean false.
func isTruthy(value objects.LoxObject) bool {
	switch v := value.(type) {
	case *objects.Nil:
		return false
	case *objects.Boolean:
		return v.Value
	default:
		return true
	}
}

// isEqual applies Lox's equality rule: nil equals only nil, numbers and
// strings compare by value, booleans compare by value, everything else
// (functions, classes, instances) compares by identity.
func isEqual(a, b objects.LoxObject) bool {
	switch av := a.(type) {
	case *objects.Nil:
		_, ok := b.(*objects.Nil)
		return ok
	case *objects.Boolean:
		bv, ok := b.(*objects.Boolean)
		return ok && av.Value == bv.Value
	case *objects.Number:
		bv, ok := b.(*objects.Number)
		return ok && av.Value == bv.Value
	case *objects.String:
		bv, ok := b.(*objects.String)
		return ok && av.Value == bv.Value
	default:
		return a == b
	}
}

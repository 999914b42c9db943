/*
File    : lox/resolver/resolver.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package resolver implements Lox's static resolution pass: a single
// walk over the parsed statement list that computes, for every local
// variable reference, how many enclosing environments the evaluator must
// skip to find its binding, and reports the static-semantic errors that
// don't require running the program to detect (return outside a
// function, `this` outside a class, reading a local in its own
// initializer, redeclaration in the same scope).
//
// There is no equivalent static pass upstream (variable lookups there
// resolve everything dynamically through scope.LookUp), so this package
// is built directly on a resolver.py reference implementation, translated
// from a dict-based scope stack into a struct-and-method idiom.
package resolver

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
)

// functionType tracks what kind of function body is currently being
// resolved, used to validate `return` statements.
type functionType int

const (
	functionNone functionType = iota
	functionFunction
	functionInitializer
	functionMethod
)

// classType tracks whether `this` is currently valid.
type classType int

const (
	classNone classType = iota
	classInClass
)

// Resolver walks the AST once before evaluation and builds Locals: the
// resolution table mapping an expression node to the number of
// environments the evaluator must skip to reach its binding. Expressions
// absent from this table are resolved against the global environment.
type Resolver struct {
	Reporter *loxerr.Reporter
	Locals   map[ast.Expr]int

	scopes          []map[string]bool
	currentFunction functionType
	currentClass    classType
}

// New creates a Resolver reporting through r.
func New(r *loxerr.Reporter) *Resolver {
	return &Resolver{Reporter: r, Locals: make(map[ast.Expr]int)}
}

// Resolve runs the pass over a whole program's statement list.
func (r *Resolver) Resolve(statements []ast.Stmt) {
	r.resolveStatements(statements)
}

func (r *Resolver) resolveStatements(statements []ast.Stmt) {
	for _, stmt := range statements {
		r.resolveStmt(stmt)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	stmt.AcceptStmt(r)
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	expr.AcceptExpr(r)
}

// --- scope stack ---

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) currentScope() map[string]bool {
	if len(r.scopes) == 0 {
		return nil
	}
	return r.scopes[len(r.scopes)-1]
}

// declare inserts name -> false (not yet usable) into the innermost
// scope, or reports a duplicate-declaration error if it is already
// present there. Declaring at global scope (no scopes on the stack) is a
// no-op: top-level names are never distance-annotated.
func (r *Resolver) declare(name lexer.Token) {
	scope := r.currentScope()
	if scope == nil {
		return
	}
	if _, ok := scope[name.Lexeme]; ok {
		r.Reporter.TokenError(name, "Already a variable with this name in this scope.")
	}
	scope[name.Lexeme] = false
}

// define marks name as fully initialized and usable in the innermost
// scope.
func (r *Resolver) define(name lexer.Token) {
	scope := r.currentScope()
	if scope == nil {
		return
	}
	scope[name.Lexeme] = true
}

// resolveLocal searches the scope stack from innermost outward; on the
// first scope containing name, it records the expr -> distance mapping.
// A name not found anywhere in the stack is left out of Locals and is
// resolved as a global at evaluation time.
func (r *Resolver) resolveLocal(expr ast.Expr, name lexer.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
}

func (r *Resolver) resolveFunction(stmt *ast.Function, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, param := range stmt.Params {
		r.declare(param)
		r.define(param)
	}
	r.resolveStatements(stmt.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

/*
File    : lox/ast/expr.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines Lox's abstract syntax: the Expr and Stmt node
// variants the parser builds and the resolver/evaluator walk, dispatched
// through a Visitor pair rather than type switches, the way the teacher's
// parser package dispatches over its own node kinds.
package ast

import "github.com/akashmaji946/lox/lexer"

// Expr is any expression node. Accept dispatches to the matching method on
// an ExprVisitor. Node identity (not structural equality) is what the
// resolver's resolution table keys on, so Expr values are always pointers
// to a concrete node struct.
type Expr interface {
	AcceptExpr(v ExprVisitor) (interface{}, error)
}

// ExprVisitor is implemented once per consumer of the AST (the resolver,
// the evaluator, the printer), each giving its own meaning to every
// expression kind.
type ExprVisitor interface {
	VisitLiteralExpr(expr *Literal) (interface{}, error)
	VisitGroupingExpr(expr *Grouping) (interface{}, error)
	VisitUnaryExpr(expr *Unary) (interface{}, error)
	VisitBinaryExpr(expr *Binary) (interface{}, error)
	VisitLogicalExpr(expr *Logical) (interface{}, error)
	VisitVariableExpr(expr *Variable) (interface{}, error)
	VisitAssignExpr(expr *Assign) (interface{}, error)
	VisitCallExpr(expr *Call) (interface{}, error)
	VisitGetExpr(expr *Get) (interface{}, error)
	VisitSetExpr(expr *Set) (interface{}, error)
	VisitThisExpr(expr *This) (interface{}, error)
}

// Literal is a compile-time constant: a number, string, boolean, or nil.
type Literal struct {
	Value interface{} // float64, string, bool, or nil
}

func (e *Literal) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// Grouping is a parenthesized expression, kept as its own node so the
// printer can round-trip parentheses even though they carry no runtime
// meaning beyond overriding precedence during parsing.
type Grouping struct {
	Expression Expr
}

func (e *Grouping) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// Unary is a prefix operator application: "!" or "-".
type Unary struct {
	Operator lexer.Token
	Right    Expr
}

func (e *Unary) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// Binary is an infix operator application evaluated eagerly (both operands
// are always evaluated, unlike Logical).
type Binary struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Binary) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// Logical is "and"/"or", which short-circuit: the right operand is only
// evaluated when the left doesn't already determine the result.
type Logical struct {
	Left     Expr
	Operator lexer.Token
	Right    Expr
}

func (e *Logical) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// Variable is a bare name reference, resolved against the lexical scope
// chain (or the globals table if unresolved).
type Variable struct {
	Name lexer.Token
}

func (e *Variable) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// Assign is `name = value`, itself an expression whose value is the value
// assigned (not just a statement side effect).
type Assign struct {
	Name  lexer.Token
	Value Expr
}

func (e *Assign) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// Call is a function or class invocation: Callee(Arguments...).
type Call struct {
	Callee    Expr
	Paren     lexer.Token // the closing ')' token, used to report arity errors at
	Arguments []Expr
}

func (e *Call) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

// Get reads a property (field or method) off an object: Object.Name.
type Get struct {
	Object Expr
	Name   lexer.Token
}

func (e *Get) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitGetExpr(e) }

// Set assigns a property on an object: Object.Name = Value.
type Set struct {
	Object Expr
	Name   lexer.Token
	Value  Expr
}

func (e *Set) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitSetExpr(e) }

// This is the `this` keyword used inside a method body, resolved like any
// other variable against the scope the resolver pre-defined it in.
type This struct {
	Keyword lexer.Token
}

func (e *This) AcceptExpr(v ExprVisitor) (interface{}, error) { return v.VisitThisExpr(e) }

/*
File    : lox/ast/stmt.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import "github.com/akashmaji946/lox/lexer"

// Stmt is any statement node, dispatched the same way Expr is.
type Stmt interface {
	AcceptStmt(v StmtVisitor) (interface{}, error)
}

// StmtVisitor is implemented once per consumer of the AST.
type StmtVisitor interface {
	VisitExpressionStmt(stmt *Expression) (interface{}, error)
	VisitPrintStmt(stmt *PrintStmt) (interface{}, error)
	VisitVarStmt(stmt *Var) (interface{}, error)
	VisitBlockStmt(stmt *Block) (interface{}, error)
	VisitIfStmt(stmt *If) (interface{}, error)
	VisitWhileStmt(stmt *While) (interface{}, error)
	VisitFunctionStmt(stmt *Function) (interface{}, error)
	VisitReturnStmt(stmt *Return) (interface{}, error)
	VisitClassStmt(stmt *Class) (interface{}, error)
}

// Expression is a bare expression used for its side effect.
type Expression struct {
	Expression Expr
}

func (s *Expression) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitExpressionStmt(s) }

// PrintStmt evaluates an expression and writes its stringified value.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitPrintStmt(s) }

// Var is a variable declaration, with an optional initializer; an absent
// initializer binds the name to nil.
type Var struct {
	Name        lexer.Token
	Initializer Expr // nil if no initializer was given
}

func (s *Var) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitVarStmt(s) }

// Block is a `{ ... }` statement list, each executed in a fresh
// environment nested in the one active when the block was entered.
type Block struct {
	Statements []Stmt
}

func (s *Block) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitBlockStmt(s) }

// If is a conditional; ElseBranch is nil when there is no else clause.
type If struct {
	Condition  Expr
	ThenBranch Stmt
	ElseBranch Stmt // nil if absent
}

func (s *If) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitIfStmt(s) }

// While is a condition-checked loop. `for` loops are desugared to this
// during parsing, so the evaluator never sees a separate for-loop node.
type While struct {
	Condition Expr
	Body      Stmt
}

func (s *While) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitWhileStmt(s) }

// Function is a named function declaration (top-level `fun` statement or
// a method inside a class body — both share this shape).
type Function struct {
	Name   lexer.Token
	Params []lexer.Token
	Body   []Stmt
}

func (s *Function) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitFunctionStmt(s) }

// Return unwinds the enclosing function call. Value is nil for a bare
// `return;`.
type Return struct {
	Keyword lexer.Token
	Value   Expr // nil if no value was given
}

func (s *Return) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitReturnStmt(s) }

// Class is a class declaration: a name and its method table. This
// implementation has no superclass clause (see the open-question notes in
// DESIGN.md on why `super` is not supported).
type Class struct {
	Name    lexer.Token
	Methods []*Function
}

func (s *Class) AcceptStmt(v StmtVisitor) (interface{}, error) { return v.VisitClassStmt(s) }

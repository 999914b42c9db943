/*
File    : lox/ast/printer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

const indentSize = 2

// Printer renders a statement list back to Lox source text. It backs the
// `lox fmt` subcommand and the parser-idempotence property test: printing
// then re-parsing a desugared-for-free program should produce a
// structurally identical AST. Grounded on the teacher's indenting
// PrintingVisitor (main/print_visitor.go), generalized from a debug tree
// dump to real, re-parseable Lox source.
type Printer struct {
	indent int
	buf    strings.Builder
}

// Print renders a full program (a statement list) to Lox source text.
func Print(statements []Stmt) string {
	p := &Printer{}
	for _, stmt := range statements {
		p.printIndent()
		stmt.AcceptStmt(p)
		p.buf.WriteString("\n")
	}
	return p.buf.String()
}

// PrintExpr renders a single expression to Lox source text, with no
// trailing statement punctuation.
func PrintExpr(expr Expr) string {
	p := &Printer{}
	expr.AcceptExpr(p)
	return p.buf.String()
}

func (p *Printer) printIndent() {
	p.buf.WriteString(strings.Repeat(" ", p.indent))
}

func (p *Printer) block(statements []Stmt) {
	p.buf.WriteString("{\n")
	p.indent += indentSize
	for _, stmt := range statements {
		p.printIndent()
		stmt.AcceptStmt(p)
		p.buf.WriteString("\n")
	}
	p.indent -= indentSize
	p.printIndent()
	p.buf.WriteString("}")
}

// --- StmtVisitor ---

func (p *Printer) VisitExpressionStmt(stmt *Expression) (interface{}, error) {
	stmt.Expression.AcceptExpr(p)
	p.buf.WriteString(";")
	return nil, nil
}

func (p *Printer) VisitPrintStmt(stmt *PrintStmt) (interface{}, error) {
	p.buf.WriteString("print ")
	stmt.Expression.AcceptExpr(p)
	p.buf.WriteString(";")
	return nil, nil
}

func (p *Printer) VisitVarStmt(stmt *Var) (interface{}, error) {
	p.buf.WriteString("var ")
	p.buf.WriteString(stmt.Name.Lexeme)
	if stmt.Initializer != nil {
		p.buf.WriteString(" = ")
		stmt.Initializer.AcceptExpr(p)
	}
	p.buf.WriteString(";")
	return nil, nil
}

func (p *Printer) VisitBlockStmt(stmt *Block) (interface{}, error) {
	p.block(stmt.Statements)
	return nil, nil
}

func (p *Printer) VisitIfStmt(stmt *If) (interface{}, error) {
	p.buf.WriteString("if (")
	stmt.Condition.AcceptExpr(p)
	p.buf.WriteString(") ")
	stmt.ThenBranch.AcceptStmt(p)
	if stmt.ElseBranch != nil {
		p.buf.WriteString(" else ")
		stmt.ElseBranch.AcceptStmt(p)
	}
	return nil, nil
}

func (p *Printer) VisitWhileStmt(stmt *While) (interface{}, error) {
	p.buf.WriteString("while (")
	stmt.Condition.AcceptExpr(p)
	p.buf.WriteString(") ")
	stmt.Body.AcceptStmt(p)
	return nil, nil
}

func (p *Printer) VisitFunctionStmt(stmt *Function) (interface{}, error) {
	p.buf.WriteString("fun ")
	p.printFunctionTail(stmt)
	return nil, nil
}

// printFunctionTail renders "name(params) { body }" — shared between a
// top-level `fun` statement (which prefixes "fun ") and a method inside a
// class body (which does not).
func (p *Printer) printFunctionTail(stmt *Function) {
	p.buf.WriteString(stmt.Name.Lexeme)
	p.buf.WriteString("(")
	for i, param := range stmt.Params {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		p.buf.WriteString(param.Lexeme)
	}
	p.buf.WriteString(") ")
	p.block(stmt.Body)
}

func (p *Printer) VisitReturnStmt(stmt *Return) (interface{}, error) {
	p.buf.WriteString("return")
	if stmt.Value != nil {
		p.buf.WriteString(" ")
		stmt.Value.AcceptExpr(p)
	}
	p.buf.WriteString(";")
	return nil, nil
}

func (p *Printer) VisitClassStmt(stmt *Class) (interface{}, error) {
	p.buf.WriteString("class ")
	p.buf.WriteString(stmt.Name.Lexeme)
	p.buf.WriteString(" {\n")
	p.indent += indentSize
	for _, method := range stmt.Methods {
		p.printIndent()
		p.printFunctionTail(method)
		p.buf.WriteString("\n")
	}
	p.indent -= indentSize
	p.printIndent()
	p.buf.WriteString("}")
	return nil, nil
}

// --- ExprVisitor ---

func (p *Printer) VisitLiteralExpr(expr *Literal) (interface{}, error) {
	switch v := expr.Value.(type) {
	case nil:
		p.buf.WriteString("nil")
	case bool:
		p.buf.WriteString(strconv.FormatBool(v))
	case float64:
		p.buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	case string:
		// Lox strings have no escape sequences and cannot contain '"', so
		// the raw value between quotes reads back as the same literal.
		p.buf.WriteString("\"" + v + "\"")
	default:
		p.buf.WriteString(fmt.Sprintf("%v", v))
	}
	return nil, nil
}

func (p *Printer) VisitGroupingExpr(expr *Grouping) (interface{}, error) {
	p.buf.WriteString("(")
	expr.Expression.AcceptExpr(p)
	p.buf.WriteString(")")
	return nil, nil
}

func (p *Printer) VisitUnaryExpr(expr *Unary) (interface{}, error) {
	p.buf.WriteString(expr.Operator.Lexeme)
	expr.Right.AcceptExpr(p)
	return nil, nil
}

func (p *Printer) VisitBinaryExpr(expr *Binary) (interface{}, error) {
	expr.Left.AcceptExpr(p)
	p.buf.WriteString(" " + expr.Operator.Lexeme + " ")
	expr.Right.AcceptExpr(p)
	return nil, nil
}

func (p *Printer) VisitLogicalExpr(expr *Logical) (interface{}, error) {
	expr.Left.AcceptExpr(p)
	p.buf.WriteString(" " + expr.Operator.Lexeme + " ")
	expr.Right.AcceptExpr(p)
	return nil, nil
}

func (p *Printer) VisitVariableExpr(expr *Variable) (interface{}, error) {
	p.buf.WriteString(expr.Name.Lexeme)
	return nil, nil
}

func (p *Printer) VisitAssignExpr(expr *Assign) (interface{}, error) {
	p.buf.WriteString(expr.Name.Lexeme)
	p.buf.WriteString(" = ")
	expr.Value.AcceptExpr(p)
	return nil, nil
}

func (p *Printer) VisitCallExpr(expr *Call) (interface{}, error) {
	expr.Callee.AcceptExpr(p)
	p.buf.WriteString("(")
	for i, arg := range expr.Arguments {
		if i > 0 {
			p.buf.WriteString(", ")
		}
		arg.AcceptExpr(p)
	}
	p.buf.WriteString(")")
	return nil, nil
}

func (p *Printer) VisitGetExpr(expr *Get) (interface{}, error) {
	expr.Object.AcceptExpr(p)
	p.buf.WriteString(".")
	p.buf.WriteString(expr.Name.Lexeme)
	return nil, nil
}

func (p *Printer) VisitSetExpr(expr *Set) (interface{}, error) {
	expr.Object.AcceptExpr(p)
	p.buf.WriteString(".")
	p.buf.WriteString(expr.Name.Lexeme)
	p.buf.WriteString(" = ")
	expr.Value.AcceptExpr(p)
	return nil, nil
}

func (p *Printer) VisitThisExpr(expr *This) (interface{}, error) {
	p.buf.WriteString("this")
	return nil, nil
}

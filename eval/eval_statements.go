/*
File    : lox/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"fmt"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/function"
	"github.com/akashmaji946/lox/objects"
	"github.com/akashmaji946/lox/scope"
)

func (e *Evaluator) VisitExpressionStmt(stmt *ast.Expression) (interface{}, error) {
	_, err := e.evaluate(stmt.Expression)
	return nil, err
}

func (e *Evaluator) VisitPrintStmt(stmt *ast.PrintStmt) (interface{}, error) {
	value, err := e.evaluate(stmt.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(e.Stdout, value.ToString())
	return nil, nil
}

func (e *Evaluator) VisitVarStmt(stmt *ast.Var) (interface{}, error) {
	var value objects.LoxObject = objects.NilValue
	if stmt.Initializer != nil {
		v, err := e.evaluate(stmt.Initializer)
		if err != nil {
			return nil, err
		}
		value = v
	}
	e.Env.Define(stmt.Name.Lexeme, value)
	return nil, nil
}

func (e *Evaluator) VisitBlockStmt(stmt *ast.Block) (interface{}, error) {
	return nil, e.executeBlock(stmt.Statements, scope.NewEnclosed(e.Env))
}

// executeBlock runs statements against env, restoring the previously active
// environment on the way out regardless of how execution ends — normal
// completion, a runtime error, or a returnSignal unwinding through it.
func (e *Evaluator) executeBlock(statements []ast.Stmt, env *scope.Environment) error {
	previous := e.Env
	e.Env = env
	defer func() { e.Env = previous }()

	for _, stmt := range statements {
		if err := e.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (e *Evaluator) VisitIfStmt(stmt *ast.If) (interface{}, error) {
	cond, err := e.evaluate(stmt.Condition)
	if err != nil {
		return nil, err
	}
	if isTruthy(cond) {
		return nil, e.execute(stmt.ThenBranch)
	} else if stmt.ElseBranch != nil {
		return nil, e.execute(stmt.ElseBranch)
	}
	return nil, nil
}

func (e *Evaluator) VisitWhileStmt(stmt *ast.While) (interface{}, error) {
	for {
		cond, err := e.evaluate(stmt.Condition)
		if err != nil {
			return nil, err
		}
		if !isTruthy(cond) {
			return nil, nil
		}
		if err := e.execute(stmt.Body); err != nil {
			return nil, err
		}
	}
}

func (e *Evaluator) VisitFunctionStmt(stmt *ast.Function) (interface{}, error) {
	fn := function.NewFunction(stmt.Name.Lexeme, stmt.Params, stmt.Body, e.Env, false)
	e.Env.Define(stmt.Name.Lexeme, fn)
	return nil, nil
}

func (e *Evaluator) VisitReturnStmt(stmt *ast.Return) (interface{}, error) {
	var value objects.LoxObject = objects.NilValue
	if stmt.Value != nil {
		v, err := e.evaluate(stmt.Value)
		if err != nil {
			return nil, err
		}
		value = v
	}
	return nil, &returnSignal{Value: value}
}

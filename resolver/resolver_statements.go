/*
File    : lox/resolver/resolver_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import "github.com/akashmaji946/lox/ast"

func (r *Resolver) VisitBlockStmt(stmt *ast.Block) (interface{}, error) {
	r.beginScope()
	r.resolveStatements(stmt.Statements)
	r.endScope()
	return nil, nil
}

func (r *Resolver) VisitVarStmt(stmt *ast.Var) (interface{}, error) {
	r.declare(stmt.Name)
	if stmt.Initializer != nil {
		r.resolveExpr(stmt.Initializer)
	}
	r.define(stmt.Name)
	return nil, nil
}

func (r *Resolver) VisitFunctionStmt(stmt *ast.Function) (interface{}, error) {
	r.declare(stmt.Name)
	r.define(stmt.Name)
	r.resolveFunction(stmt, functionFunction)
	return nil, nil
}

func (r *Resolver) VisitExpressionStmt(stmt *ast.Expression) (interface{}, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitIfStmt(stmt *ast.If) (interface{}, error) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.ThenBranch)
	if stmt.ElseBranch != nil {
		r.resolveStmt(stmt.ElseBranch)
	}
	return nil, nil
}

func (r *Resolver) VisitPrintStmt(stmt *ast.PrintStmt) (interface{}, error) {
	r.resolveExpr(stmt.Expression)
	return nil, nil
}

func (r *Resolver) VisitReturnStmt(stmt *ast.Return) (interface{}, error) {
	if r.currentFunction == functionNone {
		r.Reporter.TokenError(stmt.Keyword, "Can't return from top-level code.")
	}
	if stmt.Value != nil {
		if r.currentFunction == functionInitializer {
			r.Reporter.TokenError(stmt.Keyword, "Can't return a value from an initializer.")
		}
		r.resolveExpr(stmt.Value)
	}
	return nil, nil
}

func (r *Resolver) VisitWhileStmt(stmt *ast.While) (interface{}, error) {
	r.resolveExpr(stmt.Condition)
	r.resolveStmt(stmt.Body)
	return nil, nil
}

func (r *Resolver) VisitClassStmt(stmt *ast.Class) (interface{}, error) {
	enclosingClass := r.currentClass
	r.currentClass = classInClass

	r.declare(stmt.Name)
	r.define(stmt.Name)

	r.beginScope()
	r.currentScope()["this"] = true

	for _, method := range stmt.Methods {
		declaration := functionMethod
		if method.Name.Lexeme == "init" {
			declaration = functionInitializer
		}
		r.resolveFunction(method, declaration)
	}

	r.endScope()

	r.currentClass = enclosingClass
	return nil, nil
}

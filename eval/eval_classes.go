/*
File    : lox/eval/eval_classes.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/function"
	"github.com/akashmaji946/lox/objects"
	"github.com/akashmaji946/lox/scope"
)

// VisitClassStmt declares the class name first (so a method body that
// references the class itself by name sees it), builds the method table,
// then binds the finished Class over the placeholder.
func (e *Evaluator) VisitClassStmt(stmt *ast.Class) (interface{}, error) {
	e.Env.Define(stmt.Name.Lexeme, objects.NilValue)

	class := objects.NewClass(stmt.Name.Lexeme)
	for _, method := range stmt.Methods {
		isInitializer := method.Name.Lexeme == "init"
		class.Methods[method.Name.Lexeme] = function.NewFunction(method.Name.Lexeme, method.Params, method.Body, e.Env, isInitializer)
	}

	e.Env.Define(stmt.Name.Lexeme, class)
	return nil, nil
}

// callFunction runs a user-defined function or method body against a fresh
// environment enclosed by its closure, with parameters bound to args. A
// returnSignal unwinds here rather than propagating further. An
// initializer always yields the bound instance ("this"), regardless of
// whether its body executed an explicit bare `return`.
func (e *Evaluator) callFunction(fn *function.Function, args []objects.LoxObject) (objects.LoxObject, error) {
	env := scope.NewEnclosed(fn.Closure)
	for i, param := range fn.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := e.executeBlock(fn.Body, env)
	if err != nil {
		if ret, ok := err.(*returnSignal); ok {
			if fn.IsInitializer {
				return fn.Closure.GetAt(0, "this"), nil
			}
			return ret.Value, nil
		}
		return nil, err
	}
	if fn.IsInitializer {
		return fn.Closure.GetAt(0, "this"), nil
	}
	return objects.NilValue, nil
}

// instantiate constructs an Instance of class and, if it declares an
// "init" method, runs it bound to the new instance.
func (e *Evaluator) instantiate(class *objects.Class, args []objects.LoxObject) (objects.LoxObject, error) {
	instance := objects.NewInstance(class)
	if init, ok := class.FindMethod("init"); ok {
		bound := init.Bind(instance)
		fn, ok := bound.(*function.Function)
		if !ok {
			return nil, nil
		}
		if _, err := e.callFunction(fn, args); err != nil {
			return nil, err
		}
	}
	return instance, nil
}

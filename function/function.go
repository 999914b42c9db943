/*
File    : lox/function/function.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package function implements LoxFunction, the runtime representation of a
// user-defined function or method. It captures the defining scope for
// closures and knows how to bind itself to an instance for method calls.
package function

import (
	"fmt"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/objects"
	"github.com/akashmaji946/lox/scope"
)

// Function represents a user-defined Lox function or method.
//
// Fields:
//   - Name: the function's declared name, used for display and error
//     messages (anonymous function values are not part of this language).
//   - Params: the parameter name tokens, bound to argument values on call.
//   - Body: the block of statements to execute when called.
//   - Closure: the scope active when the function was declared; enables
//     closures over enclosing locals.
//   - IsInitializer: true for a class's "init" method, which always
//     returns the bound instance regardless of its own return statement.
type Function struct {
	Name          string
	Params        []lexer.Token
	Body          []ast.Stmt
	Closure       *scope.Environment
	IsInitializer bool
}

// NewFunction builds a Function capturing closure as its defining scope.
func NewFunction(name string, params []lexer.Token, body []ast.Stmt, closure *scope.Environment, isInitializer bool) *Function {
	return &Function{Name: name, Params: params, Body: body, Closure: closure, IsInitializer: isInitializer}
}

func (f *Function) GetType() objects.LoxType { return objects.FunctionType }

func (f *Function) ToString() string {
	return fmt.Sprintf("<fn %s>", f.Name)
}

// Arity is the number of declared parameters.
func (f *Function) Arity() int {
	return len(f.Params)
}

// Bind returns a new Function whose closure additionally defines "this" as
// the given instance, one environment deeper than the method's original
// closure. This is how a method looked up via Instance.Get ends up seeing
// the right receiver when it is later called.
func (f *Function) Bind(instance *objects.Instance) objects.LoxCallableFunction {
	env := scope.NewEnclosed(f.Closure)
	env.Define("this", instance)
	return NewFunction(f.Name, f.Params, f.Body, env, f.IsInitializer)
}

/*
File    : lox/scope/scope.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package scope implements Lox's lexically linked Environment: a chain of
// variable-binding maps, one per block/function/call, each pointing to the
// scope enclosing it. Local variable access goes through the
// resolver-computed distance (GetAt/AssignAt); only the global scope is
// reached by walking the Enclosing chain.
package scope

import (
	"fmt"

	"github.com/akashmaji946/lox/objects"
)

// Environment is a single scope frame: its own variable bindings plus a
// link to the scope that encloses it (nil for the global environment).
type Environment struct {
	Values    map[string]objects.LoxObject
	Enclosing *Environment
}

// NewGlobal creates the outermost environment, with no enclosing scope.
func NewGlobal() *Environment {
	return &Environment{Values: make(map[string]objects.LoxObject)}
}

// NewEnclosed creates a new environment nested directly inside enclosing,
// the way entering a block or calling a function does.
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{Values: make(map[string]objects.LoxObject), Enclosing: enclosing}
}

// Define binds name to value in this environment. A redefinition in the
// same scope silently replaces the previous binding. The resolver already
// rejects `var a = 1; var a = 2;` inside a block, so in practice only the
// global scope sees a redefinition.
func (e *Environment) Define(name string, value objects.LoxObject) {
	e.Values[name] = value
}

// Get looks up name by walking outward through enclosing scopes. It is
// used only for globals and for the "assume undeclared names are global"
// fallback; resolved local reads use GetAt instead.
func (e *Environment) Get(name string) (objects.LoxObject, error) {
	if value, ok := e.Values[name]; ok {
		return value, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign updates an existing binding for name, walking outward through
// enclosing scopes until it is found. It is an error to assign to a name
// that was never declared.
func (e *Environment) Assign(name string, value objects.LoxObject) error {
	if _, ok := e.Values[name]; ok {
		e.Values[name] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}

// ancestor walks exactly distance links up the Enclosing chain. The
// resolver guarantees distance never overruns the chain for a correctly
// resolved program, so a nil Enclosing here would indicate a resolver bug.
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name directly from the environment distance scopes out,
// with no fallthrough to further-enclosing scopes. This is how resolved
// local variable reads are implemented: the resolver has already computed
// exactly how many scopes to skip.
func (e *Environment) GetAt(distance int, name string) objects.LoxObject {
	return e.ancestor(distance).Values[name]
}

// AssignAt writes name directly into the environment distance scopes out,
// the assignment counterpart to GetAt.
func (e *Environment) AssignAt(distance int, name string, value objects.LoxObject) {
	e.ancestor(distance).Values[name] = value
}

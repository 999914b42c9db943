/*
File    : lox/std/clock.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package std registers this language's native globals, the way the
// teacher's std package registers its builtins into a global table for the
// evaluator to bind. Lox's surface is a single native: clock.
package std

import (
	"time"

	"github.com/akashmaji946/lox/objects"
)

// NativeFunction adapts a Go function to objects.Callable so the evaluator
// can invoke it through the same call path as a user-defined function or a
// class constructor.
type NativeFunction struct {
	Name  string
	arity int
	Fn    func(args []objects.LoxObject) (objects.LoxObject, error)
}

func (n *NativeFunction) GetType() objects.LoxType { return objects.FunctionType }
func (n *NativeFunction) ToString() string         { return "<native fn>" }
func (n *NativeFunction) Arity() int               { return n.arity }

// Call invokes the native's implementation directly; natives never need
// access to the evaluator's environment chain.
func (n *NativeFunction) Call(args []objects.LoxObject) (objects.LoxObject, error) {
	return n.Fn(args)
}

// Builtins lists every native global this language defines at startup.
var Builtins = []*NativeFunction{
	{
		Name:  "clock",
		arity: 0,
		Fn: func(args []objects.LoxObject) (objects.LoxObject, error) {
			return &objects.Number{Value: float64(time.Now().UnixNano()) / 1e9}, nil
		},
	},
}

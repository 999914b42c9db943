/*
File    : lox/objects/class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import "fmt"

// LoxCallableFunction is the subset of function.Function that objects needs
// in order to model classes and method binding, kept as an interface here
// to avoid an import cycle between objects and function.
type LoxCallableFunction interface {
	Callable
	// Bind returns a copy of the function whose closure additionally binds
	// "this" to the given instance, for method dispatch.
	Bind(instance *Instance) LoxCallableFunction
}

// Class represents a Lox class: a name and a table of methods. Classes are
// themselves callable — calling a class constructs an Instance and, if an
// "init" method is defined, runs it against the new instance.
type Class struct {
	Name    string
	Methods map[string]LoxCallableFunction
}

// NewClass builds a Class with an empty method table.
func NewClass(name string) *Class {
	return &Class{Name: name, Methods: make(map[string]LoxCallableFunction)}
}

func (c *Class) GetType() LoxType { return ClassType }
func (c *Class) ToString() string { return c.Name }

// FindMethod looks up a method by name directly on this class. Lox classes
// in this implementation have no superclass, so there is no chain to walk.
func (c *Class) FindMethod(name string) (LoxCallableFunction, bool) {
	m, ok := c.Methods[name]
	return m, ok
}

// Arity reports the constructor's argument count, or 0 if the class has no
// "init" method.
func (c *Class) Arity() int {
	if init, ok := c.FindMethod("init"); ok {
		return init.Arity()
	}
	return 0
}

// Instance is a runtime object constructed from a Class. Fields holds the
// instance's own mutable properties; methods are looked up on the class.
type Instance struct {
	Class  *Class
	Fields map[string]LoxObject
}

// NewInstance creates an instance of the given class with no fields set.
func NewInstance(class *Class) *Instance {
	return &Instance{Class: class, Fields: make(map[string]LoxObject)}
}

func (i *Instance) GetType() LoxType { return ObjectType }
func (i *Instance) ToString() string { return fmt.Sprintf("%s instance", i.Class.Name) }

// Get resolves a property access: fields are checked before methods, and a
// method found this way is bound to the instance so later calls to it see
// the right "this". Returns ok=false when neither a field nor a method by
// this name exists.
func (i *Instance) Get(name string) (LoxObject, bool) {
	if value, ok := i.Fields[name]; ok {
		return value, true
	}
	if method, ok := i.Class.FindMethod(name); ok {
		return method.Bind(i), true
	}
	return nil, false
}

// Set assigns a field on the instance, creating it if it does not already
// exist. Lox instances may always add new fields; there is no field
// declaration list to validate against.
func (i *Instance) Set(name string, value LoxObject) {
	i.Fields[name] = value
}

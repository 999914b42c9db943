/*
File    : lox/resolver/resolver_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package resolver

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/parser"
)

func resolve(t *testing.T, source string) (*Resolver, *loxerr.Reporter) {
	t.Helper()
	lex := lexer.NewLexer(source)
	tokens := lex.Tokens()
	var out bytes.Buffer
	reporter := loxerr.NewReporter(&out)
	statements := parser.NewParser(tokens, reporter).Parse()
	require.False(t, reporter.HadError, "fixture must parse cleanly")

	r := New(reporter)
	r.Resolve(statements)
	return r, reporter
}

func TestResolver_LocalVariableGetsDistance(t *testing.T) {
	r, reporter := resolve(t, `
{
  var a = 1;
  print a;
}
`)
	assert.False(t, reporter.HadError)
	assert.NotEmpty(t, r.Locals, "the inner 'print a' should resolve to a local distance")
}

func TestResolver_GlobalVariableHasNoDistance(t *testing.T) {
	r, reporter := resolve(t, `
var a = 1;
print a;
`)
	assert.False(t, reporter.HadError)
	assert.Empty(t, r.Locals, "top-level identifiers are never distance-annotated")
}

func TestResolver_SelfReferenceInInitializerErrors(t *testing.T) {
	_, reporter := resolve(t, `
{
  var a = a;
}
`)
	assert.True(t, reporter.HadError)
}

func TestResolver_DuplicateDeclarationInSameScopeErrors(t *testing.T) {
	_, reporter := resolve(t, `
{
  var a = 1;
  var a = 2;
}
`)
	assert.True(t, reporter.HadError)
}

func TestResolver_ReturnOutsideFunctionErrors(t *testing.T) {
	_, reporter := resolve(t, `return 1;`)
	assert.True(t, reporter.HadError)
}

func TestResolver_ReturnValueFromInitializerErrors(t *testing.T) {
	_, reporter := resolve(t, `
class C {
  init() { return 1; }
}
`)
	assert.True(t, reporter.HadError)
}

func TestResolver_BareReturnFromInitializerIsFine(t *testing.T) {
	_, reporter := resolve(t, `
class C {
  init() { return; }
}
`)
	assert.False(t, reporter.HadError)
}

func TestResolver_ThisOutsideClassErrors(t *testing.T) {
	_, reporter := resolve(t, `print this;`)
	assert.True(t, reporter.HadError)
}

func TestResolver_ThisInsideMethodResolvesAtDistanceOne(t *testing.T) {
	r, reporter := resolve(t, `
class C {
  show() { print this; }
}
`)
	assert.False(t, reporter.HadError)

	found := false
	for expr, distance := range r.Locals {
		if _, ok := expr.(*ast.This); ok {
			assert.Equal(t, 1, distance)
			found = true
		}
	}
	assert.True(t, found, "expected a resolved 'this' expression")
}

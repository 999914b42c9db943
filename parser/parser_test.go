/*
File    : lox/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
)

func parse(t *testing.T, source string) ([]ast.Stmt, *loxerr.Reporter) {
	t.Helper()
	lex := lexer.NewLexer(source)
	tokens := lex.Tokens()
	require.Empty(t, lex.Errors)

	var out bytes.Buffer
	reporter := loxerr.NewReporter(&out)
	p := NewParser(tokens, reporter)
	statements := p.Parse()
	return statements, reporter
}

func TestParser_VarDeclaration(t *testing.T) {
	statements, reporter := parse(t, `var a = 1 + 2;`)
	require.False(t, reporter.HadError)
	require.Len(t, statements, 1)

	varStmt, ok := statements[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "a", varStmt.Name.Lexeme)
	binary, ok := varStmt.Initializer.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, lexer.PLUS, binary.Operator.Type)
}

func TestParser_AssignmentTargetRewriting(t *testing.T) {
	statements, reporter := parse(t, `a = 1; obj.field = 2;`)
	require.False(t, reporter.HadError)
	require.Len(t, statements, 2)

	exprStmt := statements[0].(*ast.Expression)
	_, isAssign := exprStmt.Expression.(*ast.Assign)
	assert.True(t, isAssign)

	setStmt := statements[1].(*ast.Expression)
	_, isSet := setStmt.Expression.(*ast.Set)
	assert.True(t, isSet)
}

func TestParser_InvalidAssignmentTarget(t *testing.T) {
	_, reporter := parse(t, `1 + 2 = 3;`)
	assert.True(t, reporter.HadError)
}

func TestParser_ForDesugarsToWhile(t *testing.T) {
	statements, reporter := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.False(t, reporter.HadError)
	require.Len(t, statements, 1)

	outer, ok := statements[0].(*ast.Block)
	require.True(t, ok, "for loop with an initializer desugars to an outer block")
	require.Len(t, outer.Statements, 2)

	_, isVar := outer.Statements[0].(*ast.Var)
	assert.True(t, isVar)

	whileStmt, ok := outer.Statements[1].(*ast.While)
	require.True(t, ok)

	body, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok, "a for loop with an increment desugars its body to a block")
	require.Len(t, body.Statements, 2)
}

func TestParser_ClassDeclaration(t *testing.T) {
	statements, reporter := parse(t, `
class Greeter {
  init(name) { this.name = name; }
  hi() { print "hi, " + this.name; }
}
`)
	require.False(t, reporter.HadError)
	require.Len(t, statements, 1)

	class, ok := statements[0].(*ast.Class)
	require.True(t, ok)
	assert.Equal(t, "Greeter", class.Name.Lexeme)
	require.Len(t, class.Methods, 2)
	assert.Equal(t, "init", class.Methods[0].Name.Lexeme)
	assert.Equal(t, "hi", class.Methods[1].Name.Lexeme)
}

func TestParser_ArityCapReportsButContinues(t *testing.T) {
	var args []string
	for i := 0; i < 256; i++ {
		args = append(args, "1")
	}
	source := "f(" + strings.Join(args, ", ") + ");"

	_, reporter := parse(t, source)
	assert.True(t, reporter.HadError)
}

func TestParser_ExactlyMaxArgumentsIsLegal(t *testing.T) {
	var args []string
	for i := 0; i < 255; i++ {
		args = append(args, "1")
	}
	source := "f(" + strings.Join(args, ", ") + ");"

	_, reporter := parse(t, source)
	assert.False(t, reporter.HadError)
}

func TestParser_SynchronizeAfterErrorStillParsesFollowingDeclarations(t *testing.T) {
	statements, reporter := parse(t, `var = 1; var b = 2;`)
	assert.True(t, reporter.HadError)
	require.Len(t, statements, 1)
	varStmt, ok := statements[0].(*ast.Var)
	require.True(t, ok)
	assert.Equal(t, "b", varStmt.Name.Lexeme)
}

func TestParser_IdempotentPrintAndReparse(t *testing.T) {
	statements, reporter := parse(t, `var a = 1 + 2; print a;`)
	require.False(t, reporter.HadError)

	printed := ast.Print(statements)
	reparsed, reporter2 := parse(t, printed)
	require.False(t, reporter2.HadError)

	assert.Equal(t, ast.Print(statements), ast.Print(reparsed))
}

/*
File    : lox/eval/eval_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/lexer"
	"github.com/akashmaji946/lox/loxerr"
	"github.com/akashmaji946/lox/parser"
	"github.com/akashmaji946/lox/resolver"
)

// run lexes, parses, resolves, and interprets source, returning everything
// written to stdout and the runtime error (if any).
func run(t *testing.T, source string) (string, *loxerr.RuntimeError, *loxerr.Reporter) {
	t.Helper()
	lex := lexer.NewLexer(source)
	tokens := lex.Tokens()
	var errBuf bytes.Buffer
	reporter := loxerr.NewReporter(&errBuf)

	statements := parser.NewParser(tokens, reporter).Parse()
	require.False(t, reporter.HadError, "fixture must parse cleanly: %s", errBuf.String())

	res := resolver.New(reporter)
	res.Resolve(statements)
	require.False(t, reporter.HadError, "fixture must resolve cleanly: %s", errBuf.String())

	e := New(reporter, res.Locals)
	var out bytes.Buffer
	e.Stdout = &out

	rtErr := e.Interpret(statements)
	return out.String(), rtErr, reporter
}

func TestEvaluator_LiteralsAndPrint(t *testing.T) {
	out, rtErr, _ := run(t, `
print 1;
print 1.5;
print "hi";
print true;
print false;
print nil;
`)
	require.Nil(t, rtErr)
	assert.Equal(t, "1\n1.5\nhi\ntrue\nfalse\nnil\n", out)
}

func TestEvaluator_ArithmeticAndStringConcat(t *testing.T) {
	out, rtErr, _ := run(t, `
print 1 + 2;
print 2 * 3 - 1;
print "foo" + "bar";
`)
	require.Nil(t, rtErr)
	assert.Equal(t, "3\n5\nfoobar\n", out)
}

func TestEvaluator_PlusTypeMismatchReportsOperatorLine(t *testing.T) {
	out, rtErr, reporter := run(t, `
print 1 +
  "two";
`)
	assert.Empty(t, out)
	require.NotNil(t, rtErr)
	assert.Equal(t, "Operands must be two numbers or two strings.", rtErr.Message)
	assert.Equal(t, 2, rtErr.Token.Line, "error must point at the '+' token's own line, not the right operand's")
	assert.True(t, reporter.HadRuntimeError)
}

func TestEvaluator_AssignmentExpressionEvaluatesToAssignedValue(t *testing.T) {
	out, rtErr, _ := run(t, `
var a = 1;
print a = 2;
`)
	require.Nil(t, rtErr)
	assert.Equal(t, "2\n", out)
}

func TestEvaluator_ClosuresCaptureDefiningEnvironment(t *testing.T) {
	out, rtErr, _ := run(t, `
fun makeCounter() {
  var count = 0;
  fun increment() {
    count = count + 1;
    return count;
  }
  return increment;
}

var counter = makeCounter();
print counter();
print counter();
print counter();
`)
	require.Nil(t, rtErr)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestEvaluator_ClassInstanceFieldsAndMethods(t *testing.T) {
	out, rtErr, _ := run(t, `
class Greeter {
  init(name) {
    this.name = name;
  }
  greet() {
    print "hi, " + this.name;
  }
}

var g = Greeter("world");
g.greet();
`)
	require.Nil(t, rtErr)
	assert.Equal(t, "hi, world\n", out)
}

func TestEvaluator_InitAlwaysReturnsInstanceEvenWithBareReturn(t *testing.T) {
	out, rtErr, _ := run(t, `
class Box {
  init(value) {
    this.value = value;
    return;
  }
}

var b = Box(42);
print b.value;
`)
	require.Nil(t, rtErr)
	assert.Equal(t, "42\n", out)
}

func TestEvaluator_UndefinedVariableIsARuntimeError(t *testing.T) {
	out, rtErr, _ := run(t, `print undefined;`)
	assert.Empty(t, out)
	require.NotNil(t, rtErr)
	assert.True(t, strings.Contains(rtErr.Message, "Undefined variable"))
}

func TestEvaluator_WrongArityIsARuntimeError(t *testing.T) {
	_, rtErr, _ := run(t, `
fun add(a, b) { return a + b; }
add(1);
`)
	require.NotNil(t, rtErr)
	assert.Contains(t, rtErr.Message, "Expected 2 arguments but got 1.")
}

func TestEvaluator_WhileAndIf(t *testing.T) {
	out, rtErr, _ := run(t, `
var i = 0;
while (i < 3) {
  if (i == 1) {
    print "one";
  } else {
    print i;
  }
  i = i + 1;
}
`)
	require.Nil(t, rtErr)
	assert.Equal(t, "0\none\n2\n", out)
}

func TestEvaluator_ForDesugaredLoopSumsCorrectly(t *testing.T) {
	out, rtErr, _ := run(t, `
var sum = 0;
for (var i = 1; i <= 5; i = i + 1) {
  sum = sum + i;
}
print sum;
`)
	require.Nil(t, rtErr)
	assert.Equal(t, "15\n", out)
}

func TestEvaluator_ClockIsCallableWithZeroArity(t *testing.T) {
	out, rtErr, _ := run(t, `print clock() > 0;`)
	require.Nil(t, rtErr)
	assert.Equal(t, "true\n", out)
}

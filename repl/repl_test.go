/*
File    : lox/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/lox/ast"
	"github.com/akashmaji946/lox/eval"
	"github.com/akashmaji946/lox/loxerr"
)

func newSessionForTest() (*Repl, *loxerr.Reporter, *eval.Evaluator, *bytes.Buffer) {
	var out bytes.Buffer
	reporter := loxerr.NewReporter(&out)
	interp := eval.New(reporter, make(map[ast.Expr]int))
	interp.Stdout = &out
	return &Repl{}, reporter, interp, &out
}

func TestEvalLine_FunctionDefinedEarlierIsCallableLater(t *testing.T) {
	r, reporter, interp, out := newSessionForTest()

	r.evalLine(`fun add(a, b) { return a + b; }`, reporter, interp)
	require.False(t, reporter.HadError)
	reporter.Reset()

	r.evalLine(`print add(1, 2);`, reporter, interp)
	require.False(t, reporter.HadError, "locals resolved on the first line must survive into the second: %s", out.String())
	assert.Equal(t, "3\n", out.String())
}

func TestEvalLine_ClosureDefinedEarlierStillWorksAcrossLines(t *testing.T) {
	r, reporter, interp, out := newSessionForTest()

	r.evalLine(`fun makeCounter() { var n = 0; fun inc() { n = n + 1; return n; } return inc; }`, reporter, interp)
	require.False(t, reporter.HadError)
	reporter.Reset()

	r.evalLine(`var counter = makeCounter();`, reporter, interp)
	require.False(t, reporter.HadError)
	reporter.Reset()

	r.evalLine(`print counter(); print counter();`, reporter, interp)
	require.False(t, reporter.HadError)
	assert.Equal(t, "1\n2\n", out.String())
}

func TestEvalLine_ScannerErrorIsReportedAndSuppressesTheLine(t *testing.T) {
	r, reporter, interp, out := newSessionForTest()

	r.evalLine(`@`, reporter, interp)
	assert.True(t, reporter.HadError)
	assert.Contains(t, out.String(), "Unexpected character.")
}

func TestEvalLine_UnterminatedStringIsReportedNotMisreadAsExpectExpression(t *testing.T) {
	r, reporter, interp, out := newSessionForTest()

	r.evalLine(`"never closed`, reporter, interp)
	assert.True(t, reporter.HadError)
	assert.Contains(t, out.String(), "Unterminated string.")
	assert.NotContains(t, out.String(), "Expect expression.")
}

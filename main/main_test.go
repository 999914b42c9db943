/*
File    : lox/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRun_CleanProgramExitsZero(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(`print 1 + 2;`, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "3\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestRun_SyntaxErrorExits65(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(`print ;`, &stdout, &stderr)
	assert.Equal(t, 65, code)
	assert.NotEmpty(t, stderr.String())
}

func TestRun_ScannerErrorExits65AndSuppressesParsing(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(`var x = 1; @`, &stdout, &stderr)
	assert.Equal(t, 65, code)
	assert.Contains(t, stderr.String(), "Unexpected character.")
	assert.Empty(t, stdout.String())
}

func TestRun_UnterminatedStringExits65WithoutTokenLeakingIntoParser(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(`print "never closed`, &stdout, &stderr)
	assert.Equal(t, 65, code)
	assert.Contains(t, stderr.String(), "Unterminated string.")
	assert.NotContains(t, stderr.String(), "Expect expression.")
}

func TestRun_ResolverErrorExits65(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(`{ var a = a; }`, &stdout, &stderr)
	assert.Equal(t, 65, code)
	assert.NotEmpty(t, stderr.String())
}

func TestRun_RuntimeErrorExits70(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(`print "a" + 1;`, &stdout, &stderr)
	assert.Equal(t, 70, code)
	assert.Contains(t, stderr.String(), "Operands must be two numbers or two strings.")
	assert.Empty(t, stdout.String())
}

func TestRun_UndefinedVariableExits70(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(`print missing;`, &stdout, &stderr)
	assert.Equal(t, 70, code)
}

func TestRun_ClassesAndClosuresRunCleanly(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run(`
class Counter {
  init() { this.count = 0; }
  next() { this.count = this.count + 1; return this.count; }
}
var c = Counter();
print c.next();
print c.next();
`, &stdout, &stderr)
	assert.Equal(t, 0, code)
	assert.Equal(t, "1\n2\n", stdout.String())
}

/*
File: golox/interpreter/interpreter_test.go

Exercises the end-to-end scanner -> parser -> interpreter pipeline against
concrete scenarios: arithmetic, string concatenation, while/for loops,
recursion, closures sharing mutable state, and runtime-error cases (type
mismatch, undefined variable).
*/
package interpreter

import (
	"bytes"
	"strings"
	"testing"

	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/parser"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run scans, parses, and interprets src, returning stdout and any error.
func run(t *testing.T, src string) (string, error) {
	t.Helper()
	tokens, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)

	p := parser.New(tokens)
	statements := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors)

	var out bytes.Buffer
	in := New(&out)
	err := in.Interpret(statements)
	return out.String(), err
}

func TestInterpret_Arithmetic(t *testing.T) {
	out, err := run(t, "print 1 + 2;")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)
}

func TestInterpret_StringConcatenation(t *testing.T) {
	out, err := run(t, `print "foo" + "bar";`)
	require.NoError(t, err)
	assert.Equal(t, "foobar\n", out)
}

func TestInterpret_WhileLoopCounting(t *testing.T) {
	out, err := run(t, `
		var i = 0;
		while (i < 3) {
			print i;
			i = i + 1;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_ForLoopCounting(t *testing.T) {
	out, err := run(t, `
		for (var i = 0; i < 3; i = i + 1) {
			print i;
		}
	`)
	require.NoError(t, err)
	assert.Equal(t, "0\n1\n2\n", out)
}

func TestInterpret_RecursiveFibonacci(t *testing.T) {
	out, err := run(t, `
		fun fib(n) {
			if (n < 2) return n;
			return fib(n - 1) + fib(n - 2);
		}
		print fib(8);
	`)
	require.NoError(t, err)
	assert.Equal(t, "21\n", out)
}

func TestInterpret_ClosuresShareMutableState(t *testing.T) {
	out, err := run(t, `
		fun make() {
			var count = 0;
			fun inc() {
				count = count + 1;
				return count;
			}
			return inc;
		}
		var counter = make();
		print counter();
		print counter();
		print counter();
	`)
	require.NoError(t, err)
	assert.Equal(t, "1\n2\n3\n", out)
}

func TestInterpret_TypeErrorIsRuntimeError(t *testing.T) {
	_, err := run(t, `print 1 + "a";`)
	require.Error(t, err)
	re, ok := err.(*loxerror.RuntimeError)
	require.True(t, ok)
	assert.Contains(t, re.Message, "Operands must be two numbers or two strings.")
}

func TestInterpret_UndefinedVariableIsRuntimeError(t *testing.T) {
	_, err := run(t, `print missing;`)
	require.Error(t, err)
	re, ok := err.(*loxerror.RuntimeError)
	require.True(t, ok)
	assert.Contains(t, re.Message, "Undefined variable 'missing'")
}

func TestInterpret_ShortCircuitReturnsOperandNotBoolean(t *testing.T) {
	out, err := run(t, `print "a" or 1;`)
	require.NoError(t, err)
	assert.Equal(t, "a\n", out)

	out, err = run(t, `print false and "unreached";`)
	require.NoError(t, err)
	assert.Equal(t, "false\n", out)
}

func TestInterpret_Truthiness(t *testing.T) {
	out, err := run(t, `
		if (0) print "zero is truthy"; else print "zero is falsey";
		if ("") print "empty string is truthy"; else print "empty string is falsey";
		if (nil) print "nil is truthy"; else print "nil is falsey";
	`)
	require.NoError(t, err)
	assert.Equal(t, "zero is truthy\nempty string is truthy\nnil is falsey\n", out)
}

func TestInterpret_DivisionByZeroYieldsInfNotError(t *testing.T) {
	out, err := run(t, `print 1 / 0;`)
	require.NoError(t, err)
	assert.True(t, strings.Contains(out, "inf") || strings.Contains(out, "Inf"))
}

func TestInterpret_ArityMismatchIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		fun add(a, b) { return a + b; }
		add(1);
	`)
	require.Error(t, err)
	re, ok := err.(*loxerror.RuntimeError)
	require.True(t, ok)
	assert.Contains(t, re.Message, "Expected 2 arguments but got 1")
}

func TestInterpret_CallingNonCallableIsRuntimeError(t *testing.T) {
	_, err := run(t, `
		var x = 1;
		x();
	`)
	require.Error(t, err)
	re, ok := err.(*loxerror.RuntimeError)
	require.True(t, ok)
	assert.Contains(t, re.Message, "Can only call functions and classes.")
}

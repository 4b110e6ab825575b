/*
File: golox/parser/parser_test.go
*/
package parser

import (
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)
	p := New(tokens)
	statements := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors)
	return statements
}

func TestParse_ExpressionStatement(t *testing.T) {
	statements := parse(t, "1 + 2;")
	require.Len(t, statements, 1)
	exprStmt, ok := statements[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	_, ok = exprStmt.Expression.(*ast.Binary)
	assert.True(t, ok)
}

func TestParse_VarDeclarationWithoutInitializer(t *testing.T) {
	statements := parse(t, "var x;")
	require.Len(t, statements, 1)
	v, ok := statements[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "x", v.Name.Lexeme)
	assert.Nil(t, v.Initializer)
}

func TestParse_IfElse(t *testing.T) {
	statements := parse(t, `if (true) print 1; else print 2;`)
	require.Len(t, statements, 1)
	ifStmt, ok := statements[0].(*ast.IfStmt)
	require.True(t, ok)
	assert.NotNil(t, ifStmt.Then)
	assert.NotNil(t, ifStmt.Else)
}

func TestParse_ForDesugarsToWhile(t *testing.T) {
	statements := parse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	require.Len(t, statements, 1)
	block, ok := statements[0].(*ast.BlockStmt)
	require.True(t, ok, "for loop must desugar into an enclosing block")
	require.Len(t, block.Statements, 2)
	_, ok = block.Statements[0].(*ast.VarStmt)
	assert.True(t, ok, "first statement of desugared block must be the initializer")
	whileStmt, ok := block.Statements[1].(*ast.WhileStmt)
	require.True(t, ok, "second statement of desugared block must be a while loop")
	assert.NotNil(t, whileStmt.Condition)
}

func TestParse_ForWithOmittedClauses(t *testing.T) {
	// `for (;;)` desugars to `while (true)` with no wrapping init block.
	statements := parse(t, `for (;;) print 1;`)
	require.Len(t, statements, 1)
	whileStmt, ok := statements[0].(*ast.WhileStmt)
	require.True(t, ok)
	lit, ok := whileStmt.Condition.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, "true", lit.Token.Lexeme)
}

func TestParse_FunctionDeclaration(t *testing.T) {
	statements := parse(t, `fun add(a, b) { return a + b; }`)
	require.Len(t, statements, 1)
	fn, ok := statements[0].(*ast.FunctionStmt)
	require.True(t, ok)
	assert.Equal(t, "add", fn.Name.Lexeme)
	require.Len(t, fn.Params, 2)
	assert.Equal(t, "a", fn.Params[0].Lexeme)
	assert.Equal(t, "b", fn.Params[1].Lexeme)
}

func TestParse_CallExpression(t *testing.T) {
	statements := parse(t, `foo(1, 2, 3);`)
	require.Len(t, statements, 1)
	exprStmt := statements[0].(*ast.ExpressionStmt)
	call, ok := exprStmt.Expression.(*ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 3)
}

func TestParse_AssignmentToNonVariableIsInvalidTarget(t *testing.T) {
	tokens, _ := lexer.New(`1 = 2;`).ScanTokens()
	p := New(tokens)
	p.Parse()
	require.True(t, p.HasErrors())
	pe, ok := p.Errors[0].(*ParseError)
	require.True(t, ok)
	assert.Contains(t, pe.Message, "Invalid assignment target")
}

func TestParse_MissingExpressionReportsAndRecovers(t *testing.T) {
	// The first declaration is malformed (no initializer expression before
	// its semicolon); synchronize() should skip past that semicolon and
	// still parse the second, well-formed declaration.
	tokens, _ := lexer.New("var a = ;\nvar b = 2;").ScanTokens()
	p := New(tokens)
	statements := p.Parse()
	require.True(t, p.HasErrors())
	require.Len(t, statements, 1)
	v, ok := statements[0].(*ast.VarStmt)
	require.True(t, ok)
	assert.Equal(t, "b", v.Name.Lexeme)
}

func TestParse_TooManyArgumentsReportsError(t *testing.T) {
	src := "foo("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "1"
	}
	src += ");"
	tokens, _ := lexer.New(src).ScanTokens()
	p := New(tokens)
	statements := p.Parse()
	require.True(t, p.HasErrors())
	assert.Contains(t, p.Errors[0].Error(), "Can't have more than 255 arguments")

	// The excess-arguments error must not cost the call statement itself:
	// it has to survive synchronize() untouched.
	require.Len(t, statements, 1)
	exprStmt, ok := statements[0].(*ast.ExpressionStmt)
	require.True(t, ok)
	call, ok := exprStmt.Expression.(*ast.Call)
	require.True(t, ok)
	assert.Len(t, call.Args, 256)
}

func TestParse_PrecedenceClimbing(t *testing.T) {
	// 1 + 2 * 3 must parse as 1 + (2 * 3), not (1 + 2) * 3.
	statements := parse(t, "1 + 2 * 3;")
	exprStmt := statements[0].(*ast.ExpressionStmt)
	binary := exprStmt.Expression.(*ast.Binary)
	assert.Equal(t, "+", binary.Operator.Lexeme)
	_, ok := binary.Left.(*ast.Literal)
	assert.True(t, ok)
	rightBinary, ok := binary.Right.(*ast.Binary)
	require.True(t, ok)
	assert.Equal(t, "*", rightBinary.Operator.Lexeme)
}

/*
File: golox/astprinter/astprinter_test.go
*/
package astprinter

import (
	"testing"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/token"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, src string) []ast.Stmt {
	t.Helper()
	tokens, lexErrs := lexer.New(src).ScanTokens()
	require.Empty(t, lexErrs)
	p := parser.New(tokens)
	statements := p.Parse()
	require.False(t, p.HasErrors(), "unexpected parse errors: %v", p.Errors)
	return statements
}

func TestPrint_LispStyle(t *testing.T) {
	expr := &ast.Binary{
		Left:     &ast.Literal{Token: token.New(token.Number, "1", 1)},
		Operator: token.New(token.Plus, "+", 1),
		Right: &ast.Binary{
			Left:     &ast.Literal{Token: token.New(token.Number, "2", 1)},
			Operator: token.New(token.Star, "*", 1),
			Right:    &ast.Literal{Token: token.New(token.Number, "3", 1)},
		},
	}
	assert.Equal(t, "(+ 1 (* 2 3))", Print(expr))
}

func TestPrint_Grouping(t *testing.T) {
	expr := &ast.Grouping{Inner: &ast.Literal{Token: token.New(token.Number, "5", 1)}}
	assert.Equal(t, "(group 5)", Print(expr))
}

// TestPrintReparse_StructuralEquality checks the round-trip invariant:
// re-parsing ToSource's output of a parsed program reaches a
// fixed point — printing the reparsed tree again produces identical text,
// meaning no statement/expression shape was lost or altered along the way.
func TestPrintReparse_StructuralEquality(t *testing.T) {
	src := `
		var a = 1;
		fun add(x, y) {
			return x + y;
		}
		if (a < 2) {
			print add(a, 2);
		} else {
			print a;
		}
		while (a < 5) {
			a = a + 1;
		}
	`
	original := mustParse(t, src)
	firstPass := ToSource(original)

	reparsed := mustParse(t, firstPass)
	secondPass := ToSource(reparsed)

	assert.Equal(t, firstPass, secondPass)
}

func TestToSource_ForLoopDesugaredShapeRoundTrips(t *testing.T) {
	original := mustParse(t, `for (var i = 0; i < 3; i = i + 1) print i;`)
	firstPass := ToSource(original)
	reparsed := mustParse(t, firstPass)
	secondPass := ToSource(reparsed)
	assert.Equal(t, firstPass, secondPass)
}

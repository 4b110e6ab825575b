/*
File: golox/lexer/lexer_test.go
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/golox/token"
	"github.com/stretchr/testify/assert"
)

// kindsOf extracts just the Kind sequence from a token list, ignoring the
// synthetic trailing Eof, for compact table assertions.
func kindsOf(tokens []token.Token) []token.Kind {
	kinds := make([]token.Kind, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind == token.Eof {
			continue
		}
		kinds = append(kinds, tok.Kind)
	}
	return kinds
}

func TestScanTokens_Punctuation(t *testing.T) {
	tokens, errs := New(`(){},.-+;*/`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.LeftParen, token.RightParen, token.LeftBrace, token.RightBrace,
		token.Comma, token.Dot, token.Minus, token.Plus, token.Semicolon,
		token.Star, token.Slash,
	}, kindsOf(tokens))
}

func TestScanTokens_TwoCharOperators(t *testing.T) {
	tokens, errs := New(`! != = == > >= < <=`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.Bang, token.BangEqual, token.Equal, token.EqualEqual,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual,
	}, kindsOf(tokens))
}

func TestScanTokens_LineComment(t *testing.T) {
	tokens, errs := New("1 // a comment\n2").ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, []token.Kind{token.Number, token.Number}, kindsOf(tokens))
	assert.Equal(t, 1, tokens[0].Line)
	assert.Equal(t, 2, tokens[1].Line)
}

func TestScanTokens_StringLiteral(t *testing.T) {
	tokens, errs := New(`"hello there"`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, token.String, tokens[0].Kind)
	assert.Equal(t, "hello there", tokens[0].Literal)
}

func TestScanTokens_UnterminatedString(t *testing.T) {
	_, errs := New(`"unterminated`).ScanTokens()
	if assert.Len(t, errs, 1) {
		assert.Contains(t, errs[0].Error(), "Unterminated string")
	}
}

func TestScanTokens_Number(t *testing.T) {
	tokens, errs := New(`123 3.14 0.5`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, 123.0, tokens[0].Literal)
	assert.Equal(t, 3.14, tokens[1].Literal)
	assert.Equal(t, 0.5, tokens[2].Literal)
}

func TestScanTokens_IdentifiersAndKeywords(t *testing.T) {
	tokens, errs := New(`and class else false fun for if nil or print return super this true var while myVar _underscore`).ScanTokens()
	assert.Empty(t, errs)
	assert.Equal(t, []token.Kind{
		token.And, token.Class, token.Else, token.False, token.Fun, token.For,
		token.If, token.Nil, token.Or, token.Print, token.Return, token.Super,
		token.This, token.True, token.Var, token.While,
		token.Identifier, token.Identifier,
	}, kindsOf(tokens))
}

func TestScanTokens_UnexpectedCharacter(t *testing.T) {
	tokens, errs := New(`1 @ 2`).ScanTokens()
	if assert.Len(t, errs, 1) {
		assert.Contains(t, errs[0].Error(), "Unexpected character")
	}
	assert.Equal(t, []token.Kind{token.Number, token.Number}, kindsOf(tokens))
}

func TestScanTokens_AlwaysEndsWithEof(t *testing.T) {
	for _, src := range []string{"", "1 + 2", "// just a comment", `"a string"`} {
		tokens, _ := New(src).ScanTokens()
		if assert.NotEmpty(t, tokens) {
			assert.Equal(t, token.Eof, tokens[len(tokens)-1].Kind)
		}
		for _, tok := range tokens[:len(tokens)-1] {
			assert.NotEqual(t, token.Eof, tok.Kind)
		}
	}
}

func TestScanTokens_LinesWithinSourceRange(t *testing.T) {
	src := "var a = 1;\nvar b = 2;\nprint a + b;"
	tokens, errs := New(src).ScanTokens()
	assert.Empty(t, errs)
	for _, tok := range tokens {
		assert.GreaterOrEqual(t, tok.Line, 1)
		assert.LessOrEqual(t, tok.Line, 3)
	}
}

/*
Package token defines the lexical vocabulary of Lox: the closed set of
token kinds the scanner produces and the parser consumes, plus the Token
type that carries a lexeme, an optional decoded literal, and a source line.
*/
package token

import "fmt"

// Kind identifies the lexical category of a Token. The set is closed: the
// scanner and parser agree on exactly these variants, nothing more.
type Kind int

const (
	// Single-character tokens.
	LeftParen Kind = iota
	RightParen
	LeftBrace
	RightBrace
	Comma
	Dot
	Minus
	Plus
	Semicolon
	Slash
	Star

	// One or two character tokens.
	Bang
	BangEqual
	Equal
	EqualEqual
	Greater
	GreaterEqual
	Less
	LessEqual

	// Literals.
	Identifier
	String
	Number

	// Keywords.
	And
	Class
	Else
	False
	Fun
	For
	If
	Nil
	Or
	Print
	Return
	Super
	This
	True
	Var
	While

	// Sentinel.
	Eof
)

var names = map[Kind]string{
	LeftParen: "(", RightParen: ")", LeftBrace: "{", RightBrace: "}",
	Comma: ",", Dot: ".", Minus: "-", Plus: "+", Semicolon: ";", Slash: "/", Star: "*",
	Bang: "!", BangEqual: "!=", Equal: "=", EqualEqual: "==",
	Greater: ">", GreaterEqual: ">=", Less: "<", LessEqual: "<=",
	Identifier: "Identifier", String: "String", Number: "Number",
	And: "and", Class: "class", Else: "else", False: "false", Fun: "fun",
	For: "for", If: "if", Nil: "nil", Or: "or", Print: "print", Return: "return",
	Super: "super", This: "this", True: "true", Var: "var", While: "while",
	Eof: "EOF",
}

// String renders the token kind's canonical name, mostly useful in error
// messages and test failures.
func (k Kind) String() string {
	if name, ok := names[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Keywords maps reserved identifier spellings to their keyword Kind. The
// scanner consults this after reading a full identifier lexeme to decide
// whether it names a keyword or a user identifier.
var Keywords = map[string]Kind{
	"and": And, "class": Class, "else": Else, "false": False, "fun": Fun,
	"for": For, "if": If, "nil": Nil, "or": Or, "print": Print, "return": Return,
	"super": Super, "this": This, "true": True, "var": Var, "while": While,
}

// Token is a single lexical unit produced by the scanner. Lexeme is always
// a substring of the original source; Literal carries the decoded payload
// for String and Number tokens (a string with surrounding quotes stripped,
// or a float64) and is nil otherwise. Line is 1-based.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal interface{}
	Line    int
}

// New constructs a Token with no decoded literal, for punctuation, operator,
// and keyword tokens.
func New(kind Kind, lexeme string, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Line: line}
}

// NewLiteral constructs a Token carrying a decoded literal value, for
// String and Number tokens.
func NewLiteral(kind Kind, lexeme string, literal interface{}, line int) Token {
	return Token{Kind: kind, Lexeme: lexeme, Literal: literal, Line: line}
}

// String renders the token for debugging: "<kind> '<lexeme>' @<line>".
func (t Token) String() string {
	return fmt.Sprintf("%s '%s' @%d", t.Kind, t.Lexeme, t.Line)
}

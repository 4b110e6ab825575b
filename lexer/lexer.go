/*
File: golox/lexer/lexer.go

Package lexer performs lexical analysis of Lox source text, converting the
raw bytes into the closed token vocabulary defined in package token: a
cursor over the source string, one-byte lookahead for two-char operators,
single-line comments, and string/number/identifier reading. Identifiers
are ASCII letters, digits, and underscore — UTF-8 beyond ASCII is
untouched payload inside strings, never part of a lexeme boundary
decision.
*/
package lexer

import (
	"fmt"
	"strconv"

	"github.com/akashmaji946/golox/token"
)

// Error describes a lexical error at a specific source line. Scanning
// continues past an Error; it is collected, not fatal.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

// Lexer scans Lox source text into a token sequence. Zero value is not
// usable; construct with New.
type Lexer struct {
	src     string
	start   int // start of the lexeme currently being scanned
	current int // index of the next unconsumed byte
	line    int
	errors  []error
}

// New creates a Lexer ready to scan src.
func New(src string) *Lexer {
	return &Lexer{src: src, line: 1}
}

// ScanTokens consumes the entire source and returns the full token
// sequence, always terminated by a single Eof token. Lexical errors
// encountered along the way are returned alongside (possibly multiple);
// the token stream is still complete and usable even when errors occurred,
// since the scanner skips the offending character and continues.
func (l *Lexer) ScanTokens() ([]token.Token, []error) {
	var tokens []token.Token
	for !l.atEnd() {
		l.start = l.current
		tok, ok := l.scanToken()
		if ok {
			tokens = append(tokens, tok)
		}
	}
	tokens = append(tokens, token.New(token.Eof, "", l.line))
	return tokens, l.errors
}

func (l *Lexer) atEnd() bool {
	return l.current >= len(l.src)
}

func (l *Lexer) advance() byte {
	c := l.src[l.current]
	l.current++
	return c
}

func (l *Lexer) peek() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.current]
}

func (l *Lexer) peekNext() byte {
	if l.current+1 >= len(l.src) {
		return 0
	}
	return l.src[l.current+1]
}

// match consumes the current byte only if it equals want, reporting whether
// it did; it implements the scanner's one-byte lookahead for two-character
// operators like != and <=.
func (l *Lexer) match(want byte) bool {
	if l.atEnd() || l.src[l.current] != want {
		return false
	}
	l.current++
	return true
}

func (l *Lexer) lexeme() string {
	return l.src[l.start:l.current]
}

func (l *Lexer) emit(kind token.Kind) token.Token {
	return token.New(kind, l.lexeme(), l.line)
}

func (l *Lexer) emitLiteral(kind token.Kind, literal interface{}) token.Token {
	return token.NewLiteral(kind, l.lexeme(), literal, l.line)
}

func (l *Lexer) reportError(msg string) {
	l.errors = append(l.errors, &Error{Line: l.line, Message: msg})
}

// scanToken consumes one token's worth of input, or a single whitespace
// byte or a whole line comment, and reports whether a token was produced;
// comments and whitespace produce no token but still consume input, so
// callers loop until atEnd.
func (l *Lexer) scanToken() (token.Token, bool) {
	c := l.advance()
	switch c {
	case '(':
		return l.emit(token.LeftParen), true
	case ')':
		return l.emit(token.RightParen), true
	case '{':
		return l.emit(token.LeftBrace), true
	case '}':
		return l.emit(token.RightBrace), true
	case ',':
		return l.emit(token.Comma), true
	case '.':
		return l.emit(token.Dot), true
	case '-':
		return l.emit(token.Minus), true
	case '+':
		return l.emit(token.Plus), true
	case ';':
		return l.emit(token.Semicolon), true
	case '*':
		return l.emit(token.Star), true
	case '!':
		if l.match('=') {
			return l.emit(token.BangEqual), true
		}
		return l.emit(token.Bang), true
	case '=':
		if l.match('=') {
			return l.emit(token.EqualEqual), true
		}
		return l.emit(token.Equal), true
	case '<':
		if l.match('=') {
			return l.emit(token.LessEqual), true
		}
		return l.emit(token.Less), true
	case '>':
		if l.match('=') {
			return l.emit(token.GreaterEqual), true
		}
		return l.emit(token.Greater), true
	case '/':
		if l.match('/') {
			for l.peek() != '\n' && !l.atEnd() {
				l.advance()
			}
			return token.Token{}, false
		}
		return l.emit(token.Slash), true
	case ' ', '\r', '\t':
		return token.Token{}, false
	case '\n':
		l.line++
		return token.Token{}, false
	case '"':
		return l.scanString()
	default:
		if isDigit(c) {
			return l.scanNumber(), true
		}
		if isAlpha(c) {
			return l.scanIdentifier(), true
		}
		l.reportError(fmt.Sprintf("Unexpected character: %c", c))
		return token.Token{}, false
	}
}

func (l *Lexer) scanString() (token.Token, bool) {
	for l.peek() != '"' && !l.atEnd() {
		if l.peek() == '\n' {
			l.line++
		}
		l.advance()
	}
	if l.atEnd() {
		l.reportError("Unterminated string.")
		return token.Token{}, false
	}
	// Consume the closing quote.
	l.advance()
	value := l.src[l.start+1 : l.current-1]
	return l.emitLiteral(token.String, value), true
}

func (l *Lexer) scanNumber() token.Token {
	for isDigit(l.peek()) {
		l.advance()
	}
	if l.peek() == '.' && isDigit(l.peekNext()) {
		l.advance() // consume the '.'
		for isDigit(l.peek()) {
			l.advance()
		}
	}
	value, err := strconv.ParseFloat(l.lexeme(), 64)
	if err != nil {
		l.reportError(fmt.Sprintf("Invalid number literal '%s'.", l.lexeme()))
	}
	return l.emitLiteral(token.Number, value)
}

func (l *Lexer) scanIdentifier() token.Token {
	for isAlphaNumeric(l.peek()) {
		l.advance()
	}
	text := l.lexeme()
	if kind, ok := token.Keywords[text]; ok {
		return l.emit(kind)
	}
	return l.emit(token.Identifier)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

/*
File: golox/parser/parser.go

Package parser implements Lox's recursive-descent grammar: one method per
precedence level, from equality down through primary, plus the statement-
and declaration-level productions (program, declaration, funDecl, varDecl,
statement, block, ifStmt, whileStmt, forStmt, returnStmt, exprStmt) and
`for`'s desugaring into a `while` at parse time.

Errors accumulate into Errors rather than aborting the first parse
failure; parsing keeps going past a bad production, with synchronize()
skipping ahead to the next likely statement boundary, so a single pass can
surface more than one diagnostic.
*/
package parser

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/token"
)

const maxArguments = 255

// ParseError is one parse-time diagnostic, carrying the offending token so
// callers can report it the way loxerror.ErrorToken expects.
type ParseError struct {
	Token   token.Token
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s (at %s)", e.Message, e.Token)
}

// Parser consumes a flat token stream (already scanned, always Eof
// terminated) and produces a statement list. It never panics on malformed
// input: errors accumulate in
// Errors while synchronize() skips ahead to the next likely statement
// boundary, so one malformed statement does not cascade into spurious
// errors for the statements after it.
type Parser struct {
	tokens  []token.Token
	current int
	Errors  []error
}

// New constructs a Parser over tokens (the full scanner output, including
// its trailing Eof).
func New(tokens []token.Token) *Parser {
	return &Parser{tokens: tokens}
}

// HasErrors reports whether any ParseError was accumulated.
func (p *Parser) HasErrors() bool { return len(p.Errors) > 0 }

// Parse runs the program production to completion, returning every
// statement successfully parsed. Use HasErrors/Errors to check whether the
// result is usable; any parse error is fatal to execution (exit 65) even
// though parsing itself continues past it to surface more diagnostics in
// one pass.
func (p *Parser) Parse() []ast.Stmt {
	var statements []ast.Stmt
	for !p.isAtEnd() {
		stmt := p.declaration()
		if stmt != nil {
			statements = append(statements, stmt)
		}
	}
	return statements
}

// --- declarations ---

func (p *Parser) declaration() ast.Stmt {
	defer func() {
		if r := recover(); r != nil {
			// parseErrorPanic is the only panic this parser ever raises
			// (see fail/failf); it's recovered here, at the declaration
			// boundary, and converted into synchronize()-driven recovery
			// rather than letting parsing give up on the whole program.
			if _, ok := r.(parseErrorPanic); ok {
				p.synchronize()
				return
			}
			panic(r)
		}
	}()

	switch {
	case p.match(token.Fun):
		return p.function("function")
	case p.match(token.Var):
		return p.varDeclaration()
	default:
		return p.statement()
	}
}

// parseErrorPanic is how fail/failf unwind out of a deeply nested
// expression/statement parse back to declaration()'s recover, without
// threading an error return through every single grammar method.
type parseErrorPanic struct{ err *ParseError }

func (p *Parser) fail(tok token.Token, message string) parseErrorPanic {
	pe := &ParseError{Token: tok, Message: message}
	p.Errors = append(p.Errors, pe)
	return parseErrorPanic{pe}
}

func (p *Parser) failf(tok token.Token, format string, args ...interface{}) parseErrorPanic {
	return p.fail(tok, fmt.Sprintf(format, args...))
}

func (p *Parser) function(kind string) ast.Stmt {
	name := p.consume(token.Identifier, fmt.Sprintf("Expect %s name.", kind))
	p.consume(token.LeftParen, fmt.Sprintf("Expect '(' after %s name.", kind))

	var params []token.Token
	if !p.check(token.RightParen) {
		for {
			if len(params) >= maxArguments {
				// Excess is reported but not fatal: keep consuming the
				// parameter list so the enclosing declaration still parses.
				p.failf(p.peek(), "Can't have more than %d parameters.", maxArguments)
			}
			params = append(params, p.consume(token.Identifier, "Expect parameter name."))
			if !p.match(token.Comma) {
				break
			}
		}
	}
	p.consume(token.RightParen, "Expect ')' after parameters.")
	p.consume(token.LeftBrace, fmt.Sprintf("Expect '{' before %s body.", kind))
	body := p.block()
	return &ast.FunctionStmt{Name: name, Params: params, Body: body}
}

func (p *Parser) varDeclaration() ast.Stmt {
	name := p.consume(token.Identifier, "Expect variable name.")
	var initializer ast.Expr
	if p.match(token.Equal) {
		initializer = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	return &ast.VarStmt{Name: name, Initializer: initializer}
}

// --- statements ---

func (p *Parser) statement() ast.Stmt {
	switch {
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		return &ast.BlockStmt{Statements: p.block()}
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.For):
		return p.forStatement()
	case p.match(token.Return):
		return p.returnStatement()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser) printStatement() ast.Stmt {
	value := p.expression()
	p.consume(token.Semicolon, "Expect ';' after value.")
	return &ast.PrintStmt{Expression: value}
}

func (p *Parser) expressionStatement() ast.Stmt {
	expr := p.expression()
	p.consume(token.Semicolon, "Expect ';' after expression.")
	return &ast.ExpressionStmt{Expression: expr}
}

func (p *Parser) block() []ast.Stmt {
	var statements []ast.Stmt
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		statements = append(statements, p.declaration())
	}
	p.consume(token.RightBrace, "Expect '}' after block.")
	return statements
}

func (p *Parser) ifStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'if'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after if condition.")

	thenBranch := p.statement()
	var elseBranch ast.Stmt
	if p.match(token.Else) {
		elseBranch = p.statement()
	}
	return &ast.IfStmt{Condition: condition, Then: thenBranch, Else: elseBranch}
}

func (p *Parser) whileStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'while'.")
	condition := p.expression()
	p.consume(token.RightParen, "Expect ')' after condition.")
	body := p.statement()
	return &ast.WhileStmt{Condition: condition, Body: body}
}

// forStatement desugars `for (init; cond; update) body` into
// `{ init; while (cond) { body; update; } }` at parse time — the
// interpreter never sees a dedicated For node.
func (p *Parser) forStatement() ast.Stmt {
	p.consume(token.LeftParen, "Expect '(' after 'for'.")

	var initializer ast.Stmt
	switch {
	case p.match(token.Semicolon):
		initializer = nil
	case p.match(token.Var):
		initializer = p.varDeclaration()
	default:
		initializer = p.expressionStatement()
	}

	var condition ast.Expr
	if !p.check(token.Semicolon) {
		condition = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after loop condition.")

	var update ast.Expr
	if !p.check(token.RightParen) {
		update = p.expression()
	}
	p.consume(token.RightParen, "Expect ')' after for clauses.")

	body := p.statement()

	if update != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{body, &ast.ExpressionStmt{Expression: update}}}
	}
	if condition == nil {
		condition = &ast.Literal{Token: token.New(token.True, "true", p.previous().Line)}
	}
	body = &ast.WhileStmt{Condition: condition, Body: body}

	if initializer != nil {
		body = &ast.BlockStmt{Statements: []ast.Stmt{initializer, body}}
	}
	return body
}

func (p *Parser) returnStatement() ast.Stmt {
	keyword := p.previous()
	var value ast.Expr
	if !p.check(token.Semicolon) {
		value = p.expression()
	}
	p.consume(token.Semicolon, "Expect ';' after return value.")
	return &ast.ReturnStmt{Keyword: keyword, Value: value}
}

// --- expressions ---

func (p *Parser) expression() ast.Expr {
	return p.assignment()
}

// assignment parses `target = value`, right-associatively, rejecting any
// non-Variable left-hand side with an InvalidAssignmentTarget error
// without consuming the offending tokens further.
func (p *Parser) assignment() ast.Expr {
	expr := p.or()

	if p.match(token.Equal) {
		equals := p.previous()
		value := p.assignment()

		if variable, ok := expr.(*ast.Variable); ok {
			return &ast.Assign{Name: variable.Name, Value: value}
		}
		panic(p.fail(equals, "Invalid assignment target."))
	}
	return expr
}

func (p *Parser) or() ast.Expr {
	expr := p.and()
	for p.match(token.Or) {
		operator := p.previous()
		right := p.and()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) and() ast.Expr {
	expr := p.equality()
	for p.match(token.And) {
		operator := p.previous()
		right := p.equality()
		expr = &ast.Logical{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) equality() ast.Expr {
	expr := p.comparison()
	for p.match(token.BangEqual, token.EqualEqual) {
		operator := p.previous()
		right := p.comparison()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) comparison() ast.Expr {
	expr := p.term()
	for p.match(token.Greater, token.GreaterEqual, token.Less, token.LessEqual) {
		operator := p.previous()
		right := p.term()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) term() ast.Expr {
	expr := p.factor()
	for p.match(token.Minus, token.Plus) {
		operator := p.previous()
		right := p.factor()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) factor() ast.Expr {
	expr := p.unary()
	for p.match(token.Slash, token.Star) {
		operator := p.previous()
		right := p.unary()
		expr = &ast.Binary{Left: expr, Operator: operator, Right: right}
	}
	return expr
}

func (p *Parser) unary() ast.Expr {
	if p.match(token.Bang, token.Minus) {
		operator := p.previous()
		right := p.unary()
		return &ast.Unary{Operator: operator, Right: right}
	}
	return p.call()
}

func (p *Parser) call() ast.Expr {
	expr := p.primary()
	for {
		if p.match(token.LeftParen) {
			expr = p.finishCall(expr)
		} else {
			break
		}
	}
	return expr
}

func (p *Parser) finishCall(callee ast.Expr) ast.Expr {
	var args []ast.Expr
	if !p.check(token.RightParen) {
		for {
			if len(args) >= maxArguments {
				// Excess is reported but not fatal: keep consuming the
				// argument list so the enclosing call still parses.
				p.failf(p.peek(), "Can't have more than %d arguments.", maxArguments)
			}
			args = append(args, p.expression())
			if !p.match(token.Comma) {
				break
			}
		}
	}
	closingParen := p.consume(token.RightParen, "Expect ')' after arguments.")
	return &ast.Call{Callee: callee, ClosingParen: closingParen, Args: args}
}

func (p *Parser) primary() ast.Expr {
	switch {
	case p.match(token.False, token.True, token.Nil, token.Number, token.String):
		return &ast.Literal{Token: p.previous()}
	case p.match(token.Identifier):
		return &ast.Variable{Name: p.previous()}
	case p.match(token.LeftParen):
		expr := p.expression()
		p.consume(token.RightParen, "Expect ')' after expression.")
		return &ast.Grouping{Inner: expr}
	default:
		panic(p.fail(p.peek(), "Expect expression."))
	}
}

// --- token-stream primitives ---

func (p *Parser) match(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if p.check(k) {
			p.advance()
			return true
		}
	}
	return false
}

func (p *Parser) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Kind == kind
}

func (p *Parser) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Kind == token.Eof
}

func (p *Parser) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() token.Token {
	return p.tokens[p.current-1]
}

// consume advances past an expected token kind, or fails with message
// anchored at the token actually found.
func (p *Parser) consume(kind token.Kind, message string) token.Token {
	if p.check(kind) {
		return p.advance()
	}
	panic(p.fail(p.peek(), message))
}

// synchronize discards tokens until it reaches a plausible statement
// boundary — just past a semicolon, or just before a keyword that starts a
// new statement — so one malformed statement doesn't cascade into
// spurious errors for everything that follows it.
func (p *Parser) synchronize() {
	p.advance()
	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}
		switch p.peek().Kind {
		case token.Class, token.Fun, token.Var, token.For, token.If, token.While, token.Print, token.Return:
			return
		}
		p.advance()
	}
}

/*
File: golox/ast/expr.go

Package ast defines the tree node shapes produced by the parser and
consumed by the interpreter: expressions in this file, statements in
stmt.go. Every node implements Accept(Visitor), the classic double-dispatch
pattern, over a closed set of expression forms.
*/
package ast

import "github.com/akashmaji946/golox/token"

// Expr is any expression node. Accept dispatches to the matching Visit
// method on v, returning whatever that method computes (typically a
// value.Value during evaluation, or a string while printing).
type Expr interface {
	Accept(v ExprVisitor) (interface{}, error)
}

// ExprVisitor is implemented by anything that walks expression trees:
// the interpreter (evaluation), the printers (debugging/round-trip
// checks).
type ExprVisitor interface {
	VisitBinaryExpr(e *Binary) (interface{}, error)
	VisitLogicalExpr(e *Logical) (interface{}, error)
	VisitUnaryExpr(e *Unary) (interface{}, error)
	VisitGroupingExpr(e *Grouping) (interface{}, error)
	VisitLiteralExpr(e *Literal) (interface{}, error)
	VisitVariableExpr(e *Variable) (interface{}, error)
	VisitAssignExpr(e *Assign) (interface{}, error)
	VisitCallExpr(e *Call) (interface{}, error)
}

// Binary is an arithmetic, comparison, or equality expression: lhs OP rhs.
type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Binary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitBinaryExpr(e) }

// Logical is a short-circuiting `and`/`or` expression. Kept distinct from
// Binary because its evaluation rule (return the deciding operand itself,
// not a coerced boolean) differs from every other binary operator.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

func (e *Logical) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLogicalExpr(e) }

// Unary is a prefix `!` or `-` expression.
type Unary struct {
	Operator token.Token
	Right    Expr
}

func (e *Unary) Accept(v ExprVisitor) (interface{}, error) { return v.VisitUnaryExpr(e) }

// Grouping is a parenthesized expression, kept as its own node (rather than
// collapsed away during parsing) so the printers can round-trip source
// faithfully.
type Grouping struct {
	Inner Expr
}

func (e *Grouping) Accept(v ExprVisitor) (interface{}, error) { return v.VisitGroupingExpr(e) }

// Literal carries a literal-bearing token: Number, String, true, false, or
// nil. The token itself (not a pre-decoded value.Value) is retained so the
// printer can re-emit the original spelling.
type Literal struct {
	Token token.Token
}

func (e *Literal) Accept(v ExprVisitor) (interface{}, error) { return v.VisitLiteralExpr(e) }

// Variable is a bare identifier reference, resolved against the live
// environment at evaluation time (dynamic lookup, no static resolution pass).
type Variable struct {
	Name token.Token
}

func (e *Variable) Accept(v ExprVisitor) (interface{}, error) { return v.VisitVariableExpr(e) }

// Assign is `name = value`. The parser only ever constructs this with a
// Variable on the left; anything else is an InvalidAssignmentTarget parse
// error (see parser.go), so Name is just the identifier token, not a
// general lvalue expression.
type Assign struct {
	Name  token.Token
	Value Expr
}

func (e *Assign) Accept(v ExprVisitor) (interface{}, error) { return v.VisitAssignExpr(e) }

// Call is a function-call expression. ClosingParen is retained (not just
// for source-span bookkeeping) because runtime errors raised for this call
// — wrong arity, non-callable callee — are reported at the closing paren's
// line.
type Call struct {
	Callee       Expr
	ClosingParen token.Token
	Args         []Expr
}

func (e *Call) Accept(v ExprVisitor) (interface{}, error) { return v.VisitCallExpr(e) }

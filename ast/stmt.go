/*
File: golox/ast/stmt.go
*/
package ast

import "github.com/akashmaji946/golox/token"

// Stmt is any statement node.
type Stmt interface {
	Accept(v StmtVisitor) (interface{}, error)
}

// StmtVisitor is implemented by anything that walks statement lists: the
// interpreter, and the source-reconstructing printer used to check the
// pretty-print/reparse invariant.
type StmtVisitor interface {
	VisitExpressionStmt(s *ExpressionStmt) (interface{}, error)
	VisitPrintStmt(s *PrintStmt) (interface{}, error)
	VisitVarStmt(s *VarStmt) (interface{}, error)
	VisitBlockStmt(s *BlockStmt) (interface{}, error)
	VisitIfStmt(s *IfStmt) (interface{}, error)
	VisitWhileStmt(s *WhileStmt) (interface{}, error)
	VisitFunctionStmt(s *FunctionStmt) (interface{}, error)
	VisitReturnStmt(s *ReturnStmt) (interface{}, error)
}

// ExpressionStmt evaluates an expression and discards the result.
type ExpressionStmt struct {
	Expression Expr
}

func (s *ExpressionStmt) Accept(v StmtVisitor) (interface{}, error) {
	return v.VisitExpressionStmt(s)
}

// PrintStmt evaluates an expression and prints its display form followed
// by a newline. `print` is a statement keyword here. The scanner always
// lexes `print` as that keyword, so the `print` builtin registered in
// package callable cannot be referenced by name from Lox source.
type PrintStmt struct {
	Expression Expr
}

func (s *PrintStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitPrintStmt(s) }

// VarStmt declares a variable, optionally with an initializer expression
// (absent means the variable starts out nil).
type VarStmt struct {
	Name        token.Token
	Initializer Expr
}

func (s *VarStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitVarStmt(s) }

// BlockStmt is a `{ ... }` sequence of statements, introducing a new
// lexical scope for its duration.
type BlockStmt struct {
	Statements []Stmt
}

func (s *BlockStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitBlockStmt(s) }

// IfStmt is `if (cond) then [else else_]`. Else is nil when absent.
type IfStmt struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

func (s *IfStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitIfStmt(s) }

// WhileStmt is `while (cond) body`. `for` loops are desugared into this by
// the parser, so the interpreter only ever needs to handle While, never a
// separate For node.
type WhileStmt struct {
	Condition Expr
	Body      Stmt
}

func (s *WhileStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitWhileStmt(s) }

// FunctionStmt is a `fun name(params) { body }` declaration.
type FunctionStmt struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

func (s *FunctionStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitFunctionStmt(s) }

// ReturnStmt is `return [value];`. Value is nil when the bare form is used
// (equivalent to returning nil).
type ReturnStmt struct {
	Keyword token.Token
	Value   Expr
}

func (s *ReturnStmt) Accept(v StmtVisitor) (interface{}, error) { return v.VisitReturnStmt(s) }

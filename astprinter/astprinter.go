/*
File: golox/astprinter/astprinter.go

Package astprinter renders parsed Lox ASTs back to text, used to validate
that parsing the printed form of a program yields a structurally equal
AST. Print renders a Lisp-style fully-parenthesized form of a single
expression (handy in tests and for debugging); ToSource
reconstructs ordinary Lox source from a statement list, close enough to
the original spelling that re-lexing/re-parsing it reproduces the same
tree shape.

Both printers walk the tree via the same Visitor double dispatch, building
output in an indent-tracked strings.Builder.
*/
package astprinter

import (
	"fmt"
	"strings"

	"github.com/akashmaji946/golox/ast"
)

// Print renders expr as a fully-parenthesized Lisp-style expression, e.g.
// `(+ 1 (* 2 3))`.
func Print(expr ast.Expr) string {
	p := &printer{}
	result, _ := expr.Accept(p)
	s, _ := result.(string)
	return s
}

type printer struct{}

func (p *printer) parenthesize(name string, exprs ...ast.Expr) (interface{}, error) {
	var b strings.Builder
	b.WriteString("(")
	b.WriteString(name)
	for _, e := range exprs {
		b.WriteString(" ")
		result, err := e.Accept(p)
		if err != nil {
			return nil, err
		}
		s, _ := result.(string)
		b.WriteString(s)
	}
	b.WriteString(")")
	return b.String(), nil
}

func (p *printer) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *printer) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Left, e.Right)
}

func (p *printer) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	return p.parenthesize(e.Operator.Lexeme, e.Right)
}

func (p *printer) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	return p.parenthesize("group", e.Inner)
}

func (p *printer) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return e.Token.Lexeme, nil
}

func (p *printer) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (p *printer) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	return p.parenthesize("= "+e.Name.Lexeme, e.Value)
}

func (p *printer) VisitCallExpr(e *ast.Call) (interface{}, error) {
	return p.parenthesize("call", append([]ast.Expr{e.Callee}, e.Args...)...)
}

// ToSource reconstructs ordinary Lox source text from statements, suitable
// for re-lexing/re-parsing to check structural equality with the original
// tree.
func ToSource(statements []ast.Stmt) string {
	s := &sourcePrinter{}
	var b strings.Builder
	for _, stmt := range statements {
		b.WriteString(s.stmtString(stmt))
	}
	return b.String()
}

type sourcePrinter struct {
	indent int
}

func (s *sourcePrinter) line(text string) string {
	return strings.Repeat("  ", s.indent) + text + "\n"
}

func (s *sourcePrinter) stmtString(stmt ast.Stmt) string {
	result, _ := stmt.Accept(s)
	str, _ := result.(string)
	return str
}

func (s *sourcePrinter) exprString(expr ast.Expr) string {
	result, _ := expr.Accept(exprSourcePrinter{})
	str, _ := result.(string)
	return str
}

func (s *sourcePrinter) VisitExpressionStmt(stmt *ast.ExpressionStmt) (interface{}, error) {
	return s.line(s.exprString(stmt.Expression) + ";"), nil
}

func (s *sourcePrinter) VisitPrintStmt(stmt *ast.PrintStmt) (interface{}, error) {
	return s.line("print " + s.exprString(stmt.Expression) + ";"), nil
}

func (s *sourcePrinter) VisitVarStmt(stmt *ast.VarStmt) (interface{}, error) {
	if stmt.Initializer == nil {
		return s.line("var " + stmt.Name.Lexeme + ";"), nil
	}
	return s.line(fmt.Sprintf("var %s = %s;", stmt.Name.Lexeme, s.exprString(stmt.Initializer))), nil
}

func (s *sourcePrinter) VisitBlockStmt(stmt *ast.BlockStmt) (interface{}, error) {
	var b strings.Builder
	b.WriteString(s.line("{"))
	s.indent++
	for _, inner := range stmt.Statements {
		b.WriteString(s.stmtString(inner))
	}
	s.indent--
	b.WriteString(s.line("}"))
	return b.String(), nil
}

func (s *sourcePrinter) VisitIfStmt(stmt *ast.IfStmt) (interface{}, error) {
	var b strings.Builder
	b.WriteString(s.line(fmt.Sprintf("if (%s)", s.exprString(stmt.Condition))))
	b.WriteString(s.stmtString(stmt.Then))
	if stmt.Else != nil {
		b.WriteString(s.line("else"))
		b.WriteString(s.stmtString(stmt.Else))
	}
	return b.String(), nil
}

func (s *sourcePrinter) VisitWhileStmt(stmt *ast.WhileStmt) (interface{}, error) {
	var b strings.Builder
	b.WriteString(s.line(fmt.Sprintf("while (%s)", s.exprString(stmt.Condition))))
	b.WriteString(s.stmtString(stmt.Body))
	return b.String(), nil
}

func (s *sourcePrinter) VisitFunctionStmt(stmt *ast.FunctionStmt) (interface{}, error) {
	names := make([]string, len(stmt.Params))
	for i, p := range stmt.Params {
		names[i] = p.Lexeme
	}
	var b strings.Builder
	b.WriteString(s.line(fmt.Sprintf("fun %s(%s) {", stmt.Name.Lexeme, strings.Join(names, ", "))))
	s.indent++
	for _, inner := range stmt.Body {
		b.WriteString(s.stmtString(inner))
	}
	s.indent--
	b.WriteString(s.line("}"))
	return b.String(), nil
}

func (s *sourcePrinter) VisitReturnStmt(stmt *ast.ReturnStmt) (interface{}, error) {
	if stmt.Value == nil {
		return s.line("return;"), nil
	}
	return s.line("return " + s.exprString(stmt.Value) + ";"), nil
}

// exprSourcePrinter re-emits an expression tree as ordinary Lox source
// (infix, minimal necessary parens around groupings) rather than the
// Lisp-style form Print produces.
type exprSourcePrinter struct{}

func (exprSourcePrinter) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	left, _ := e.Left.Accept(exprSourcePrinter{})
	right, _ := e.Right.Accept(exprSourcePrinter{})
	return fmt.Sprintf("%s %s %s", left, e.Operator.Lexeme, right), nil
}

func (exprSourcePrinter) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, _ := e.Left.Accept(exprSourcePrinter{})
	right, _ := e.Right.Accept(exprSourcePrinter{})
	return fmt.Sprintf("%s %s %s", left, e.Operator.Lexeme, right), nil
}

func (exprSourcePrinter) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, _ := e.Right.Accept(exprSourcePrinter{})
	return fmt.Sprintf("%s%s", e.Operator.Lexeme, right), nil
}

func (exprSourcePrinter) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	inner, _ := e.Inner.Accept(exprSourcePrinter{})
	return fmt.Sprintf("(%s)", inner), nil
}

func (exprSourcePrinter) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	return e.Token.Lexeme, nil
}

func (exprSourcePrinter) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	return e.Name.Lexeme, nil
}

func (exprSourcePrinter) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	value, _ := e.Value.Accept(exprSourcePrinter{})
	return fmt.Sprintf("%s = %s", e.Name.Lexeme, value), nil
}

func (exprSourcePrinter) VisitCallExpr(e *ast.Call) (interface{}, error) {
	callee, _ := e.Callee.Accept(exprSourcePrinter{})
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		s, _ := a.Accept(exprSourcePrinter{})
		args[i], _ = s.(string)
	}
	return fmt.Sprintf("%s(%s)", callee, strings.Join(args, ", ")), nil
}

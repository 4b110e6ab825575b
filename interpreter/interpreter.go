/*
File: golox/interpreter/interpreter.go

Package interpreter tree-walks the AST produced by package parser,
implementing both ast.ExprVisitor and ast.StmtVisitor over a chain of
environment.Environment scopes. The early-return signal that threads a
`return` statement's value back up through nested block/if/while execution
is implemented as a sentinel result value rather than a panic/recover
unwind; the only recover around evaluation is the CLI's top-level
recovery net (see cmd/golox/main.go).
*/
package interpreter

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/callable"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/token"
	"github.com/akashmaji946/golox/value"
)

// returnSignal is produced by Visit*Stmt methods (and threaded through
// their Accept(interface{}, error) results) to carry a `return` statement's
// value up to the nearest enclosing ExecuteBlock call without unwinding the
// Go call stack.
type returnSignal struct {
	value value.Value
}

// Interpreter evaluates a parsed Lox program. Globals is the root scope
// (holding the native built-ins); env is whichever scope is currently
// active, changing as blocks and calls push/pop.
type Interpreter struct {
	Globals *environment.Environment
	env     *environment.Environment
	Out     io.Writer
}

// New constructs an Interpreter with a fresh global scope pre-populated
// with the fixed built-ins: clock, print, print_env.
func New(out io.Writer) *Interpreter {
	globals := environment.New()
	in := &Interpreter{Globals: globals, env: globals, Out: out}
	globals.Define("clock", callable.Clock())
	globals.Define("print", callable.PrintFn(out))
	globals.Define("print_env", callable.PrintEnvFn(out))
	return in
}

// CurrentEnv satisfies callable.Runtime, letting a native built-in inspect
// the scope live at its call site.
func (in *Interpreter) CurrentEnv() *environment.Environment {
	return in.env
}

// Interpret runs a full statement list (a parsed program or one REPL line)
// against the interpreter's current global scope, stopping at the first
// runtime error.
func (in *Interpreter) Interpret(statements []ast.Stmt) error {
	for _, stmt := range statements {
		if _, err := in.execute(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (in *Interpreter) execute(stmt ast.Stmt) (interface{}, error) {
	return stmt.Accept(in)
}

func (in *Interpreter) eval(expr ast.Expr) (value.Value, error) {
	result, err := expr.Accept(in)
	if err != nil {
		return nil, err
	}
	if v, ok := result.(value.Value); ok {
		return v, nil
	}
	return value.Nil{}, nil
}

func (in *Interpreter) runtimeErr(tok token.Token, message string) error {
	return &loxerror.RuntimeError{Token: tok, Message: message}
}

// ExecuteBlock satisfies callable.Runtime and backs both VisitBlockStmt and
// a function call's body: it runs statements against env (pushing it as
// the active scope for the duration), reporting an early return if one
// fired partway through. The previous scope is always restored, including
// when an error propagates.
func (in *Interpreter) ExecuteBlock(statements []ast.Stmt, env *environment.Environment) (value.Value, bool, error) {
	previous := in.env
	in.env = env
	defer func() { in.env = previous }()

	for _, stmt := range statements {
		result, err := in.execute(stmt)
		if err != nil {
			return nil, false, err
		}
		if rs, ok := result.(returnSignal); ok {
			return rs.value, true, nil
		}
	}
	return nil, false, nil
}

// --- StmtVisitor ---

func (in *Interpreter) VisitExpressionStmt(s *ast.ExpressionStmt) (interface{}, error) {
	_, err := in.eval(s.Expression)
	return nil, err
}

func (in *Interpreter) VisitPrintStmt(s *ast.PrintStmt) (interface{}, error) {
	v, err := in.eval(s.Expression)
	if err != nil {
		return nil, err
	}
	fmt.Fprintln(in.Out, value.Display(v))
	return nil, nil
}

func (in *Interpreter) VisitVarStmt(s *ast.VarStmt) (interface{}, error) {
	var v value.Value = value.Nil{}
	if s.Initializer != nil {
		var err error
		v, err = in.eval(s.Initializer)
		if err != nil {
			return nil, err
		}
	}
	in.env.Define(s.Name.Lexeme, v)
	return nil, nil
}

func (in *Interpreter) VisitBlockStmt(s *ast.BlockStmt) (interface{}, error) {
	inner := environment.NewEnclosed(in.env)
	v, didReturn, err := in.ExecuteBlock(s.Statements, inner)
	if err != nil {
		return nil, err
	}
	if didReturn {
		return returnSignal{v}, nil
	}
	return nil, nil
}

func (in *Interpreter) VisitIfStmt(s *ast.IfStmt) (interface{}, error) {
	cond, err := in.eval(s.Condition)
	if err != nil {
		return nil, err
	}
	if value.Truthy(cond) {
		return in.execute(s.Then)
	}
	if s.Else != nil {
		return in.execute(s.Else)
	}
	return nil, nil
}

func (in *Interpreter) VisitWhileStmt(s *ast.WhileStmt) (interface{}, error) {
	for {
		cond, err := in.eval(s.Condition)
		if err != nil {
			return nil, err
		}
		if !value.Truthy(cond) {
			return nil, nil
		}
		result, err := in.execute(s.Body)
		if err != nil {
			return nil, err
		}
		if rs, ok := result.(returnSignal); ok {
			return rs, nil
		}
	}
}

func (in *Interpreter) VisitFunctionStmt(s *ast.FunctionStmt) (interface{}, error) {
	fn := &callable.Function{Declaration: s, Closure: in.env}
	in.env.Define(s.Name.Lexeme, fn)
	return nil, nil
}

func (in *Interpreter) VisitReturnStmt(s *ast.ReturnStmt) (interface{}, error) {
	var v value.Value = value.Nil{}
	if s.Value != nil {
		var err error
		v, err = in.eval(s.Value)
		if err != nil {
			return nil, err
		}
	}
	return returnSignal{v}, nil
}

// --- ExprVisitor ---

func (in *Interpreter) VisitLiteralExpr(e *ast.Literal) (interface{}, error) {
	switch e.Token.Kind {
	case token.Number:
		return value.Number(e.Token.Literal.(float64)), nil
	case token.String:
		return value.String(e.Token.Literal.(string)), nil
	case token.True:
		return value.Boolean(true), nil
	case token.False:
		return value.Boolean(false), nil
	case token.Nil:
		return value.Nil{}, nil
	default:
		return nil, fmt.Errorf("interpreter: unrecognized literal token %s", e.Token)
	}
}

func (in *Interpreter) VisitGroupingExpr(e *ast.Grouping) (interface{}, error) {
	return in.eval(e.Inner)
}

func (in *Interpreter) VisitUnaryExpr(e *ast.Unary) (interface{}, error) {
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.Minus:
		n, ok := right.(value.Number)
		if !ok {
			return nil, in.runtimeErr(e.Operator, "Operand must be a number.")
		}
		return -n, nil
	case token.Bang:
		return value.Boolean(!value.Truthy(right)), nil
	default:
		return nil, fmt.Errorf("interpreter: unrecognized unary operator %s", e.Operator)
	}
}

func (in *Interpreter) numberOperands(op token.Token, left, right value.Value) (value.Number, value.Number, error) {
	ln, lok := left.(value.Number)
	rn, rok := right.(value.Number)
	if !lok || !rok {
		return 0, 0, in.runtimeErr(op, "Operands must be numbers.")
	}
	return ln, rn, nil
}

func (in *Interpreter) VisitBinaryExpr(e *ast.Binary) (interface{}, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := in.eval(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.Plus:
		if ln, ok := left.(value.Number); ok {
			if rn, ok := right.(value.Number); ok {
				return ln + rn, nil
			}
		}
		if ls, ok := left.(value.String); ok {
			if rs, ok := right.(value.String); ok {
				return ls + rs, nil
			}
		}
		return nil, in.runtimeErr(e.Operator, "Operands must be two numbers or two strings.")
	case token.Minus:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln - rn, nil
	case token.Star:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return ln * rn, nil
	case token.Slash:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		// Division by zero yields IEEE 754 +/-Inf or NaN, not a runtime
		// error; it is never special-cased.
		return ln / rn, nil
	case token.Greater:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln > rn), nil
	case token.GreaterEqual:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln >= rn), nil
	case token.Less:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln < rn), nil
	case token.LessEqual:
		ln, rn, err := in.numberOperands(e.Operator, left, right)
		if err != nil {
			return nil, err
		}
		return value.Boolean(ln <= rn), nil
	case token.EqualEqual:
		return value.Boolean(value.Equal(left, right)), nil
	case token.BangEqual:
		return value.Boolean(!value.Equal(left, right)), nil
	default:
		return nil, fmt.Errorf("interpreter: unrecognized binary operator %s", e.Operator)
	}
}

// VisitLogicalExpr implements short-circuit and/or, returning the deciding
// operand itself rather than a coerced Boolean — `"a" or 1` evaluates to
// "a", not true.
func (in *Interpreter) VisitLogicalExpr(e *ast.Logical) (interface{}, error) {
	left, err := in.eval(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == token.Or {
		if value.Truthy(left) {
			return left, nil
		}
	} else {
		if !value.Truthy(left) {
			return left, nil
		}
	}
	return in.eval(e.Right)
}

func (in *Interpreter) VisitVariableExpr(e *ast.Variable) (interface{}, error) {
	v, ok := in.env.Get(e.Name.Lexeme)
	if !ok {
		return nil, in.runtimeErr(e.Name, fmt.Sprintf("Undefined variable '%s'.", e.Name.Lexeme))
	}
	return v, nil
}

func (in *Interpreter) VisitAssignExpr(e *ast.Assign) (interface{}, error) {
	v, err := in.eval(e.Value)
	if err != nil {
		return nil, err
	}
	if !in.env.Assign(e.Name.Lexeme, v) {
		return nil, in.runtimeErr(e.Name, fmt.Sprintf("Undefined variable '%s'.", e.Name.Lexeme))
	}
	return v, nil
}

func (in *Interpreter) VisitCallExpr(e *ast.Call) (interface{}, error) {
	callee, err := in.eval(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]value.Value, 0, len(e.Args))
	for _, a := range e.Args {
		v, err := in.eval(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	fn, ok := callee.(callable.Callable)
	if !ok {
		return nil, in.runtimeErr(e.ClosingParen, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, in.runtimeErr(e.ClosingParen,
			fmt.Sprintf("Expected %d arguments but got %d.", fn.Arity(), len(args)))
	}
	return fn.Call(in, args)
}

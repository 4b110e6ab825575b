/*
File: golox/callable/callable.go

Package callable defines Lox's uniform call contract — arity plus call —
and implements it twice: once for user-defined functions (Function, which
closes over its declaring environment) and once for each native built-in
(Clock, PrintFn, PrintEnvFn), unified into a single Go interface both
function kinds satisfy.
*/
package callable

import (
	"fmt"
	"time"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/value"
)

// Runtime is the slice of *interpreter.Interpreter that a Callable needs to
// invoke a user-defined function's body. Defined here (rather than
// importing package interpreter directly) to avoid an import cycle:
// interpreter needs to evaluate Call expressions against a Callable, and
// Callable.Call needs to run statements — so the dependency is inverted
// through this interface instead.
type Runtime interface {
	// ExecuteBlock runs statements with env itself as the active scope
	// (callers create env, e.g. via environment.NewEnclosed), returning the
	// early-return value/flag if a `return` fired during execution, or a
	// runtime error.
	ExecuteBlock(statements []ast.Stmt, env *environment.Environment) (value.Value, bool, error)

	// CurrentEnv returns the scope active at the call site, so a native
	// built-in (print_env) can inspect live state rather than whatever
	// scope happened to be current when the built-in was registered.
	CurrentEnv() *environment.Environment
}

// Callable is satisfied by both user-defined Lox functions and native
// built-ins, letting the interpreter treat a Call expression's callee
// uniformly regardless of origin.
type Callable interface {
	Arity() int
	Call(rt Runtime, args []value.Value) (value.Value, error)
	value.Value // Type() and String() — a callable is itself a Lox value.
}

// Function is a user-defined Lox function value. Closure is the
// environment that was live at the function's declaration point, captured
// by pointer (never copied) so that recursion and later mutation of outer
// locals both remain visible through it.
type Function struct {
	Declaration *ast.FunctionStmt
	Closure     *environment.Environment
}

func (f *Function) Type() value.Type { return value.FunctionType }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

func (f *Function) Arity() int {
	return len(f.Declaration.Params)
}

// Call establishes a new scope enclosed by the function's captured
// closure (not the caller's environment — that's what makes this lexical
// rather than dynamic scoping), binds each parameter, executes the body,
// and converts an early-return signal into the call's result (nil when
// none fired).
func (f *Function) Call(rt Runtime, args []value.Value) (value.Value, error) {
	callScope := environment.NewEnclosed(f.Closure)
	for i, param := range f.Declaration.Params {
		callScope.Define(param.Lexeme, args[i])
	}
	result, didReturn, err := rt.ExecuteBlock(f.Declaration.Body, callScope)
	if err != nil {
		return nil, err
	}
	if didReturn {
		return result, nil
	}
	return value.Nil{}, nil
}

// NativeFunc wraps a Go function as a Callable, for the fixed built-ins
// registered at interpreter startup: clock, print, print_env.
type NativeFunc struct {
	Name    string
	ArityN  int
	Fn      func(rt Runtime, args []value.Value) (value.Value, error)
}

func (n *NativeFunc) Type() value.Type { return value.FunctionType }
func (n *NativeFunc) String() string   { return fmt.Sprintf("<native fn %s>", n.Name) }
func (n *NativeFunc) Arity() int       { return n.ArityN }
func (n *NativeFunc) Call(rt Runtime, args []value.Value) (value.Value, error) {
	return n.Fn(rt, args)
}

// Clock returns seconds since the Unix epoch as a fractional float64.
func Clock() *NativeFunc {
	return &NativeFunc{
		Name:   "clock",
		ArityN: 0,
		Fn: func(rt Runtime, args []value.Value) (value.Value, error) {
			return value.Number(float64(time.Now().UnixNano()) / 1e9), nil
		},
	}
}

// PrintFn prints v's display form to w followed by a newline, returning
// nil. The writer is bound at registration time so the interpreter can
// redirect builtin output independently of the REPL/script's own stdout.
func PrintFn(w interface{ Write([]byte) (int, error) }) *NativeFunc {
	return &NativeFunc{
		Name:   "print",
		ArityN: 1,
		Fn: func(rt Runtime, args []value.Value) (value.Value, error) {
			fmt.Fprintln(w, value.Display(args[0]))
			return value.Nil{}, nil
		},
	}
}

// PrintEnvFn returns a print_env builtin that dumps the scope chain live
// at the call site for debugging (see environment.Environment.Dump).
func PrintEnvFn(w interface{ Write([]byte) (int, error) }) *NativeFunc {
	return &NativeFunc{
		Name:   "print_env",
		ArityN: 0,
		Fn: func(rt Runtime, args []value.Value) (value.Value, error) {
			fmt.Fprint(w, rt.CurrentEnv().Dump())
			return value.Nil{}, nil
		},
	}
}

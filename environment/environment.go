/*
File: golox/environment/environment.go

Package environment implements Lox's lexically scoped name->value
bindings, chained through an enclosing pointer: a distinguished global
scope at the root, a fresh scope pushed per block and per function call,
and — critically — a Function value sharing a *pointer* to its declaring
Environment rather than a copy, so later mutations of an outer variable
are visible through an already-created closure.
*/
package environment

import (
	"fmt"
	"sort"
	"strings"

	"github.com/akashmaji946/golox/value"
)

// Environment is one scope in the lexical chain. Enclosing is nil only for
// the global scope.
type Environment struct {
	values    map[string]value.Value
	Enclosing *Environment
}

// New creates a fresh global scope (Enclosing == nil).
func New() *Environment {
	return &Environment{values: make(map[string]value.Value)}
}

// NewEnclosed creates a scope nested directly inside enclosing. Used both
// for block execution and for the scope a function call binds its
// parameters into (itself nested inside the function's captured closure
// scope, not the caller's).
func NewEnclosed(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Enclosing: enclosing}
}

// Define binds name in this scope, overwriting any existing binding in
// this scope only (parent scopes are untouched — this is how a block-local
// `var x` shadows an outer `x` rather than reassigning it).
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get resolves name by walking outward from this scope to the global
// scope, returning the first binding found.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, false
}

// Assign updates an existing binding in the nearest scope that defines
// name, searching outward from this scope. It does not create a new
// binding; assigning an undefined name is a caller-detected error
// (the caller reports it as an undefined-variable runtime error).
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, v)
	}
	return false
}

// WithScope runs body with a freshly pushed child scope of e as the active
// environment, guaranteeing the scope is released (simply discarded, since
// Go's GC reclaims it) on every exit path including a returned error. The
// caller supplies the child scope to body rather than mutating e in place,
// since a single Environment value never changes its own identity once
// created.
func WithScope(e *Environment, body func(inner *Environment) error) error {
	inner := NewEnclosed(e)
	return body(inner)
}

// Dump renders the full scope chain, innermost first, for the print_env
// builtin. Each scope is one brace-delimited block; bindings are sorted by
// name within a scope for deterministic output.
func (e *Environment) Dump() string {
	var b strings.Builder
	scope := e
	depth := 0
	for scope != nil {
		label := "global"
		if scope.Enclosing != nil {
			label = fmt.Sprintf("scope[%d]", depth)
		}
		fmt.Fprintf(&b, "%s {\n", label)
		names := make([]string, 0, len(scope.values))
		for name := range scope.values {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(&b, "  %s = %s\n", name, value.Display(scope.values[name]))
		}
		b.WriteString("}\n")
		scope = scope.Enclosing
		depth++
	}
	return b.String()
}

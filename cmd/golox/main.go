/*
File: golox/cmd/golox/main.go

The golox CLI: no arguments starts the REPL, one argument runs that file as
a script, anything else is a usage error. Exit codes: 0 on success, 64 on
CLI misuse, 65 if any static (scan/parse) error was reported, 70 if a
runtime error propagated out of execution.

The top-level panic recovery net in runFile exists purely as a
last-resort safety belt; normal error paths never reach it. (See
interpreter.go's doc comment on why panics aren't the primary
control-flow mechanism here.)
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/repl"
)

const (
	exitOK         = 0
	exitUsage      = 64
	exitStaticErr  = 65
	exitRuntimeErr = 70
)

func main() {
	args := os.Args[1:]
	switch len(args) {
	case 0:
		if err := repl.Run(os.Stdout, os.Stderr); err != nil {
			fmt.Fprintln(os.Stderr, color.RedString("golox: %v", err))
			os.Exit(exitUsage)
		}
	case 1:
		os.Exit(runFile(args[0]))
	default:
		fmt.Fprintln(os.Stderr, "Usage: golox [script]")
		os.Exit(exitUsage)
	}
}

// runFile reads path as UTF-8 source, scans/parses/interprets it once, and
// returns the matching process exit code.
func runFile(path string) int {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, color.RedString("golox: internal error: %v", r))
			os.Exit(exitRuntimeErr)
		}
	}()

	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, color.RedString("golox: %v", err))
		return exitUsage
	}

	reporter := loxerror.New(os.Stderr)

	scanner := lexer.New(string(src))
	tokens, lexErrs := scanner.ScanTokens()
	for _, e := range lexErrs {
		if le, ok := e.(*lexer.Error); ok {
			reporter.Error(le.Line, le.Message)
		}
	}

	p := parser.New(tokens)
	statements := p.Parse()
	for _, e := range p.Errors {
		if pe, ok := e.(*parser.ParseError); ok {
			reporter.ErrorToken(pe.Token, pe.Message)
		}
	}

	if reporter.HadStaticError {
		return exitStaticErr
	}

	interp := interpreter.New(os.Stdout)
	if err := interp.Interpret(statements); err != nil {
		if re, ok := err.(*loxerror.RuntimeError); ok {
			reporter.Runtime(re)
			return exitRuntimeErr
		}
		fmt.Fprintln(os.Stderr, color.RedString("golox: %v", err))
		return exitRuntimeErr
	}

	return exitOK
}

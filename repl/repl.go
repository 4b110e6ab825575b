/*
File: golox/repl/repl.go

Package repl implements Lox's interactive "> " loop: read a line, run it
as a complete program against a persistent interpreter, print any
diagnostics, repeat. An empty line ends the session; a bad line reports to
stderr but never kills the process.

Line editing and history come from github.com/chzyer/readline; the prompt
and diagnostics are colorized with github.com/fatih/color.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/loxerror"
	"github.com/akashmaji946/golox/parser"
)

const prompt = "> "

// Run starts the REPL, reading lines until an empty line or EOF. Output
// goes to out; diagnostics go to errOut. Returns nil on a clean exit
// (empty line or EOF); a non-nil error indicates readline itself failed to
// start or to read a line.
func Run(out, errOut io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          color.New(color.FgGreen, color.Bold).Sprint(prompt),
		HistoryFile:     "",
		InterruptPrompt: "^C",
		EOFPrompt:       "",
	})
	if err != nil {
		return fmt.Errorf("repl: starting readline: %w", err)
	}
	defer rl.Close()

	interp := interpreter.New(out)
	reporter := loxerror.New(errOut)

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("repl: reading line: %w", err)
		}
		if strings.TrimSpace(line) == "" {
			return nil
		}

		reporter.Reset()
		runLine(line, interp, reporter)
	}
}

// runLine scans, parses, and interprets a single REPL line, reporting any
// diagnostic through reporter rather than returning an error — the REPL
// loop in Run never stops on a bad line.
func runLine(line string, interp *interpreter.Interpreter, reporter *loxerror.Reporter) {
	scanner := lexer.New(line)
	tokens, lexErrs := scanner.ScanTokens()
	for _, e := range lexErrs {
		if le, ok := e.(*lexer.Error); ok {
			reporter.Error(le.Line, le.Message)
		}
	}
	if reporter.HadStaticError {
		return
	}

	p := parser.New(tokens)
	statements := p.Parse()
	if p.HasErrors() {
		for _, e := range p.Errors {
			if pe, ok := e.(*parser.ParseError); ok {
				reporter.ErrorToken(pe.Token, pe.Message)
			}
		}
		return
	}

	if err := interp.Interpret(statements); err != nil {
		if re, ok := err.(*loxerror.RuntimeError); ok {
			reporter.Runtime(re)
			return
		}
		fmt.Fprintln(reporter.Out, err.Error())
	}
}

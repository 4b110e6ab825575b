/*
File: golox/loxerror/loxerror.go

Package loxerror centralizes diagnostic reporting and the static/runtime
error-state tracking that drives the CLI's exit code: 0 on success, 65 if
any static error was reported, 70 if a runtime error propagated out of
execution. Diagnostics are line-prefixed ("[line N] Error<where>: message"),
with "<where>" distinguishing an end-of-file token from a specific lexeme.
Errors accumulate rather than aborting the first call site that notices
one, so a single pass can surface every problem in a source file.
*/
package loxerror

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/token"
)

// RuntimeError is a runtime fault raised during evaluation, carrying the
// offending token so the reporter can attribute it to a source line.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// Reporter accumulates diagnostics for one run (one script execution, or
// one REPL line) and latches whether a static or runtime error occurred,
// the flags cmd/golox/main.go inspects to choose an exit code.
type Reporter struct {
	Out             io.Writer
	HadStaticError  bool
	HadRuntimeError bool
}

// New creates a Reporter writing to w (normally os.Stderr).
func New(w io.Writer) *Reporter {
	return &Reporter{Out: w}
}

// Reset clears the latched error flags, for REPL reuse across lines — one
// bad line must not poison the exit status of lines that follow it.
func (r *Reporter) Reset() {
	r.HadStaticError = false
	r.HadRuntimeError = false
}

// Error reports a diagnostic at a bare source line (scanner-stage errors,
// which have no token to anchor to).
func (r *Reporter) Error(line int, message string) {
	r.report(line, "", message)
	r.HadStaticError = true
}

// ErrorToken reports a diagnostic anchored to tok (parser-stage errors):
// "at end" for an Eof token, "at '<lexeme>'" otherwise.
func (r *Reporter) ErrorToken(tok token.Token, message string) {
	where := fmt.Sprintf(" at '%s'", tok.Lexeme)
	if tok.Kind == token.Eof {
		where = " at end"
	}
	r.report(tok.Line, where, message)
	r.HadStaticError = true
}

func (r *Reporter) report(line int, where, message string) {
	fmt.Fprintf(r.Out, "[line %d] Error%s: %s\n", line, where, message)
}

// Runtime reports a runtime error: the message, then the offending line on
// its own line beneath it.
func (r *Reporter) Runtime(err *RuntimeError) {
	fmt.Fprintf(r.Out, "%s\n[line %d]\n", err.Message, err.Token.Line)
	r.HadRuntimeError = true
}

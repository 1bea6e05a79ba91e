// Package diag collects the syntax and runtime errors raised while a
// program is scanned, parsed and executed.
package diag

import (
	"fmt"
	"io"
)

// Reporter is the sink the scanner, parser and evaluator write to.
type Reporter interface {
	// Report records a lexical or parse error. where is "" for scanner
	// errors, " at end" at end of input and " at '<lexeme>'" otherwise.
	Report(line int, where, message string)
	// ReportRuntime records an error raised while executing a statement.
	ReportRuntime(line int, message string)
}

type Kind uint8

const (
	Syntax Kind = iota
	Runtime
)

type Diagnostic struct {
	Kind    Kind
	Line    int
	Where   string
	Message string
}

func (d Diagnostic) String() string {
	if d.Kind == Runtime {
		return fmt.Sprintf("%s \n[line %d]", d.Message, d.Line)
	}

	return fmt.Sprintf("[line %d] Error%s: %s", d.Line, d.Where, d.Message)
}

// Collector is a Reporter that keeps every diagnostic and, when out is
// set, prints each one as it arrives.
type Collector struct {
	out         io.Writer
	diagnostics []Diagnostic

	hadError        bool
	hadRuntimeError bool
}

func NewCollector(out io.Writer) *Collector {
	return &Collector{out: out}
}

func (c *Collector) Report(line int, where, message string) {
	c.hadError = true
	c.add(Diagnostic{Kind: Syntax, Line: line, Where: where, Message: message})
}

func (c *Collector) ReportRuntime(line int, message string) {
	c.hadRuntimeError = true
	c.add(Diagnostic{Kind: Runtime, Line: line, Message: message})
}

func (c *Collector) add(d Diagnostic) {
	c.diagnostics = append(c.diagnostics, d)
	if c.out != nil {
		fmt.Fprintln(c.out, d.String())
	}
}

func (c *Collector) HadError() bool {
	return c.hadError
}

func (c *Collector) HadRuntimeError() bool {
	return c.hadRuntimeError
}

func (c *Collector) Diagnostics() []Diagnostic {
	return c.diagnostics
}

// Reset clears both flags and the recorded diagnostics. The REPL calls
// it before every line.
func (c *Collector) Reset() {
	c.hadError = false
	c.hadRuntimeError = false
	c.diagnostics = nil
}

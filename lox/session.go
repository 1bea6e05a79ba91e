// Package lox ties the scanner, parser and evaluator together.
package lox

import (
	"io"

	"github.com/havrydotdev/lox/ast"
	"github.com/havrydotdev/lox/diag"
	eval "github.com/havrydotdev/lox/evaluator"
	"github.com/havrydotdev/lox/expr"
	"github.com/havrydotdev/lox/parser"
	"github.com/havrydotdev/lox/scanner"
)

// Session runs sources against one evaluator, so bindings made by one
// Run are visible to the next. The REPL uses one Session for all lines.
type Session struct {
	evaluator *eval.Evaluator
	errors    *diag.Collector

	// PrintAST writes the parenthesized tree of every parsed statement
	// to out before it is executed.
	PrintAST bool
	out      io.Writer
}

// NewSession prints program output to out and diagnostics to errOut.
func NewSession(out, errOut io.Writer) *Session {
	collector := diag.NewCollector(errOut)

	return &Session{
		evaluator: eval.New(out, collector),
		errors:    collector,
		out:       out,
	}
}

// Run scans, parses and, when both succeeded, executes source. It
// returns the statements that were parsed.
func (s *Session) Run(source string) []ast.Stmt {
	tokens, _ := scanner.New(source, s.errors).Scan()

	stmts, _ := parser.New(tokens, ast.NewBuilder(), s.errors).Parse()
	if s.errors.HadError() {
		return stmts
	}

	if s.PrintAST {
		s.printTree(source)
	}

	s.evaluator.Interpret(stmts)

	return stmts
}

func (s *Session) printTree(source string) {
	// the source already scanned cleanly, so reparse it silently
	tokens, _ := scanner.New(source, nil).Scan()
	printers, _ := parser.New(tokens, expr.NewPrinter(), nil).Parse()

	for _, p := range printers {
		io.WriteString(s.out, p.Print()+"\n")
	}
}

func (s *Session) HadError() bool {
	return s.errors.HadError()
}

func (s *Session) HadRuntimeError() bool {
	return s.errors.HadRuntimeError()
}

func (s *Session) Diagnostics() []diag.Diagnostic {
	return s.errors.Diagnostics()
}

// Reset clears the error state between REPL lines. Bindings are kept.
func (s *Session) Reset() {
	s.errors.Reset()
}

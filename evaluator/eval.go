package eval

import (
	"errors"
	"fmt"
	"io"

	"github.com/havrydotdev/lox/ast"
	"github.com/havrydotdev/lox/diag"
	env "github.com/havrydotdev/lox/environment"
	"github.com/havrydotdev/lox/token"
	"github.com/havrydotdev/lox/value"
)

// Evaluator walks the tree. It keeps a pointer to the current frame and
// swaps it around blocks.
type Evaluator struct {
	globals     *env.Env
	environment *env.Env

	out      io.Writer
	reporter diag.Reporter
}

// New returns an evaluator that prints to out and reports runtime
// errors to reporter.
func New(out io.Writer, reporter diag.Reporter) *Evaluator {
	globals := env.New()

	return &Evaluator{globals: globals, environment: globals, out: out, reporter: reporter}
}

func (e *Evaluator) Globals() *env.Env {
	return e.globals
}

// Interpret runs stmts in the current frame. A runtime error is
// reported and only aborts the statement that raised it.
func (e *Evaluator) Interpret(stmts []ast.Stmt) {
	e.executeAll(stmts)
}

// Execute runs stmts with environment as the current frame and restores
// the previous frame afterwards.
func (e *Evaluator) Execute(stmts []ast.Stmt, environment *env.Env) {
	prev := e.environment
	e.environment = environment
	defer func() { e.environment = prev }()

	e.executeAll(stmts)
}

func (e *Evaluator) executeAll(stmts []ast.Stmt) {
	for _, stmt := range stmts {
		if err := e.execute(stmt); err != nil {
			e.report(err)
		}
	}
}

func (e *Evaluator) report(err error) {
	if e.reporter == nil {
		return
	}

	var rerr *RuntimeError
	if errors.As(err, &rerr) {
		e.reporter.ReportRuntime(rerr.Token.Line, rerr.Message)
		return
	}

	e.reporter.ReportRuntime(0, err.Error())
}

func (e *Evaluator) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.ExpressionStmt:
		_, err := e.Evaluate(s.Expression)
		return err

	case *ast.Print:
		v, err := e.Evaluate(s.Expression)
		if err != nil {
			return err
		}

		fmt.Fprintln(e.out, v.String())
		return nil

	case *ast.VarDecl:
		v := value.Nil
		if s.Initializer != nil {
			var err error
			v, err = e.Evaluate(s.Initializer)
			if err != nil {
				return err
			}
		}

		e.environment.Define(s.Name.Lexeme, v)
		return nil

	case *ast.Block:
		e.Execute(s.Statements, env.NewChild(e.environment))
		return nil

	case *ast.If:
		cond, err := e.Evaluate(s.Condition)
		if err != nil {
			return err
		}

		if cond.Truthy() {
			return e.execute(s.Then)
		} else if s.Else != nil {
			return e.execute(s.Else)
		}

		return nil

	case *ast.While:
		for {
			cond, err := e.Evaluate(s.Condition)
			if err != nil {
				return err
			}

			if !cond.Truthy() {
				return nil
			}

			if err := e.execute(s.Body); err != nil {
				return err
			}
		}
	}

	return fmt.Errorf("unknown statement %T", stmt)
}

func (e *Evaluator) Evaluate(expr ast.Expr) (value.Value, error) {
	switch x := expr.(type) {
	case *ast.Literal:
		return literal(x.Value)

	case *ast.Grouping:
		return e.Evaluate(x.Expression)

	case *ast.Variable:
		v, err := e.environment.Get(x.Name.Lexeme)
		if err != nil {
			return value.Nil, undefined(x.Name, err)
		}

		return v, nil

	case *ast.Assign:
		v, err := e.Evaluate(x.Value)
		if err != nil {
			return value.Nil, err
		}

		if err := e.environment.Assign(x.Name.Lexeme, v); err != nil {
			return value.Nil, undefined(x.Name, err)
		}

		return v, nil

	case *ast.Unary:
		return e.unary(x)

	case *ast.Binary:
		return e.binary(x)

	case *ast.Logical:
		l, err := e.Evaluate(x.Left)
		if err != nil {
			return value.Nil, err
		}

		if x.Operator.Kind == token.Or {
			if l.Truthy() {
				return l, nil
			}
		} else {
			if !l.Truthy() {
				return l, nil
			}
		}

		return e.Evaluate(x.Right)
	}

	return value.Nil, fmt.Errorf("unknown expression %T", expr)
}

func literal(tok token.Token) (value.Value, error) {
	switch tok.Kind {
	case token.True:
		return value.Bool(true), nil
	case token.False:
		return value.Bool(false), nil
	case token.Nil:
		return value.Nil, nil
	case token.Number:
		if n, ok := tok.Literal.(float64); ok {
			return value.Number(n), nil
		}
	case token.String:
		if s, ok := tok.Literal.(string); ok {
			return value.String(s), nil
		}
	}

	return value.Nil, typeError(tok, "Invalid literal '%s'.", tok.Lexeme)
}

func (e *Evaluator) unary(x *ast.Unary) (value.Value, error) {
	right, err := e.Evaluate(x.Operand)
	if err != nil {
		return value.Nil, err
	}

	switch x.Operator.Kind {
	case token.Minus:
		n, ok := right.AsNumber()
		if !ok {
			return value.Nil, typeError(x.Operator, "Operand of '-' must be a number, got %v.", right.Kind)
		}

		return value.Number(-n), nil
	case token.Bang:
		return value.Bool(!right.Truthy()), nil
	}

	return value.Nil, typeError(x.Operator, "Unexpected operator '%s'.", x.Operator.Lexeme)
}

func (e *Evaluator) binary(x *ast.Binary) (value.Value, error) {
	l, err := e.Evaluate(x.Left)
	if err != nil {
		return value.Nil, err
	}

	r, err := e.Evaluate(x.Right)
	if err != nil {
		return value.Nil, err
	}

	op := x.Operator
	switch op.Kind {
	case token.EqualEqual, token.BangEqual:
		eq, err := isEqual(op, l, r)
		if err != nil {
			return value.Nil, err
		}

		return value.Bool(eq == (op.Kind == token.EqualEqual)), nil

	case token.Plus:
		ls, okl := l.AsString()
		rs, okr := r.AsString()
		if okl && okr {
			return value.String(ls + rs), nil
		}

		ln, okl := l.AsNumber()
		rn, okr := r.AsNumber()
		if okl && okr {
			return value.Number(ln + rn), nil
		}

		return value.Nil, operandsError(op, "two numbers or two strings", l, r)
	}

	ln, rn, err := checkNums(op, l, r)
	if err != nil {
		return value.Nil, err
	}

	switch op.Kind {
	case token.Minus:
		return value.Number(ln - rn), nil
	case token.Star:
		return value.Number(ln * rn), nil
	case token.Slash:
		return value.Number(ln / rn), nil

	case token.Greater:
		return value.Bool(ln > rn), nil
	case token.GreaterEqual:
		return value.Bool(ln >= rn), nil
	case token.Less:
		return value.Bool(ln < rn), nil
	case token.LessEqual:
		return value.Bool(ln <= rn), nil
	}

	return value.Nil, typeError(op, "Unexpected operator '%s'.", op.Lexeme)
}

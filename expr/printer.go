package expr

import (
	"fmt"
	"strings"

	interp "github.com/havrydotdev/lox/interpreter"
	"github.com/havrydotdev/lox/token"
)

type Printer interface {
	Print() string
}

// implements Printer
type PrintFunc func() string

func (fn PrintFunc) Print() string {
	return fn()
}

// PrintExpr renders a parse as nested parenthesized prefix forms,
// e.g. "1 + 2 * 3" as "(+ 1 (* 2 3))".
type PrintExpr struct{}

func NewPrinter() interp.Alg[Printer, Printer] {
	return &PrintExpr{}
}

func (*PrintExpr) If(cond Printer, then Printer, _else *Printer) Printer {
	return PrintFunc(func() string {
		if _else == nil {
			return parenthesize("if", cond, then)
		}

		return parenthesize("if", cond, then, *_else)
	})
}

func (*PrintExpr) While(cond Printer, body Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("while", cond, body)
	})
}

func (*PrintExpr) Block(stmts []Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("block", stmts...)
	})
}

func (*PrintExpr) Variable(name token.Token) Printer {
	return PrintFunc(func() string {
		return name.Lexeme
	})
}

func (*PrintExpr) Assign(name token.Token, value Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(fmt.Sprintf("= %s", name.Lexeme), value)
	})
}

func (*PrintExpr) Var(name token.Token, init *Printer) Printer {
	return PrintFunc(func() string {
		if init == nil {
			return parenthesize(fmt.Sprintf("var %s", name.Lexeme))
		}

		return parenthesize(fmt.Sprintf("var %s", name.Lexeme), *init)
	})
}

func (*PrintExpr) Literal(value token.Token) Printer {
	return PrintFunc(func() string {
		switch value.Kind {
		case token.Number, token.String:
			return fmt.Sprintf("%v", value.Literal)
		}

		return value.Lexeme
	})
}

func (*PrintExpr) Grouping(expr Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("group", expr)
	})
}

func (*PrintExpr) Unary(op token.Token, right Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(op.Lexeme, right)
	})
}

func (*PrintExpr) Binary(op token.Token, left, right Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(op.Lexeme, left, right)
	})
}

func (*PrintExpr) Logical(op token.Token, left, right Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(op.Lexeme, left, right)
	})
}

func (*PrintExpr) Print(expr Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize("print", expr)
	})
}

func (*PrintExpr) ExprStatement(expr Printer) Printer {
	return PrintFunc(func() string {
		return parenthesize(";", expr)
	})
}

func parenthesize(name string, parts ...Printer) string {
	var b strings.Builder

	b.WriteString("(" + name)
	for _, part := range parts {
		b.WriteString(" " + part.Print())
	}

	b.WriteString(")")

	return b.String()
}

package ast

import (
	interp "github.com/havrydotdev/lox/interpreter"
	"github.com/havrydotdev/lox/token"
)

// Builder is the algebra that turns parser callbacks into tree nodes.
type Builder struct{}

func NewBuilder() interp.Alg[Expr, Stmt] {
	return Builder{}
}

func (Builder) Literal(value token.Token) Expr {
	return &Literal{Value: value}
}

func (Builder) Grouping(expr Expr) Expr {
	return &Grouping{Expression: expr}
}

func (Builder) Variable(name token.Token) Expr {
	return &Variable{Name: name}
}

func (Builder) Unary(op token.Token, right Expr) Expr {
	return &Unary{Operator: op, Operand: right}
}

func (Builder) Assign(name token.Token, value Expr) Expr {
	return &Assign{Name: name, Value: value}
}

func (Builder) Binary(op token.Token, left, right Expr) Expr {
	return &Binary{Left: left, Operator: op, Right: right}
}

func (Builder) Logical(op token.Token, left, right Expr) Expr {
	return &Logical{Left: left, Operator: op, Right: right}
}

func (Builder) Print(expr Expr) Stmt {
	return &Print{Expression: expr}
}

func (Builder) Block(stmts []Stmt) Stmt {
	return &Block{Statements: stmts}
}

func (Builder) While(cond Expr, body Stmt) Stmt {
	return &While{Condition: cond, Body: body}
}

func (Builder) ExprStatement(expr Expr) Stmt {
	return &ExpressionStmt{Expression: expr}
}

func (Builder) If(cond Expr, then Stmt, els *Stmt) Stmt {
	s := &If{Condition: cond, Then: then}
	if els != nil {
		s.Else = *els
	}

	return s
}

func (Builder) Var(name token.Token, init *Expr) Stmt {
	s := &VarDecl{Name: name}
	if init != nil {
		s.Initializer = *init
	}

	return s
}

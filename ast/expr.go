// Package ast holds the syntax tree produced by the parser. Every node
// owns its children; nothing is shared between two parents.
package ast

import "github.com/havrydotdev/lox/token"

type Expr interface {
	// Clone returns a deep copy of the subtree.
	Clone() Expr
	exprNode()
}

// Literal carries a Number or String token, or one of true, false, nil.
type Literal struct {
	Value token.Token
}

type Grouping struct {
	Expression Expr
}

type Unary struct {
	Operator token.Token
	Operand  Expr
}

type Binary struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

// Logical is an "and" / "or" expression. It is kept apart from Binary
// because it short-circuits.
type Logical struct {
	Left     Expr
	Operator token.Token
	Right    Expr
}

type Variable struct {
	Name token.Token
}

type Assign struct {
	Name  token.Token
	Value Expr
}

func (*Literal) exprNode()  {}
func (*Grouping) exprNode() {}
func (*Unary) exprNode()    {}
func (*Binary) exprNode()   {}
func (*Logical) exprNode()  {}
func (*Variable) exprNode() {}
func (*Assign) exprNode()   {}

func (e *Literal) Clone() Expr {
	return &Literal{Value: e.Value}
}

func (e *Grouping) Clone() Expr {
	return &Grouping{Expression: cloneExpr(e.Expression)}
}

func (e *Unary) Clone() Expr {
	return &Unary{Operator: e.Operator, Operand: cloneExpr(e.Operand)}
}

func (e *Binary) Clone() Expr {
	return &Binary{Left: cloneExpr(e.Left), Operator: e.Operator, Right: cloneExpr(e.Right)}
}

func (e *Logical) Clone() Expr {
	return &Logical{Left: cloneExpr(e.Left), Operator: e.Operator, Right: cloneExpr(e.Right)}
}

func (e *Variable) Clone() Expr {
	return &Variable{Name: e.Name}
}

func (e *Assign) Clone() Expr {
	return &Assign{Name: e.Name, Value: cloneExpr(e.Value)}
}

func (e *Grouping) SetExpression(expr Expr) { e.Expression = expr }
func (e *Unary) SetOperand(expr Expr)       { e.Operand = expr }
func (e *Binary) SetLeft(expr Expr)         { e.Left = expr }
func (e *Binary) SetRight(expr Expr)        { e.Right = expr }
func (e *Logical) SetLeft(expr Expr)        { e.Left = expr }
func (e *Logical) SetRight(expr Expr)       { e.Right = expr }
func (e *Assign) SetValue(expr Expr)        { e.Value = expr }

func cloneExpr(e Expr) Expr {
	if e == nil {
		return nil
	}

	return e.Clone()
}

package ast

import "github.com/havrydotdev/lox/token"

type Stmt interface {
	Clone() Stmt
	stmtNode()
}

type ExpressionStmt struct {
	Expression Expr
}

type Print struct {
	Expression Expr
}

// VarDecl declares Name in the current scope. Initializer is nil for
// "var a;".
type VarDecl struct {
	Name        token.Token
	Initializer Expr
}

type Block struct {
	Statements []Stmt
}

// If has a nil Else when the source has no else branch.
type If struct {
	Condition Expr
	Then      Stmt
	Else      Stmt
}

type While struct {
	Condition Expr
	Body      Stmt
}

func (*ExpressionStmt) stmtNode() {}
func (*Print) stmtNode()          {}
func (*VarDecl) stmtNode()        {}
func (*Block) stmtNode()          {}
func (*If) stmtNode()             {}
func (*While) stmtNode()          {}

func (s *ExpressionStmt) Clone() Stmt {
	return &ExpressionStmt{Expression: cloneExpr(s.Expression)}
}

func (s *Print) Clone() Stmt {
	return &Print{Expression: cloneExpr(s.Expression)}
}

func (s *VarDecl) Clone() Stmt {
	return &VarDecl{Name: s.Name, Initializer: cloneExpr(s.Initializer)}
}

func (s *Block) Clone() Stmt {
	return &Block{Statements: CloneAll(s.Statements)}
}

func (s *If) Clone() Stmt {
	return &If{Condition: cloneExpr(s.Condition), Then: cloneStmt(s.Then), Else: cloneStmt(s.Else)}
}

func (s *While) Clone() Stmt {
	return &While{Condition: cloneExpr(s.Condition), Body: cloneStmt(s.Body)}
}

func (s *ExpressionStmt) SetExpression(expr Expr) { s.Expression = expr }
func (s *Print) SetExpression(expr Expr)          { s.Expression = expr }
func (s *VarDecl) SetInitializer(expr Expr)       { s.Initializer = expr }
func (s *If) SetCondition(expr Expr)              { s.Condition = expr }
func (s *While) SetCondition(expr Expr)           { s.Condition = expr }

// CloneAll deep-copies a statement list.
func CloneAll(stmts []Stmt) []Stmt {
	if stmts == nil {
		return nil
	}

	out := make([]Stmt, len(stmts))
	for i, s := range stmts {
		out[i] = cloneStmt(s)
	}

	return out
}

func cloneStmt(s Stmt) Stmt {
	if s == nil {
		return nil
	}

	return s.Clone()
}

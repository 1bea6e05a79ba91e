package interp

import "github.com/havrydotdev/lox/token"

// Visitor pattern doesn't really work in golang
// so we have to use object algebras
// https://www.cs.utexas.edu/%7Ewcook/Drafts/2012/ecoop2012.pdf
//
// E is for expression, S is for statement. The parser only ever builds
// through an Alg, so the same grammar drives both the AST builder and
// the debug printer.
type Alg[E any, S any] interface {
	Literal(value token.Token) E
	Grouping(expr E) E
	Variable(name token.Token) E
	Unary(op token.Token, right E) E
	Assign(name token.Token, value E) E
	Binary(op token.Token, left, right E) E
	Logical(op token.Token, left, right E) E

	Print(expr E) S
	Block(stmts []S) S
	While(cond E, body S) S
	ExprStatement(expr E) S
	// els is nil when there is no else branch
	If(cond E, then S, els *S) S
	// init is nil for "var a;"
	Var(name token.Token, init *E) S
}

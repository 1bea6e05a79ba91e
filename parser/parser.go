package parser

import (
	"fmt"
	"slices"

	"github.com/havrydotdev/lox/diag"
	interp "github.com/havrydotdev/lox/interpreter"
	"github.com/havrydotdev/lox/token"
)

// Error is a parse error at Token. It unwinds the recursive descent up
// to the enclosing declaration.
type Error struct {
	Token   token.Token
	Message string
}

func (e *Error) Where() string {
	if e.Token.Kind == token.Eof {
		return " at end"
	}

	return fmt.Sprintf(" at '%s'", e.Token.Lexeme)
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] Error%s: %s", e.Token.Line, e.Where(), e.Message)
}

type Parser[E any, S any] struct {
	current  int
	errors   []error
	tokens   []token.Token
	alg      interp.Alg[E, S]
	reporter diag.Reporter
}

// New expects tokens to end with an Eof token, as the scanner produces.
func New[E any, S any](tokens []token.Token, alg interp.Alg[E, S], reporter diag.Reporter) *Parser[E, S] {
	if len(tokens) == 0 || tokens[len(tokens)-1].Kind != token.Eof {
		line := 1
		if len(tokens) != 0 {
			line = tokens[len(tokens)-1].Line
		}

		tokens = append(slices.Clip(tokens), token.New(token.Eof, "", nil, line))
	}

	return &Parser[E, S]{tokens: tokens, alg: alg, reporter: reporter}
}

// Parse returns every statement that parsed cleanly together with all
// errors. A source with errors must not be executed.
func (p *Parser[E, S]) Parse() ([]S, []error) {
	var stmts []S
	for !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			p.synchronize()
			continue
		}

		stmts = append(stmts, stmt)
	}

	return stmts, p.errors
}

func (p *Parser[E, S]) declaration() (S, error) {
	if p.match(token.Var) {
		return p.varDeclaration()
	}

	return p.statement()
}

func (p *Parser[E, S]) varDeclaration() (S, error) {
	var zero S

	name, err := p.consume(token.Identifier, "Expect variable name.")
	if err != nil {
		return zero, err
	}

	var init *E
	if p.match(token.Equal) {
		value, err := p.expression()
		if err != nil {
			return zero, err
		}

		init = &value
	}

	_, err = p.consume(token.Semicolon, "Expect ';' after variable declaration.")
	if err != nil {
		return zero, err
	}

	return p.alg.Var(name, init), nil
}

func (p *Parser[E, S]) statement() (S, error) {
	switch {
	case p.match(token.If):
		return p.ifStatement()
	case p.match(token.While):
		return p.whileStatement()
	case p.match(token.Print):
		return p.printStatement()
	case p.match(token.LeftBrace):
		return p.block()
	default:
		return p.expressionStatement()
	}
}

func (p *Parser[E, S]) ifStatement() (S, error) {
	var zero S

	_, err := p.consume(token.LeftParen, "Expect '(' after 'if'.")
	if err != nil {
		return zero, err
	}

	cond, err := p.expression()
	if err != nil {
		return zero, err
	}

	_, err = p.consume(token.RightParen, "Expect ')' after if condition.")
	if err != nil {
		return zero, err
	}

	then, err := p.statement()
	if err != nil {
		return zero, err
	}

	var _else *S
	if p.match(token.Else) {
		stmt, err := p.statement()
		if err != nil {
			return zero, err
		}

		_else = &stmt
	}

	return p.alg.If(cond, then, _else), nil
}

func (p *Parser[E, S]) whileStatement() (S, error) {
	var zero S

	_, err := p.consume(token.LeftParen, "Expect '(' after 'while'.")
	if err != nil {
		return zero, err
	}

	cond, err := p.expression()
	if err != nil {
		return zero, err
	}

	_, err = p.consume(token.RightParen, "Expect ')' after condition.")
	if err != nil {
		return zero, err
	}

	body, err := p.statement()
	if err != nil {
		return zero, err
	}

	return p.alg.While(cond, body), nil
}

func (p *Parser[E, S]) printStatement() (S, error) {
	var zero S

	value, err := p.expression()
	if err != nil {
		return zero, err
	}

	_, err = p.consume(token.Semicolon, "Expect ';' after value.")
	if err != nil {
		return zero, err
	}

	return p.alg.Print(value), nil
}

// block parses the declarations after an opening brace. A declaration
// that fails here propagates out, so recovery happens once, at the
// outermost declaration.
func (p *Parser[E, S]) block() (S, error) {
	var zero S

	var stmts []S
	for !p.check(token.RightBrace) && !p.isAtEnd() {
		stmt, err := p.declaration()
		if err != nil {
			return zero, err
		}

		stmts = append(stmts, stmt)
	}

	_, err := p.consume(token.RightBrace, "Expect '}' after block.")
	if err != nil {
		return zero, err
	}

	return p.alg.Block(stmts), nil
}

func (p *Parser[E, S]) expressionStatement() (S, error) {
	var zero S

	expr, err := p.expression()
	if err != nil {
		return zero, err
	}

	_, err = p.consume(token.Semicolon, "Expect ';' after expression.")
	if err != nil {
		return zero, err
	}

	return p.alg.ExprStatement(expr), nil
}

func (p *Parser[E, S]) expression() (E, error) {
	return p.assignment()
}

// assignment can't look inside an E, so a bare variable target is
// recognized by its span: logic_or consumed exactly one Identifier.
func (p *Parser[E, S]) assignment() (E, error) {
	start := p.current

	expr, err := p.or()
	if err != nil {
		return expr, err
	}

	end := p.current
	if !p.match(token.Equal) {
		return expr, nil
	}

	equals := p.previous()
	value, err := p.assignment()
	if err != nil {
		return value, err
	}

	if end-start == 1 && p.tokens[start].Kind == token.Identifier {
		return p.alg.Assign(p.tokens[start], value), nil
	}

	// reported but not thrown: the parser is not confused
	p.error(equals, "Invalid assignment target.")

	return expr, nil
}

func (p *Parser[E, S]) or() (E, error) {
	expr, err := p.and()
	if err != nil {
		return expr, err
	}

	for p.match(token.Or) {
		op := p.previous()
		right, err := p.and()
		if err != nil {
			return right, err
		}

		expr = p.alg.Logical(op, expr, right)
	}

	return expr, nil
}

func (p *Parser[E, S]) and() (E, error) {
	expr, err := p.equality()
	if err != nil {
		return expr, err
	}

	for p.match(token.And) {
		op := p.previous()
		right, err := p.equality()
		if err != nil {
			return right, err
		}

		expr = p.alg.Logical(op, expr, right)
	}

	return expr, nil
}

func (p *Parser[E, S]) equality() (E, error) {
	return p.binary(p.comparison, token.BangEqual, token.EqualEqual)
}

func (p *Parser[E, S]) comparison() (E, error) {
	return p.binary(p.term, token.Greater, token.GreaterEqual, token.Less, token.LessEqual)
}

func (p *Parser[E, S]) term() (E, error) {
	return p.binary(p.factor, token.Minus, token.Plus)
}

func (p *Parser[E, S]) factor() (E, error) {
	return p.binary(p.unary, token.Slash, token.Star)
}

// binary parses one left-associative precedence level.
func (p *Parser[E, S]) binary(next func() (E, error), ops ...token.Kind) (E, error) {
	expr, err := next()
	if err != nil {
		return expr, err
	}

	for p.match(ops...) {
		op := p.previous()
		right, err := next()
		if err != nil {
			return right, err
		}

		expr = p.alg.Binary(op, expr, right)
	}

	return expr, nil
}

func (p *Parser[E, S]) unary() (E, error) {
	if p.match(token.Bang, token.Minus) {
		op := p.previous()
		right, err := p.unary()
		if err != nil {
			return right, err
		}

		return p.alg.Unary(op, right), nil
	}

	return p.primary()
}

func (p *Parser[E, S]) primary() (E, error) {
	var zero E

	switch {
	case p.match(token.Identifier):
		return p.alg.Variable(p.previous()), nil
	case p.match(token.False, token.True, token.Nil, token.Number, token.String):
		return p.alg.Literal(p.previous()), nil
	case p.match(token.LeftParen):
		expr, err := p.expression()
		if err != nil {
			return zero, err
		}

		_, err = p.consume(token.RightParen, "Expect ')' after expression.")
		if err != nil {
			return zero, err
		}

		return p.alg.Grouping(expr), nil
	}

	return zero, p.error(p.peek(), "Expect expression.")
}

// synchronize method moves cursor
// to the next statement
func (p *Parser[E, S]) synchronize() {
	p.advance()

	for !p.isAtEnd() {
		if p.previous().Kind == token.Semicolon {
			return
		}

		if p.peek().Kind.StartsStatement() {
			return
		}

		p.advance()
	}
}

func (p *Parser[E, S]) error(tok token.Token, message string) *Error {
	err := &Error{Token: tok, Message: message}
	p.errors = append(p.errors, err)

	if p.reporter != nil {
		p.reporter.Report(tok.Line, err.Where(), message)
	}

	return err
}

func (p *Parser[E, S]) consume(kind token.Kind, message string) (token.Token, error) {
	if p.check(kind) {
		return p.advance(), nil
	}

	return token.Token{}, p.error(p.peek(), message)
}

func (p *Parser[E, S]) match(kinds ...token.Kind) bool {
	if slices.ContainsFunc(kinds, p.check) {
		p.advance()
		return true
	}

	return false
}

func (p *Parser[E, S]) check(kind token.Kind) bool {
	if p.isAtEnd() {
		return false
	}

	return p.peek().Kind == kind
}

func (p *Parser[E, S]) advance() token.Token {
	if !p.isAtEnd() {
		p.current++
	}

	return p.previous()
}

func (p *Parser[E, S]) isAtEnd() bool {
	return p.peek().Kind == token.Eof
}

func (p *Parser[E, S]) peek() token.Token {
	return p.tokens[p.current]
}

func (p *Parser[E, S]) previous() token.Token {
	return p.tokens[p.current-1]
}

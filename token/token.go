package token

import "fmt"

// Token is a classified lexeme. Literal holds a float64 for Number
// tokens, a string for String tokens and nil otherwise.
type Token struct {
	Kind    Kind
	Lexeme  string
	Literal any
	Line    int
}

func New(kind Kind, lexeme string, literal any, line int) Token {
	return Token{kind, lexeme, literal, line}
}

func (t Token) String() string {
	if t.Literal == nil {
		return fmt.Sprintf("%v %s", t.Kind, t.Lexeme)
	}

	return fmt.Sprintf("%v %s %v", t.Kind, t.Lexeme, t.Literal)
}

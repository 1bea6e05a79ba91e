package token

import "testing"

func TestString(t *testing.T) {
	cases := []struct {
		tok  Token
		want string
	}{
		{New(Number, "1.5", 1.5, 1), "Number 1.5 1.5"},
		{New(String, `"hi"`, "hi", 2), `String "hi" hi`},
		{New(Semicolon, ";", nil, 1), "Semicolon ;"},
		{New(Eof, "", nil, 3), "Eof "},
	}

	for _, c := range cases {
		if got := c.tok.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestStartsStatement(t *testing.T) {
	for _, k := range []Kind{Class, Fun, Var, For, If, While, Print, Return} {
		if !k.StartsStatement() {
			t.Errorf("%v should start a statement", k)
		}
	}

	for _, k := range []Kind{Identifier, Semicolon, Else, LeftBrace, Eof} {
		if k.StartsStatement() {
			t.Errorf("%v should not start a statement", k)
		}
	}
}

func TestLookupIdent(t *testing.T) {
	cases := map[string]Kind{
		"print":  Print,
		"while":  While,
		"nil":    Nil,
		"printx": Identifier,
		"Print":  Identifier,
		"_":      Identifier,
	}

	for ident, want := range cases {
		if got := LookupIdent(ident); got != want {
			t.Errorf("LookupIdent(%q) = %v, want %v", ident, got, want)
		}
	}
}

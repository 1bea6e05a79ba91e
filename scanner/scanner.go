package scanner

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/havrydotdev/lox/diag"
	"github.com/havrydotdev/lox/token"
)

// Error is a lexical error. The scanner reports it and keeps going.
type Error struct {
	Line    int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}

type Scanner struct {
	source   string
	tokens   []token.Token
	errors   []error
	reporter diag.Reporter

	start   int
	current int
	line    int
}

func New(source string, reporter diag.Reporter) *Scanner {
	return &Scanner{source: source, reporter: reporter, line: 1}
}

// Scan returns the token stream, always terminated by an Eof token.
// The returned errors are informational: the tokens are a best-effort
// stream with the offending input skipped.
func (s *Scanner) Scan() ([]token.Token, []error) {
	for !s.isAtEnd() {
		s.start = s.current
		s.scanToken()
	}

	s.tokens = append(s.tokens, token.New(token.Eof, "", nil, s.line))

	return s.tokens, s.errors
}

func (s *Scanner) scanToken() {
	c := s.advance()

	switch c {
	// one-character tokens
	case '(':
		s.addToken(token.LeftParen)
	case ')':
		s.addToken(token.RightParen)
	case '{':
		s.addToken(token.LeftBrace)
	case '}':
		s.addToken(token.RightBrace)
	case ',':
		s.addToken(token.Comma)
	case '.':
		s.addToken(token.Dot)
	case '-':
		s.addToken(token.Minus)
	case '+':
		s.addToken(token.Plus)
	case ';':
		s.addToken(token.Semicolon)
	case '*':
		s.addToken(token.Star)

	// two or one character tokens
	case '!':
		s.addToken(s.either('=', token.BangEqual, token.Bang))
	case '=':
		s.addToken(s.either('=', token.EqualEqual, token.Equal))
	case '<':
		s.addToken(s.either('=', token.LessEqual, token.Less))
	case '>':
		s.addToken(s.either('=', token.GreaterEqual, token.Greater))

	case '/':
		if s.match('/') {
			for s.peek() != '\n' && !s.isAtEnd() {
				s.advance()
			}
		} else if s.match('*') {
			s.blockComment()
		} else {
			s.addToken(token.Slash)
		}

	case ' ', '\t', '\r':
		break

	case '\n':
		s.line++

	case '"':
		s.string()

	default:
		if isDigit(c) {
			s.number()
		} else if isAlpha(c) {
			s.identifier()
		} else {
			s.unexpected()
		}
	}
}

// blockComment does not nest: it ends at the first "*/" or at end of input.
func (s *Scanner) blockComment() {
	for !s.isAtEnd() {
		if s.peek() == '*' && s.peekNext() == '/' {
			s.advance()
			s.advance()
			return
		}

		if s.peek() == '\n' {
			s.line++
		}

		s.advance()
	}
}

func (s *Scanner) unexpected() {
	// step back and consume the whole rune so multi-byte input is
	// reported once
	r, size := utf8.DecodeRuneInString(s.source[s.start:])
	s.current = s.start + size

	s.error(fmt.Sprintf("Unexpected character: '%c'", r))
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') ||
		(c >= 'A' && c <= 'Z') ||
		c == '_'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlphaNumeric(c byte) bool {
	return isAlpha(c) || isDigit(c)
}

func (s *Scanner) identifier() {
	for isAlphaNumeric(s.peek()) {
		s.advance()
	}

	s.addToken(token.LookupIdent(s.source[s.start:s.current]))
}

func (s *Scanner) number() {
	for isDigit(s.peek()) {
		s.advance()
	}

	// a trailing '.' is left for the next token
	if s.peek() == '.' && isDigit(s.peekNext()) {
		s.advance()

		for isDigit(s.peek()) {
			s.advance()
		}
	}

	// digits with an optional fraction always parse
	num, _ := strconv.ParseFloat(s.source[s.start:s.current], 64)

	s.addToken(token.Number, num)
}

func (s *Scanner) string() {
	for s.peek() != '"' && !s.isAtEnd() {
		if s.peek() == '\n' {
			s.line++
		}

		s.advance()
	}

	if s.isAtEnd() {
		s.error("Unterminated string.")
		return
	}

	s.advance()
	s.addToken(token.String, s.source[s.start+1:s.current-1])
}

func (s *Scanner) error(message string) {
	s.errors = append(s.errors, &Error{Line: s.line, Message: message})
	if s.reporter != nil {
		s.reporter.Report(s.line, "", message)
	}
}

func (s *Scanner) addToken(kind token.Kind, literal ...any) {
	var l any
	if len(literal) != 0 {
		l = literal[0]
	}

	lexeme := s.source[s.start:s.current]

	s.tokens = append(s.tokens, token.New(kind, lexeme, l, s.line))
}

func (s *Scanner) either(expected byte, matched, otherwise token.Kind) token.Kind {
	if s.match(expected) {
		return matched
	}

	return otherwise
}

func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}

	s.current++
	return true
}

func (s *Scanner) advance() byte {
	curr := s.current
	s.current++
	return s.source[curr]
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return '\000'
	}

	return s.source[s.current]
}

func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return '\000'
	}

	return s.source[s.current+1]
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

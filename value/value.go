package value

import "strconv"

// Kind is the tag of the Value tagged union.
type Kind uint8

const (
	KindNil Kind = iota
	KindBool
	KindNumber
	KindString
)

func (k Kind) String() string {
	switch k {
	case KindNil:
		return "nil"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	}

	return "unknown"
}

// Value is a runtime value. The zero Value is nil.
type Value struct {
	Kind Kind

	b bool
	n float64
	s string
}

var Nil = Value{}

func Bool(b bool) Value {
	return Value{Kind: KindBool, b: b}
}

func Number(n float64) Value {
	return Value{Kind: KindNumber, n: n}
}

func String(s string) Value {
	return Value{Kind: KindString, s: s}
}

func (v Value) IsNil() bool {
	return v.Kind == KindNil
}

// AsBool returns the boolean payload and whether v is a boolean.
func (v Value) AsBool() (bool, bool) {
	return v.b, v.Kind == KindBool
}

func (v Value) AsNumber() (float64, bool) {
	return v.n, v.Kind == KindNumber
}

func (v Value) AsString() (string, bool) {
	return v.s, v.Kind == KindString
}

// Truthy reports whether v counts as true in a condition: only nil and
// false are falsy.
func (v Value) Truthy() bool {
	switch v.Kind {
	case KindNil:
		return false
	case KindBool:
		return v.b
	}

	return true
}

// String renders v the way print shows it.
func (v Value) String() string {
	switch v.Kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return strconv.FormatFloat(v.n, 'f', -1, 64)
	case KindString:
		return v.s
	}

	return "nil"
}

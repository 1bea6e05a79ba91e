package value

import "testing"

func TestTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{Nil, false},
		{Bool(false), false},
		{Bool(true), true},
		{Number(0), true},
		{Number(-1.5), true},
		{String(""), true},
		{String("x"), true},
	}

	for _, c := range cases {
		if got := c.v.Truthy(); got != c.want {
			t.Errorf("%v (%v).Truthy() = %v, want %v", c.v, c.v.Kind, got, c.want)
		}
	}
}

func TestString(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Nil, "nil"},
		{Value{}, "nil"},
		{Bool(true), "true"},
		{Bool(false), "false"},
		{Number(7), "7"},
		{Number(2.5), "2.5"},
		{Number(-0.125), "-0.125"},
		{Number(1e6), "1000000"},
		{String("hello world"), "hello world"},
	}

	for _, c := range cases {
		if got := c.v.String(); got != c.want {
			t.Errorf("String() = %q, want %q", got, c.want)
		}
	}
}

func TestAccessors(t *testing.T) {
	if n, ok := Number(3).AsNumber(); !ok || n != 3 {
		t.Errorf("AsNumber failed: %v %v", n, ok)
	}

	if _, ok := String("3").AsNumber(); ok {
		t.Errorf("string must not convert to a number")
	}

	if s, ok := String("a").AsString(); !ok || s != "a" {
		t.Errorf("AsString failed: %v %v", s, ok)
	}

	if b, ok := Bool(true).AsBool(); !ok || !b {
		t.Errorf("AsBool failed: %v %v", b, ok)
	}

	if !Nil.IsNil() || Number(0).IsNil() {
		t.Errorf("IsNil mismatch")
	}
}

package eval

import (
	"github.com/havrydotdev/lox/token"
	"github.com/havrydotdev/lox/value"
)

// isEqual is only defined within a value category; nil is the
// exception and compares unequal to everything but nil.
func isEqual(op token.Token, left, right value.Value) (bool, error) {
	if left.IsNil() || right.IsNil() {
		return left.IsNil() && right.IsNil(), nil
	}

	if left.Kind != right.Kind {
		return false, typeError(op, "Cannot compare %v and %v with '%s'.", left.Kind, right.Kind, op.Lexeme)
	}

	// same kind, so plain struct equality compares the payload
	return left == right, nil
}

func checkNums(op token.Token, left, right value.Value) (float64, float64, error) {
	l, okl := left.AsNumber()
	r, okr := right.AsNumber()
	if !okl || !okr {
		return 0, 0, operandsError(op, "numbers", left, right)
	}

	return l, r, nil
}

package exprtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/exprtree"
)

func TestEqual(t *testing.T) {
	a, b, c := v("a"), v("b"), v("c")
	tests := []struct {
		name  string
		left  exprtree.Expr
		right exprtree.Expr
		equal bool
	}{
		{"SameInteger", num(5), num(5), true},
		{"DifferentInteger", num(5), num(6), false},
		{"SameVariable", v("x"), v("x"), true},
		{"DifferentVariable", v("x"), v("y"), false},
		{"IntegerIsNotVariable", num(5), v("5"), false},
		{"VariableIsNotInteger", v("5"), num(5), false},
		{"OperandIsNotOperator", num(0), exprtree.Sum(num(0), num(0)), false},
		{"OperatorIsNotOperand", exprtree.Sum(num(0), num(0)), num(0), false},
		{"SumCommutes", exprtree.Sum(a, b), exprtree.Sum(b, a), true},
		{"ProductCommutes", exprtree.Product(a, num(3)), exprtree.Product(num(3), a), true},
		{"DifferenceDoesNotCommute", exprtree.Difference(a, b), exprtree.Difference(b, a), false},
		{"QuotientDoesNotCommute", exprtree.Quotient(a, b), exprtree.Quotient(b, a), false},
		{"DifferenceSameOrder", exprtree.Difference(a, b), exprtree.Difference(v("a"), v("b")), true},
		{"DifferentOperators", exprtree.Sum(a, b), exprtree.Product(a, b), false},
		{"NestedCommute",
			exprtree.Sum(exprtree.Product(a, b), c),
			exprtree.Sum(c, exprtree.Product(b, a)), true},
		{"NoAssociativity",
			exprtree.Sum(exprtree.Sum(a, b), c),
			exprtree.Sum(a, exprtree.Sum(b, c)), false},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.equal, test.left.Equal(test.right))
			require.Equal(t, test.equal, test.right.Equal(test.left))
		})
	}
}

func TestEqualNil(t *testing.T) {
	require.False(t, num(1).Equal(nil))
	require.False(t, v("x").Equal(nil))
	require.False(t, exprtree.Sum(num(1), num(2)).Equal(nil))
	var missing *exprtree.Binary
	require.False(t, exprtree.Sum(num(1), num(2)).Equal(missing))
}

func TestEqualSelf(t *testing.T) {
	e := exprtree.Quotient(exprtree.Difference(v("x"), num(1)), v("y"))
	require.True(t, e.Equal(e))
}

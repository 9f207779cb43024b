package exprtree_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/exprtree"
)

var (
	num = exprtree.NewInteger
	v   = exprtree.NewVariable
)

func TestRender(t *testing.T) {
	tests := []struct {
		name    string
		expr    exprtree.Expr
		prefix  string
		infix   string
		postfix string
	}{
		{"Integer", num(5), " 5", "5", " 5"},
		{"Negative", num(-5), " -5", "-5", " -5"},
		{"Variable", v("x"), " x", "x", " x"},
		{"Product", exprtree.Product(num(3), num(5)), "* 3 5", "(3*5)", " 3 5 *"},
		{"Nested",
			exprtree.Sum(exprtree.Product(v("a"), num(3)), exprtree.Product(num(5), v("b"))),
			"+* a 3* 5 b", "((a*3)+(5*b))", " a 3 * 5 b * +"},
		{"Quotient", exprtree.Quotient(exprtree.Difference(v("x"), num(1)), v("y")),
			"/- x 1 y", "((x-1)/y)", " x 1 - y /"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			require.Equal(t, test.prefix, test.expr.Prefix())
			require.Equal(t, test.infix, test.expr.Infix())
			require.Equal(t, test.infix, test.expr.String())
			require.Equal(t, test.postfix, test.expr.Postfix())
		})
	}
}

func TestOperator(t *testing.T) {
	for symbol, commutative := range map[string]bool{"+": true, "-": false, "*": true, "/": false} {
		op, ok := exprtree.ParseOperator(symbol)
		require.True(t, ok)
		require.Equal(t, symbol, op.String())
		require.Equal(t, commutative, op.Commutative())
	}
	_, ok := exprtree.ParseOperator("^")
	require.False(t, ok)
	require.Greater(t, exprtree.Mul.Precedence(), exprtree.Add.Precedence())
	require.Equal(t, exprtree.Div.Precedence(), exprtree.Mul.Precedence())
	require.Equal(t, exprtree.Sub.Precedence(), exprtree.Add.Precedence())
}

func TestAccessors(t *testing.T) {
	left, right := num(7), v("y")
	b := exprtree.Difference(left, right)
	require.Equal(t, exprtree.Sub, b.Op())
	require.Same(t, left, b.Left())
	require.Same(t, right, b.Right())
	require.Equal(t, 7, left.Value())
	require.Equal(t, "y", right.Name())
}

func TestIDsAreDistinct(t *testing.T) {
	seen := map[uint64]bool{}
	for _, e := range []exprtree.Expr{num(1), num(1), v("x"), v("x"), exprtree.Sum(num(1), num(2))} {
		require.False(t, seen[e.ID()], "duplicate ID %d", e.ID())
		seen[e.ID()] = true
	}
}

func TestNewBinaryRequiresOperands(t *testing.T) {
	require.Panics(t, func() { exprtree.Sum(nil, num(1)) })
	require.Panics(t, func() { exprtree.Quotient(num(1), nil) })
}

func TestBuildOperand(t *testing.T) {
	require.IsType(t, &exprtree.Integer{}, exprtree.BuildOperand("42"))
	require.IsType(t, &exprtree.Integer{}, exprtree.BuildOperand("-3"))
	require.IsType(t, &exprtree.Variable{}, exprtree.BuildOperand("x42"))
	require.IsType(t, &exprtree.Variable{}, exprtree.BuildOperand("4.2"))
}

func TestBuildOperator(t *testing.T) {
	e, err := exprtree.BuildOperator("/", num(6), num(3))
	require.NoError(t, err)
	require.Equal(t, "(6/3)", e.Infix())
	_, err = exprtree.BuildOperator("%", num(6), num(3))
	require.Error(t, err)
	_, err = exprtree.BuildOperator("+", nil, num(3))
	require.Error(t, err)
}

func TestWalk(t *testing.T) {
	e := exprtree.Sum(exprtree.Product(v("a"), num(3)), v("b"))
	visited := []string{}
	err := exprtree.Walk(e, func(e exprtree.Expr) error {
		visited = append(visited, e.Infix())
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"((a*3)+b)", "(a*3)", "a", "3", "b"}, visited)
}

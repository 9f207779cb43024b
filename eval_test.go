package exprtree_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alecthomas/exprtree"
)

func TestEvaluate(t *testing.T) {
	assignments := exprtree.Assignments{"x": 6, "y": -4}
	tests := []struct {
		expr  exprtree.Expr
		value int
	}{
		{num(7), 7},
		{v("y"), -4},
		{exprtree.Sum(v("x"), v("y")), 2},
		{exprtree.Difference(v("x"), v("y")), 10},
		{exprtree.Product(v("x"), v("y")), -24},
		{exprtree.Quotient(v("x"), v("y")), -1},
		{exprtree.Quotient(num(-7), num(2)), -3},
		{exprtree.Quotient(num(7), num(-2)), -3},
		{exprtree.Difference(exprtree.Product(v("x"), v("x")), exprtree.Quotient(num(12), v("x"))), 34},
	}
	for _, test := range tests {
		t.Run(test.expr.Infix(), func(t *testing.T) {
			value, err := test.expr.Evaluate(assignments)
			require.NoError(t, err)
			require.Equal(t, test.value, value)
		})
	}
}

func TestEvaluateUndefinedVariable(t *testing.T) {
	e := exprtree.Sum(v("x"), v("missing"))
	_, err := e.Evaluate(exprtree.Assignments{"x": 1})
	require.EqualError(t, err, `undefined variable "missing"`)
	require.True(t, errors.Is(err, exprtree.ErrUndefinedVariable))
	var uerr *exprtree.UndefinedVariableError
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, "missing", uerr.Name)

	_, err = v("x").Evaluate(nil)
	require.True(t, errors.Is(err, exprtree.ErrUndefinedVariable))
}

func TestEvaluateLeftFailsFirst(t *testing.T) {
	e := exprtree.Sum(v("a"), exprtree.Quotient(num(1), num(0)))
	_, err := e.Evaluate(nil)
	require.True(t, errors.Is(err, exprtree.ErrUndefinedVariable))

	e = exprtree.Sum(exprtree.Quotient(num(1), num(0)), v("a"))
	_, err = e.Evaluate(nil)
	require.True(t, errors.Is(err, exprtree.ErrDivisionByZero))
}

func TestEvaluateDivisionByZero(t *testing.T) {
	e := exprtree.Quotient(v("x"), exprtree.Difference(v("y"), v("y")))
	_, err := e.Evaluate(exprtree.Assignments{"x": 3, "y": 9})
	require.EqualError(t, err, "(x/(y-y)): integer divide by zero")
	require.True(t, errors.Is(err, exprtree.ErrDivisionByZero))
}

func TestVariables(t *testing.T) {
	require.Nil(t, num(1).Variables())
	require.Equal(t, []string{"x"}, v("x").Variables())
	e := exprtree.Sum(exprtree.Product(v("b"), v("a")), exprtree.Difference(v("b"), num(2)))
	require.Equal(t, []string{"a", "b"}, e.Variables())
	require.Empty(t, exprtree.Sum(num(1), num(2)).Variables())
}

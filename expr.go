package exprtree

import (
	"fmt"
	"sync/atomic"
)

// Expr is a node in an expression tree.
//
// The set of implementations is closed: *Integer, *Variable and *Binary. Nodes are immutable once
// constructed and every operator node exclusively owns its two children.
type Expr interface {
	// ID is a process-unique identifier assigned when the node was constructed.
	ID() uint64
	// Prefix renders the expression in prefix notation.
	Prefix() string
	// Infix renders the expression in fully parenthesized infix notation, eg. "(3*5)".
	Infix() string
	// Postfix renders the expression in postfix notation.
	Postfix() string
	// String is equivalent to Infix.
	String() string
	// Evaluate the expression under the given variable assignments.
	//
	// Every variable reachable from the node must be present in assignments.
	Evaluate(assignments Assignments) (int, error)
	// Simplify returns a new expression reduced with the identities of each operator.
	Simplify() Expr
	// Variables returns the sorted distinct variable names in the expression.
	Variables() []string
	// Equal reports whether two expressions are semantically equal, allowing one level of
	// commutativity for "+" and "*".
	Equal(other Expr) bool

	expr()
}

// Assignments maps variable names to their values.
type Assignments map[string]int

// Operator is one of the four binary arithmetic operators.
type Operator int

// Supported operators.
const (
	Add Operator = iota + 1
	Sub
	Mul
	Div
)

var operatorMap = map[string]Operator{"+": Add, "-": Sub, "*": Mul, "/": Div}

// ParseOperator returns the Operator for symbol.
func ParseOperator(symbol string) (Operator, bool) {
	op, ok := operatorMap[symbol]
	return op, ok
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

// GoString returns the Go constant name of the operator.
func (o Operator) GoString() string {
	switch o {
	case Add:
		return "exprtree.Add"
	case Sub:
		return "exprtree.Sub"
	case Mul:
		return "exprtree.Mul"
	case Div:
		return "exprtree.Div"
	}
	return fmt.Sprintf("exprtree.Operator(%d)", int(o))
}

// Precedence of the operator. Higher binds tighter.
func (o Operator) Precedence() int {
	switch o {
	case Add, Sub:
		return 2
	case Mul, Div:
		return 3
	}
	return 0
}

// Commutative reports whether operand order is irrelevant to the operator.
func (o Operator) Commutative() bool {
	return o == Add || o == Mul
}

// Apply the operator to two integers.
//
// Division truncates toward zero. A zero divisor returns ErrDivisionByZero.
func (o Operator) Apply(left, right int) (int, error) {
	switch o {
	case Add:
		return left + right, nil
	case Sub:
		return left - right, nil
	case Mul:
		return left * right, nil
	case Div:
		if right == 0 {
			return 0, ErrDivisionByZero
		}
		return left / right, nil
	}
	return 0, fmt.Errorf("unsupported operator %s", o)
}

var lastID atomic.Uint64

func nextID() uint64 { return lastID.Add(1) }

package exprtree

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Binary is an operator node with exactly two children.
type Binary struct {
	id    uint64
	op    Operator
	left  Expr
	right Expr
}

// NewBinary creates an operator node owning left and right.
//
// Panics if either child is nil.
func NewBinary(op Operator, left, right Expr) *Binary {
	if left == nil || right == nil {
		panic(fmt.Sprintf("operator %s requires two operands", op))
	}
	return &Binary{id: nextID(), op: op, left: left, right: right}
}

// Sum creates "left + right".
func Sum(left, right Expr) *Binary { return NewBinary(Add, left, right) }

// Difference creates "left - right".
func Difference(left, right Expr) *Binary { return NewBinary(Sub, left, right) }

// Product creates "left * right".
func Product(left, right Expr) *Binary { return NewBinary(Mul, left, right) }

// Quotient creates "left / right".
func Quotient(left, right Expr) *Binary { return NewBinary(Div, left, right) }

func (*Binary) expr() {}

// ID of the node.
func (b *Binary) ID() uint64 { return b.id }

// Op returns the node's operator.
func (b *Binary) Op() Operator { return b.op }

// Left operand.
func (b *Binary) Left() Expr { return b.left }

// Right operand.
func (b *Binary) Right() Expr { return b.right }

func (b *Binary) Prefix() string {
	return b.op.String() + b.left.Prefix() + b.right.Prefix()
}

func (b *Binary) Postfix() string {
	return b.left.Postfix() + b.right.Postfix() + " " + b.op.String()
}

func (b *Binary) Infix() string {
	return "(" + b.left.Infix() + b.op.String() + b.right.Infix() + ")"
}

func (b *Binary) String() string { return b.Infix() }

// GoString is used by repr and %#v.
func (b *Binary) GoString() string {
	return fmt.Sprintf("exprtree.NewBinary(%#v, %#v, %#v)", b.op, b.left, b.right)
}

// Evaluate both operands, left first, and apply the operator.
func (b *Binary) Evaluate(assignments Assignments) (int, error) {
	left, err := b.left.Evaluate(assignments)
	if err != nil {
		return 0, err
	}
	right, err := b.right.Evaluate(assignments)
	if err != nil {
		return 0, err
	}
	value, err := b.op.Apply(left, right)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", b.Infix(), err)
	}
	return value, nil
}

// Variables returns the sorted distinct variable names in both subtrees.
func (b *Binary) Variables() []string {
	names := []string{}
	_ = Walk(b, func(e Expr) error {
		if v, ok := e.(*Variable); ok {
			names = append(names, v.Name())
		}
		return nil
	})
	slices.Sort(names)
	return slices.Compact(names)
}

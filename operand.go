package exprtree

import (
	"fmt"
	"strconv"
)

// Integer is a leaf holding an integer literal.
type Integer struct {
	id    uint64
	value int
	text  string
}

// NewInteger creates an integer literal.
func NewInteger(value int) *Integer {
	return &Integer{id: nextID(), value: value, text: strconv.Itoa(value)}
}

func (*Integer) expr() {}

// ID of the node.
func (i *Integer) ID() uint64 { return i.id }

// Value of the literal.
func (i *Integer) Value() int { return i.value }

func (i *Integer) Prefix() string  { return " " + i.text }
func (i *Integer) Postfix() string { return " " + i.text }
func (i *Integer) Infix() string   { return i.text }
func (i *Integer) String() string  { return i.text }

// GoString is used by repr and %#v.
func (i *Integer) GoString() string { return fmt.Sprintf("exprtree.NewInteger(%d)", i.value) }

// Evaluate returns the literal value.
func (i *Integer) Evaluate(Assignments) (int, error) { return i.value, nil }

// Simplify returns the receiver.
func (i *Integer) Simplify() Expr { return i }

// Variables returns nil.
func (i *Integer) Variables() []string { return nil }

// Variable is a leaf holding a variable name.
//
// The name is opaque and is not validated.
type Variable struct {
	id   uint64
	name string
}

// NewVariable creates a variable reference.
func NewVariable(name string) *Variable {
	return &Variable{id: nextID(), name: name}
}

func (*Variable) expr() {}

// ID of the node.
func (v *Variable) ID() uint64 { return v.id }

// Name of the variable.
func (v *Variable) Name() string { return v.name }

func (v *Variable) Prefix() string  { return " " + v.name }
func (v *Variable) Postfix() string { return " " + v.name }
func (v *Variable) Infix() string   { return v.name }
func (v *Variable) String() string  { return v.name }

// GoString is used by repr and %#v.
func (v *Variable) GoString() string { return fmt.Sprintf("exprtree.NewVariable(%q)", v.name) }

// Evaluate looks the variable up in assignments.
func (v *Variable) Evaluate(assignments Assignments) (int, error) {
	value, ok := assignments[v.name]
	if !ok {
		return 0, &UndefinedVariableError{Name: v.name}
	}
	return value, nil
}

// Simplify returns the receiver.
func (v *Variable) Simplify() Expr { return v }

// Variables returns the variable's own name.
func (v *Variable) Variables() []string { return []string{v.name} }

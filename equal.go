package exprtree

// Equal reports whether other is an *Integer with the same literal.
func (i *Integer) Equal(other Expr) bool {
	o, ok := other.(*Integer)
	return ok && o != nil && o.text == i.text
}

// Equal reports whether other is a *Variable with the same name.
func (v *Variable) Equal(other Expr) bool {
	o, ok := other.(*Variable)
	return ok && o != nil && o.name == v.name
}

// Equal reports whether other has the same operator and equal operands.
//
// For commutative operators the operands of other may also be swapped. Only one level is
// considered, so (a+b)+c is not equal to a+(b+c).
func (b *Binary) Equal(other Expr) bool {
	o, ok := other.(*Binary)
	if !ok || o == nil || o.op != b.op {
		return false
	}
	if b == o {
		return true
	}
	if b.left.Equal(o.left) && b.right.Equal(o.right) {
		return true
	}
	return b.op.Commutative() && b.left.Equal(o.right) && b.right.Equal(o.left)
}

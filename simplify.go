package exprtree

// Simplify both operands and apply the first matching identity for the operator:
//
//     +   n+m => fold, 0+x => x, x+0 => x
//     -   x-x => 0, n-m => fold, x-0 => x
//     *   0*x => 0, x*0 => 0, n*m => fold, 1*x => x, x*1 => x
//     /   x/x => 1, 0/x => 0, n/m => fold, x/1 => x
//
// Note that x/x => 1 and 0/x => 0 apply even when x is or evaluates to zero, so a simplified
// expression may evaluate successfully where the original fails with ErrDivisionByZero. A
// constant quotient with a zero divisor is not folded.
func (b *Binary) Simplify() Expr {
	left := b.left.Simplify()
	right := b.right.Simplify()
	ln, lconst := constant(left)
	rn, rconst := constant(right)
	switch b.op {
	case Add:
		switch {
		case lconst && rconst:
			return NewInteger(ln + rn)
		case isConstant(left, 0):
			return right
		case isConstant(right, 0):
			return left
		}

	case Sub:
		switch {
		case left.Equal(right):
			return NewInteger(0)
		case lconst && rconst:
			return NewInteger(ln - rn)
		case isConstant(right, 0):
			return left
		}

	case Mul:
		switch {
		case isConstant(left, 0), isConstant(right, 0):
			return NewInteger(0)
		case lconst && rconst:
			return NewInteger(ln * rn)
		case isConstant(left, 1):
			return right
		case isConstant(right, 1):
			return left
		}

	case Div:
		switch {
		case left.Equal(right):
			return NewInteger(1)
		case isConstant(left, 0):
			return NewInteger(0)
		case lconst && rconst && rn != 0:
			return NewInteger(ln / rn)
		case isConstant(right, 1):
			return left
		}
	}
	if left == b.left && right == b.right {
		return b
	}
	return NewBinary(b.op, left, right)
}

func constant(e Expr) (int, bool) {
	if i, ok := e.(*Integer); ok {
		return i.value, true
	}
	return 0, false
}

func isConstant(e Expr, value int) bool {
	n, ok := constant(e)
	return ok && n == value
}

// Package exprtree models integer arithmetic expressions as immutable binary trees.
//
// Trees are built from token sequences in postfix or infix notation:
//
//     expr, err := exprtree.FromInfix([]string{"(", "3", "+", "x", ")", "*", "2"})
//
// and can then be rendered in prefix, infix or postfix notation, evaluated under a set of
// variable assignments, simplified with a small set of algebraic identities, compared for
// semantic equality and exported as a graph description.
//
// Four binary operators are supported: "+", "-", "*" and "/". Operands are either integer
// literals or opaque variable names. A token that parses as an integer with strconv.Atoi is an
// integer literal, anything else that is not an operator or parenthesis is a variable name.
//
// The infix parser is a simplified operator-precedence parser. When an operator binds tighter
// than the pending one it is applied eagerly to the next operand token, reaching past any
// opening parentheses, rather than to the whole right-hand side. For a conventional
// precedence-correct parser over expression strings see the grammar sub-package.
package exprtree

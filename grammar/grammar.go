// Package grammar parses infix expression strings with a conventional precedence grammar.
//
// Unlike exprtree.FromInfix, which applies a tighter-binding operator eagerly to the next operand
// token, this parser resolves the whole right-hand side first:
//
//     Expression = Term (("+" | "-") Term)* .
//     Term       = Factor (("*" | "/") Factor)* .
//     Factor     = <int> | <ident> | "(" Expression ")" .
//
// Operators of equal precedence associate left to right.
package grammar

import (
	"github.com/alecthomas/participle/v2"

	"github.com/alecthomas/exprtree"
)

type Expression struct {
	Left  *Term     `@@`
	Right []*OpTerm `@@*`
}

type OpTerm struct {
	Operator string `@("+" | "-")`
	Term     *Term  `@@`
}

type Term struct {
	Left  *Factor     `@@`
	Right []*OpFactor `@@*`
}

type OpFactor struct {
	Operator string  `@("*" | "/")`
	Factor   *Factor `@@`
}

type Factor struct {
	Number        *int        `  @Int`
	Variable      *string     `| @Ident`
	Subexpression *Expression `| "(" @@ ")"`
}

var parser = participle.MustBuild[Expression](
	participle.Lexer(exprtree.Lexer),
	participle.Elide("Whitespace"),
)

// Parse text into an expression tree.
func Parse(text string) (exprtree.Expr, error) {
	ast, err := ParseAST(text)
	if err != nil {
		return nil, err
	}
	return ast.Expr(), nil
}

// ParseAST parses text into its grammar representation.
func ParseAST(text string) (*Expression, error) {
	return parser.ParseString("", text)
}

// EBNF returns the grammar.
func EBNF() string {
	return parser.String()
}

// Expr converts the expression into a tree.
func (e *Expression) Expr() exprtree.Expr {
	out := e.Left.Expr()
	for _, r := range e.Right {
		out = combine(r.Operator, out, r.Term.Expr())
	}
	return out
}

// Expr converts the term into a tree.
func (t *Term) Expr() exprtree.Expr {
	out := t.Left.Expr()
	for _, r := range t.Right {
		out = combine(r.Operator, out, r.Factor.Expr())
	}
	return out
}

// Expr converts the factor into a tree.
func (f *Factor) Expr() exprtree.Expr {
	switch {
	case f.Number != nil:
		return exprtree.NewInteger(*f.Number)
	case f.Variable != nil:
		return exprtree.NewVariable(*f.Variable)
	default:
		return f.Subexpression.Expr()
	}
}

func combine(symbol string, left, right exprtree.Expr) exprtree.Expr {
	op, ok := exprtree.ParseOperator(symbol)
	if !ok {
		panic("unsupported operator " + symbol)
	}
	return exprtree.NewBinary(op, left, right)
}

package exprtree

import (
	"fmt"
	"io"
	"strconv"
)

// BuildOperand creates an *Integer if token parses as an integer, or a *Variable otherwise.
func BuildOperand(token string) Expr {
	if n, err := strconv.Atoi(token); err == nil {
		return NewInteger(n)
	}
	return NewVariable(token)
}

// BuildOperator creates the operator node for symbol, one of "+", "-", "*" or "/".
func BuildOperator(symbol string, left, right Expr) (Expr, error) {
	op, ok := ParseOperator(symbol)
	if !ok {
		return nil, fmt.Errorf("unknown operator %q", symbol)
	}
	if left == nil || right == nil {
		return nil, fmt.Errorf("operator %q requires two operands", symbol)
	}
	return NewBinary(op, left, right), nil
}

func isOperator(token string) bool {
	_, ok := operatorMap[token]
	return ok
}

type parser struct {
	mapper Mapper
	trace  io.Writer
}

func identityMapper(token string) (string, error) { return token, nil }

func newParser(options []Option) (*parser, error) {
	p := &parser{mapper: identityMapper}
	for _, option := range options {
		if err := option(p); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func (p *parser) mapTokens(tokens []string) ([]string, error) {
	out := make([]string, len(tokens))
	for i, token := range tokens {
		mapped, err := p.mapper(token)
		if err != nil {
			return nil, Errorf(i, token, "%s", err)
		}
		out[i] = mapped
	}
	return out, nil
}

type operandStack []Expr

func (s *operandStack) push(e Expr) { *s = append(*s, e) }

func (s *operandStack) pop() (Expr, bool) {
	if len(*s) == 0 {
		return nil, false
	}
	top := (*s)[len(*s)-1]
	*s = (*s)[:len(*s)-1]
	return top, true
}

// reduce pops the right and then the left operand, combines them with symbol and pushes the
// result.
func (s *operandStack) reduce(symbol string, index int, token string) error {
	right, ok := s.pop()
	if !ok {
		return Errorf(index, token, "operator %q is missing its right operand", symbol)
	}
	left, ok := s.pop()
	if !ok {
		return Errorf(index, token, "operator %q is missing its left operand", symbol)
	}
	combined, err := BuildOperator(symbol, left, right)
	if err != nil {
		return Errorf(index, token, "%s", err)
	}
	s.push(combined)
	return nil
}

// result returns the sole remaining operand.
func (s operandStack) result(end int) (Expr, error) {
	switch len(s) {
	case 0:
		return nil, Errorf(end, "", "no expression")
	case 1:
		return s[0], nil
	default:
		return nil, Errorf(end, "", "%d operands left without an operator", len(s)-1)
	}
}

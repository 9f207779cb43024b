package exprtree

// FromPostfix builds an expression tree from tokens in postfix notation, eg. ["3", "5", "+"].
//
// Each of "+", "-", "*" and "/" consumes the two most recent operands, every other token is an
// operand. A sequence that does not reduce to exactly one tree returns a *ParseError.
func FromPostfix(tokens []string, options ...Option) (Expr, error) {
	p, err := newParser(options)
	if err != nil {
		return nil, err
	}
	tokens, err = p.mapTokens(tokens)
	if err != nil {
		return nil, err
	}
	operands := operandStack{}
	for i, token := range tokens {
		if isOperator(token) {
			if err := operands.reduce(token, i, token); err != nil {
				return nil, err
			}
		} else {
			operands.push(BuildOperand(token))
		}
		p.traceStep(i, token, nil, operands)
	}
	return operands.result(len(tokens))
}

package exprtree

var precedence = map[string]int{
	"(": 1,
	")": 1,
	"+": 2,
	"-": 2,
	"*": 3,
	"/": 3,
}

// FromInfix builds an expression tree from tokens in infix notation, eg.
// ["(", "3", "+", "5", ")", "*", "2"].
//
// Operators of equal precedence associate left to right. An operator that binds tighter than
// the pending operator is applied immediately to the single operand token that follows it,
// skipping (and opening) any "(" tokens in between. It does not wait for the rest of a
// parenthesized or multi-operator right-hand side, so
//
//     2 + 3 * ( 4 + 5 )
//
// is parsed as (2+((3*4)+5)). Fully parenthesized input is not affected.
//
// A sequence that does not reduce to exactly one tree, or has unbalanced parentheses, returns a
// *ParseError.
func FromInfix(tokens []string, options ...Option) (Expr, error) {
	p, err := newParser(options)
	if err != nil {
		return nil, err
	}
	tokens, err = p.mapTokens(tokens)
	if err != nil {
		return nil, err
	}
	operators := []string{}
	operands := operandStack{}
	popOperator := func() string {
		top := operators[len(operators)-1]
		operators = operators[:len(operators)-1]
		return top
	}
	for i := 0; i < len(tokens); i++ {
		index, token := i, tokens[i]
		switch {
		case token == "(":
			operators = append(operators, token)

		case token == ")":
			if len(operators) == 0 {
				return nil, Errorf(i, token, "unbalanced %q", token)
			}
			for operators[len(operators)-1] != "(" {
				if err := operands.reduce(popOperator(), i, token); err != nil {
					return nil, err
				}
				if len(operators) == 0 {
					return nil, Errorf(i, token, "unbalanced %q", token)
				}
			}
			popOperator()

		case isOperator(token):
			top := ""
			if len(operators) > 0 {
				top = operators[len(operators)-1]
			}
			switch {
			case top == "" || top == "(":
				operators = append(operators, token)

			case precedence[token] > precedence[top]:
				left, ok := operands.pop()
				if !ok {
					return nil, Errorf(i, token, "operator %q is missing its left operand", token)
				}
				j := i + 1
				for j < len(tokens) && tokens[j] == "(" {
					operators = append(operators, "(")
					j++
				}
				if j >= len(tokens) {
					return nil, Errorf(j, "", "operator %q is missing its right operand", token)
				}
				next := tokens[j]
				if isOperator(next) || next == ")" {
					return nil, Errorf(j, next, "expected an operand after %q", token)
				}
				combined, err := BuildOperator(token, left, BuildOperand(next))
				if err != nil {
					return nil, Errorf(i, token, "%s", err)
				}
				operands.push(combined)
				i = j

			default:
				if err := operands.reduce(popOperator(), i, token); err != nil {
					return nil, err
				}
				operators = append(operators, token)
			}

		default:
			operands.push(BuildOperand(token))
		}
		p.traceStep(index, token, operators, operands)
	}
	for len(operators) > 0 {
		op := popOperator()
		if op == "(" {
			return nil, Errorf(len(tokens), "", "unbalanced %q", op)
		}
		if err := operands.reduce(op, len(tokens), ""); err != nil {
			return nil, err
		}
	}
	return operands.result(len(tokens))
}

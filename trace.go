package exprtree

import (
	"fmt"
	"strings"
)

// traceStep writes the parser state after consuming the token at index.
func (p *parser) traceStep(index int, token string, operators []string, operands []Expr) {
	if p.trace == nil {
		return
	}
	rendered := make([]string, len(operands))
	for i, operand := range operands {
		rendered[i] = operand.Infix()
	}
	fmt.Fprintf(p.trace, "%3d %-4q operators=[%s] operands=[%s]\n",
		index, token, strings.Join(operators, " "), strings.Join(rendered, " "))
}

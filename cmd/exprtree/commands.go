package main

import (
	"fmt"
	"strings"

	"github.com/alecthomas/repr"
	"github.com/pkg/errors"

	"github.com/alecthomas/exprtree"
	"github.com/alecthomas/exprtree/grammar"
)

type renderCmd struct {
	Expression []string `arg:"" required:"" help:"Expression to render."`
}

func (c *renderCmd) Run(g *Globals) error {
	expr, err := g.parse(c.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.stdout(), expr.Prefix())
	fmt.Fprintln(g.stdout(), expr.Postfix())
	fmt.Fprintln(g.stdout(), expr.Infix())
	return nil
}

type evalCmd struct {
	AssignmentFlags
	Simplify   bool     `help:"Simplify before evaluating."`
	Expression []string `arg:"" required:"" help:"Expression to evaluate."`
}

func (c *evalCmd) Run(g *Globals) error {
	expr, err := g.parse(c.Expression)
	if err != nil {
		return err
	}
	assignments, err := c.assignments()
	if err != nil {
		return err
	}
	if c.Simplify {
		expr = expr.Simplify()
		g.logger().Debugf("simplified to %s", expr)
	}
	value, err := expr.Evaluate(assignments)
	if err != nil {
		return errors.Wrapf(err, "evaluate %s", expr)
	}
	fmt.Fprintln(g.stdout(), value)
	return nil
}

type simplifyCmd struct {
	Expression []string `arg:"" required:"" help:"Expression to simplify."`
}

func (c *simplifyCmd) Run(g *Globals) error {
	expr, err := g.parse(c.Expression)
	if err != nil {
		return err
	}
	fmt.Fprintln(g.stdout(), expr.Simplify().Infix())
	return nil
}

type varsCmd struct {
	Expression []string `arg:"" required:"" help:"Expression to list variables of."`
}

func (c *varsCmd) Run(g *Globals) error {
	expr, err := g.parse(c.Expression)
	if err != nil {
		return err
	}
	for _, name := range expr.Variables() {
		fmt.Fprintln(g.stdout(), name)
	}
	return nil
}

type graphCmd struct {
	Output     string   `short:"o" type:"path" placeholder:"FILE" help:"Output file (defaults to stdout)."`
	Name       string   `default:"Expression" help:"Name of the graph."`
	Expression []string `arg:"" required:"" help:"Expression to export."`
}

func (c *graphCmd) Run(g *Globals) error {
	expr, err := g.parse(c.Expression)
	if err != nil {
		return err
	}
	if c.Output == "" {
		return errors.Wrap(exprtree.WriteGraph(g.stdout(), expr, exprtree.GraphName(c.Name)), "write graph")
	}
	g.logger().Infof("writing graph to %s", c.Output)
	return errors.Wrap(exprtree.WriteGraphFile(c.Output, expr, exprtree.GraphName(c.Name)), "write graph")
}

type treeCmd struct {
	Expression []string `arg:"" required:"" help:"Expression to dump."`
}

func (c *treeCmd) Run(g *Globals) error {
	if g.Notation == "strict" {
		text := strings.Join(c.Expression, " ")
		ast, err := grammar.ParseAST(text)
		if err != nil {
			return errors.Wrapf(err, "parse %q", text)
		}
		repr.New(g.stdout(), repr.Indent("  ")).Println(ast)
		return nil
	}
	expr, err := g.parse(c.Expression)
	if err != nil {
		return err
	}
	repr.New(g.stdout(), repr.Indent("  ")).Println(expr)
	return nil
}

type equalCmd struct {
	Left  string `arg:"" help:"First expression."`
	Right string `arg:"" help:"Second expression."`
}

func (c *equalCmd) Run(g *Globals) error {
	left, err := g.parse([]string{c.Left})
	if err != nil {
		return err
	}
	right, err := g.parse([]string{c.Right})
	if err != nil {
		return err
	}
	fmt.Fprintln(g.stdout(), left.Equal(right))
	return nil
}

type grammarCmd struct{}

func (c *grammarCmd) Run(g *Globals) error {
	fmt.Fprintln(g.stdout(), grammar.EBNF())
	return nil
}

// Command exprtree parses, renders, evaluates and simplifies arithmetic expressions.
package main

import (
	"github.com/alecthomas/kong"
)

var (
	version string = "dev"
	cli     CLI
)

// CLI is the command-line interface.
type CLI struct {
	Globals

	Version kong.VersionFlag `help:"Print version and exit."`

	Render   renderCmd   `cmd:"" help:"Print the expression in prefix, postfix and infix notation."`
	Eval     evalCmd     `cmd:"" help:"Evaluate the expression."`
	Simplify simplifyCmd `cmd:"" help:"Simplify the expression."`
	Vars     varsCmd     `cmd:"" help:"List the variables in the expression."`
	Graph    graphCmd    `cmd:"" help:"Write the expression tree as a graph description."`
	Tree     treeCmd     `cmd:"" help:"Dump the expression tree."`
	Equal    equalCmd    `cmd:"" help:"Compare two expressions for semantic equality."`
	Grammar  grammarCmd  `cmd:"" help:"Print the grammar used by --notation=strict."`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("exprtree"),
		kong.Description(`Parse, render, evaluate and simplify integer arithmetic expressions.`),
		kong.UsageOnError(),
		kong.Vars{"version": version},
	)
	err := kctx.Run(&cli.Globals)
	kctx.FatalIfErrorf(err)
}

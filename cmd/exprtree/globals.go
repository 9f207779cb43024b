package main

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"

	"github.com/alecthomas/exprtree"
	"github.com/alecthomas/exprtree/grammar"
)

// Globals are flags shared by every command.
type Globals struct {
	Notation string `short:"n" enum:"infix,postfix,strict" default:"infix" env:"EXPRTREE_NOTATION" help:"Notation of the input expression (${enum})."`
	LogLevel string `enum:"trace,debug,info,warn,error" default:"info" env:"EXPRTREE_LOG_LEVEL" help:"Log level (${enum})."`
	Trace    bool   `help:"Log each parser step at debug level."`

	Stdout io.Writer      `kong:"-"`
	log    *logrus.Logger `kong:"-"`
}

func (g *Globals) stdout() io.Writer {
	if g.Stdout == nil {
		return os.Stdout
	}
	return g.Stdout
}

func (g *Globals) logger() *logrus.Logger {
	if g.log != nil {
		return g.log
	}
	g.log = logrus.New()
	g.log.SetOutput(os.Stderr)
	level, err := logrus.ParseLevel(g.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	g.log.SetLevel(level)
	return g.log
}

// parse joins args and parses them in the configured notation.
func (g *Globals) parse(args []string) (exprtree.Expr, error) {
	text := strings.Join(args, " ")
	log := g.logger().WithField("notation", g.Notation)
	log.Debugf("parsing %q", text)
	if g.Notation == "strict" {
		expr, err := grammar.Parse(text)
		return expr, errors.Wrapf(err, "parse %q", text)
	}
	tokens, err := exprtree.Tokenize(text)
	if err != nil {
		return nil, errors.Wrapf(err, "tokenize %q", text)
	}
	options := []exprtree.Option{}
	if g.Trace {
		w := log.WriterLevel(logrus.DebugLevel)
		defer w.Close()
		options = append(options, exprtree.Trace(w))
	}
	var expr exprtree.Expr
	if g.Notation == "postfix" {
		expr, err = exprtree.FromPostfix(tokens, options...)
	} else {
		expr, err = exprtree.FromInfix(tokens, options...)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "parse %q", text)
	}
	log.Debugf("parsed %s", expr)
	return expr, nil
}

// AssignmentFlags are the flags for commands that evaluate expressions.
type AssignmentFlags struct {
	Var      []string `short:"v" placeholder:"NAME=VALUE" help:"Assign a value to a variable."`
	VarsFile string   `type:"existingfile" env:"EXPRTREE_VARS_FILE" placeholder:"FILE" help:"TOML file of variable assignments. --var takes precedence."`
}

func (a *AssignmentFlags) assignments() (exprtree.Assignments, error) {
	fromFile := map[string]int{}
	if a.VarsFile != "" {
		if _, err := toml.DecodeFile(a.VarsFile, &fromFile); err != nil {
			return nil, errors.Wrapf(err, "read %s", a.VarsFile)
		}
	}
	var result *multierror.Error
	fromFlags := map[string]int{}
	for _, assignment := range a.Var {
		name, value, ok := strings.Cut(assignment, "=")
		if !ok || name == "" {
			result = multierror.Append(result, errors.Errorf("invalid assignment %q, expected NAME=VALUE", assignment))
			continue
		}
		n, err := strconv.Atoi(value)
		if err != nil {
			result = multierror.Append(result, errors.Wrapf(err, "invalid value for %s", name))
			continue
		}
		fromFlags[name] = n
	}
	if err := result.ErrorOrNil(); err != nil {
		return nil, err
	}
	return lo.Assign(fromFile, fromFlags), nil
}

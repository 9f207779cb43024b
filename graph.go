package exprtree

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
)

// A GraphOption modifies the output of WriteGraph.
type GraphOption func(g *graphWriter)

// GraphName sets the name of the graph. Defaults to "Expression".
func GraphName(name string) GraphOption {
	return func(g *graphWriter) { g.name = name }
}

// NodeIDs overrides how node identifiers are derived. Identifiers must be distinct for every node
// in the tree.
//
// The default is "node" followed by Expr.ID().
func NodeIDs(id func(e Expr) string) GraphOption {
	return func(g *graphWriter) { g.nodeID = id }
}

func defaultNodeID(e Expr) string { return "node" + strconv.FormatUint(e.ID(), 10) }

type graphWriter struct {
	name   string
	nodeID func(e Expr) string
	w      *bufio.Writer
	err    error
}

func (g *graphWriter) printf(format string, args ...interface{}) {
	if g.err != nil {
		return
	}
	_, g.err = fmt.Fprintf(g.w, format, args...)
}

// WriteGraph writes e to w as an undirected graph description:
//
//     graph Expression {
//     	node1[label="+"];
//     	node1 -- node2;
//     	node1 -- node3;
//     	node2[label=a];
//     	node3[label=3];
//     }
//
// Each operator node is followed by the edges to its two children and then by its left and right
// subtrees.
func WriteGraph(w io.Writer, e Expr, options ...GraphOption) error {
	g := &graphWriter{name: "Expression", nodeID: defaultNodeID, w: bufio.NewWriter(w)}
	for _, option := range options {
		option(g)
	}
	g.printf("graph %s {\n", g.name)
	_ = Walk(e, func(e Expr) error {
		id := g.nodeID(e)
		switch e := e.(type) {
		case *Binary:
			g.printf("\t%s[label=%q];\n", id, e.op.String())
			g.printf("\t%s -- %s;\n", id, g.nodeID(e.left))
			g.printf("\t%s -- %s;\n", id, g.nodeID(e.right))
		default:
			g.printf("\t%s[label=%s];\n", id, e.Infix())
		}
		return g.err
	})
	g.printf("}\n")
	if g.err != nil {
		return g.err
	}
	return g.w.Flush()
}

// WriteGraphFile writes e as a graph description to the file at path, replacing its contents.
func WriteGraphFile(path string, e Expr, options ...GraphOption) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGraph(f, e, options...); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

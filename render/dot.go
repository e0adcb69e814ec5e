package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/katalvlaran/ancestry/bfs"
	"github.com/katalvlaran/ancestry/core"
)

// Fill colours used for highlighted vertices.
const (
	TargetColor   = "lightblue"
	AncestorColor = "gold"
)

// DOTGraph is the read-only view ToDOT needs. *core.Graph satisfies it.
type DOTGraph interface {
	Vertices() []string
	Edges() []*core.Edge
}

// Highlight marks the parts of a query to emphasise. The zero value draws a
// plain graph.
type Highlight struct {
	Targets  []string
	Ancestor string
	// Paths are vertex sequences whose consecutive edges are drawn bold.
	Paths [][]string
}

// Pair builds the highlight for lca(a, b) == ancestor, tracing the shortest
// path from the ancestor to each target.
func Pair(g bfs.Graph, a, b, ancestor string) (Highlight, error) {
	hl := Highlight{Targets: []string{a, b}, Ancestor: ancestor}
	for _, target := range []string{a, b} {
		path, ok, err := bfs.Between(g, ancestor, target)
		if err != nil {
			return Highlight{}, err
		}
		if ok {
			hl.Paths = append(hl.Paths, path)
		}
	}

	return hl, nil
}

// ToDOT converts g to a top-to-bottom DOT digraph.
func ToDOT(g DOTGraph, hl Highlight) string {
	fills := make(map[string]string, 3)
	for _, id := range hl.Targets {
		fills[id] = TargetColor
	}
	if hl.Ancestor != "" {
		fills[hl.Ancestor] = AncestorColor
	}
	bold := make(map[[2]string]bool)
	for _, p := range hl.Paths {
		for i := 0; i+1 < len(p); i++ {
			bold[[2]string{p[i], p[i+1]}] = true
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, id := range g.Vertices() {
		attrs := []string{fmt.Sprintf("label=%q", id)}
		if c, ok := fills[id]; ok {
			attrs = append(attrs, "fillcolor="+c)
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", id, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		if bold[[2]string{e.From, e.To}] {
			fmt.Fprintf(&buf, "  %q -> %q [penwidth=3];\n", e.From, e.To)
			continue
		}
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")

	return buf.String()
}

// RenderSVG lays out and renders DOT source to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("render: init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("render: parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}

	return buf.Bytes(), nil
}

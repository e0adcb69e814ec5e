// Package render draws a graph as Graphviz DOT, optionally highlighting an
// LCA query: the two targets are filled light blue, their ancestor gold, and
// the shortest ancestor-to-target paths are drawn bold.
//
//	hl, _ := render.Pair(g, "6", "5", "2")
//	dot := render.ToDOT(g, hl)
//	svg, err := render.RenderSVG(ctx, dot)
//
// ToDOT output is deterministic: vertices and edges come in the graph's own
// sorted order. RenderSVG runs Graphviz in-process through goccy/go-graphviz.
package render

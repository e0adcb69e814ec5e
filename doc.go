// Package ancestry finds lowest common ancestors (LCA) in binary search trees,
// rooted directed graphs and rootless DAGs.
//
// The module is organised in small packages, leaves first:
//
//	core/          thread-safe directed graph store: vertices, edges, sorted enumeration, Clone
//	bfs/           shortest path to the first vertex matching a predicate (generic Search)
//	dfs/           topological sort and cycle witness
//	bst/           unbalanced binary search tree (left <= parent < right)
//	lca/           Tree, Graph and DAG lowest common ancestor queries
//	graphfile/     YAML / TOML graph documents → core.Graph
//	render/        Graphviz DOT and SVG with the LCA highlighted
//	builder/       deterministic graph generators for tests, benchmarks and `ancestry gen`
//	cmd/ancestry/  command line over all of the above
//	examples/      runnable merge-base and org-chart programs
//
// Quick start:
//
//	g := core.NewGraph()
//	g.AddEdge("root", "a")
//	g.AddEdge("root", "b")
//	g.AddEdge("a", "c")
//	id, ok := lca.Graph(g, "root", "c", "b") // "root", true
//
// Every query returns an absent result (ok == false) rather than panicking
// when a node is missing, the targets are disconnected, the root is
// reachable from a target, or the graph is cyclic. The Find* variants say
// which of those happened.
package ancestry

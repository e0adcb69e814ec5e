// Package lca computes lowest common ancestors over three structures:
//
//   - Tree:  a bst.Tree, queried by value. The LCA is the last node shared by
//     the two root-to-node paths.
//   - Graph: a directed graph with an explicit root. Targets that can reach
//     the root back are rejected as mis-rooted before the paths are compared.
//   - DAG:   a directed graph without a root. Vertices are scanned in
//     topological order and the last one that reaches both targets wins.
//
// Every query has two forms. FindTree, FindGraph and FindDAG return the
// ancestor or a sentinel error saying why there is none. Tree, Graph and DAG
// collapse every failure into ok == false.
//
// Errors:
//
//   - ErrTreeNil, ErrGraphNil  nil input
//   - ErrNodeNotFound          a queried value or vertex is absent
//   - ErrDisconnected          no vertex reaches both targets
//   - ErrMisRooted             a target reaches the supplied root
//   - ErrCyclic                the graph has a directed cycle
//
// All paths are found with bfs and all edges count as one step.
// Queries never mutate their input. Pass a core.Graph.Clone snapshot when the
// graph may be written concurrently.
//
// Complexity:
//
//   - Tree:  O(n) for two breadth-first searches
//   - Graph: O(V+E) for at most four breadth-first searches
//   - DAG:   O(V*(V+E)) worst case, one reachability pair per scanned vertex
package lca

// Package dfs implements whole-graph depth-first algorithms over any graph
// that can enumerate its vertices and their forward neighbors.
//
// What:
//
//   - TopologicalSort: linear ordering of a directed acyclic graph (DAG),
//     returning ErrCycleDetected if a cycle exists. The ancestor-most
//     vertices come first.
//   - DetectCycle: one witness cycle as a closed walk, or nil for a DAG.
//
// Why:
//
//   - The rootless LCA search scans vertices in topological order; a failed
//     sort is how cyclic inputs are rejected.
//   - A witness cycle tells the caller which edges break the DAG contract.
//
// Key Types & Constants:
//
//   - Graph: Vertices() + NeighborIDs(id); satisfied by *core.Graph.
//   - VertexState: White, Gray, Black (visitation markers).
//   - TopoOption: WithCancelContext(ctx).
//
// Complexity:
//
//   - TopologicalSort: Time O(V+E), Memory O(V)
//   - DetectCycle:     Time O(V+E), Memory O(V)
//
// Errors:
//
//   - ErrGraphNil       graph is nil
//   - ErrCycleDetected  cycle discovered while sorting
//   - ErrNeighborFetch  the graph failed to enumerate neighbors
//   - context errors    traversal cancelled via WithCancelContext
package dfs

// File: methods_clone.go
// Role: Snapshots and subgraphs.
// Determinism:
//   - Clone carries over nextEdgeID so edge IDs stay monotonic on the clone.
// Concurrency:
//   - Read locks on the source; the result is a fresh, unshared graph.

package core

import "sync/atomic"

// Clone returns a deep copy of the Graph: configuration, vertices, edges,
// and adjacency. Vertex Metadata maps are shared.
//
// A clone is the snapshot a query should run on when the original may be
// mutated concurrently: traversals over a graph that changes mid-walk have
// undefined results.
//
// Complexity: O(V + E)
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	clone := NewGraph()
	clone.allowMulti = g.allowMulti
	clone.allowLoops = g.allowLoops
	atomic.StoreUint64(&clone.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		clone.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
	}
	for eid, e := range g.edges {
		ne := &Edge{ID: eid, From: e.From, To: e.To}
		clone.edges[eid] = ne
		linkEdge(clone, ne)
	}

	return clone
}

// InducedSubgraph returns a new Graph containing only the vertices v with
// keep[v] == true and the edges whose endpoints are both kept. Edge IDs are
// preserved. The input graph is not mutated.
//
// Complexity: O(V + E).
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := NewGraph()
	out.allowMulti = g.allowMulti
	out.allowLoops = g.allowLoops
	atomic.StoreUint64(&out.nextEdgeID, atomic.LoadUint64(&g.nextEdgeID))

	for id, v := range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
		}
	}
	for eid, e := range g.edges {
		if keep[e.From] && keep[e.To] {
			ne := &Edge{ID: eid, From: e.From, To: e.To}
			out.edges[eid] = ne
			linkEdge(out, ne)
		}
	}

	return out
}

// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Vertices() and Sources() return IDs sorted lexicographically ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Degree queries read adjacency under muEdgeAdj.
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Under muVert write lock, register the vertex if absent.
//
// Returns:
//   - error: nil on success; ErrEmptyVertexID on invalid input.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil // no-op for existing vertex
	}
	g.vertices[id] = &Vertex{ID: id, Metadata: make(map[string]interface{})}

	return nil
}

// HasVertex reports whether the vertex ID exists (empty ID ⇒ false).
//
// Complexity:
//   - Time O(1), Space O(1).
func (g *Graph) HasVertex(id string) bool {
	if id == "" {
		return false
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Vertex returns the live vertex record for id.
// Treat the returned pointer as read-only; Metadata may be shared with clones.
func (g *Graph) Vertex(id string) (*Vertex, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	v, ok := g.vertices[id]
	if !ok {
		return nil, ErrVertexNotFound
	}

	return v, nil
}

// RemoveVertex deletes a vertex and every edge entering or leaving it.
//
// Implementation:
//   - Stage 1: Validate non-empty ID (ErrEmptyVertexID).
//   - Stage 2: Acquire muVert and muEdgeAdj write locks for an atomic topology update.
//   - Stage 3: Verify presence (ErrVertexNotFound).
//   - Stage 4: Unlink every incident edge through the out/in indexes.
//   - Stage 5: Drop the vertex record.
//
// Complexity:
//   - Time O(deg(v)), Space O(1) extra.
func (g *Graph) RemoveVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if _, exists := g.vertices[id]; !exists {
		return ErrVertexNotFound
	}

	var incident []*Edge
	for _, set := range g.out[id] {
		for eid := range set {
			incident = append(incident, g.edges[eid])
		}
	}
	for from, set := range g.in[id] {
		if from == id {
			continue // self-loops were collected from out[id]
		}
		for eid := range set {
			incident = append(incident, g.edges[eid])
		}
	}
	for _, e := range incident {
		unlinkEdge(g, e)
		delete(g.edges, e.ID)
	}

	delete(g.vertices, id)
	delete(g.out, id)
	delete(g.in, id)

	return nil
}

// Vertices returns all vertex IDs in lexicographic ascending order.
// It is the enumeration surface topological sorting relies on.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Vertices() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// VertexCount returns the current number of vertices in the graph.
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges entering and leaving id.
// A self-loop counts once in each direction; parallel edges count individually.
//
// Errors:
//   - ErrEmptyVertexID, ErrVertexNotFound.
//
// Complexity:
//   - Time O(deg(v)), Space O(1).
func (g *Graph) Degree(id string) (in, out int, err error) {
	if id == "" {
		return 0, 0, ErrEmptyVertexID
	}
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return 0, 0, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	for _, set := range g.in[id] {
		in += len(set)
	}
	for _, set := range g.out[id] {
		out += len(set)
	}

	return in, out, nil
}

// Sources returns, sorted, every vertex without incoming edges.
// In a DAG these are the candidate roots; a graph whose every vertex has an
// incoming edge necessarily contains a cycle.
//
// Complexity:
//   - Time O(V log V), Space O(V).
func (g *Graph) Sources() []string {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var ids []string
	for id := range g.vertices {
		if len(g.in[id]) == 0 {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)

	return ids
}

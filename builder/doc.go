// Package builder generates deterministic directed graphs for tests,
// benchmarks and the "ancestry gen" command.
//
// Every shape is a Constructor applied by BuildGraph to a fresh core.Graph:
//
//	g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(7)},
//		builder.RandomDAG(50, 0.1))
//
// Shapes:
//
//   - Path(n):             0 → 1 → … → n-1
//   - Cycle(n):            Path(n) closed by n-1 → 0 (for rejection tests)
//   - Star(n):             "Center" → 0..n-2
//   - BinaryTree(depth):   heap-numbered complete binary tree, root 1
//   - Layered(l, w):       every vertex of layer k points to every vertex of layer k+1
//   - RandomDAG(n, p):     edge i → j with probability p for every i < j
//
// Vertex IDs come from the IDFn configured with WithIDScheme (decimal by
// default). Acyclic shapes only emit edges from a lower to a higher index,
// so they stay acyclic under any ID scheme.
//
// Errors are sentinels wrapped with the constructor name:
// ErrTooFewVertices, ErrInvalidProbability, ErrNeedRandSource,
// ErrConstructFailed. Option constructors panic on nil arguments;
// constructors never panic.
package builder

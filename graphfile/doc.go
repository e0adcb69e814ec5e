// Package graphfile reads graph documents from YAML or TOML and turns them
// into a core.Graph.
//
// A document lists directed edges and, optionally, isolated vertices, a
// default root and named LCA queries:
//
//	name: family
//	root: root
//	vertices: [orphan]
//	edges:
//	  - {from: root, to: "1"}
//	  - {from: "1", to: "3"}
//	queries:
//	  - {a: "3", b: "1"}
//
// The TOML form uses the same keys, with [[edges]] and [[queries]] tables.
// Documents are validated with go-playground/validator after decoding, so
// an edge without an endpoint or a query without both members is rejected
// with ErrInvalidDocument before any graph is built.
package graphfile

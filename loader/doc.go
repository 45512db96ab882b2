// Package loader reads YAML graph descriptions and builds wgraph graphs from
// them.
//
// A description names the vertices, lists weighted edges between them by
// name, optionally generates extra topology through the builder package, and
// carries the path queries and logging level used by cmd/findpath:
//
//	vertices: [Sydney, Melbourne, Adelaide, Perth]
//	edges:
//	  - {from: Sydney, to: Melbourne, weight: 714}
//	  - {from: Melbourne, to: Adelaide, weight: 654}
//	generate:
//	  - {kind: cycle, n: 4}
//	seed: 7
//	weights: {min: 100, max: 900}
//	queries:
//	  - {from: Sydney, to: Adelaide, max_weight: 800}
//	logging:
//	  level: info
//
// Instead of names, vertex_count: N declares N vertices named "0".."N-1".
//
// Validation runs in two passes: struct tags (go-playground/validator) for
// shape, then semantic checks for name resolution and duplicates. Every
// failure wraps ErrInvalidDescription.
//
// Explicit edges are inserted before generated ones. Since insertion is
// first-write-wins, an explicit weight is never overwritten by a generator.
package loader

// Package arclook is an in-memory toolkit for directed multigraphs with
// fast arc lookup: per-node search trees that answer "is there an arc
// from s to t, and which one?" in logarithmic time instead of a scan.
//
// 🚀 What is arclook?
//
//	A small, focused library that brings together:
//		• Core primitives: an arena-backed directed multigraph with integer
//		  Node/Arc handles, parallel arcs and self-loops always welcome
//		• Change feeds: observer streams for additions, removals, rebuilds
//		  and clears, plus auto-maintained per-node/per-arc maps
//		• Lookup indexes: a splay-tree Dynamic index that tracks every
//		  mutation, a balanced Static index rebuilt on demand, and an All
//		  index that chains parallel arcs for O(1) duplicate enumeration
//		• Utilities: counting helpers, linear search fallback, whole-graph
//		  copy with reference maps, and an LGF-style text writer
//
// ✨ Why choose arclook?
//
//   - Purpose-built – multigraph arc lookup done right, nothing else
//   - Predictable – integer handles, explicit sentinels, no hidden locks
//   - Honest contracts – staleness and chaining rules documented, not policed
//   - Pure Go – no cgo, test-only third-party dependencies
//
// Everything is organized under three subpackages:
//
//	digraph/  — Digraph, Node/Arc handles, maps, feeds, copy & count helpers
//	arcindex/ — Dynamic (splay), Static (balanced) and All (chained) indexes
//	lgf/      — plain-text writer for @nodes/@arcs/@attributes sections
//
// Quick ASCII example:
//
//	    A ══▶ B        two parallel arcs A→B, one A→C, one B→C;
//	    │     │        FindFirst(A,B) then FindNext walks both
//	    ▼     ▼        parallels in order and stops at NoArc.
//	    C ◀───┘
//
// Dive into each package's doc.go for contracts, complexity tables and
// runnable examples.
//
//	go get github.com/katalvlaran/arclook
package arclook

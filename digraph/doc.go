// Package digraph provides an arena-backed directed multigraph with
// integer handles, change feeds, and auto-maintained item maps.
//
// The graph G = (V,A) supports:
//
//   - Parallel arcs and self-loops, no restrictions.
//   - O(1) node and arc insertion, O(1) arc removal, O(deg) node removal.
//   - Handle reuse through internal free lists: a removed item's handle
//     may be handed out again by a later Add, and maps reset reused slots
//     to their default value automatically.
//   - Per-node incidence lists in insertion order (FirstOut/NextOut walk
//     a node's out-arcs oldest first).
//   - Change feeds: observers attached via ObserveNodes/ObserveArcs see
//     every structural mutation, which is how NodeMap/ArcMap and the
//     arcindex structures stay current without polling.
//   - Bulk construction: Build(nodes, specs) fills an empty graph in one
//     shot and announces it with a single Rebuilt event per feed.
//
// Why use digraph.Digraph?
//
//   - Handles are small ints, so per-item data lives in flat slices
//     (NodeMap/ArcMap) instead of hash maps.
//   - Synchronous eventing keeps derived structures exact: Removed fires
//     while the arc is still linked, so observers can read Source/Target
//     during teardown.
//   - Capability interfaces (View, NodeCounter, ArcCounter, OutStepper)
//     let algorithms accept any graph-shaped value and still hit the
//     fast paths when the concrete type provides them.
//
// Core methods:
//
//	// Construction
//	New(opts ...Option) *Digraph         // O(1), WithNodeCapacity / WithArcCapacity
//	Build(n int, specs []ArcSpec)        // O(n+m), empty graph only
//
//	// Mutation
//	AddNode() Node                       // O(1) amortized
//	AddArc(s, t Node) (Arc, error)       // O(1) amortized
//	AddArcs(specs []ArcSpec) ([]Arc, error)
//	RemoveArc(a Arc) error               // O(1)
//	RemoveArcs(as []Arc) error
//	RemoveNode(n Node) error             // O(deg(n))
//	Clear()                              // O(1) plus event delivery
//
//	// Query
//	NodeCount() int / ArcCount() int     // O(1)
//	ValidNode(n) / ValidArc(a) bool      // O(1)
//	Source(a) / Target(a) Node           // O(1)
//	Nodes() / Arcs() []…                 // insertion order
//	OutArcs(n) / InArcs(n) []Arc         // insertion order
//	FirstOut(n) / NextOut(a) Arc         // allocation-free stepping
//	OutDegree(n) / InDegree(n) int       // O(deg)
//
//	// Eventing
//	ObserveNodes(o Observer[Node]) / UnobserveNodes(o Observer[Node])
//	ObserveArcs(o Observer[Arc]) / UnobserveArcs(o Observer[Arc])
//
// Derived helpers:
//
//	NodeMap[T] / ArcMap[T]   // slice-backed item data, feed-maintained
//	FindArc / ArcsBetween    // linear arc search over any View
//	CountNodes / CountArcs   // capability-dispatched counting
//	Copier                   // structure + data copy between graphs
//
// Concurrency: none. A Digraph and everything attached to it belong to
// one goroutine; callers needing shared access add their own locking.
//
// Errors
//
//   - ErrNodeNotFound   invalid or removed node handle.
//   - ErrArcNotFound    invalid or removed arc handle.
//   - ErrDuplicateArc   the same arc listed twice in RemoveArcs.
//   - ErrNotEmpty       Build called on a non-empty graph.
//   - ErrBadSpec        Build spec references an out-of-range node.
package digraph

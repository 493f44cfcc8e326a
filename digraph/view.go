package digraph

// View is the read-only surface of a directed multigraph. *Digraph
// satisfies it; helpers that never mutate accept a View so alternative
// graph representations can reuse them.
type View interface {
	// Nodes returns every node.
	Nodes() []Node

	// Arcs returns every arc.
	Arcs() []Arc

	// OutArcs returns n's outgoing arcs, nil for an unknown node.
	OutArcs(n Node) []Arc

	// InArcs returns n's incoming arcs, nil for an unknown node.
	InArcs(n Node) []Arc

	// Source returns the source of a, or NoNode.
	Source(a Arc) Node

	// Target returns the target of a, or NoNode.
	Target(a Arc) Node
}

// NodeCounter is an optional View capability: constant-time node counts.
type NodeCounter interface {
	NodeCount() int
}

// ArcCounter is an optional View capability: constant-time arc counts.
type ArcCounter interface {
	ArcCount() int
}

// OutStepper is an optional View capability: O(1) stepping along a
// node's out-list without materializing it.
type OutStepper interface {
	FirstOut(n Node) Arc
	NextOut(a Arc) Arc
}

// CountNodes returns the number of nodes in v, through the O(1)
// capability when the concrete type offers one, else by enumeration.
func CountNodes(v View) int {
	if c, ok := v.(NodeCounter); ok {
		return c.NodeCount()
	}

	return len(v.Nodes())
}

// CountArcs returns the number of arcs in v, through the O(1) capability
// when the concrete type offers one, else by enumeration.
func CountArcs(v View) int {
	if c, ok := v.(ArcCounter); ok {
		return c.ArcCount()
	}

	return len(v.Arcs())
}

// CountOutArcs returns n's out-degree in v. O(degree).
func CountOutArcs(v View, n Node) int {
	return len(v.OutArcs(n))
}

// CountInArcs returns n's in-degree in v. O(degree).
func CountInArcs(v View, n Node) int {
	return len(v.InArcs(n))
}

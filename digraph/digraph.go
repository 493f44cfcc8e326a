package digraph

import "fmt"

// Arena link sentinels. nilIdx marks a list end; freeIdx marks a record
// parked on a free list.
const (
	nilIdx  = -1
	freeIdx = -2
)

// nodeRec is one node arena slot: node-list links plus the heads and
// tails of the incident arc lists.
type nodeRec struct {
	prevNode, nextNode int
	firstIn, lastIn    int
	firstOut, lastOut  int
}

// arcRec is one arc arena slot: endpoints plus out-list and in-list
// links. A freed slot is marked by source == freeIdx and chains to the
// next free slot through nextOut.
type arcRec struct {
	source, target   int
	prevOut, nextOut int
	prevIn, nextIn   int
}

// Digraph is a directed multigraph.
//
// The zero value is not ready to use; construct with New. Not safe for
// concurrent use.
type Digraph struct {
	nodes []nodeRec
	arcs  []arcRec

	firstNode, lastNode int
	freeNode, freeArc   int

	nodeCount, arcCount int

	nodeFeed feed[Node]
	arcFeed  feed[Arc]
}

// New returns an empty Digraph configured by opts.
func New(opts ...Option) *Digraph {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return &Digraph{
		nodes:     make([]nodeRec, 0, o.NodeCapacity),
		arcs:      make([]arcRec, 0, o.ArcCapacity),
		firstNode: nilIdx,
		lastNode:  nilIdx,
		freeNode:  nilIdx,
		freeArc:   nilIdx,
	}
}

// AddNode creates a node and returns its handle, recycling a freed id
// when one is available. O(1).
func (g *Digraph) AddNode() Node {
	n := g.linkNode()
	g.nodeFeed.added(n)

	return n
}

// AddArc creates an arc from s to t and returns its handle. Returns
// ErrNodeNotFound when either endpoint is absent. O(1).
func (g *Digraph) AddArc(s, t Node) (Arc, error) {
	if !g.ValidNode(s) {
		return NoArc, fmt.Errorf("%w: source %d", ErrNodeNotFound, s)
	}
	if !g.ValidNode(t) {
		return NoArc, fmt.Errorf("%w: target %d", ErrNodeNotFound, t)
	}

	a := g.linkArc(s, t)
	g.arcFeed.added(a)

	return a, nil
}

// AddArcs creates one arc per spec and reports them through a single
// AddedMany event. Specs are validated up front; on error nothing is
// added.
func (g *Digraph) AddArcs(specs []ArcSpec) ([]Arc, error) {
	for i, sp := range specs {
		if !g.ValidNode(sp.From) {
			return nil, fmt.Errorf("%w: spec %d source %d", ErrNodeNotFound, i, sp.From)
		}
		if !g.ValidNode(sp.To) {
			return nil, fmt.Errorf("%w: spec %d target %d", ErrNodeNotFound, i, sp.To)
		}
	}
	if len(specs) == 0 {
		return nil, nil
	}

	arcs := make([]Arc, len(specs))
	for i, sp := range specs {
		arcs[i] = g.linkArc(sp.From, sp.To)
	}
	g.arcFeed.addedMany(arcs)

	return arcs, nil
}

// RemoveArc deletes a. Observers see the Removed event while the arc is
// still linked. Returns ErrArcNotFound for an absent handle.
func (g *Digraph) RemoveArc(a Arc) error {
	if !g.ValidArc(a) {
		return fmt.Errorf("%w: arc %d", ErrArcNotFound, a)
	}

	g.arcFeed.removed(a)
	g.unlinkArc(a)

	return nil
}

// RemoveArcs deletes every listed arc, reporting them through a single
// RemovedMany event fired while all of them are still linked. The batch
// must not name an arc twice.
func (g *Digraph) RemoveArcs(as []Arc) error {
	seen := make(map[Arc]struct{}, len(as))
	for i, a := range as {
		if !g.ValidArc(a) {
			return fmt.Errorf("%w: batch item %d: arc %d", ErrArcNotFound, i, a)
		}
		if _, dup := seen[a]; dup {
			return fmt.Errorf("%w: batch item %d: arc %d", ErrDuplicateArc, i, a)
		}
		seen[a] = struct{}{}
	}
	if len(as) == 0 {
		return nil
	}

	g.arcFeed.removedMany(as)
	for _, a := range as {
		g.unlinkArc(a)
	}

	return nil
}

// RemoveNode deletes n and every arc incident to it. Each incident arc
// fires its own Removed event first; the node's Removed event follows.
func (g *Digraph) RemoveNode(n Node) error {
	if !g.ValidNode(n) {
		return fmt.Errorf("%w: node %d", ErrNodeNotFound, n)
	}

	// 1) Drop incident arcs while each is still intact for observers.
	//    A self-loop sits in both lists but leaves them together.
	for g.nodes[n].firstOut != nilIdx {
		a := Arc(g.nodes[n].firstOut)
		g.arcFeed.removed(a)
		g.unlinkArc(a)
	}
	for g.nodes[n].firstIn != nilIdx {
		a := Arc(g.nodes[n].firstIn)
		g.arcFeed.removed(a)
		g.unlinkArc(a)
	}

	// 2) Announce, then unlink the node itself.
	g.nodeFeed.removed(n)
	rec := g.nodes[n]
	if rec.nextNode != nilIdx {
		g.nodes[rec.nextNode].prevNode = rec.prevNode
	} else {
		g.lastNode = rec.prevNode
	}
	if rec.prevNode != nilIdx {
		g.nodes[rec.prevNode].nextNode = rec.nextNode
	} else {
		g.firstNode = rec.nextNode
	}

	// 3) Park the slot on the free list.
	g.nodes[n] = nodeRec{prevNode: freeIdx, nextNode: g.freeNode}
	g.freeNode = int(n)
	g.nodeCount--

	return nil
}

// Clear removes every arc and node. Observers receive the arc feed's
// Cleared event first (nodes are still present), then the node feed's.
func (g *Digraph) Clear() {
	g.arcFeed.cleared()
	g.nodeFeed.cleared()

	g.nodes = g.nodes[:0]
	g.arcs = g.arcs[:0]
	g.firstNode, g.lastNode = nilIdx, nilIdx
	g.freeNode, g.freeArc = nilIdx, nilIdx
	g.nodeCount, g.arcCount = 0, 0
}

// Build constructs the whole graph in one shot: nodes handles 0..nodes-1
// and one arc per spec, then a single Rebuilt event on each feed. The
// digraph must hold no nodes or arcs (ErrNotEmpty otherwise); spec
// endpoints are ordinals into the fresh nodes (ErrBadSpec when out of
// range). Returns the created handles in order.
func (g *Digraph) Build(nodes int, specs []ArcSpec) ([]Node, []Arc, error) {
	if g.nodeCount != 0 || g.arcCount != 0 {
		return nil, nil, ErrNotEmpty
	}
	if nodes < 0 {
		return nil, nil, fmt.Errorf("%w: negative node count %d", ErrBadSpec, nodes)
	}
	for i, sp := range specs {
		if sp.From < 0 || int(sp.From) >= nodes || sp.To < 0 || int(sp.To) >= nodes {
			return nil, nil, fmt.Errorf("%w: spec %d (%d->%d) with %d nodes", ErrBadSpec, i, sp.From, sp.To, nodes)
		}
	}

	// Counts are zero, so no live handle exists; the arenas can restart
	// from scratch and ids come out sequential.
	g.nodes = make([]nodeRec, 0, nodes)
	g.arcs = make([]arcRec, 0, len(specs))
	g.firstNode, g.lastNode = nilIdx, nilIdx
	g.freeNode, g.freeArc = nilIdx, nilIdx

	ns := make([]Node, nodes)
	for i := range ns {
		ns[i] = g.linkNode()
	}
	as := make([]Arc, len(specs))
	for i, sp := range specs {
		as[i] = g.linkArc(sp.From, sp.To)
	}

	g.nodeFeed.rebuilt()
	g.arcFeed.rebuilt()

	return ns, as, nil
}

// NodeCount returns the number of nodes. O(1).
func (g *Digraph) NodeCount() int { return g.nodeCount }

// ArcCount returns the number of arcs. O(1).
func (g *Digraph) ArcCount() int { return g.arcCount }

// ValidNode reports whether n is a live handle of this digraph.
func (g *Digraph) ValidNode(n Node) bool {
	return n >= 0 && int(n) < len(g.nodes) && g.nodes[n].prevNode != freeIdx
}

// ValidArc reports whether a is a live handle of this digraph.
func (g *Digraph) ValidArc(a Arc) bool {
	return a >= 0 && int(a) < len(g.arcs) && g.arcs[a].source != freeIdx
}

// Source returns the source node of a, or NoNode for an invalid handle.
func (g *Digraph) Source(a Arc) Node {
	if !g.ValidArc(a) {
		return NoNode
	}

	return Node(g.arcs[a].source)
}

// Target returns the target node of a, or NoNode for an invalid handle.
func (g *Digraph) Target(a Arc) Node {
	if !g.ValidArc(a) {
		return NoNode
	}

	return Node(g.arcs[a].target)
}

// Nodes returns every node in insertion order.
func (g *Digraph) Nodes() []Node {
	out := make([]Node, 0, g.nodeCount)
	for id := g.firstNode; id != nilIdx; id = g.nodes[id].nextNode {
		out = append(out, Node(id))
	}

	return out
}

// Arcs returns every arc, grouped by source node in node insertion
// order, each group in arc insertion order.
func (g *Digraph) Arcs() []Arc {
	out := make([]Arc, 0, g.arcCount)
	for id := g.firstNode; id != nilIdx; id = g.nodes[id].nextNode {
		for a := g.nodes[id].firstOut; a != nilIdx; a = g.arcs[a].nextOut {
			out = append(out, Arc(a))
		}
	}

	return out
}

// OutArcs returns n's outgoing arcs in insertion order, nil for an
// invalid handle.
func (g *Digraph) OutArcs(n Node) []Arc {
	if !g.ValidNode(n) {
		return nil
	}

	var out []Arc
	for a := g.nodes[n].firstOut; a != nilIdx; a = g.arcs[a].nextOut {
		out = append(out, Arc(a))
	}

	return out
}

// InArcs returns n's incoming arcs in insertion order, nil for an
// invalid handle.
func (g *Digraph) InArcs(n Node) []Arc {
	if !g.ValidNode(n) {
		return nil
	}

	var out []Arc
	for a := g.nodes[n].firstIn; a != nilIdx; a = g.arcs[a].nextIn {
		out = append(out, Arc(a))
	}

	return out
}

// FirstOut returns the first outgoing arc of n, or NoArc. Together with
// NextOut it steps a node's out-list without allocation.
func (g *Digraph) FirstOut(n Node) Arc {
	if !g.ValidNode(n) {
		return NoArc
	}

	return Arc(g.nodes[n].firstOut)
}

// NextOut returns the out-list successor of a, or NoArc.
func (g *Digraph) NextOut(a Arc) Arc {
	if !g.ValidArc(a) {
		return NoArc
	}

	return Arc(g.arcs[a].nextOut)
}

// OutDegree counts n's outgoing arcs. O(degree).
func (g *Digraph) OutDegree(n Node) int {
	if !g.ValidNode(n) {
		return 0
	}

	var d int
	for a := g.nodes[n].firstOut; a != nilIdx; a = g.arcs[a].nextOut {
		d++
	}

	return d
}

// InDegree counts n's incoming arcs. O(degree).
func (g *Digraph) InDegree(n Node) int {
	if !g.ValidNode(n) {
		return 0
	}

	var d int
	for a := g.nodes[n].firstIn; a != nilIdx; a = g.arcs[a].nextIn {
		d++
	}

	return d
}

// ObserveNodes attaches o to the node feed.
func (g *Digraph) ObserveNodes(o Observer[Node]) { g.nodeFeed.attach(o) }

// UnobserveNodes detaches o from the node feed. Detaching compares
// with ==, so observers meant to be detached must be comparable values
// (small structs carrying a pointer work well).
func (g *Digraph) UnobserveNodes(o Observer[Node]) { g.nodeFeed.detach(o) }

// ObserveArcs attaches o to the arc feed.
func (g *Digraph) ObserveArcs(o Observer[Arc]) { g.arcFeed.attach(o) }

// UnobserveArcs detaches o from the arc feed.
func (g *Digraph) UnobserveArcs(o Observer[Arc]) { g.arcFeed.detach(o) }

// nodeBound is the arena size; auxiliary maps size their storage by it.
func (g *Digraph) nodeBound() int { return len(g.nodes) }

// arcBound is the arc arena size.
func (g *Digraph) arcBound() int { return len(g.arcs) }

// linkNode allocates a node slot and appends it to the node list,
// without firing events.
func (g *Digraph) linkNode() Node {
	var id int
	if g.freeNode != nilIdx {
		id = g.freeNode
		g.freeNode = g.nodes[id].nextNode
	} else {
		g.nodes = append(g.nodes, nodeRec{})
		id = len(g.nodes) - 1
	}

	g.nodes[id] = nodeRec{
		prevNode: g.lastNode,
		nextNode: nilIdx,
		firstIn:  nilIdx,
		lastIn:   nilIdx,
		firstOut: nilIdx,
		lastOut:  nilIdx,
	}
	if g.lastNode != nilIdx {
		g.nodes[g.lastNode].nextNode = id
	} else {
		g.firstNode = id
	}
	g.lastNode = id
	g.nodeCount++

	return Node(id)
}

// linkArc allocates an arc slot and appends it to s's out-list and t's
// in-list, without validation or events.
func (g *Digraph) linkArc(s, t Node) Arc {
	var id int
	if g.freeArc != nilIdx {
		id = g.freeArc
		g.freeArc = g.arcs[id].nextOut
	} else {
		g.arcs = append(g.arcs, arcRec{})
		id = len(g.arcs) - 1
	}

	g.arcs[id] = arcRec{
		source:  int(s),
		target:  int(t),
		prevOut: g.nodes[s].lastOut,
		nextOut: nilIdx,
		prevIn:  g.nodes[t].lastIn,
		nextIn:  nilIdx,
	}
	if g.nodes[s].lastOut != nilIdx {
		g.arcs[g.nodes[s].lastOut].nextOut = id
	} else {
		g.nodes[s].firstOut = id
	}
	g.nodes[s].lastOut = id
	if g.nodes[t].lastIn != nilIdx {
		g.arcs[g.nodes[t].lastIn].nextIn = id
	} else {
		g.nodes[t].firstIn = id
	}
	g.nodes[t].lastIn = id
	g.arcCount++

	return Arc(id)
}

// unlinkArc detaches a from both incident lists and parks the slot on
// the free list, without events.
func (g *Digraph) unlinkArc(a Arc) {
	rec := g.arcs[a]

	if rec.nextOut != nilIdx {
		g.arcs[rec.nextOut].prevOut = rec.prevOut
	} else {
		g.nodes[rec.source].lastOut = rec.prevOut
	}
	if rec.prevOut != nilIdx {
		g.arcs[rec.prevOut].nextOut = rec.nextOut
	} else {
		g.nodes[rec.source].firstOut = rec.nextOut
	}

	if rec.nextIn != nilIdx {
		g.arcs[rec.nextIn].prevIn = rec.prevIn
	} else {
		g.nodes[rec.target].lastIn = rec.prevIn
	}
	if rec.prevIn != nilIdx {
		g.arcs[rec.prevIn].nextIn = rec.nextIn
	} else {
		g.nodes[rec.target].firstIn = rec.nextIn
	}

	g.arcs[a] = arcRec{source: freeIdx, nextOut: g.freeArc}
	g.freeArc = int(a)
	g.arcCount--
}

package arcindex

import (
	"sort"

	"github.com/katalvlaran/arclook/digraph"
)

// Static answers arc-between-endpoints queries against a snapshot of
// the digraph. Construction builds one height-balanced search tree of
// outgoing arcs per node; queries descend without restructuring, so
// they are plain O(log d) reads.
//
// The index does not track mutations. After any change to the graph,
// results are stale until Refresh (or RefreshNode for every node whose
// out-arcs changed) is called; stale queries return arbitrary arcs of
// the old snapshot, silently. Prefer Dynamic when the graph mutates
// between queries.
type Static struct {
	g     *digraph.Digraph
	head  *digraph.NodeMap[digraph.Arc]
	left  *digraph.ArcMap[digraph.Arc]
	right *digraph.ArcMap[digraph.Arc]
}

func newStatic(g *digraph.Digraph) Static {
	return Static{
		g:     g,
		head:  digraph.NewNodeMap(g, digraph.NoArc),
		left:  digraph.NewArcMap(g, digraph.NoArc),
		right: digraph.NewArcMap(g, digraph.NoArc),
	}
}

// NewStatic builds the search trees for g's current arc set in
// O(m log D) time (D = maximum out-degree).
func NewStatic(g *digraph.Digraph) *Static {
	st := newStatic(g)
	st.Refresh()

	return &st
}

// Close detaches the index's maps from the graph's feeds.
func (st *Static) Close() {
	st.head.Detach()
	st.left.Detach()
	st.right.Detach()
}

// Refresh rebuilds every tree from the graph's current arc set.
// O(m log D).
func (st *Static) Refresh() {
	for _, n := range st.g.Nodes() {
		st.RefreshNode(n)
	}
}

// RefreshNode rebuilds n's tree alone, in O(d log d) for out-degree d.
// Enough after a mutation that only touched arcs leaving n.
func (st *Static) RefreshNode(n digraph.Node) {
	if !st.g.ValidNode(n) {
		return
	}

	arcs := st.g.OutArcs(n)
	if len(arcs) == 0 {
		st.head.Set(n, digraph.NoArc)
		return
	}
	sort.SliceStable(arcs, func(i, j int) bool {
		return st.g.Target(arcs[i]) < st.g.Target(arcs[j])
	})
	st.head.Set(n, st.refreshRec(arcs, 0, len(arcs)-1))
}

// refreshRec builds a balanced subtree over the sorted run arcs[a..b]
// by splitting at the median. The stable sort keeps parallel arcs in
// out-list order, so the leftmost duplicate is the oldest.
func (st *Static) refreshRec(arcs []digraph.Arc, a, b int) digraph.Arc {
	m := (a + b) / 2
	me := arcs[m]
	if a < m {
		st.left.Set(me, st.refreshRec(arcs, a, m-1))
	} else {
		st.left.Set(me, digraph.NoArc)
	}
	if m < b {
		st.right.Set(me, st.refreshRec(arcs, m+1, b))
	} else {
		st.right.Set(me, digraph.NoArc)
	}

	return me
}

// Lookup returns an arc from s to t, or NoArc if the snapshot holds
// none. With parallel arcs the descent stops at the first match it
// meets, so which duplicate comes back is unspecified; use All when
// every copy matters. O(log d).
func (st *Static) Lookup(s, t digraph.Node) digraph.Arc {
	a := st.head.Get(s)
	for a != digraph.NoArc && st.g.Target(a) != t {
		if t < st.g.Target(a) {
			a = st.left.Get(a)
		} else {
			a = st.right.Get(a)
		}
	}

	return a
}

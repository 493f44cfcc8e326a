package arcindex

import "github.com/katalvlaran/arclook/digraph"

// All extends Static with a next link per arc, chaining each group of
// parallel arcs in tree order. Enumerating every arc between two
// endpoints costs one O(log d) seek plus O(1) per further arc:
//
//	for a := ix.Lookup(u, v); a != digraph.NoArc; a = ix.LookupNext(u, v, a) {
//		...
//	}
//
// Like Static, the index is a snapshot: call Refresh or RefreshNode
// after mutations. Always call them on the All value, not on the
// embedded Static, or the next links fall out of step with the trees.
type All struct {
	Static
	next *digraph.ArcMap[digraph.Arc]
}

// NewAll builds the search trees and duplicate chains for g's current
// arc set in O(m log D) time.
func NewAll(g *digraph.Digraph) *All {
	al := &All{
		Static: newStatic(g),
		next:   digraph.NewArcMap(g, digraph.NoArc),
	}
	al.Refresh()

	return al
}

// Close detaches the index's maps from the graph's feeds.
func (al *All) Close() {
	al.Static.Close()
	al.next.Detach()
}

// Refresh rebuilds every tree and its chains. O(m log D).
func (al *All) Refresh() {
	for _, n := range al.g.Nodes() {
		al.RefreshNode(n)
	}
}

// RefreshNode rebuilds n's tree and chains alone, in O(d log d).
func (al *All) RefreshNode(n digraph.Node) {
	// A dead handle's head slot may still name a recycled arc; chaining
	// from it would rewrite next links inside another node's tree.
	if !al.g.ValidNode(n) {
		return
	}
	al.Static.RefreshNode(n)
	al.refreshChain(al.head.Get(n), digraph.NoArc)
}

// refreshChain walks the tree under root in reverse order (right, self,
// left) carrying the most recently visited arc, which is the in-order
// successor of the current one. Same target means same group: link.
// Returns the last arc visited, the subtree's in-order first.
func (al *All) refreshChain(root, succ digraph.Arc) digraph.Arc {
	if root == digraph.NoArc {
		return succ
	}

	succ = al.refreshChain(al.right.Get(root), succ)
	if succ != digraph.NoArc && al.g.Target(succ) == al.g.Target(root) {
		al.next.Set(root, succ)
	} else {
		al.next.Set(root, digraph.NoArc)
	}

	return al.refreshChain(al.left.Get(root), root)
}

// Lookup returns the first arc from s to t in enumeration order, or
// NoArc. This is the in-order leftmost duplicate, found by descending
// the whole way down while tracking the best match; a descent that
// stopped at the first equal target could surface a mid-group arc
// whose chain misses the earlier duplicates. O(log d).
func (al *All) Lookup(s, t digraph.Node) digraph.Arc {
	a := al.head.Get(s)
	r := digraph.NoArc
	for a != digraph.NoArc {
		if al.g.Target(a) < t {
			a = al.right.Get(a)
		} else {
			if al.g.Target(a) == t {
				r = a
			}
			a = al.left.Get(a)
		}
	}

	return r
}

// LookupNext returns the arc from s to t following prev in enumeration
// order, or NoArc when prev was the last. A NoArc prev restarts the
// chain, so Lookup is just LookupNext with NoArc. O(1) for a non-NoArc
// prev.
func (al *All) LookupNext(s, t digraph.Node, prev digraph.Arc) digraph.Arc {
	if prev == digraph.NoArc {
		return al.Lookup(s, t)
	}

	return al.next.Get(prev)
}

package arcindex

import (
	"sort"

	"github.com/katalvlaran/arclook/digraph"
)

// Dynamic answers arc-between-endpoints queries on a live digraph. It
// keeps one binary search tree of outgoing arcs per node, keyed by
// target, and rebalances with splay rotations so repeated queries on
// the same region stay cheap. The index subscribes to the graph's arc
// feed at construction and tracks every later mutation on its own;
// trees never go stale.
//
// Queries splay, so even Lookup mutates internal state. A Dynamic and
// its digraph belong to one goroutine.
type Dynamic struct {
	g      *digraph.Digraph
	head   *digraph.NodeMap[digraph.Arc]
	parent *digraph.ArcMap[digraph.Arc]
	left   *digraph.ArcMap[digraph.Arc]
	right  *digraph.ArcMap[digraph.Arc]
}

// dynamicFeed forwards arc feed events to the index. A value struct so
// attach and detach agree on identity.
type dynamicFeed struct{ d *Dynamic }

func (f dynamicFeed) Added(a digraph.Arc) { f.d.insert(a) }

func (f dynamicFeed) AddedMany(as []digraph.Arc) {
	for _, a := range as {
		f.d.insert(a)
	}
}

func (f dynamicFeed) Removed(a digraph.Arc) { f.d.remove(a) }

func (f dynamicFeed) RemovedMany(as []digraph.Arc) {
	for _, a := range as {
		f.d.remove(a)
	}
}

func (f dynamicFeed) Rebuilt() { f.d.refresh() }

func (f dynamicFeed) Cleared() {
	for _, n := range f.d.g.Nodes() {
		f.d.head.Set(n, digraph.NoArc)
	}
}

// NewDynamic builds the search trees for g's current arc set in
// O(m log D) time (D = maximum out-degree) and subscribes to the arc
// feed. Release the subscriptions with Close.
func NewDynamic(g *digraph.Digraph) *Dynamic {
	d := &Dynamic{
		g:      g,
		head:   digraph.NewNodeMap(g, digraph.NoArc),
		parent: digraph.NewArcMap(g, digraph.NoArc),
		left:   digraph.NewArcMap(g, digraph.NoArc),
		right:  digraph.NewArcMap(g, digraph.NoArc),
	}
	g.ObserveArcs(dynamicFeed{d})
	d.refresh()

	return d
}

// Close detaches the index and its maps from the graph's feeds. The
// index must not be used afterwards.
func (d *Dynamic) Close() {
	d.g.UnobserveArcs(dynamicFeed{d})
	d.head.Detach()
	d.parent.Detach()
	d.left.Detach()
	d.right.Detach()
}

// Lookup returns an arc from s to t, or NoArc if none exists. When
// parallel arcs connect s to t, which one comes back is unspecified;
// use FindFirst/FindNext to enumerate them. Amortized O(log d) where d
// is the out-degree of s.
func (d *Dynamic) Lookup(s, t digraph.Node) digraph.Arc {
	a := d.head.Get(s)
	if a == digraph.NoArc {
		return digraph.NoArc
	}
	for {
		switch {
		case d.g.Target(a) == t:
			d.splay(a)
			return a
		case t < d.g.Target(a):
			if d.left.Get(a) == digraph.NoArc {
				d.splay(a)
				return digraph.NoArc
			}
			a = d.left.Get(a)
		default:
			if d.right.Get(a) == digraph.NoArc {
				d.splay(a)
				return digraph.NoArc
			}
			a = d.right.Get(a)
		}
	}
}

// FindFirst returns the first arc from s to t in tree order, or NoArc.
// Continue with FindNext to walk the remaining parallel arcs.
// Amortized O(log d).
func (d *Dynamic) FindFirst(s, t digraph.Node) digraph.Arc {
	a := d.head.Get(s)
	if a == digraph.NoArc {
		return digraph.NoArc
	}

	r := digraph.NoArc
	for {
		if d.g.Target(a) < t {
			if d.right.Get(a) == digraph.NoArc {
				d.splay(a)
				return r
			}
			a = d.right.Get(a)
		} else {
			if d.g.Target(a) == t {
				r = a
			}
			if d.left.Get(a) == digraph.NoArc {
				d.splay(a)
				return r
			}
			a = d.left.Get(a)
		}
	}
}

// FindNext returns the arc from s to t that follows prev in tree order,
// or NoArc when prev was the last. prev must be the result of the
// previous FindFirst or FindNext call for the same endpoints; the
// amortized O(log d) bound holds only for such chains.
func (d *Dynamic) FindNext(s, t digraph.Node, prev digraph.Arc) digraph.Arc {
	if prev == digraph.NoArc {
		return digraph.NoArc
	}

	// In-order successor: leftmost of the right subtree, or the nearest
	// ancestor reached through a left-child link.
	a := prev
	if d.right.Get(a) != digraph.NoArc {
		a = d.right.Get(a)
		for d.left.Get(a) != digraph.NoArc {
			a = d.left.Get(a)
		}
		d.splay(a)
	} else {
		for d.parent.Get(a) != digraph.NoArc && d.right.Get(d.parent.Get(a)) == a {
			a = d.parent.Get(a)
		}
		if d.parent.Get(a) == digraph.NoArc {
			return digraph.NoArc
		}
		a = d.parent.Get(a)
		d.splay(a)
	}
	if d.g.Target(a) == t {
		return a
	}

	return digraph.NoArc
}

// insert places arc into its source's tree. Equal targets go right, so
// parallel arcs keep insertion order in the in-order walk.
func (d *Dynamic) insert(arc digraph.Arc) {
	s := d.g.Source(arc)
	t := d.g.Target(arc)
	d.left.Set(arc, digraph.NoArc)
	d.right.Set(arc, digraph.NoArc)

	e := d.head.Get(s)
	if e == digraph.NoArc {
		d.head.Set(s, arc)
		d.parent.Set(arc, digraph.NoArc)
		return
	}
	for {
		if t < d.g.Target(e) {
			if d.left.Get(e) == digraph.NoArc {
				d.left.Set(e, arc)
				d.parent.Set(arc, e)
				d.splay(arc)
				return
			}
			e = d.left.Get(e)
		} else {
			if d.right.Get(e) == digraph.NoArc {
				d.right.Set(e, arc)
				d.parent.Set(arc, e)
				d.splay(arc)
				return
			}
			e = d.right.Get(e)
		}
	}
}

// remove deletes arc from its source's tree. Runs while the arc is
// still linked in the graph, so Source is readable.
func (d *Dynamic) remove(arc digraph.Arc) {
	l := d.left.Get(arc)
	r := d.right.Get(arc)
	p := d.parent.Get(arc)

	switch {
	case l == digraph.NoArc:
		if r != digraph.NoArc {
			d.parent.Set(r, p)
		}
		d.replaceChild(arc, p, r)
	case r == digraph.NoArc:
		d.parent.Set(l, p)
		d.replaceChild(arc, p, l)
	default:
		e := l
		if d.right.Get(e) != digraph.NoArc {
			// The in-order predecessor sits deeper: detach the
			// rightmost record of the left subtree, graft it into
			// arc's place, then splay its old parent. The splay ends
			// by updating the root pointer, so none is written here.
			for d.right.Get(e) != digraph.NoArc {
				e = d.right.Get(e)
			}
			ep := d.parent.Get(e)
			el := d.left.Get(e)
			d.right.Set(ep, el)
			if el != digraph.NoArc {
				d.parent.Set(el, ep)
			}

			d.left.Set(e, l)
			d.parent.Set(l, e)
			d.right.Set(e, r)
			d.parent.Set(r, e)

			d.parent.Set(e, p)
			if p != digraph.NoArc {
				if d.left.Get(p) == arc {
					d.left.Set(p, e)
				} else {
					d.right.Set(p, e)
				}
			}
			d.splay(ep)
		} else {
			// The left child is itself the predecessor: splice it up.
			d.right.Set(e, r)
			d.parent.Set(r, e)
			d.parent.Set(e, p)
			d.replaceChild(arc, p, e)
		}
	}
}

// replaceChild makes c take arc's place under p, or at the tree root
// when arc had no parent.
func (d *Dynamic) replaceChild(arc, p, c digraph.Arc) {
	if p == digraph.NoArc {
		d.head.Set(d.g.Source(arc), c)
		return
	}
	if d.left.Get(p) == arc {
		d.left.Set(p, c)
	} else {
		d.right.Set(p, c)
	}
}

// refresh rebuilds every tree from scratch: gather, stable-sort by
// target, split at medians. O(m log D).
func (d *Dynamic) refresh() {
	for _, n := range d.g.Nodes() {
		arcs := d.g.OutArcs(n)
		if len(arcs) == 0 {
			d.head.Set(n, digraph.NoArc)
			continue
		}
		sort.SliceStable(arcs, func(i, j int) bool {
			return d.g.Target(arcs[i]) < d.g.Target(arcs[j])
		})
		root := d.refreshRec(arcs, 0, len(arcs)-1)
		d.head.Set(n, root)
		d.parent.Set(root, digraph.NoArc)
	}
}

func (d *Dynamic) refreshRec(arcs []digraph.Arc, a, b int) digraph.Arc {
	m := (a + b) / 2
	me := arcs[m]
	if a < m {
		l := d.refreshRec(arcs, a, m-1)
		d.left.Set(me, l)
		d.parent.Set(l, me)
	} else {
		d.left.Set(me, digraph.NoArc)
	}
	if m < b {
		r := d.refreshRec(arcs, m+1, b)
		d.right.Set(me, r)
		d.parent.Set(r, me)
	} else {
		d.right.Set(me, digraph.NoArc)
	}

	return me
}

// zig rotates v right over its parent.
func (d *Dynamic) zig(v digraph.Arc) {
	w := d.parent.Get(v)
	g := d.parent.Get(w)
	b := d.right.Get(v)

	d.parent.Set(v, g)
	d.parent.Set(w, v)
	d.left.Set(w, b)
	d.right.Set(v, w)
	if g != digraph.NoArc {
		if d.right.Get(g) == w {
			d.right.Set(g, v)
		} else {
			d.left.Set(g, v)
		}
	}
	if b != digraph.NoArc {
		d.parent.Set(b, w)
	}
}

// zag rotates v left over its parent.
func (d *Dynamic) zag(v digraph.Arc) {
	w := d.parent.Get(v)
	g := d.parent.Get(w)
	b := d.left.Get(v)

	d.parent.Set(v, g)
	d.parent.Set(w, v)
	d.right.Set(w, b)
	d.left.Set(v, w)
	if g != digraph.NoArc {
		if d.left.Get(g) == w {
			d.left.Set(g, v)
		} else {
			d.right.Set(g, v)
		}
	}
	if b != digraph.NoArc {
		d.parent.Set(b, w)
	}
}

// splay rotates v to the root of its tree and records it as the new
// root for its source node.
func (d *Dynamic) splay(v digraph.Arc) {
	for d.parent.Get(v) != digraph.NoArc {
		p := d.parent.Get(v)
		g := d.parent.Get(p)
		if v == d.left.Get(p) {
			switch {
			case g == digraph.NoArc:
				d.zig(v)
			case p == d.left.Get(g):
				d.zig(p)
				d.zig(v)
			default:
				d.zig(v)
				d.zag(v)
			}
		} else {
			switch {
			case g == digraph.NoArc:
				d.zag(v)
			case p == d.left.Get(g):
				d.zag(v)
				d.zig(v)
			default:
				d.zag(p)
				d.zag(v)
			}
		}
	}
	d.head.Set(d.g.Source(v), v)
}

// Package arcindex answers "is there an arc from s to t, and which?"
// on a digraph.Digraph in logarithmic time, replacing the linear scan
// of s's out-list that digraph.FindArc performs.
//
// What
//
//   - Three index flavors over per-node binary search trees keyed by
//     arc target:
//   - Dynamic: a splay tree per node, kept current automatically by
//     subscribing to the graph's arc feed. Lookup, FindFirst and
//     FindNext run in amortized O(log d) where d is the out-degree.
//   - Static: a balanced tree per node, built on demand by Refresh /
//     RefreshNode, queried with a plain O(log d) descent. Stale after
//     any mutation until rebuilt.
//   - All: Static plus a per-arc next link chaining parallel arcs, so
//     Lookup + repeated LookupNext enumerates every arc between two
//     endpoints at O(1) per step after the first seek.
//
// Why
//
//   - Multigraphs make "find the arc from u to v" a real query: there
//     can be none, one, or many, and a scan over a high-degree hub is
//     O(d) every time.
//   - Algorithms that probe adjacency repeatedly (matching, flow
//     preludes, contraction passes) want the probe sublinear and the
//     index maintenance off their hands.
//
// Choosing an index
//
//	Graph mutates between queries            -> Dynamic
//	Build once, query many times             -> Static
//	Need every parallel arc, not just one    -> All
//
// Tie-break rule
//
//	Arcs with equal targets go to the RIGHT subtree on insertion, and
//	the stable rebuild sort keeps them in out-list order. FindNext's
//	successor walk and All's chain construction both depend on this;
//	it is a correctness rule, not a style choice.
//
// Complexity (m = arcs, d = out-degree of the queried node, D = max out-degree)
//
//   - Construction / Refresh:  O(m log D)
//   - RefreshNode:             O(d log d)
//   - Dynamic queries:         amortized O(log d)
//   - Static/All Lookup:       O(log d)
//   - All LookupNext:          O(1) past the first seek
//
// Usage
//
//	g := digraph.New()
//	u, v := g.AddNode(), g.AddNode()
//	g.AddArc(u, v)
//
//	ix := arcindex.NewDynamic(g)
//	defer ix.Close()
//
//	g.AddArc(u, v) // picked up through the arc feed
//	for a := ix.FindFirst(u, v); a != digraph.NoArc; a = ix.FindNext(u, v, a) {
//		// both parallel arcs, oldest first
//	}
//
// Concurrency
//
//	None. Dynamic queries splay, so even Lookup writes internal state;
//	treat every index as requiring exclusive access together with its
//	graph.
//
// Errors
//
//	None. "No such arc" is the ordinary NoArc result, never an error or
//	panic. Two misuses go undetected to keep queries allocation- and
//	check-free: querying a Static or All index after an unrefreshed
//	mutation yields stale results silently, and feeding FindNext or
//	LookupNext a prev that did not come from the matching chain returns
//	unreliable arcs as well as voiding the amortized bounds.
package arcindex

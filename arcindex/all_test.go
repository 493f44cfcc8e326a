package arcindex_test

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/arclook/arcindex"
	"github.com/katalvlaran/arclook/digraph"
)

// chainAll drains Lookup/LookupNext for one endpoint pair.
func chainAll(al *arcindex.All, s, t digraph.Node) []digraph.Arc {
	var out []digraph.Arc
	for a := al.Lookup(s, t); a != digraph.NoArc; a = al.LookupNext(s, t, a) {
		out = append(out, a)
	}

	return out
}

// TestAll_MidRunRoot pins the shape where the balanced build roots the
// tree inside a run of parallel arcs: targets v, v, w put the second
// v-arc at the root. Lookup must still hand out the first v-arc, or
// the chain walk would never see it.
func TestAll_MidRunRoot(t *testing.T) {
	g := digraph.New()
	u := g.AddNode()
	v := g.AddNode()
	w := g.AddNode()
	a1, _ := g.AddArc(u, v)
	a2, _ := g.AddArc(u, v)
	a3, _ := g.AddArc(u, w)

	al := arcindex.NewAll(g)
	defer al.Close()

	if got := al.Lookup(u, v); got != a1 {
		t.Fatalf("Lookup(u,v) = %d; want the first duplicate %d", got, a1)
	}
	if diff := cmp.Diff([]digraph.Arc{a1, a2}, chainAll(al, u, v)); diff != "" {
		t.Errorf("chain mismatch (-want +got):\n%s", diff)
	}
	if got := al.Lookup(u, w); got != a3 {
		t.Fatalf("Lookup(u,w) = %d; want %d", got, a3)
	}
	if got := al.LookupNext(u, w, a3); got != digraph.NoArc {
		t.Fatalf("LookupNext past the only w-arc = %d; want NoArc", got)
	}
}

// TestAll_EnumerateAllPairs compares the chain walk against the
// out-list scan for every pair of a seeded random graph. Both sides
// list parallel arcs in insertion order, so the sequences must match
// exactly.
func TestAll_EnumerateAllPairs(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	g := digraph.New()
	ns := make([]digraph.Node, 5)
	for i := range ns {
		ns[i] = g.AddNode()
	}
	// Dense on purpose: with 5 nodes and 70 arcs most pairs carry
	// several parallels, which is the case the chain exists for.
	for i := 0; i < 70; i++ {
		if _, err := g.AddArc(ns[r.Intn(len(ns))], ns[r.Intn(len(ns))]); err != nil {
			t.Fatalf("AddArc: %v", err)
		}
	}

	al := arcindex.NewAll(g)
	defer al.Close()

	for _, s := range ns {
		for _, d := range ns {
			want := digraph.ArcsBetween(g, s, d)
			if diff := cmp.Diff(want, chainAll(al, s, d)); diff != "" {
				t.Errorf("pair %d->%d mismatch (-want +got):\n%s", s, d, diff)
			}
		}
	}
}

// TestAll_LookupNextFromNoArc treats a NoArc cursor as "start over".
func TestAll_LookupNextFromNoArc(t *testing.T) {
	g := digraph.New()
	u := g.AddNode()
	v := g.AddNode()
	a, _ := g.AddArc(u, v)

	al := arcindex.NewAll(g)
	defer al.Close()

	if got := al.LookupNext(u, v, digraph.NoArc); got != a {
		t.Fatalf("LookupNext from NoArc = %d; want %d", got, a)
	}
	if got := al.LookupNext(v, u, digraph.NoArc); got != digraph.NoArc {
		t.Fatalf("LookupNext on missing pair = %d; want NoArc", got)
	}
}

// TestAll_RefreshNode re-chains one node after mutations and leaves
// the rest of the snapshot alone.
func TestAll_RefreshNode(t *testing.T) {
	g := digraph.New()
	u := g.AddNode()
	v := g.AddNode()
	a1, _ := g.AddArc(u, v)

	al := arcindex.NewAll(g)
	defer al.Close()

	a2, err := g.AddArc(u, v)
	if err != nil {
		t.Fatalf("AddArc: %v", err)
	}
	if diff := cmp.Diff([]digraph.Arc{a1}, chainAll(al, u, v)); diff != "" {
		t.Errorf("stale chain mismatch (-want +got):\n%s", diff)
	}

	al.RefreshNode(u)
	if diff := cmp.Diff([]digraph.Arc{a1, a2}, chainAll(al, u, v)); diff != "" {
		t.Errorf("refreshed chain mismatch (-want +got):\n%s", diff)
	}
}

// TestAll_RefreshDiscoversParallels inserts a batch of parallel arcs
// behind the snapshot's back and expects a whole-graph Refresh to
// surface every one of them through the chain walk.
func TestAll_RefreshDiscoversParallels(t *testing.T) {
	g := digraph.New()
	u := g.AddNode()
	v := g.AddNode()

	al := arcindex.NewAll(g)
	defer al.Close()

	want := make([]digraph.Arc, 0, 5)
	for i := 0; i < 5; i++ {
		a, err := g.AddArc(u, v)
		if err != nil {
			t.Fatalf("AddArc: %v", err)
		}
		want = append(want, a)
	}
	if got := chainAll(al, u, v); got != nil {
		t.Fatalf("stale chain = %v; want none", got)
	}

	al.Refresh()
	if diff := cmp.Diff(want, chainAll(al, u, v)); diff != "" {
		t.Errorf("chain after Refresh mismatch (-want +got):\n%s", diff)
	}
}

// TestAll_RefreshNodeDeadHandle hands RefreshNode a removed node whose
// freed arc id has since been recycled into another node's tree. The
// dead node's head slot still names that arc, so an unguarded chain
// pass over it would cut the live tree's chain short.
func TestAll_RefreshNodeDeadHandle(t *testing.T) {
	g := digraph.New()
	x := g.AddNode()
	y := g.AddNode()
	z := g.AddNode()
	if _, err := g.AddArc(x, y); err != nil {
		t.Fatalf("AddArc: %v", err)
	}

	al := arcindex.NewAll(g)
	defer al.Close()

	if err := g.RemoveNode(x); err != nil {
		t.Fatalf("RemoveNode: %v", err)
	}
	want := make([]digraph.Arc, 0, 3)
	for i := 0; i < 3; i++ {
		a, err := g.AddArc(y, z)
		if err != nil {
			t.Fatalf("AddArc: %v", err)
		}
		want = append(want, a)
	}

	al.RefreshNode(y)
	al.RefreshNode(x)
	al.RefreshNode(digraph.NoNode)
	if diff := cmp.Diff(want, chainAll(al, y, z)); diff != "" {
		t.Errorf("chain after dead-handle refresh mismatch (-want +got):\n%s", diff)
	}
}

// TestAll_EmptyGraph checks the NoArc answers on a node with no arcs.
func TestAll_EmptyGraph(t *testing.T) {
	g := digraph.New()
	u := g.AddNode()
	v := g.AddNode()

	al := arcindex.NewAll(g)
	defer al.Close()

	if got := al.Lookup(u, v); got != digraph.NoArc {
		t.Fatalf("Lookup on empty = %d; want NoArc", got)
	}
	if got := chainAll(al, u, v); got != nil {
		t.Fatalf("chain on empty = %v; want none", got)
	}
}

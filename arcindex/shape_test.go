package arcindex

import (
	"math/rand"
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/arclook/digraph"
)

// White-box checks on the link structure behind the indexes. The
// external tests prove the answers are right; these prove the trees
// the answers come from stay well formed while splays and splices
// rewire them.

// inOrder walks a subtree of the dynamic index left to right.
func inOrder(idx *Dynamic, a digraph.Arc, out []digraph.Arc) []digraph.Arc {
	if a == digraph.NoArc {
		return out
	}
	out = inOrder(idx, idx.left.Get(a), out)
	out = append(out, a)

	return inOrder(idx, idx.right.Get(a), out)
}

// checkTree asserts the tree of one source node: the root is
// parentless, child and parent links agree, the in-order walk is
// non-decreasing by target, and the walk visits exactly the node's
// out-arcs.
func checkTree(t *testing.T, g *digraph.Digraph, idx *Dynamic, n digraph.Node) {
	t.Helper()

	root := idx.head.Get(n)
	if root == digraph.NoArc {
		if d := g.OutDegree(n); d != 0 {
			t.Fatalf("node %d: empty tree but out-degree %d", n, d)
		}

		return
	}
	if p := idx.parent.Get(root); p != digraph.NoArc {
		t.Fatalf("node %d: root %d carries parent %d", n, root, p)
	}

	seq := inOrder(idx, root, nil)
	for _, a := range seq {
		if l := idx.left.Get(a); l != digraph.NoArc && idx.parent.Get(l) != a {
			t.Fatalf("node %d: left child %d of %d points back to %d", n, l, a, idx.parent.Get(l))
		}
		if r := idx.right.Get(a); r != digraph.NoArc && idx.parent.Get(r) != a {
			t.Fatalf("node %d: right child %d of %d points back to %d", n, r, a, idx.parent.Get(r))
		}
	}
	for i := 1; i < len(seq); i++ {
		if g.Target(seq[i-1]) > g.Target(seq[i]) {
			t.Fatalf("node %d: targets out of order at %d: %v", n, i, seq)
		}
	}

	want := g.OutArcs(n)
	got := append([]digraph.Arc(nil), seq...)
	sort.Slice(want, func(i, j int) bool { return want[i] < want[j] })
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !reflect.DeepEqual(want, got) {
		t.Fatalf("node %d: tree holds %v, out-list holds %v", n, got, want)
	}
}

// TestDynamicTreeShape mutates and queries a graph under a fixed seed
// and re-validates every tree after each operation. Queries are part
// of the workload because lookups splay and must not bend the shape
// rules while doing so.
func TestDynamicTreeShape(t *testing.T) {
	const (
		nodeCount = 6
		steps     = 400
	)
	r := rand.New(rand.NewSource(42))
	g := digraph.New()
	idx := NewDynamic(g)
	defer idx.Close()

	ns := make([]digraph.Node, nodeCount)
	for i := range ns {
		ns[i] = g.AddNode()
	}

	var live []digraph.Arc
	for step := 0; step < steps; step++ {
		switch {
		case len(live) == 0 || r.Intn(4) > 1:
			s := ns[r.Intn(nodeCount)]
			d := ns[r.Intn(nodeCount)]
			a, err := g.AddArc(s, d)
			if err != nil {
				t.Fatalf("step %d: AddArc: %v", step, err)
			}
			live = append(live, a)
		case r.Intn(2) == 0:
			i := r.Intn(len(live))
			if err := g.RemoveArc(live[i]); err != nil {
				t.Fatalf("step %d: RemoveArc: %v", step, err)
			}
			live[i] = live[len(live)-1]
			live = live[:len(live)-1]
		default:
			idx.Lookup(ns[r.Intn(nodeCount)], ns[r.Intn(nodeCount)])
		}

		for _, n := range ns {
			checkTree(t, g, idx, n)
		}
	}
}

// TestStaticTreeShape builds the snapshot index over a random graph
// and validates child links and ordering. The static trees carry no
// parent links, so only the downward structure is checked.
func TestStaticTreeShape(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	g := digraph.New()
	ns := make([]digraph.Node, 5)
	for i := range ns {
		ns[i] = g.AddNode()
	}
	for i := 0; i < 60; i++ {
		if _, err := g.AddArc(ns[r.Intn(len(ns))], ns[r.Intn(len(ns))]); err != nil {
			t.Fatalf("AddArc: %v", err)
		}
	}

	st := NewStatic(g)
	defer st.Close()

	var walk func(digraph.Arc, []digraph.Arc) []digraph.Arc
	walk = func(a digraph.Arc, out []digraph.Arc) []digraph.Arc {
		if a == digraph.NoArc {
			return out
		}
		out = walk(st.left.Get(a), out)
		out = append(out, a)

		return walk(st.right.Get(a), out)
	}

	for _, n := range ns {
		seq := walk(st.head.Get(n), nil)
		if len(seq) != g.OutDegree(n) {
			t.Fatalf("node %d: tree size %d, out-degree %d", n, len(seq), g.OutDegree(n))
		}
		for i := 1; i < len(seq); i++ {
			if g.Target(seq[i-1]) > g.Target(seq[i]) {
				t.Fatalf("node %d: targets out of order: %v", n, seq)
			}
		}
	}
}

// TestAllChainLinks validates the successor chain against the in-order
// walk: every record links to the next walk entry when that entry
// shares its target, and to NoArc when it does not.
func TestAllChainLinks(t *testing.T) {
	r := rand.New(rand.NewSource(13))
	g := digraph.New()
	ns := make([]digraph.Node, 4)
	for i := range ns {
		ns[i] = g.AddNode()
	}
	// Few nodes and many arcs force long runs of parallel arcs.
	for i := 0; i < 40; i++ {
		if _, err := g.AddArc(ns[r.Intn(len(ns))], ns[r.Intn(len(ns))]); err != nil {
			t.Fatalf("AddArc: %v", err)
		}
	}

	al := NewAll(g)
	defer al.Close()

	var walk func(digraph.Arc, []digraph.Arc) []digraph.Arc
	walk = func(a digraph.Arc, out []digraph.Arc) []digraph.Arc {
		if a == digraph.NoArc {
			return out
		}
		out = walk(al.left.Get(a), out)
		out = append(out, a)

		return walk(al.right.Get(a), out)
	}

	for _, n := range ns {
		seq := walk(al.head.Get(n), nil)
		for i, a := range seq {
			want := digraph.NoArc
			if i+1 < len(seq) && g.Target(seq[i+1]) == g.Target(a) {
				want = seq[i+1]
			}
			if got := al.next.Get(a); got != want {
				t.Fatalf("node %d: next of %d is %d, want %d (walk %v)", n, a, got, want, seq)
			}
		}
	}
}

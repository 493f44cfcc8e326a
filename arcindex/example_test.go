package arcindex_test

import (
	"fmt"

	"github.com/katalvlaran/arclook/arcindex"
	"github.com/katalvlaran/arclook/digraph"
)

// ExampleDynamic indexes a small multigraph while it grows and walks
// the two parallel a->b arcs in insertion order.
func ExampleDynamic() {
	g := digraph.New()
	idx := arcindex.NewDynamic(g)
	defer idx.Close()

	a := g.AddNode()
	b := g.AddNode()
	c := g.AddNode()
	g.AddArc(a, b)
	g.AddArc(a, b)
	g.AddArc(a, c)
	g.AddArc(b, c)

	fmt.Println("a->c:", idx.Lookup(a, c))
	for arc := idx.FindFirst(a, b); arc != digraph.NoArc; arc = idx.FindNext(a, b, arc) {
		fmt.Println("a->b:", arc)
	}
	fmt.Println("c->a:", idx.Lookup(c, a))
	// Output:
	// a->c: 2
	// a->b: 0
	// a->b: 1
	// c->a: -1
}

// ExampleStatic takes a snapshot, outgrows it, and refreshes.
func ExampleStatic() {
	g := digraph.New()
	u := g.AddNode()
	v := g.AddNode()
	g.AddArc(u, v)

	st := arcindex.NewStatic(g)
	defer st.Close()

	w := g.AddNode()
	g.AddArc(u, w)
	fmt.Println("before refresh:", st.Lookup(u, w))

	st.RefreshNode(u)
	fmt.Println("after refresh:", st.Lookup(u, w))
	// Output:
	// before refresh: -1
	// after refresh: 1
}

// ExampleAll enumerates parallel arcs through the successor chain.
func ExampleAll() {
	g := digraph.New()
	u := g.AddNode()
	v := g.AddNode()
	g.AddArc(u, v)
	g.AddArc(u, v)
	g.AddArc(u, v)

	al := arcindex.NewAll(g)
	defer al.Close()

	for a := al.Lookup(u, v); a != digraph.NoArc; a = al.LookupNext(u, v, a) {
		fmt.Println("copy:", a)
	}
	// Output:
	// copy: 0
	// copy: 1
	// copy: 2
}

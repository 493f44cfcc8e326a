package lgf_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/arclook/digraph"
	"github.com/katalvlaran/arclook/lgf"
)

// ExampleWriter emits a two-node graph with named nodes and an edge
// weight column. Tabs are drawn as pipes to keep them visible.
func ExampleWriter() {
	g := digraph.New()
	u := g.AddNode()
	v := g.AddNode()
	a, _ := g.AddArc(u, v)

	name := map[digraph.Node]string{u: "left", v: "right"}
	weight := digraph.NewArcMap(g, 0)
	weight.Set(a, 3)

	var buf bytes.Buffer
	_ = lgf.NewWriter(&buf, g).
		NodeMap("label", func(n digraph.Node) string { return name[n] }).
		ArcMap("weight", lgf.ArcValues(weight)).
		Attribute("kind", "demo").
		Run()

	fmt.Print(strings.ReplaceAll(buf.String(), "\t", "|"))
	// Output:
	// @nodes
	// label|
	// left|
	// right|
	// @arcs
	// ||label|weight|
	// left|right|0|3|
	// @attributes
	// kind demo
}

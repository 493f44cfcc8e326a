package digraph

// Mutator is the write surface a copy destination must provide.
type Mutator interface {
	AddNode() Node
	AddArc(s, t Node) (Arc, error)
}

// Builder is an optional Mutator capability: bulk construction of an
// empty graph in one shot, announced by a single Rebuilt event per feed.
type Builder interface {
	Build(nodes int, specs []ArcSpec) ([]Node, []Arc, error)
}

// Copier copies the structure of a source graph into a destination and
// runs registered reference and value transfers once the item mapping is
// complete. Registrations chain; nothing happens until Run.
//
//	var back Node
//	dst := digraph.New()
//	err := digraph.NewCopier(dst, src).
//		NodeRef(refs).
//		Node(&back, aSourceNode).
//		Run()
type Copier struct {
	dst Mutator
	src View

	nodeActs []func(ref map[Node]Node)
	arcActs  []func(ref map[Arc]Arc)
}

// NewCopier prepares a copy of src into dst. Nothing is written until
// Run.
func NewCopier(dst Mutator, src View) *Copier {
	return &Copier{dst: dst, src: src}
}

// NodeRef registers m (keyed by source nodes) to receive the source to
// destination node mapping.
func (c *Copier) NodeRef(m *NodeMap[Node]) *Copier {
	c.nodeActs = append(c.nodeActs, func(ref map[Node]Node) {
		for _, n := range c.src.Nodes() {
			m.Set(n, ref[n])
		}
	})

	return c
}

// NodeCrossRef registers m (keyed by destination nodes) to receive the
// destination to source node mapping.
func (c *Copier) NodeCrossRef(m *NodeMap[Node]) *Copier {
	c.nodeActs = append(c.nodeActs, func(ref map[Node]Node) {
		for _, n := range c.src.Nodes() {
			m.Set(ref[n], n)
		}
	})

	return c
}

// ArcRef registers m (keyed by source arcs) to receive the source to
// destination arc mapping.
func (c *Copier) ArcRef(m *ArcMap[Arc]) *Copier {
	c.arcActs = append(c.arcActs, func(ref map[Arc]Arc) {
		for _, a := range c.src.Arcs() {
			m.Set(a, ref[a])
		}
	})

	return c
}

// ArcCrossRef registers m (keyed by destination arcs) to receive the
// destination to source arc mapping.
func (c *Copier) ArcCrossRef(m *ArcMap[Arc]) *Copier {
	c.arcActs = append(c.arcActs, func(ref map[Arc]Arc) {
		for _, a := range c.src.Arcs() {
			m.Set(ref[a], a)
		}
	})

	return c
}

// Node registers a single-node reference: after Run, *ref holds the
// destination counterpart of src.
func (c *Copier) Node(ref *Node, src Node) *Copier {
	c.nodeActs = append(c.nodeActs, func(m map[Node]Node) {
		*ref = m[src]
	})

	return c
}

// Arc registers a single-arc reference: after Run, *ref holds the
// destination counterpart of src.
func (c *Copier) Arc(ref *Arc, src Arc) *Copier {
	c.arcActs = append(c.arcActs, func(m map[Arc]Arc) {
		*ref = m[src]
	})

	return c
}

// CopyNodeValues registers a node data transfer: after Run, dst holds
// src's value for every copied node, keyed by destination handles.
// A free function because methods cannot take type parameters.
func CopyNodeValues[T any](c *Copier, dst *NodeMap[T], src *NodeMap[T]) *Copier {
	c.nodeActs = append(c.nodeActs, func(ref map[Node]Node) {
		for _, n := range c.src.Nodes() {
			dst.Set(ref[n], src.Get(n))
		}
	})

	return c
}

// CopyArcValues registers an arc data transfer: after Run, dst holds
// src's value for every copied arc, keyed by destination handles.
func CopyArcValues[T any](c *Copier, dst *ArcMap[T], src *ArcMap[T]) *Copier {
	c.arcActs = append(c.arcActs, func(ref map[Arc]Arc) {
		for _, a := range c.src.Arcs() {
			dst.Set(ref[a], src.Get(a))
		}
	})

	return c
}

// Run copies the structure and then applies every registered action in
// registration order (node actions first). An empty destination with the
// Build capability is filled in one bulk call; otherwise nodes and arcs
// are added incrementally.
func (c *Copier) Run() error {
	srcNodes := c.src.Nodes()
	srcArcs := c.src.Arcs()
	nodeRef := make(map[Node]Node, len(srcNodes))
	arcRef := make(map[Arc]Arc, len(srcArcs))

	// 1) Structure.
	if b, ok := c.dst.(Builder); ok && destinationEmpty(c.dst) {
		ord := make(map[Node]Node, len(srcNodes))
		for i, n := range srcNodes {
			ord[n] = Node(i)
		}
		specs := make([]ArcSpec, len(srcArcs))
		for i, a := range srcArcs {
			specs[i] = ArcSpec{From: ord[c.src.Source(a)], To: ord[c.src.Target(a)]}
		}
		ns, as, err := b.Build(len(srcNodes), specs)
		if err != nil {
			return err
		}
		for i, n := range srcNodes {
			nodeRef[n] = ns[i]
		}
		for i, a := range srcArcs {
			arcRef[a] = as[i]
		}
	} else {
		for _, n := range srcNodes {
			nodeRef[n] = c.dst.AddNode()
		}
		for _, a := range srcArcs {
			da, err := c.dst.AddArc(nodeRef[c.src.Source(a)], nodeRef[c.src.Target(a)])
			if err != nil {
				return err
			}
			arcRef[a] = da
		}
	}

	// 2) Registered transfers.
	for _, act := range c.nodeActs {
		act(nodeRef)
	}
	for _, act := range c.arcActs {
		act(arcRef)
	}

	return nil
}

// destinationEmpty reports whether dst is verifiably empty; without the
// counting capabilities it conservatively answers false.
func destinationEmpty(dst Mutator) bool {
	nc, okN := dst.(NodeCounter)
	ac, okA := dst.(ArcCounter)

	return okN && okA && nc.NodeCount() == 0 && ac.ArcCount() == 0
}

package digraph

// NodeMap stores one value of type T per node of a Digraph, with a fixed
// default for entries never set. The map attaches to the node feed at
// construction so recycled ids always read as the default again; call
// Detach when the digraph outlives the map.
type NodeMap[T any] struct {
	g    *Digraph
	def  T
	vals []T
}

// NewNodeMap returns a map over g's nodes whose unset entries read def.
func NewNodeMap[T any](g *Digraph, def T) *NodeMap[T] {
	m := &NodeMap[T]{g: g, def: def}
	m.refill()
	g.ObserveNodes(nodeMapFeed[T]{m})

	return m
}

// Get returns the value stored for n, or the default when none was set.
// Out-of-range handles (NoNode included) read as the default.
func (m *NodeMap[T]) Get(n Node) T {
	if n < 0 || int(n) >= len(m.vals) {
		return m.def
	}

	return m.vals[n]
}

// Set stores v for n, growing storage as needed.
func (m *NodeMap[T]) Set(n Node, v T) {
	m.grow(int(n) + 1)
	m.vals[n] = v
}

// Detach unsubscribes the map from its digraph's node feed. The map
// stays readable but no longer tracks id reuse.
func (m *NodeMap[T]) Detach() {
	m.g.UnobserveNodes(nodeMapFeed[T]{m})
}

func (m *NodeMap[T]) reset(i int) {
	if i < len(m.vals) {
		m.vals[i] = m.def
	}
}

func (m *NodeMap[T]) refill() {
	n := m.g.nodeBound()
	if cap(m.vals) < n {
		m.vals = make([]T, n)
	} else {
		m.vals = m.vals[:n]
	}
	for i := range m.vals {
		m.vals[i] = m.def
	}
}

func (m *NodeMap[T]) grow(n int) {
	for len(m.vals) < n {
		m.vals = append(m.vals, m.def)
	}
}

// nodeMapFeed relays node feed events into map maintenance. It is a
// value type so Detach can present the same observer identity that
// NewNodeMap attached.
type nodeMapFeed[T any] struct {
	m *NodeMap[T]
}

func (f nodeMapFeed[T]) Added(n Node) { f.m.reset(int(n)) }

func (f nodeMapFeed[T]) AddedMany(ns []Node) {
	for _, n := range ns {
		f.m.reset(int(n))
	}
}

func (f nodeMapFeed[T]) Removed(Node)       {}
func (f nodeMapFeed[T]) RemovedMany([]Node) {}
func (f nodeMapFeed[T]) Rebuilt()           { f.m.refill() }
func (f nodeMapFeed[T]) Cleared()           { f.m.vals = f.m.vals[:0] }

// ArcMap stores one value of type T per arc of a Digraph. It mirrors
// NodeMap, attached to the arc feed.
type ArcMap[T any] struct {
	g    *Digraph
	def  T
	vals []T
}

// NewArcMap returns a map over g's arcs whose unset entries read def.
func NewArcMap[T any](g *Digraph, def T) *ArcMap[T] {
	m := &ArcMap[T]{g: g, def: def}
	m.refill()
	g.ObserveArcs(arcMapFeed[T]{m})

	return m
}

// Get returns the value stored for a, or the default when none was set.
// Out-of-range handles (NoArc included) read as the default.
func (m *ArcMap[T]) Get(a Arc) T {
	if a < 0 || int(a) >= len(m.vals) {
		return m.def
	}

	return m.vals[a]
}

// Set stores v for a, growing storage as needed.
func (m *ArcMap[T]) Set(a Arc, v T) {
	m.grow(int(a) + 1)
	m.vals[a] = v
}

// Detach unsubscribes the map from its digraph's arc feed.
func (m *ArcMap[T]) Detach() {
	m.g.UnobserveArcs(arcMapFeed[T]{m})
}

func (m *ArcMap[T]) reset(i int) {
	if i < len(m.vals) {
		m.vals[i] = m.def
	}
}

func (m *ArcMap[T]) refill() {
	n := m.g.arcBound()
	if cap(m.vals) < n {
		m.vals = make([]T, n)
	} else {
		m.vals = m.vals[:n]
	}
	for i := range m.vals {
		m.vals[i] = m.def
	}
}

func (m *ArcMap[T]) grow(n int) {
	for len(m.vals) < n {
		m.vals = append(m.vals, m.def)
	}
}

// arcMapFeed relays arc feed events into map maintenance.
type arcMapFeed[T any] struct {
	m *ArcMap[T]
}

func (f arcMapFeed[T]) Added(a Arc) { f.m.reset(int(a)) }

func (f arcMapFeed[T]) AddedMany(as []Arc) {
	for _, a := range as {
		f.m.reset(int(a))
	}
}

func (f arcMapFeed[T]) Removed(Arc)       {}
func (f arcMapFeed[T]) RemovedMany([]Arc) {}
func (f arcMapFeed[T]) Rebuilt()          { f.m.refill() }
func (f arcMapFeed[T]) Cleared()          { f.m.vals = f.m.vals[:0] }

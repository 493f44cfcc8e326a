package digraph

import "errors"

// Node is an opaque integer handle to a vertex of a Digraph.
// Handles compare with ==; the < order on the underlying integer is the
// total order indexes use as a target-comparison key. It carries no
// semantic meaning beyond that.
type Node int

// Arc is an opaque integer handle to one directed edge instance.
// Several arcs may share the same (source, target) pair; such arcs are
// called parallel.
type Arc int

// NoNode is the "no such node" sentinel.
const NoNode Node = -1

// NoArc is the "no such arc" sentinel. Lookup operations return it as a
// first-class result; it never signals an error.
const NoArc Arc = -1

// ArcSpec names one arc by its endpoints. AddArcs interprets From/To as
// existing node handles; Build interprets them as ordinals of the nodes
// it is about to create (which equal the handles Build assigns).
type ArcSpec struct {
	From Node
	To   Node
}

// Sentinel errors for digraph mutations.
var (
	// ErrNodeNotFound is returned when an endpoint handle is absent.
	ErrNodeNotFound = errors.New("digraph: node not found")

	// ErrArcNotFound is returned when an arc handle is absent.
	ErrArcNotFound = errors.New("digraph: arc not found")

	// ErrDuplicateArc is returned when a batch removal lists an arc twice.
	ErrDuplicateArc = errors.New("digraph: duplicate arc in batch")

	// ErrNotEmpty is returned by Build on a digraph that still has nodes
	// or arcs.
	ErrNotEmpty = errors.New("digraph: digraph is not empty")

	// ErrBadSpec is returned by Build when an arc spec references an
	// ordinal outside [0, nodes) or the node count is negative.
	ErrBadSpec = errors.New("digraph: arc spec out of range")
)

// Option configures a Digraph at construction via functional arguments.
type Option func(*Options)

// Options holds construction parameters for New.
type Options struct {
	// NodeCapacity preallocates the node arena.
	NodeCapacity int

	// ArcCapacity preallocates the arc arena.
	ArcCapacity int
}

// DefaultOptions returns Options with no preallocation.
func DefaultOptions() Options {
	return Options{
		NodeCapacity: 0,
		ArcCapacity:  0,
	}
}

// WithNodeCapacity reserves arena space for n nodes up front.
// Non-positive values are ignored.
func WithNodeCapacity(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.NodeCapacity = n
		}
	}
}

// WithArcCapacity reserves arena space for m arcs up front.
// Non-positive values are ignored.
func WithArcCapacity(m int) Option {
	return func(o *Options) {
		if m > 0 {
			o.ArcCapacity = m
		}
	}
}

package lgf

import "errors"

// Sentinel errors returned by Writer.Run.
var (
	// ErrUnlabeledNode marks a node referenced by an arc row or an
	// attribute without a label to print: the nodes section was skipped
	// and no "label" node column is registered.
	ErrUnlabeledNode = errors.New("lgf: node has no label")

	// ErrUnlabeledArc marks an arc referenced by an attribute without a
	// label to print.
	ErrUnlabeledArc = errors.New("lgf: arc has no label")
)

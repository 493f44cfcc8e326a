// Package lgf writes digraphs in the LGF text format, tab-separated
// sections of labelled rows:
//
//	@nodes
//	label	rank
//	0	first
//	1	second
//	@arcs
//			label	cost
//	0	1	0	2.5
//	@attributes
//	source 0
//
// The @nodes section lists one row per node; the @arcs section starts
// each row with the source and target labels in two unnamed columns;
// @attributes holds free key/value pairs and is only written when at
// least one is registered. Without a registered "label" column, items
// are labeled by their numeric handles.
//
//	w := lgf.NewWriter(os.Stdout, g).
//		NodeMap("name", lgf.NodeValues(names)).
//		Attribute("generator", "arclook")
//	if err := w.Run(); err != nil {
//		// ErrUnlabeledNode, ErrUnlabeledArc, or an I/O error
//	}
package lgf

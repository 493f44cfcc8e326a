package lgf

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/katalvlaran/arclook/digraph"
)

// col is one registered output column for nodes or arcs.
type col[I comparable] struct {
	caption string
	get     func(I) string
}

// attr is one registered attribute; get resolves the value at Run time
// so node and arc references can use labels assigned while writing.
type attr struct {
	key string
	get func() (string, error)
}

// Writer emits a digraph in LGF, section by section: @nodes, @arcs,
// then @attributes when any are registered. Registration methods chain
// and nothing is written until Run.
//
// Every row field is one token followed by a tab. A token that is
// empty or contains whitespace or escapable characters is written
// double-quoted with backslash escapes, so files round-trip through
// whitespace-splitting readers.
type Writer struct {
	buf *bufio.Writer
	g   *digraph.Digraph

	nodesCaption string
	arcsCaption  string
	attrsCaption string

	nodeCols []col[digraph.Node]
	arcCols  []col[digraph.Arc]
	attrs    []attr

	skipNodes bool
	skipArcs  bool

	nodeLabels map[digraph.Node]string
	arcLabels  map[digraph.Arc]string
}

// NewWriter prepares a writer that emits g to dst on Run.
func NewWriter(dst io.Writer, g *digraph.Digraph) *Writer {
	return &Writer{buf: bufio.NewWriter(dst), g: g}
}

// Write emits g to dst with no extra columns or attributes.
func Write(dst io.Writer, g *digraph.Digraph) error {
	return NewWriter(dst, g).Run()
}

// NodeMap registers a node column. A column captioned "label" replaces
// the implicit id labels: its values name the nodes in arc rows and
// attribute references, and node rows are sorted by them.
func (w *Writer) NodeMap(caption string, get func(digraph.Node) string) *Writer {
	w.nodeCols = append(w.nodeCols, col[digraph.Node]{caption: caption, get: get})

	return w
}

// ArcMap registers an arc column; a "label" caption works like
// NodeMap's.
func (w *Writer) ArcMap(caption string, get func(digraph.Arc) string) *Writer {
	w.arcCols = append(w.arcCols, col[digraph.Arc]{caption: caption, get: get})

	return w
}

// Attribute registers a key/value attribute. Attributes are written in
// registration order; duplicate keys are written as given.
func (w *Writer) Attribute(key, value string) *Writer {
	w.attrs = append(w.attrs, attr{key: key, get: func() (string, error) {
		return value, nil
	}})

	return w
}

// NodeAttribute registers an attribute whose value is n's label.
func (w *Writer) NodeAttribute(key string, n digraph.Node) *Writer {
	w.attrs = append(w.attrs, attr{key: key, get: func() (string, error) {
		l, ok := w.nodeLabels[n]
		if !ok {
			return "", fmt.Errorf("%w: node %d in attribute %q", ErrUnlabeledNode, n, key)
		}
		return l, nil
	}})

	return w
}

// ArcAttribute registers an attribute whose value is a's label.
func (w *Writer) ArcAttribute(key string, a digraph.Arc) *Writer {
	w.attrs = append(w.attrs, attr{key: key, get: func() (string, error) {
		l, ok := w.arcLabels[a]
		if !ok {
			return "", fmt.Errorf("%w: arc %d in attribute %q", ErrUnlabeledArc, a, key)
		}
		return l, nil
	}})

	return w
}

// NodesCaption sets the text after "@nodes", written verbatim.
func (w *Writer) NodesCaption(caption string) *Writer {
	w.nodesCaption = caption

	return w
}

// ArcsCaption sets the text after "@arcs", written verbatim.
func (w *Writer) ArcsCaption(caption string) *Writer {
	w.arcsCaption = caption

	return w
}

// AttributesCaption sets the text after "@attributes", written
// verbatim.
func (w *Writer) AttributesCaption(caption string) *Writer {
	w.attrsCaption = caption

	return w
}

// SkipNodes omits the @nodes section. Arc rows then need a registered
// "label" node column to name their endpoints; without one, Run fails
// with ErrUnlabeledNode.
func (w *Writer) SkipNodes() *Writer {
	w.skipNodes = true

	return w
}

// SkipArcs omits the @arcs section.
func (w *Writer) SkipArcs() *Writer {
	w.skipArcs = true

	return w
}

// Run writes the registered sections and flushes. On a labeling error
// the output may be partially written.
func (w *Writer) Run() error {
	w.nodeLabels = make(map[digraph.Node]string, w.g.NodeCount())
	w.arcLabels = make(map[digraph.Arc]string, w.g.ArcCount())

	if w.skipNodes {
		w.indexNodes()
	} else {
		w.writeNodes()
	}
	if w.skipArcs {
		w.indexArcs()
	} else if err := w.writeArcs(); err != nil {
		return err
	}
	if err := w.writeAttributes(); err != nil {
		return err
	}

	return w.buf.Flush()
}

// labelCol returns the registered "label" column, if any.
func labelCol[I comparable](cols []col[I]) (col[I], bool) {
	for _, c := range cols {
		if c.caption == "label" {
			return c, true
		}
	}

	return col[I]{}, false
}

func (w *Writer) writeNodes() {
	label, hasLabel := labelCol(w.nodeCols)

	w.buf.WriteString("@nodes")
	if w.nodesCaption != "" {
		w.buf.WriteByte(' ')
		w.buf.WriteString(w.nodesCaption)
	}
	w.buf.WriteByte('\n')

	if !hasLabel {
		w.buf.WriteString("label\t")
	}
	for _, c := range w.nodeCols {
		w.buf.WriteString(c.caption)
		w.buf.WriteByte('\t')
	}
	w.buf.WriteByte('\n')

	nodes := w.g.Nodes()
	if hasLabel {
		sort.SliceStable(nodes, func(i, j int) bool {
			return label.get(nodes[i]) < label.get(nodes[j])
		})
	} else {
		sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	}

	for _, n := range nodes {
		if !hasLabel {
			id := strconv.Itoa(int(n))
			writeToken(w.buf, id)
			w.buf.WriteByte('\t')
			w.nodeLabels[n] = id
		}
		for _, c := range w.nodeCols {
			v := c.get(n)
			writeToken(w.buf, v)
			if c.caption == "label" {
				w.nodeLabels[n] = v
			}
			w.buf.WriteByte('\t')
		}
		w.buf.WriteByte('\n')
	}
}

// indexNodes assigns node labels without writing the section, so a
// skipped @nodes still supports arc rows when a label column exists.
func (w *Writer) indexNodes() {
	label, ok := labelCol(w.nodeCols)
	if !ok {
		return
	}
	for _, n := range w.g.Nodes() {
		w.nodeLabels[n] = label.get(n)
	}
}

func (w *Writer) writeArcs() error {
	label, hasLabel := labelCol(w.arcCols)

	w.buf.WriteString("@arcs")
	if w.arcsCaption != "" {
		w.buf.WriteByte(' ')
		w.buf.WriteString(w.arcsCaption)
	}
	w.buf.WriteByte('\n')

	// Two unnamed columns hold the endpoints.
	w.buf.WriteString("\t\t")
	if !hasLabel {
		w.buf.WriteString("label\t")
	}
	for _, c := range w.arcCols {
		w.buf.WriteString(c.caption)
		w.buf.WriteByte('\t')
	}
	w.buf.WriteByte('\n')

	arcs := w.g.Arcs()
	if hasLabel {
		sort.SliceStable(arcs, func(i, j int) bool {
			return label.get(arcs[i]) < label.get(arcs[j])
		})
	} else {
		sort.Slice(arcs, func(i, j int) bool { return arcs[i] < arcs[j] })
	}

	for _, a := range arcs {
		sl, ok := w.nodeLabels[w.g.Source(a)]
		if !ok {
			return fmt.Errorf("%w: source of arc %d", ErrUnlabeledNode, a)
		}
		tl, ok := w.nodeLabels[w.g.Target(a)]
		if !ok {
			return fmt.Errorf("%w: target of arc %d", ErrUnlabeledNode, a)
		}
		writeToken(w.buf, sl)
		w.buf.WriteByte('\t')
		writeToken(w.buf, tl)
		w.buf.WriteByte('\t')
		if !hasLabel {
			id := strconv.Itoa(int(a))
			writeToken(w.buf, id)
			w.buf.WriteByte('\t')
			w.arcLabels[a] = id
		}
		for _, c := range w.arcCols {
			v := c.get(a)
			writeToken(w.buf, v)
			if c.caption == "label" {
				w.arcLabels[a] = v
			}
			w.buf.WriteByte('\t')
		}
		w.buf.WriteByte('\n')
	}

	return nil
}

// indexArcs assigns arc labels without writing the section.
func (w *Writer) indexArcs() {
	label, ok := labelCol(w.arcCols)
	if !ok {
		return
	}
	for _, a := range w.g.Arcs() {
		w.arcLabels[a] = label.get(a)
	}
}

func (w *Writer) writeAttributes() error {
	if len(w.attrs) == 0 {
		return nil
	}

	w.buf.WriteString("@attributes")
	if w.attrsCaption != "" {
		w.buf.WriteByte(' ')
		w.buf.WriteString(w.attrsCaption)
	}
	w.buf.WriteByte('\n')

	for _, at := range w.attrs {
		v, err := at.get()
		if err != nil {
			return err
		}
		w.buf.WriteString(at.key)
		w.buf.WriteByte(' ')
		writeToken(w.buf, v)
		w.buf.WriteByte('\n')
	}

	return nil
}

// NodeValues adapts a digraph.NodeMap into a column getter via
// fmt.Sprint.
func NodeValues[T any](m *digraph.NodeMap[T]) func(digraph.Node) string {
	return func(n digraph.Node) string { return fmt.Sprint(m.Get(n)) }
}

// ArcValues adapts a digraph.ArcMap into a column getter via
// fmt.Sprint.
func ArcValues[T any](m *digraph.ArcMap[T]) func(digraph.Arc) string {
	return func(a digraph.Arc) string { return fmt.Sprint(m.Get(a)) }
}

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\v', '\n', '\r', '\f':
		return true
	}

	return false
}

func isEscaped(c byte) bool {
	switch c {
	case '\\', '"', '\'', '\a', '\b':
		return true
	}

	return false
}

// requireEscape reports whether s must be written quoted. The empty
// token counts: bare it would vanish between its tabs and shift every
// later column on read.
func requireEscape(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		if isSpace(s[i]) || isEscaped(s[i]) {
			return true
		}
	}

	return false
}

func writeToken(b *bufio.Writer, s string) {
	if !requireEscape(s) {
		b.WriteString(s)
		return
	}

	b.WriteByte('"')
	for i := 0; i < len(s); i++ {
		writeEscape(b, s[i])
	}
	b.WriteByte('"')
}

// writeEscape emits one byte of a quoted token. Control bytes without
// a named escape use backslash-octal; bytes at 0x20 and above pass
// through, which keeps multi-byte UTF-8 sequences intact.
func writeEscape(b *bufio.Writer, c byte) {
	switch c {
	case '\\':
		b.WriteString(`\\`)
	case '"':
		b.WriteString(`\"`)
	case '\a':
		b.WriteString(`\a`)
	case '\b':
		b.WriteString(`\b`)
	case '\f':
		b.WriteString(`\f`)
	case '\r':
		b.WriteString(`\r`)
	case '\n':
		b.WriteString(`\n`)
	case '\t':
		b.WriteString(`\t`)
	case '\v':
		b.WriteString(`\v`)
	default:
		if c < 0x20 {
			fmt.Fprintf(b, `\%o`, c)
		} else {
			b.WriteByte(c)
		}
	}
}

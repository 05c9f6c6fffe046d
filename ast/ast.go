// Package ast holds the full-fidelity tree a confindent document parses
// into. The tree keeps comments and blank lines alongside the logical
// key/value nodes so that serializing it reproduces the source text exactly.
package ast

import (
	"strings"

	"github.com/gennyble/confindent/token"
)

// Entry is one line's worth of parsed content: a Node, a Comment, or a
// Blank. The interface is satisfied only by types in this package.
type Entry interface {
	// String returns the serialized text of the entry, including any
	// children and a trailing newline per emitted line.
	String() string

	writeTo(b *strings.Builder)
	entryNode()
}

// Parent is the child-holding surface shared by Document and Node. The
// document root behaves like a node with no key or value of its own.
type Parent interface {
	// Nodes returns the logical child nodes, skipping comments and blanks.
	Nodes() []*Node
	// Child returns the first direct child node with the given key.
	Child(key string) *Node
	// Children returns all direct child nodes with the given key, in order.
	Children(key string) []*Node
	// HasChild reports whether a direct child node has the given key.
	HasChild(key string) bool
	// ChildValue returns the value of the first child with the given key.
	ChildValue(key string) (string, bool)
	// Get looks up a value by slash-delimited key path.
	Get(path string) (string, bool)
	// GetDelim looks up a value by key path split on delim.
	GetDelim(path string, delim rune) (string, bool)
	// Append adds entries to the end of the child list.
	Append(entries ...Entry)
	// CreateChild appends a new child node with the given key and value
	// and returns it, indented one level past the parent.
	CreateChild(key, value string) *Node
}

// Document is the root of a parsed configuration: an ordered sequence of
// top-level entries.
type Document struct {
	Entries []Entry
}

// Node is one key line: a key, an optional value, and ordered children.
type Node struct {
	Indent token.Indent
	Key    string

	// Value is only meaningful when HasValue is true. A line with nothing
	// after the key, or nothing after the separating space, has no value.
	Value    string
	HasValue bool

	Entries []Entry
}

// Comment is a '#' line, kept only so serialization reproduces it.
type Comment struct {
	Indent token.Indent
	Text   string
}

// Blank is an empty or whitespace-only line, kept verbatim.
type Blank struct {
	Text string
}

// NewNode returns a node with the given key, no value, and no indentation.
func NewNode(key string) *Node {
	return &Node{Key: key}
}

// SetValue sets the node's value.
func (n *Node) SetValue(value string) {
	n.Value = value
	n.HasValue = true
}

// ClearValue removes the node's value, leaving a bare key.
func (n *Node) ClearValue() {
	n.Value = ""
	n.HasValue = false
}

func (n *Node) entryNode()    {}
func (c *Comment) entryNode() {}
func (bl *Blank) entryNode()  {}

// String serializes the whole document. Parsing the result yields a
// structurally equal document, and a document obtained from parsing some
// text serializes back to that text byte for byte.
func (d *Document) String() string {
	var b strings.Builder
	for _, e := range d.Entries {
		e.writeTo(&b)
	}
	return b.String()
}

// String serializes the node and, recursively, its children.
func (n *Node) String() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

// String serializes the comment line.
func (c *Comment) String() string {
	var b strings.Builder
	c.writeTo(&b)
	return b.String()
}

// String serializes the blank line.
func (bl *Blank) String() string {
	var b strings.Builder
	bl.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	b.WriteString(n.Indent.String())
	b.WriteString(n.Key)
	if n.HasValue {
		b.WriteByte(' ')
		b.WriteString(n.Value)
	}
	b.WriteByte('\n')
	for _, e := range n.Entries {
		e.writeTo(b)
	}
}

func (c *Comment) writeTo(b *strings.Builder) {
	b.WriteString(c.Indent.String())
	b.WriteByte('#')
	b.WriteString(c.Text)
	b.WriteByte('\n')
}

func (bl *Blank) writeTo(b *strings.Builder) {
	b.WriteString(bl.Text)
	b.WriteByte('\n')
}

// Nodes returns the document's top-level nodes, skipping comments and blanks.
func (d *Document) Nodes() []*Node { return childNodes(d.Entries) }

// Child returns the first top-level node with the given key.
func (d *Document) Child(key string) *Node { return findChild(d.Entries, key) }

// Children returns all top-level nodes with the given key, in order.
func (d *Document) Children(key string) []*Node { return findChildren(d.Entries, key) }

// HasChild reports whether a top-level node has the given key.
func (d *Document) HasChild(key string) bool { return findChild(d.Entries, key) != nil }

// ChildValue returns the value of the first top-level node with the key.
func (d *Document) ChildValue(key string) (string, bool) {
	return childValue(d.Entries, key)
}

// Get looks up a value by slash-delimited key path.
func (d *Document) Get(path string) (string, bool) { return d.GetDelim(path, '/') }

// GetDelim looks up a value by key path split on delim.
func (d *Document) GetDelim(path string, delim rune) (string, bool) {
	return getPath(d, path, delim)
}

// Append adds entries to the end of the document.
func (d *Document) Append(entries ...Entry) {
	d.Entries = append(d.Entries, entries...)
}

// CreateChild appends a new top-level node with the given key and value
// and returns it.
func (d *Document) CreateChild(key, value string) *Node {
	n := &Node{Key: key}
	n.SetValue(value)
	d.Append(n)
	return n
}

// Nodes returns the node's child nodes, skipping comments and blanks.
func (n *Node) Nodes() []*Node { return childNodes(n.Entries) }

// Child returns the first direct child node with the given key.
func (n *Node) Child(key string) *Node { return findChild(n.Entries, key) }

// Children returns all direct child nodes with the given key, in order.
func (n *Node) Children(key string) []*Node { return findChildren(n.Entries, key) }

// HasChild reports whether a direct child node has the given key.
func (n *Node) HasChild(key string) bool { return findChild(n.Entries, key) != nil }

// ChildValue returns the value of the first child with the given key.
func (n *Node) ChildValue(key string) (string, bool) {
	return childValue(n.Entries, key)
}

// Get looks up a value by slash-delimited key path below this node.
func (n *Node) Get(path string) (string, bool) { return n.GetDelim(path, '/') }

// GetDelim looks up a value by key path split on delim below this node.
func (n *Node) GetDelim(path string, delim rune) (string, bool) {
	return getPath(n, path, delim)
}

// Append adds entries to the end of the node's children.
func (n *Node) Append(entries ...Entry) {
	n.Entries = append(n.Entries, entries...)
}

// CreateChild appends a new child node with the given key and value and
// returns it. The child is indented one level past n, in n's style.
func (n *Node) CreateChild(key, value string) *Node {
	child := &Node{Indent: n.Indent.Deepen(), Key: key}
	child.SetValue(value)
	n.Append(child)
	return child
}

func childNodes(entries []Entry) []*Node {
	var nodes []*Node
	for _, e := range entries {
		if n, ok := e.(*Node); ok {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func findChild(entries []Entry, key string) *Node {
	for _, e := range entries {
		if n, ok := e.(*Node); ok && n.Key == key {
			return n
		}
	}
	return nil
}

func findChildren(entries []Entry, key string) []*Node {
	var nodes []*Node
	for _, e := range entries {
		if n, ok := e.(*Node); ok && n.Key == key {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func childValue(entries []Entry, key string) (string, bool) {
	n := findChild(entries, key)
	if n == nil || !n.HasValue {
		return "", false
	}
	return n.Value, true
}

func getPath(p Parent, path string, delim rune) (string, bool) {
	var node *Node
	for _, key := range strings.Split(path, string(delim)) {
		node = p.Child(key)
		if node == nil {
			return "", false
		}
		p = node
	}
	if !node.HasValue {
		return "", false
	}
	return node.Value, true
}

package dom

import "strings"

// Document owns a live tree: the root element, focus state, and node
// construction. It is not itself a Node.
type Document struct {
	root   *Node
	active *Node
}

// NewDocument creates a document with a <body> root.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.CreateElement("body")
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Node { return d.root }

// SetRoot replaces the document's root element.
func (d *Document) SetRoot(n *Node) {
	n.adopt(d)
	d.root = n
}

// ActiveElement returns the focused element, or nil.
func (d *Document) ActiveElement() *Node { return d.active }

// CreateElement creates a detached element node.
func (d *Document) CreateElement(tag string) *Node {
	return &Node{kind: KindElement, tag: strings.ToLower(tag), doc: d}
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(text string) *Node {
	return &Node{kind: KindText, value: text, doc: d}
}

// CreateComment creates a detached comment node.
func (d *Document) CreateComment(text string) *Node {
	return &Node{kind: KindComment, value: text, doc: d}
}

// GetElementByID walks the tree for the first element with the given id.
// The boolean result lets callers degrade gracefully on a miss instead of
// crashing composition logic.
func (d *Document) GetElementByID(id string) (*Node, bool) {
	if id == "" || d.root == nil {
		return nil, false
	}
	var found *Node
	d.root.Walk(func(n *Node) bool {
		if n.kind == KindElement && n.ID() == id {
			found = n
			return false
		}
		return true
	})
	return found, found != nil
}

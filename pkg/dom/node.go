package dom

import "strings"

// NodeKind is the node type discriminator.
type NodeKind uint8

const (
	KindElement NodeKind = iota // <div>, <input>, etc.
	KindText                    // Plain text node
	KindComment                 // <!-- comment -->
)

// String returns the string representation of the NodeKind.
func (k NodeKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	case KindComment:
		return "Comment"
	default:
		return "Unknown"
	}
}

// Attr is a single attribute. Attribute order is preserved so that
// serialized output is stable across runs.
type Attr struct {
	Key   string
	Value string
}

// Node is a live tree node. Unlike a render-output description, a Node has
// identity: reconciliation mutates existing nodes in place instead of
// replacing them, so pointers handed out (refs, focus) stay valid.
type Node struct {
	kind  NodeKind
	tag   string // element tag, lowercase
	value string // nodeValue for text/comment nodes

	attrs   []Attr
	attrIdx map[string]int

	style    *Style
	handlers map[string]Handler

	doc      *Document
	parent   *Node
	children []*Node

	// Live form-field state. The value/checked attributes are only the
	// defaults; user input mutates these properties without touching the
	// attributes, mirroring how real form controls behave.
	propValue      string
	propValueSet   bool
	propChecked    bool
	propCheckedSet bool
}

// Kind returns the node kind.
func (n *Node) Kind() NodeKind { return n.kind }

// Tag returns the element tag name, or "" for non-elements.
func (n *Node) Tag() string { return n.tag }

// Document returns the owning document.
func (n *Node) Document() *Document { return n.doc }

// NodeValue returns the text content of a text or comment node.
func (n *Node) NodeValue() string { return n.value }

// SetNodeValue overwrites the text content of a text or comment node.
func (n *Node) SetNodeValue(v string) {
	if n.kind == KindElement {
		return
	}
	n.value = v
}

// Parent returns the parent node, or nil for detached nodes.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the child list.
func (n *Node) Children() []*Node {
	out := make([]*Node, len(n.children))
	copy(out, n.children)
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return len(n.children) }

// FirstChild returns the first child, or nil.
func (n *Node) FirstChild() *Node {
	if len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// NextSibling returns the node following this one in its parent, or nil.
func (n *Node) NextSibling() *Node {
	if n.parent == nil {
		return nil
	}
	for i, c := range n.parent.children {
		if c == n {
			if i+1 < len(n.parent.children) {
				return n.parent.children[i+1]
			}
			return nil
		}
	}
	return nil
}

// IndexIn returns the index of n within parent's children, or -1.
func (n *Node) IndexIn(parent *Node) int {
	if parent == nil {
		return -1
	}
	for i, c := range parent.children {
		if c == n {
			return i
		}
	}
	return -1
}

// AppendChild appends child as the last child of n, detaching it from any
// previous parent first.
func (n *Node) AppendChild(child *Node) {
	n.InsertBefore(child, nil)
}

// InsertBefore inserts child before ref. A nil ref appends. If child is
// already in the tree it is detached first; inserting a node before itself
// is a no-op.
func (n *Node) InsertBefore(child, ref *Node) {
	if child == nil || child == ref {
		return
	}
	if child.parent != nil {
		child.parent.detach(child)
	}
	child.parent = n
	child.adopt(n.doc)
	if ref == nil {
		n.children = append(n.children, child)
		return
	}
	for i, c := range n.children {
		if c == ref {
			n.children = append(n.children, nil)
			copy(n.children[i+1:], n.children[i:])
			n.children[i] = child
			return
		}
	}
	n.children = append(n.children, child)
}

// RemoveChild removes child from n. Removing a focused element (or an
// ancestor of one) blurs it.
func (n *Node) RemoveChild(child *Node) bool {
	if child == nil || child.parent != n {
		return false
	}
	if n.doc != nil && n.doc.active != nil && (child == n.doc.active || child.contains(n.doc.active)) {
		n.doc.active = nil
	}
	n.detach(child)
	child.parent = nil
	return true
}

// ReplaceChild swaps oldChild for newChild in place.
func (n *Node) ReplaceChild(newChild, oldChild *Node) bool {
	i := oldChild.IndexIn(n)
	if i < 0 {
		return false
	}
	n.RemoveChild(oldChild)
	if i >= len(n.children) {
		n.AppendChild(newChild)
	} else {
		n.InsertBefore(newChild, n.children[i])
	}
	return true
}

// Remove detaches n from its parent, if any.
func (n *Node) Remove() {
	if n.parent != nil {
		n.parent.RemoveChild(n)
	}
}

// ReplaceChildren removes all current children and appends the given nodes.
func (n *Node) ReplaceChildren(nodes ...*Node) {
	for len(n.children) > 0 {
		n.RemoveChild(n.children[0])
	}
	for _, c := range nodes {
		if c != nil {
			n.AppendChild(c)
		}
	}
}

func (n *Node) detach(child *Node) {
	for i, c := range n.children {
		if c == child {
			n.children = append(n.children[:i], n.children[i+1:]...)
			return
		}
	}
}

func (n *Node) adopt(doc *Document) {
	if n.doc == doc {
		return
	}
	n.doc = doc
	for _, c := range n.children {
		c.adopt(doc)
	}
}

func (n *Node) contains(other *Node) bool {
	for p := other; p != nil; p = p.parent {
		if p == n {
			return true
		}
	}
	return false
}

// GetAttribute returns the attribute value and whether it is present.
func (n *Node) GetAttribute(key string) (string, bool) {
	if n.attrIdx == nil {
		return "", false
	}
	i, ok := n.attrIdx[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	return n.attrs[i].Value, true
}

// HasAttribute reports whether the attribute is present.
func (n *Node) HasAttribute(key string) bool {
	_, ok := n.GetAttribute(key)
	return ok
}

// SetAttribute sets an attribute, preserving its position if it already
// exists. Setting "style" re-parses the inline style declaration.
func (n *Node) SetAttribute(key, value string) {
	if n.kind != KindElement {
		return
	}
	key = strings.ToLower(key)
	if key == "style" {
		n.style = parseStyle(value)
		n.style.owner = n
	}
	if n.attrIdx == nil {
		n.attrIdx = make(map[string]int)
	}
	if i, ok := n.attrIdx[key]; ok {
		n.attrs[i].Value = value
		return
	}
	n.attrIdx[key] = len(n.attrs)
	n.attrs = append(n.attrs, Attr{Key: key, Value: value})
}

// RemoveAttribute removes an attribute. Removing "style" clears the inline
// style declaration.
func (n *Node) RemoveAttribute(key string) {
	key = strings.ToLower(key)
	if n.attrIdx == nil {
		return
	}
	i, ok := n.attrIdx[key]
	if !ok {
		return
	}
	n.attrs = append(n.attrs[:i], n.attrs[i+1:]...)
	delete(n.attrIdx, key)
	for k, j := range n.attrIdx {
		if j > i {
			n.attrIdx[k] = j - 1
		}
	}
	if key == "style" {
		n.style = nil
	}
}

// Attrs returns a copy of the attribute list in declaration order. The
// inline style, if mutated through Style(), is flushed first.
func (n *Node) Attrs() []Attr {
	n.flushStyle()
	out := make([]Attr, len(n.attrs))
	copy(out, n.attrs)
	return out
}

// ID returns the id attribute, or "".
func (n *Node) ID() string {
	id, _ := n.GetAttribute("id")
	return id
}

// Style returns the element's inline style declaration, creating an empty
// one on first access.
func (n *Node) Style() *Style {
	if n.kind != KindElement {
		return nil
	}
	if n.style == nil {
		n.style = &Style{owner: n}
	}
	return n.style
}

// flushStyle rewrites the style attribute from the style declaration so the
// attribute view and the property view never disagree.
func (n *Node) flushStyle() {
	if n.style == nil {
		return
	}
	s := n.style.String()
	if s == "" {
		if n.HasAttribute("style") {
			n.RemoveAttribute("style")
			n.style = &Style{owner: n}
		}
		return
	}
	if cur, _ := n.GetAttribute("style"); cur != s {
		st := n.style
		n.SetAttribute("style", s)
		n.style = st // SetAttribute re-parsed; keep the live declaration
	}
}

// InputType returns the effective type of an <input>, defaulting to "text".
func (n *Node) InputType() string {
	if n.tag != "input" {
		return ""
	}
	if t, ok := n.GetAttribute("type"); ok {
		return strings.ToLower(t)
	}
	return "text"
}

// Value returns the live value of a form control. Falls back to the value
// attribute when the property was never written.
func (n *Node) Value() string {
	if n.propValueSet {
		return n.propValue
	}
	v, _ := n.GetAttribute("value")
	return v
}

// SetValue writes the live value property. The value attribute is left
// untouched, as in a real form control.
func (n *Node) SetValue(v string) {
	n.propValue = v
	n.propValueSet = true
}

// Checked returns the live checked state of a checkbox/radio control.
func (n *Node) Checked() bool {
	if n.propCheckedSet {
		return n.propChecked
	}
	return n.HasAttribute("checked")
}

// SetChecked writes the live checked property.
func (n *Node) SetChecked(v bool) {
	n.propChecked = v
	n.propCheckedSet = true
}

// Focus makes n the document's active element.
func (n *Node) Focus() {
	if n.doc != nil && n.kind == KindElement {
		n.doc.active = n
	}
}

// Blur clears focus if n holds it.
func (n *Node) Blur() {
	if n.doc != nil && n.doc.active == n {
		n.doc.active = nil
	}
}

// Focused reports whether n is the document's active element.
func (n *Node) Focused() bool {
	return n.doc != nil && n.doc.active == n
}

// Walk visits n and every descendant in document order. Returning false
// from fn stops the walk.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, c := range n.children {
		if !c.Walk(fn) {
			return false
		}
	}
	return true
}

// DescendantIDs returns the set of id attributes on n and its descendants.
// Used by the reconciler to rescue matches for unkeyed wrappers whose
// identity lives in their children.
func (n *Node) DescendantIDs() map[string]struct{} {
	var ids map[string]struct{}
	n.Walk(func(d *Node) bool {
		if id := d.ID(); id != "" {
			if ids == nil {
				ids = make(map[string]struct{})
			}
			ids[id] = struct{}{}
		}
		return true
	})
	return ids
}

// Clone returns a copy of n. With deep set, children are cloned too.
// Handlers and live form state are copied; parent links are not.
func (n *Node) Clone(deep bool) *Node {
	out := &Node{
		kind:           n.kind,
		tag:            n.tag,
		value:          n.value,
		doc:            n.doc,
		propValue:      n.propValue,
		propValueSet:   n.propValueSet,
		propChecked:    n.propChecked,
		propCheckedSet: n.propCheckedSet,
	}
	n.flushStyle()
	if len(n.attrs) > 0 {
		out.attrs = make([]Attr, len(n.attrs))
		copy(out.attrs, n.attrs)
		out.attrIdx = make(map[string]int, len(n.attrIdx))
		for k, v := range n.attrIdx {
			out.attrIdx[k] = v
		}
		if s, ok := out.GetAttribute("style"); ok {
			out.style = parseStyle(s)
			out.style.owner = out
		}
	}
	if len(n.handlers) > 0 {
		out.handlers = make(map[string]Handler, len(n.handlers))
		for k, v := range n.handlers {
			out.handlers[k] = v
		}
	}
	if deep {
		for _, c := range n.children {
			cc := c.Clone(true)
			cc.parent = out
			out.children = append(out.children, cc)
		}
	}
	return out
}

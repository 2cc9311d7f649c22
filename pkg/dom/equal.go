package dom

// IsEqualNode reports deep structural equality: kind, tag, attribute set
// (order-insensitive), node value, and children in order. Handler
// properties and live form state are identity concerns, not structure, and
// are excluded.
func (n *Node) IsEqualNode(other *Node) bool {
	if n == nil || other == nil {
		return n == other
	}
	if n == other {
		return true
	}
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindText, KindComment:
		return n.value == other.value
	}
	if n.tag != other.tag {
		return false
	}
	n.flushStyle()
	other.flushStyle()
	if len(n.attrs) != len(other.attrs) {
		return false
	}
	for _, a := range n.attrs {
		v, ok := other.GetAttribute(a.Key)
		if !ok || v != a.Value {
			return false
		}
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i, c := range n.children {
		if !c.IsEqualNode(other.children[i]) {
			return false
		}
	}
	return true
}

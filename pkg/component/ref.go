package component

import "github.com/morphic-dev/morphic/pkg/dom"

// Ref is an out-of-band handle onto a component's DOM-attached node. After
// every reconciliation Current points at the retained, attached node —
// never at a transient render-output instance — and it is cleared to nil
// on disconnection.
type Ref struct {
	Current *dom.Node
}

// RefFunc is the callback form of a ref.
type RefFunc func(*dom.Node)

// bindRef points a ref value (object or callback form) at n.
func bindRef(v any, n *dom.Node) {
	switch r := v.(type) {
	case *Ref:
		r.Current = n
	case RefFunc:
		r(n)
	case func(*dom.Node):
		r(n)
	}
}

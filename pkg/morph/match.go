package morph

import "github.com/morphic-dev/morphic/pkg/dom"

// matchOp classifies a matched pair.
type matchOp uint8

const (
	opNone  matchOp = iota // not a match
	opSame                 // matched, content must be morphed
	opEqual                // matched, already identical, no mutation
)

// pairing maps one to-index to its matched from-index (-1 means a new
// node to insert) and the morph operation for the pair.
type pairing struct {
	fromIdx int
	op      matchOp
}

// match pairs to-nodes with from-nodes in four ordered phases. Earlier
// phases take priority; each phase only considers nodes both sides have
// left unmatched.
func match(from, to []*dom.Node, hook ControllerHook) []pairing {
	pairs := make([]pairing, len(to))
	for i := range pairs {
		pairs[i] = pairing{fromIdx: -1}
	}
	fromUsed := make([]bool, len(from))

	pair := func(ti, fi int, op matchOp) {
		pairs[ti] = pairing{fromIdx: fi, op: op}
		fromUsed[fi] = true
	}

	// Phase 1: exact key match.
	fromByKey := make(map[string]int, len(from))
	for i, f := range from {
		if k := nodeKey(f, hook); k != "" {
			if _, dup := fromByKey[k]; !dup {
				fromByKey[k] = i
			}
		}
	}
	for ti, t := range to {
		k := nodeKey(t, hook)
		if k == "" {
			continue
		}
		fi, ok := fromByKey[k]
		if !ok || fromUsed[fi] {
			continue
		}
		if op := matchNodes(from[fi], t, hook); op != opNone {
			pair(ti, fi, op)
		}
	}

	// Phase 2: descendant-id match. An unkeyed wrapper whose children
	// carry ids is paired with the from-node holding the same ids, so a
	// re-parented keyed subtree is rescued instead of rebuilt.
	var fromIDs []map[string]struct{}
	for ti, t := range to {
		if pairs[ti].fromIdx >= 0 || t.Kind() != dom.KindElement {
			continue
		}
		ids := t.DescendantIDs()
		if len(ids) == 0 {
			continue
		}
		if fromIDs == nil {
			fromIDs = make([]map[string]struct{}, len(from))
			for i, f := range from {
				if f.Kind() == dom.KindElement {
					fromIDs[i] = f.DescendantIDs()
				}
			}
		}
		for fi := range from {
			if fromUsed[fi] || len(fromIDs[fi]) == 0 {
				continue
			}
			if !intersects(ids, fromIDs[fi]) {
				continue
			}
			if op := matchNodes(from[fi], t, hook); op != opNone {
				pair(ti, fi, op)
				break
			}
		}
	}

	// Phase 3: exact-equality match. Skipped for controlled nodes: their
	// visible DOM may be identical while the underlying props differ, and
	// they must still be re-applied.
	for ti, t := range to {
		if pairs[ti].fromIdx >= 0 {
			continue
		}
		if controlled(t, hook) {
			continue
		}
		for fi, f := range from {
			if fromUsed[fi] || controlled(f, hook) {
				continue
			}
			if f.IsEqualNode(t) {
				pair(ti, fi, opEqual)
				break
			}
		}
	}

	// Phase 4: type match fallback.
	for ti, t := range to {
		if pairs[ti].fromIdx >= 0 {
			continue
		}
		for fi, f := range from {
			if fromUsed[fi] {
				continue
			}
			if op := matchNodes(f, t, hook); op != opNone {
				pair(ti, fi, op)
				break
			}
		}
	}

	return pairs
}

// nodeKey derives a node's reconciliation key: id attribute, then
// dataset key, then a controller-held key.
func nodeKey(n *dom.Node, hook ControllerHook) string {
	if n == nil || n.Kind() != dom.KindElement {
		return ""
	}
	if id := n.ID(); id != "" {
		return id
	}
	if k, ok := n.Dataset().Get("key"); ok && k != "" {
		return k
	}
	if hook != nil {
		return hook.RenderKey(n)
	}
	return ""
}

func controlled(n *dom.Node, hook ControllerHook) bool {
	return hook != nil && hook.Controlled(n)
}

// matchNodes is the compatibility test. opEqual means no mutation is
// needed; opSame means the pair is compatible but must be morphed.
// Controlled elements force opSame even when DOM-identical.
func matchNodes(from, to *dom.Node, hook ControllerHook) matchOp {
	if from == nil || to == nil {
		return opNone
	}
	if from.Kind() != to.Kind() {
		return opNone
	}
	if from.Kind() != dom.KindElement {
		if from == to || from.NodeValue() == to.NodeValue() {
			return opEqual
		}
		return opSame
	}
	if from.Tag() != to.Tag() {
		return opNone
	}
	if from.Tag() == "input" && from.InputType() != to.InputType() {
		return opNone
	}
	// Two differently keyed nodes are distinct identities and never
	// soft-match, even as a type fallback.
	if fk, tk := nodeKey(from, hook), nodeKey(to, hook); fk != "" && tk != "" && fk != tk {
		return opNone
	}
	if controlled(from, hook) || controlled(to, hook) {
		return opSame
	}
	if from == to || from.IsEqualNode(to) {
		return opEqual
	}
	return opSame
}

func intersects(a, b map[string]struct{}) bool {
	if len(a) > len(b) {
		a, b = b, a
	}
	for k := range a {
		if _, ok := b[k]; ok {
			return true
		}
	}
	return false
}

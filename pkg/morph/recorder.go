package morph

import (
	"strconv"
	"strings"

	"github.com/morphic-dev/morphic/pkg/dom"
	"github.com/morphic-dev/morphic/pkg/protocol"
)

// Stats counts the mutations one or more morph passes applied. Moves
// counts physical repositionings only, so a reorder of N keyed children
// where K keep relative order costs at most N-K moves.
type Stats struct {
	Inserts      int
	Removes      int
	Moves        int
	TextPatches  int
	AttrWrites   int
	AttrRemoves  int
	StyleWrites  int
	StyleRemoves int
	ValueWrites  int
}

// Recorder collects Stats and, optionally, a patch log mirroring every
// mutation so a remote tree can replay the pass. A nil *Recorder is valid
// and records nothing.
type Recorder struct {
	stats   Stats
	patches []protocol.Patch
	log     bool
}

// NewRecorder returns a recorder that collects stats only.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// NewPatchRecorder returns a recorder that also keeps a patch log.
func NewPatchRecorder() *Recorder {
	return &Recorder{log: true}
}

// Stats returns the accumulated counters.
func (r *Recorder) Stats() Stats {
	if r == nil {
		return Stats{}
	}
	return r.stats
}

// Patches returns the accumulated patch log without clearing it.
func (r *Recorder) Patches() []protocol.Patch {
	if r == nil {
		return nil
	}
	return r.patches
}

// Take drains the patch log, leaving stats intact.
func (r *Recorder) Take() []protocol.Patch {
	if r == nil {
		return nil
	}
	p := r.patches
	r.patches = nil
	return p
}

func (r *Recorder) add(p protocol.Patch) {
	if r == nil || !r.log {
		return
	}
	r.patches = append(r.patches, p)
}

func (r *Recorder) setText(n *dom.Node, value string) {
	if r == nil {
		return
	}
	r.stats.TextPatches++
	r.add(protocol.Patch{Op: protocol.PatchSetText, Target: Target(n), Value: value})
}

func (r *Recorder) setAttr(n *dom.Node, key, value string) {
	if r == nil {
		return
	}
	r.stats.AttrWrites++
	r.add(protocol.Patch{Op: protocol.PatchSetAttr, Target: Target(n), Key: key, Value: value})
}

func (r *Recorder) removeAttr(n *dom.Node, key string) {
	if r == nil {
		return
	}
	r.stats.AttrRemoves++
	r.add(protocol.Patch{Op: protocol.PatchRemoveAttr, Target: Target(n), Key: key})
}

func (r *Recorder) setStyle(n *dom.Node, prop, value string) {
	if r == nil {
		return
	}
	r.stats.StyleWrites++
	r.add(protocol.Patch{Op: protocol.PatchSetStyle, Target: Target(n), Key: prop, Value: value})
}

func (r *Recorder) removeStyle(n *dom.Node, prop string) {
	if r == nil {
		return
	}
	r.stats.StyleRemoves++
	r.add(protocol.Patch{Op: protocol.PatchRemoveStyle, Target: Target(n), Key: prop})
}

func (r *Recorder) setValue(n *dom.Node, value string) {
	if r == nil {
		return
	}
	r.stats.ValueWrites++
	r.add(protocol.Patch{Op: protocol.PatchSetValue, Target: Target(n), Value: value})
}

func (r *Recorder) insert(parent, n *dom.Node) {
	if r == nil {
		return
	}
	r.stats.Inserts++
	r.add(protocol.Patch{
		Op:     protocol.PatchInsertNode,
		Target: Target(n),
		Parent: Target(parent),
		Index:  n.IndexIn(parent),
		HTML:   n.OuterHTML(),
	})
}

func (r *Recorder) remove(target string) {
	if r == nil {
		return
	}
	r.stats.Removes++
	r.add(protocol.Patch{Op: protocol.PatchRemoveNode, Target: target})
}

func (r *Recorder) move(parent, n *dom.Node, from string) {
	if r == nil {
		return
	}
	r.stats.Moves++
	r.add(protocol.Patch{
		Op:     protocol.PatchMoveNode,
		Target: from,
		Parent: Target(parent),
		Index:  n.IndexIn(parent),
	})
}

// Target computes the patch address of a node: "#id" when the node (or,
// for text nodes, never) carries an id, otherwise the child-index path
// from the document root, e.g. "0.2.1". Addresses are computed at record
// time, after the mutation, so a client applying the log in order lands
// on the same node.
func Target(n *dom.Node) string {
	if n == nil {
		return ""
	}
	if n.Kind() == dom.KindElement {
		if id := n.ID(); id != "" {
			return "#" + id
		}
	}
	var segs []string
	for cur := n; cur.Parent() != nil; cur = cur.Parent() {
		segs = append(segs, strconv.Itoa(cur.IndexIn(cur.Parent())))
	}
	// segs were collected leaf-first
	for i, j := 0, len(segs)-1; i < j; i, j = i+1, j-1 {
		segs[i], segs[j] = segs[j], segs[i]
	}
	return strings.Join(segs, ".")
}

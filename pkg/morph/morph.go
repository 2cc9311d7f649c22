// Package morph syncs a live DOM subtree in place to match a freshly
// rendered child list, preserving node identity, focus, and user-typed
// form state.
//
// Matching between old and new children runs in four ordered phases
// (explicit key, descendant-id intersection, deep equality, type
// fallback); matched nodes are then reordered with the minimal number of
// physical moves by leaving a longest increasing subsequence of retained
// positions untouched. Matched pairs are morphed recursively: text is
// patched, attributes and inline style are synchronized (style is
// replacing, never merging), handler properties are rebound, and nodes
// managed by a component controller are re-applied through the
// ControllerHook so their signal-backed props re-fire.
package morph

import (
	"sync"

	"github.com/morphic-dev/morphic/internal/errors"
	"github.com/morphic-dev/morphic/pkg/dom"
)

// ErrBusy is returned when a morph is requested on a container that is
// already being morphed higher up the same call stack. Unrelated
// containers can morph concurrently.
var ErrBusy = errors.New("E020")

// ControllerHook lets the component layer participate in morphing without
// this package importing it. All methods must tolerate arbitrary nodes.
type ControllerHook interface {
	// Controlled reports whether a node is managed by a component
	// controller. Controlled nodes are never matched by deep equality
	// (their props may differ while the visible DOM looks identical) and
	// are re-applied instead of attribute-synced.
	Controlled(n *dom.Node) bool

	// RenderKey returns a controller-held reconciliation key for the
	// node, or "".
	RenderKey(n *dom.Node) string

	// Reapply applies the transient to-node's props onto the retained
	// from-node, re-drives signal-backed props, rebinds refs, and
	// recurses into child content (normally by calling MorphNodes with
	// the same Options).
	Reapply(from, to *dom.Node, o *Options) error

	// Removed notifies that an unmatched subtree left the tree, so any
	// controllers inside it can be torn down.
	Removed(n *dom.Node)
}

// Options carries the cross-cutting state of one morph pass.
type Options struct {
	rec  *Recorder
	hook ControllerHook
}

// Option configures a morph pass.
type Option func(*Options)

// WithRecorder attaches a mutation recorder.
func WithRecorder(r *Recorder) Option {
	return func(o *Options) { o.rec = r }
}

// WithController attaches the component-layer hook.
func WithController(h ControllerHook) Option {
	return func(o *Options) { o.hook = h }
}

// Recorder returns the attached recorder, which may be nil.
func (o *Options) Recorder() *Recorder { return o.rec }

// Controller returns the attached hook, which may be nil.
func (o *Options) Controller() ControllerHook { return o.hook }

// busy tracks containers with a morph in flight.
var busy sync.Map

// Morph reconciles parent's current children against the to list.
func Morph(parent *dom.Node, to []*dom.Node, opts ...Option) error {
	return MorphNodes(parent, parent.Children(), to, opts...)
}

// MorphNodes reconciles the from list (parent's previous live children)
// against the to list, mutating parent's actual children in place. After
// a successful call parent's children match to in order and content,
// with matched from-nodes retained.
func MorphNodes(parent *dom.Node, from, to []*dom.Node, opts ...Option) error {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return morphChildren(parent, from, to, o)
}

func morphChildren(parent *dom.Node, from, to []*dom.Node, o *Options) error {
	if _, loaded := busy.LoadOrStore(parent, struct{}{}); loaded {
		return ErrBusy
	}
	defer busy.Delete(parent)

	pairs := match(from, to, o.hook)

	// Remove from-nodes nothing matched, before any repositioning.
	matched := make([]bool, len(from))
	for _, p := range pairs {
		if p.fromIdx >= 0 {
			matched[p.fromIdx] = true
		}
	}
	for i, f := range from {
		if matched[i] {
			continue
		}
		if f.Parent() != nil {
			target := Target(f)
			f.Remove()
			o.rec.remove(target)
			if o.hook != nil {
				o.hook.Removed(f)
			}
		}
	}

	// Positions whose matched from-indices already rise in to-order stay
	// put; everything else moves.
	seq := make([]int, len(pairs))
	for i, p := range pairs {
		seq[i] = p.fromIdx
	}
	keep := longestIncreasing(seq)

	cursor := parent.FirstChild()
	for i, t := range to {
		p := pairs[i]
		if p.fromIdx < 0 {
			parent.InsertBefore(t, cursor)
			o.rec.insert(parent, t)
			cursor = t.NextSibling()
			continue
		}

		f := from[p.fromIdx]
		if !keep[i] && f != cursor {
			prev := Target(f)
			parent.InsertBefore(f, cursor)
			o.rec.move(parent, f, prev)
		}
		if p.op == opSame {
			if err := morphNode(f, t, o); err != nil {
				return err
			}
		}
		cursor = f.NextSibling()
	}
	return nil
}

// morphNode patches the retained from-node's content in place toward the
// to-node's.
func morphNode(from, to *dom.Node, o *Options) error {
	if from.Kind() != dom.KindElement {
		if from.NodeValue() != to.NodeValue() {
			from.SetNodeValue(to.NodeValue())
			o.rec.setText(from, to.NodeValue())
		}
		return nil
	}

	if o.hook != nil && o.hook.Controlled(from) && o.hook.Controlled(to) {
		return o.hook.Reapply(from, to, o)
	}

	syncAttributes(from, to, o.rec)
	syncStyle(from, to, o.rec)
	syncHandlers(from, to)
	syncFormState(from, to, o.rec)

	if from.ChildCount() > 0 || to.ChildCount() > 0 {
		return morphChildren(from, from.Children(), to.Children(), o)
	}
	return nil
}

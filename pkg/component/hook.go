package component

import (
	"github.com/morphic-dev/morphic/pkg/dom"
	"github.com/morphic-dev/morphic/pkg/morph"
	"github.com/morphic-dev/morphic/pkg/reactive"
	"github.com/morphic-dev/morphic/pkg/schema"
)

type controllerHook struct{}

// Hook returns the morph hook wiring controlled nodes into
// reconciliation. Pass it via morph.WithController.
func Hook() morph.ControllerHook { return controllerHook{} }

func (controllerHook) Controlled(n *dom.Node) bool {
	_, ok := ControllerOf(n)
	return ok
}

func (controllerHook) RenderKey(n *dom.Node) string {
	c, ok := ControllerOf(n)
	if !ok {
		return ""
	}
	if k, ok := c.bag["key"]; ok {
		return schema.Stringify(k)
	}
	return ""
}

// Reapply moves the transient to-node's props onto the retained
// from-node's controller and re-renders it. The to-node never enters the
// tree; its controller is discarded here.
func (controllerHook) Reapply(from, to *dom.Node, o *morph.Options) error {
	fc, ok := ControllerOf(from)
	if !ok {
		return nil
	}
	tc, ok := ControllerOf(to)
	if !ok {
		return nil
	}
	controllers.Delete(to)

	if r := o.Recorder(); r != nil {
		fc.recorder = r
	}

	// Dropped bag entries are cleared, unbinding any handler props they
	// carried, before the new bag moves over wholesale.
	for k, v := range fc.bag {
		if _, keep := tc.bag[k]; keep {
			continue
		}
		if isHandlerProp(k, v) {
			fc.host.SetHandler(handlerEvent(k), nil)
		}
		delete(fc.bag, k)
	}
	for k, v := range tc.bag {
		fc.bag[k] = v
	}

	// Custom props re-drive through the setter so dependent effects and
	// declared change events fire. Batched so the render effect runs once
	// for the whole reapply, not once per prop.
	reactive.Batch(func() {
		for name, sig := range tc.signals {
			fc.SetProp(name, sig.Peek())
		}
	})

	// The ref must track the node that actually stayed in the tree.
	if ref, ok := fc.bag["ref"]; ok {
		bindRef(ref, from)
	}

	fc.RequestUpdate()
	return nil
}

func (controllerHook) Removed(n *dom.Node) {
	disconnect(n)
}

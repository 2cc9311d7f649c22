package component

import "github.com/morphic-dev/morphic/pkg/dom"

// Mount inserts a component host under parent and connects every
// controller in the subtree. Connection runs the first render.
func Mount(parent, host *dom.Node) {
	parent.AppendChild(host)
	host.Walk(func(d *dom.Node) bool {
		if c, ok := ControllerOf(d); ok {
			c.Connected()
		}
		return true
	})
}

// Unmount removes a component host from its parent and disconnects every
// controller in the subtree, children first so parents see a consistent
// tree during their teardown.
func Unmount(host *dom.Node) {
	host.Remove()
	disconnect(host)
}

func disconnect(n *dom.Node) {
	for _, child := range n.Children() {
		disconnect(child)
	}
	if c, ok := ControllerOf(n); ok {
		c.Disconnected()
		controllers.Delete(n)
	}
}

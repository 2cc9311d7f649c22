package dom

// Event is delivered to handler properties. Detail carries the payload for
// synthesized (custom) events.
type Event struct {
	Type   string
	Target *Node
	Detail any
}

// Handler is an event handler property value ("onclick" and friends).
type Handler func(Event)

// SetHandler installs a handler property for the event name ("click",
// "input", ...). A nil handler removes the property, matching assignment
// semantics of on* element properties.
func (n *Node) SetHandler(name string, h Handler) {
	if h == nil {
		delete(n.handlers, name)
		return
	}
	if n.handlers == nil {
		n.handlers = make(map[string]Handler)
	}
	n.handlers[name] = h
}

// Handler returns the installed handler for the event name, or nil.
func (n *Node) Handler(name string) Handler {
	return n.handlers[name]
}

// HandlerNames returns the names of all installed handler properties.
func (n *Node) HandlerNames() []string {
	if len(n.handlers) == 0 {
		return nil
	}
	out := make([]string, 0, len(n.handlers))
	for name := range n.handlers {
		out = append(out, name)
	}
	return out
}

// Dispatch fires the event at n and bubbles it to ancestors. The handler
// property named after the event type runs at each level.
func (n *Node) Dispatch(ev Event) {
	if ev.Target == nil {
		ev.Target = n
	}
	for cur := n; cur != nil; cur = cur.parent {
		if h := cur.handlers[ev.Type]; h != nil {
			h(ev)
		}
	}
}

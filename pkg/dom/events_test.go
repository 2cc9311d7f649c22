package dom

import "testing"

func TestHandlers(t *testing.T) {
	doc := NewDocument()
	n := doc.CreateElement("button")

	var clicks int
	n.SetHandler("click", func(Event) { clicks++ })

	n.Dispatch(Event{Type: "click"})
	if clicks != 1 {
		t.Fatalf("handler ran %d times, want 1", clicks)
	}

	names := n.HandlerNames()
	if len(names) != 1 || names[0] != "click" {
		t.Errorf("HandlerNames() = %v, want [click]", names)
	}

	n.SetHandler("click", nil)
	n.Dispatch(Event{Type: "click"})
	if clicks != 1 {
		t.Error("nil handler did not remove the binding")
	}
}

func TestDispatchBubbles(t *testing.T) {
	doc := NewDocument()
	outer := doc.CreateElement("div")
	inner := doc.CreateElement("button")
	outer.AppendChild(inner)

	var order []string
	inner.SetHandler("click", func(Event) { order = append(order, "inner") })
	outer.SetHandler("click", func(Event) { order = append(order, "outer") })

	inner.Dispatch(Event{Type: "click", Target: inner})

	if len(order) != 2 || order[0] != "inner" || order[1] != "outer" {
		t.Errorf("dispatch order = %v, want [inner outer]", order)
	}
}

package component

import (
	"strings"

	"github.com/morphic-dev/morphic/pkg/dom"
	"github.com/morphic-dev/morphic/pkg/schema"
)

// applyProps writes host-level props onto the component's element:
// style, dataset, handlers, ref, plain attributes, and the wholesale
// content overrides. Child content ("content", "children", render
// output) is the reconciler's business, not the applier's.
func (c *Controller) applyProps(props map[string]any, first bool) {
	for name, v := range props {
		switch {
		case name == "content" || name == "children" || name == "key":
		case name == "ref":
			bindRef(v, c.host)
		case name == "style":
			c.applyStyle(v)
		case name == "dataset":
			c.applyDataset(v)
		case name == "innerHTML":
			if s, ok := v.(string); ok {
				c.renderRoot.SetInnerHTML(s)
			}
		case name == "textContent":
			c.renderRoot.ReplaceChildren(c.doc.CreateTextNode(schema.Stringify(v)))
		case isHandlerProp(name, v):
			c.host.SetHandler(handlerEvent(name), toHandler(v))
		default:
			c.applyField(name, v, first)
		}
	}
}

func hasContentOverride(props map[string]any) bool {
	if v, ok := props["innerHTML"]; ok && v != nil {
		return true
	}
	if v, ok := props["textContent"]; ok && v != nil {
		return true
	}
	return false
}

// applyStyle writes a style prop with replacing semantics: map entries
// become the element's complete inline style, dropping properties the map
// no longer names. A plain string replaces the attribute outright.
func (c *Controller) applyStyle(v any) {
	switch sv := v.(type) {
	case map[string]string:
		st := c.host.Style()
		for name, val := range sv {
			if st.GetPropertyValue(name) != val {
				st.SetProperty(name, val)
			}
		}
		for _, name := range st.Properties() {
			if _, keep := sv[name]; !keep {
				st.RemoveProperty(name)
			}
		}
	case string:
		c.host.SetAttribute("style", sv)
	case nil:
		c.host.RemoveAttribute("style")
	}
}

func (c *Controller) applyDataset(v any) {
	m, ok := v.(map[string]string)
	if !ok {
		return
	}
	ds := c.host.Dataset()
	for k, val := range m {
		if cur, has := ds.Get(k); !has || cur != val {
			ds.Set(k, val)
		}
	}
}

// applyField writes one schema or ad-hoc field. Custom fields are owned
// by their signal and attribute reflection, so they are skipped here.
// Form state is left alone while the element holds focus.
func (c *Controller) applyField(name string, v any, first bool) {
	if _, custom := c.signals[name]; custom {
		return
	}
	switch name {
	case "value":
		if first || !c.host.Focused() {
			c.host.SetValue(schema.Stringify(v))
		}
		return
	case "checked":
		b, _ := v.(bool)
		if first || !c.host.Focused() {
			c.host.SetChecked(b)
		}
		return
	}

	f, inSchema := c.config.Find(name)
	t := schema.TypeAny
	attr := strings.ToLower(name)
	if inSchema {
		t = f.Type
		if a, ok := c.config.AttributeFor(name); ok {
			attr = a
		}
	}
	s, present := schema.ToAttribute(t, v)
	if !present {
		if c.host.HasAttribute(attr) {
			c.host.RemoveAttribute(attr)
		}
		return
	}
	if cur, ok := c.host.GetAttribute(attr); !ok || cur != s {
		c.host.SetAttribute(attr, s)
	}
}

func isHandlerProp(name string, v any) bool {
	return len(name) > 2 && strings.HasPrefix(name, "on") && isFunc(v)
}

// handlerEvent maps a handler prop name to its event: "onClick" -> "click".
func handlerEvent(name string) string {
	return strings.ToLower(name[2:])
}

func toHandler(v any) dom.Handler {
	switch h := v.(type) {
	case dom.Handler:
		return h
	case func(dom.Event):
		return h
	case func():
		return func(dom.Event) { h() }
	}
	return nil
}

// Normalize flattens a render value into a child node list. Strings and
// numbers become text nodes, nils and booleans vanish, nested slices
// flatten. Anything else is a programmer error and panics.
func Normalize(doc *dom.Document, v any) []*dom.Node {
	var out []*dom.Node
	appendNormalized(doc, v, &out)
	return out
}

func appendNormalized(doc *dom.Document, v any, out *[]*dom.Node) {
	switch cv := v.(type) {
	case nil:
	case bool:
		// Booleans vanish so conditional render expressions can emit
		// false in place of a node.
	case *dom.Node:
		if cv != nil {
			*out = append(*out, cv)
		}
	case []*dom.Node:
		for _, n := range cv {
			if n != nil {
				*out = append(*out, n)
			}
		}
	case []any:
		for _, item := range cv {
			appendNormalized(doc, item, out)
		}
	case string:
		*out = append(*out, doc.CreateTextNode(cv))
	case int, int64, float64:
		*out = append(*out, doc.CreateTextNode(schema.Stringify(cv)))
	default:
		badRenderOutput(v)
	}
}

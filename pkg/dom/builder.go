package dom

// On pairs an event name with a handler for use with El.
type On struct {
	Name string
	Fn   Handler
}

// El builds a detached element. Arguments may be Attr, []Attr, On, *Node,
// []*Node, or string (shorthand for a text child); nil arguments are
// ignored so call sites can inline conditionals.
func (d *Document) El(tag string, args ...any) *Node {
	n := d.CreateElement(tag)
	for _, arg := range args {
		switch v := arg.(type) {
		case nil:
			continue
		case Attr:
			if v.Key != "" {
				n.SetAttribute(v.Key, v.Value)
			}
		case []Attr:
			for _, a := range v {
				if a.Key != "" {
					n.SetAttribute(a.Key, a.Value)
				}
			}
		case On:
			n.SetHandler(v.Name, v.Fn)
		case *Node:
			if v != nil {
				n.AppendChild(v)
			}
		case []*Node:
			for _, c := range v {
				if c != nil {
					n.AppendChild(c)
				}
			}
		case string:
			n.AppendChild(d.CreateTextNode(v))
		}
	}
	return n
}

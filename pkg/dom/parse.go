package dom

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ParseFragment parses an HTML fragment into detached nodes owned by d.
// Used for innerHTML assignment and for upgrading server-rendered markup.
func (d *Document) ParseFragment(src string) ([]*Node, error) {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	parsed, err := html.ParseFragment(strings.NewReader(src), ctx)
	if err != nil {
		return nil, err
	}
	var out []*Node
	for _, hn := range parsed {
		if n := d.fromHTMLNode(hn); n != nil {
			out = append(out, n)
		}
	}
	return out, nil
}

// SetInnerHTML replaces n's children with the parsed fragment.
func (n *Node) SetInnerHTML(src string) error {
	if n.doc == nil {
		n.doc = &Document{}
	}
	nodes, err := n.doc.ParseFragment(src)
	if err != nil {
		return err
	}
	n.ReplaceChildren(nodes...)
	return nil
}

func (d *Document) fromHTMLNode(hn *html.Node) *Node {
	switch hn.Type {
	case html.TextNode:
		return d.CreateTextNode(hn.Data)
	case html.CommentNode:
		return d.CreateComment(hn.Data)
	case html.ElementNode:
		n := d.CreateElement(hn.Data)
		for _, a := range hn.Attr {
			n.SetAttribute(a.Key, a.Val)
		}
		for c := hn.FirstChild; c != nil; c = c.NextSibling {
			if child := d.fromHTMLNode(c); child != nil {
				n.AppendChild(child)
			}
		}
		return n
	}
	return nil
}

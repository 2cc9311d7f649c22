// Package dom provides the live node tree the reconciler operates on.
//
// Unlike a virtual render description, dom nodes have identity: they carry
// parent links, focus state, live form-field values, and event handler
// properties. Reconciliation mutates these nodes in place so that pointers
// held elsewhere (refs, the document's active element) survive re-renders.
//
// # Core Types
//
// Node represents elements, text, and comments. Document owns the tree,
// tracks the focused element, and constructs nodes:
//
//	doc := dom.NewDocument()
//	li := doc.El("li", dom.Attr{Key: "id", Value: "a"}, "Item A")
//	doc.Root().AppendChild(li)
//
// # Style and Dataset
//
// Element nodes expose an ordered inline style declaration (Style) and a
// camelCase view over data-* attributes (Dataset). Both stay in sync with
// the underlying attributes.
//
// # HTML
//
// OuterHTML/InnerHTML serialize a subtree; Document.ParseFragment and
// Node.SetInnerHTML parse markup via golang.org/x/net/html, which is how
// server-rendered content enters the tree.
package dom

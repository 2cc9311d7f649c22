package dom

import "strings"

// Dataset is a camelCase view over an element's data-* attributes:
// ds.Get("userId") reads data-user-id, ds.Set("key", v) writes data-key.
type Dataset struct {
	owner *Node
}

// Dataset returns the element's data-* attribute view.
func (n *Node) Dataset() Dataset { return Dataset{owner: n} }

// Get returns the value for the camelCase key and whether it is present.
func (d Dataset) Get(key string) (string, bool) {
	return d.owner.GetAttribute(datasetAttr(key))
}

// Set writes the value for the camelCase key.
func (d Dataset) Set(key, value string) {
	d.owner.SetAttribute(datasetAttr(key), value)
}

// Has reports whether the key is present.
func (d Dataset) Has(key string) bool {
	return d.owner.HasAttribute(datasetAttr(key))
}

// Delete removes the key.
func (d Dataset) Delete(key string) {
	d.owner.RemoveAttribute(datasetAttr(key))
}

// Keys returns the camelCase keys of all data-* attributes, in
// declaration order.
func (d Dataset) Keys() []string {
	var keys []string
	for _, a := range d.owner.Attrs() {
		if strings.HasPrefix(a.Key, "data-") {
			keys = append(keys, datasetKey(a.Key))
		}
	}
	return keys
}

// datasetAttr converts a camelCase dataset key to its attribute name:
// "userId" -> "data-user-id".
func datasetAttr(key string) string {
	var b strings.Builder
	b.WriteString("data-")
	for _, r := range key {
		if r >= 'A' && r <= 'Z' {
			b.WriteByte('-')
			b.WriteRune(r + ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// datasetKey converts an attribute name back: "data-user-id" -> "userId".
func datasetKey(attr string) string {
	s := strings.TrimPrefix(attr, "data-")
	var b strings.Builder
	upper := false
	for _, r := range s {
		if r == '-' {
			upper = true
			continue
		}
		if upper && r >= 'a' && r <= 'z' {
			b.WriteRune(r - ('a' - 'A'))
		} else {
			b.WriteRune(r)
		}
		upper = false
	}
	return b.String()
}

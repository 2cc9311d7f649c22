package dom

import "strings"

// Style is an inline style declaration. Properties keep declaration order
// so serialization is stable. Mutations are reflected into the owning
// element's style attribute when the attribute view is read.
type Style struct {
	props []styleProp
	idx   map[string]int
	owner *Node
}

type styleProp struct {
	name  string
	value string
}

// parseStyle parses a "name: value; name: value" declaration string.
// Malformed segments (no colon) are dropped.
func parseStyle(s string) *Style {
	st := &Style{}
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		name, value, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		st.SetProperty(strings.TrimSpace(name), strings.TrimSpace(value))
	}
	return st
}

// Len returns the number of declared properties.
func (s *Style) Len() int {
	if s == nil {
		return 0
	}
	return len(s.props)
}

// GetPropertyValue returns the value of a property, or "" when absent.
func (s *Style) GetPropertyValue(name string) string {
	if s == nil || s.idx == nil {
		return ""
	}
	if i, ok := s.idx[name]; ok {
		return s.props[i].value
	}
	return ""
}

// Has reports whether the property is declared.
func (s *Style) Has(name string) bool {
	if s == nil || s.idx == nil {
		return false
	}
	_, ok := s.idx[name]
	return ok
}

// SetProperty sets a property, preserving its position if already declared.
func (s *Style) SetProperty(name, value string) {
	if name == "" {
		return
	}
	if s.idx == nil {
		s.idx = make(map[string]int)
	}
	if i, ok := s.idx[name]; ok {
		s.props[i].value = value
		return
	}
	s.idx[name] = len(s.props)
	s.props = append(s.props, styleProp{name: name, value: value})
}

// RemoveProperty removes a property and returns its previous value.
func (s *Style) RemoveProperty(name string) string {
	if s == nil || s.idx == nil {
		return ""
	}
	i, ok := s.idx[name]
	if !ok {
		return ""
	}
	old := s.props[i].value
	s.props = append(s.props[:i], s.props[i+1:]...)
	delete(s.idx, name)
	for k, j := range s.idx {
		if j > i {
			s.idx[k] = j - 1
		}
	}
	return old
}

// Properties returns property names in declaration order.
func (s *Style) Properties() []string {
	if s == nil {
		return nil
	}
	out := make([]string, len(s.props))
	for i, p := range s.props {
		out[i] = p.name
	}
	return out
}

// String serializes the declaration as "name: value; name: value".
func (s *Style) String() string {
	if s == nil || len(s.props) == 0 {
		return ""
	}
	var b strings.Builder
	for i, p := range s.props {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(p.name)
		b.WriteString(": ")
		b.WriteString(p.value)
	}
	return b.String()
}

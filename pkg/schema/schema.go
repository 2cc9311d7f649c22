// Package schema declares component prop schemas and the string<->typed
// coercion used when props reflect to and from attributes.
package schema

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// PropType declares how an attribute string coerces into a prop value.
type PropType uint8

const (
	TypeAny    PropType = iota // untyped custom prop, passed through
	TypeString                 // attribute string as-is
	TypeNumber                 // numeric parse (NaN on garbage, nil on removal)
	TypeBool                   // attribute presence test
)

// String returns the string representation of the PropType.
func (t PropType) String() string {
	switch t {
	case TypeAny:
		return "Any"
	case TypeString:
		return "String"
	case TypeNumber:
		return "Number"
	case TypeBool:
		return "Bool"
	default:
		return "Unknown"
	}
}

// Field is one schema entry. A field is "custom" (signal-backed and
// observable) when it declares a type, a default, or attribute reflection;
// a Native field is a static default applied once, after which the
// underlying element's own property semantics take over.
type Field struct {
	Name string

	// Native marks a static default entry. Default is applied at
	// construction and never tracked.
	Native bool

	// Default seeds the prop's signal. An explicit nil is preserved.
	Default any

	// Type selects attribute coercion.
	Type PropType

	// Attribute enables prop -> attribute reflection.
	Attribute bool

	// AttrName overrides the reflected attribute name. Empty means the
	// lowercased field name.
	AttrName string

	// Event, when set, names the event dispatched on prop writes.
	Event string
}

// attrName returns the effective attribute name for the field.
func (f Field) attrName() string {
	if f.AttrName != "" {
		return f.AttrName
	}
	return strings.ToLower(f.Name)
}

// Config is an ordered prop schema.
type Config []Field

// Find returns the field with the given name.
func (c Config) Find(name string) (Field, bool) {
	for _, f := range c {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}

// ByAttribute returns the custom field whose effective attribute name
// matches attr.
func (c Config) ByAttribute(attr string) (Field, bool) {
	for _, f := range c {
		if f.Native {
			continue
		}
		if f.attrName() == attr {
			return f, true
		}
	}
	return Field{}, false
}

// AttributeFor returns the effective attribute name for a custom field.
func (c Config) AttributeFor(name string) (string, bool) {
	f, ok := c.Find(name)
	if !ok || f.Native {
		return "", false
	}
	return f.attrName(), true
}

// ObservedAttributes returns the attribute names of all reflected fields,
// in schema order.
func (c Config) ObservedAttributes() []string {
	var out []string
	for _, f := range c {
		if !f.Native && f.Attribute {
			out = append(out, f.attrName())
		}
	}
	return out
}

// FromAttribute coerces an attribute value into a prop value. A nil value
// means the attribute is absent/removed.
func FromAttribute(t PropType, value *string) any {
	switch t {
	case TypeBool:
		return value != nil
	case TypeNumber:
		if value == nil {
			return nil
		}
		return parseNumber(*value)
	default:
		if value == nil {
			return nil
		}
		return *value
	}
}

// parseNumber follows loose numeric conversion: empty input is 0 and
// garbage is NaN, propagated as-is rather than rejected.
func parseNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

// ToAttribute converts a prop value into its reflected attribute form.
// present=false means the attribute must be removed: false booleans and
// nil values reflect as absence. True booleans reflect as the empty
// string (bare attribute).
func ToAttribute(t PropType, value any) (s string, present bool) {
	if t == TypeBool {
		b, _ := value.(bool)
		return "", b
	}
	if value == nil {
		return "", false
	}
	return Stringify(value), true
}

// Stringify renders a prop value the way it appears in an attribute.
func Stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

package dom

import "testing"

func TestStyleDeclaration(t *testing.T) {
	t.Run("set get remove", func(t *testing.T) {
		doc := NewDocument()
		n := doc.CreateElement("div")
		st := n.Style()

		st.SetProperty("color", "red")
		st.SetProperty("width", "10px")

		if got := st.GetPropertyValue("color"); got != "red" {
			t.Errorf("GetPropertyValue(color) = %q, want %q", got, "red")
		}
		if !st.Has("width") {
			t.Error("Has(width) = false, want true")
		}

		if old := st.RemoveProperty("color"); old != "red" {
			t.Errorf("RemoveProperty(color) = %q, want previous value", old)
		}
		if st.Has("color") {
			t.Error("property survived removal")
		}
		if st.Len() != 1 {
			t.Errorf("Len() = %d, want 1", st.Len())
		}
	})

	t.Run("declaration order preserved", func(t *testing.T) {
		st := parseStyle("color: red; width: 10px; color: blue")
		props := st.Properties()
		if len(props) != 2 || props[0] != "color" || props[1] != "width" {
			t.Errorf("Properties() = %v, want [color width]", props)
		}
		if got := st.GetPropertyValue("color"); got != "blue" {
			t.Errorf("duplicate declaration: color = %q, want last write", got)
		}
		if got := st.String(); got != "color: blue; width: 10px" {
			t.Errorf("String() = %q", got)
		}
	})

	t.Run("malformed segments dropped", func(t *testing.T) {
		st := parseStyle("color red; ;width: 10px;")
		if st.Len() != 1 || !st.Has("width") {
			t.Errorf("parseStyle kept %v", st.Properties())
		}
	})

	t.Run("style attribute round trip", func(t *testing.T) {
		doc := NewDocument()
		n := doc.CreateElement("div")
		n.SetAttribute("style", "color: red")

		if got := n.Style().GetPropertyValue("color"); got != "red" {
			t.Errorf("style attribute not parsed: color = %q", got)
		}

		n.Style().SetProperty("width", "5px")
		attrs := n.Attrs()
		if len(attrs) != 1 || attrs[0].Value != "color: red; width: 5px" {
			t.Errorf("style attribute = %v", attrs)
		}
	})
}

func TestDataset(t *testing.T) {
	doc := NewDocument()
	n := doc.CreateElement("div")

	n.Dataset().Set("userId", "42")
	if got, _ := n.GetAttribute("data-user-id"); got != "42" {
		t.Errorf("data-user-id = %q, want %q", got, "42")
	}
	if got, ok := n.Dataset().Get("userId"); !ok || got != "42" {
		t.Errorf("Dataset().Get(userId) = %q, %v", got, ok)
	}

	n.SetAttribute("data-sort-key", "name")
	keys := n.Dataset().Keys()
	if len(keys) != 2 || keys[0] != "userId" || keys[1] != "sortKey" {
		t.Errorf("Keys() = %v, want [userId sortKey]", keys)
	}

	n.Dataset().Delete("userId")
	if n.HasAttribute("data-user-id") {
		t.Error("Delete did not remove the attribute")
	}
}

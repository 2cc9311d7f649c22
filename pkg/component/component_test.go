package component

import (
	"strings"
	"testing"

	"github.com/morphic-dev/morphic/pkg/dom"
	"github.com/morphic-dev/morphic/pkg/morph"
	"github.com/morphic-dev/morphic/pkg/schema"
)

func strptr(s string) *string { return &s }

func counterConfig() schema.Config {
	return schema.Config{
		{Name: "count", Type: schema.TypeNumber, Default: float64(0), Attribute: true, Event: "count-changed"},
	}
}

// counterView renders its count prop as a single span.
type counterView struct {
	c *Controller
}

func (v *counterView) Bind(c *Controller) { v.c = c }

func (v *counterView) Render() any {
	return v.c.Document().El("span", schema.Stringify(v.c.Prop("count")))
}

func TestNewSeedsProps(t *testing.T) {
	doc := dom.NewDocument()
	cfg := counterConfig()

	host := New(doc, "x-counter", cfg, map[string]any{"label": "Clicks"}, nil)
	if got := host.Tag(); got != "x-counter" {
		t.Fatalf("Tag() = %q, want %q", got, "x-counter")
	}
	c, ok := ControllerOf(host)
	if !ok {
		t.Fatal("ControllerOf() = false after New")
	}

	if got := c.PeekProp("count"); got != float64(0) {
		t.Errorf("PeekProp(count) = %v, want 0", got)
	}
	if got := c.PeekProp("label"); got != "Clicks" {
		t.Errorf("PeekProp(label) = %v, want %q", got, "Clicks")
	}

	// A constructor prop overrides the schema default.
	other := New(doc, "x-counter", cfg, map[string]any{"count": float64(9)}, nil)
	oc, _ := ControllerOf(other)
	if got := oc.PeekProp("count"); got != float64(9) {
		t.Errorf("PeekProp(count) = %v, want 9", got)
	}
}

func TestMountRendersAndRerenders(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	host := New(doc, "x-counter", counterConfig(), nil, &counterView{})
	Mount(parent, host)

	span := host.FirstChild()
	if span == nil || span.Tag() != "span" {
		t.Fatalf("first render produced %v, want a span", span)
	}
	if got := span.FirstChild().NodeValue(); got != "0" {
		t.Fatalf("rendered text = %q, want %q", got, "0")
	}

	c, _ := ControllerOf(host)
	c.SetProp("count", float64(3))

	if host.FirstChild() != span {
		t.Fatal("re-render replaced the span instead of patching it")
	}
	if got := span.FirstChild().NodeValue(); got != "3" {
		t.Errorf("rendered text = %q, want %q", got, "3")
	}
}

func TestSetPropDispatch(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	cfg := schema.Config{
		{Name: "count", Type: schema.TypeNumber, Default: float64(0), Event: "count-changed"},
		{Name: "picker", Event: "picker-changed"},
	}
	host := New(doc, "x-counter", cfg, nil, nil)

	var details []any
	parent.SetHandler("count-changed", func(ev dom.Event) {
		details = append(details, ev.Detail)
	})
	pickerFired := false
	parent.SetHandler("picker-changed", func(dom.Event) { pickerFired = true })
	Mount(parent, host)

	c, _ := ControllerOf(host)

	t.Run("change dispatches with detail", func(t *testing.T) {
		c.SetProp("count", float64(2))
		if len(details) != 1 || details[0] != float64(2) {
			t.Errorf("details = %v, want [2]", details)
		}
	})

	t.Run("equal write is silent", func(t *testing.T) {
		c.SetProp("count", float64(2))
		if len(details) != 1 {
			t.Errorf("equal write dispatched; details = %v", details)
		}
	})

	t.Run("function values never dispatch", func(t *testing.T) {
		c.SetProp("picker", func() {})
		if pickerFired {
			t.Error("function prop write dispatched an event")
		}
	})
}

func TestAttributeReflection(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	cfg := schema.Config{
		{Name: "userName", Type: schema.TypeString, Default: "anon", Attribute: true, AttrName: "user-name"},
		{Name: "active", Type: schema.TypeBool, Default: false, Attribute: true},
	}
	host := New(doc, "x-profile", cfg, nil, nil)
	Mount(parent, host)
	c, _ := ControllerOf(host)

	if got, _ := host.GetAttribute("user-name"); got != "anon" {
		t.Errorf(`user-name = %q, want "anon"`, got)
	}
	if host.HasAttribute("active") {
		t.Error("false bool reflected as a present attribute")
	}

	c.SetProp("active", true)
	if got, ok := host.GetAttribute("active"); !ok || got != "" {
		t.Errorf("true bool reflected as (%q, %v), want bare attribute", got, ok)
	}

	c.SetProp("active", false)
	if host.HasAttribute("active") {
		t.Error("active attribute not removed on false")
	}

	c.SetProp("userName", nil)
	if host.HasAttribute("user-name") {
		t.Error("user-name attribute not removed on nil")
	}
}

func TestAttributeChanged(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	host := New(doc, "x-counter", counterConfig(), nil, nil)
	Mount(parent, host)
	c, _ := ControllerOf(host)

	c.AttributeChanged("count", nil, strptr("5"))
	if got := c.PeekProp("count"); got != float64(5) {
		t.Errorf("PeekProp(count) = %v, want 5", got)
	}

	// Equal values on both sides are a no-op.
	c.AttributeChanged("count", strptr("5"), strptr("5"))
	if got := c.PeekProp("count"); got != float64(5) {
		t.Errorf("PeekProp(count) = %v after no-op, want 5", got)
	}

	// Removal coerces to nil for numbers.
	c.AttributeChanged("count", strptr("5"), nil)
	if got := c.PeekProp("count"); got != nil {
		t.Errorf("PeekProp(count) = %v after removal, want nil", got)
	}

	// Unobserved attributes are ignored.
	c.AttributeChanged("class", nil, strptr("big"))
	if got := c.PeekProp("class"); got != nil {
		t.Errorf("PeekProp(class) = %v, want nil", got)
	}
}

// manualUpdater takes over updates after the first render and re-enters
// RequestUpdate once when asked.
type manualUpdater struct {
	c       *Controller
	updates int
	reenter bool
}

func (m *manualUpdater) Bind(c *Controller) { m.c = c }
func (m *manualUpdater) Render() any { return "ready" }

func (m *manualUpdater) Update() {
	m.updates++
	if m.reenter {
		m.reenter = false
		m.c.RequestUpdate()
	}
}

func TestRequestUpdateCoalesces(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	up := &manualUpdater{}
	host := New(doc, "x-manual", counterConfig(), nil, up)
	Mount(parent, host)

	if up.updates != 0 {
		t.Fatalf("updates = %d after first render, want 0", up.updates)
	}

	up.reenter = true
	up.c.RequestUpdate()
	if up.updates != 2 {
		t.Errorf("updates = %d, want 2 (one call plus one trailing)", up.updates)
	}

	up.c.RequestUpdate()
	if up.updates != 3 {
		t.Errorf("updates = %d, want 3", up.updates)
	}
}

func TestConfigStyleSurvivesRerenders(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	cfg := append(counterConfig(), schema.Field{
		Name:    "style",
		Native:  true,
		Default: map[string]string{"display": "block"},
	})
	host := New(doc, "x-counter", cfg, map[string]any{
		"style": map[string]string{"color": "red"},
	}, &counterView{})
	Mount(parent, host)
	c, _ := ControllerOf(host)

	check := func(when string) {
		t.Helper()
		st := host.Style()
		if got := st.GetPropertyValue("display"); got != "block" {
			t.Errorf("%s: display = %q, want %q", when, got, "block")
		}
		if got := st.GetPropertyValue("color"); got != "red" {
			t.Errorf("%s: color = %q, want %q", when, got, "red")
		}
	}

	check("after mount")
	c.SetProp("count", float64(1))
	check("after re-render")
}

func TestConfigStyleStringOverride(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	cfg := schema.Config{{
		Name:    "style",
		Native:  true,
		Default: map[string]string{"display": "block"},
	}}
	host := New(doc, "x-styled", cfg, map[string]any{
		"style": " color : red ;padding: 4px; broken ",
	}, nil)
	Mount(parent, host)

	st := host.Style()
	if got := st.GetPropertyValue("display"); got != "block" {
		t.Errorf("display = %q, want %q", got, "block")
	}
	if got := st.GetPropertyValue("color"); got != "red" {
		t.Errorf("color = %q, want %q", got, "red")
	}
	if got := st.GetPropertyValue("padding"); got != "4px" {
		t.Errorf("padding = %q, want %q", got, "4px")
	}
	if got := st.GetPropertyValue("broken"); got != "" {
		t.Errorf("malformed declaration kept: %q", got)
	}
}

func TestContentPriority(t *testing.T) {
	doc := dom.NewDocument()

	t.Run("content beats render", func(t *testing.T) {
		parent := doc.CreateElement("div")
		host := New(doc, "x-counter", counterConfig(), map[string]any{
			"content": doc.El("p", "supplied"),
		}, &counterView{})
		Mount(parent, host)
		if got := host.FirstChild().Tag(); got != "p" {
			t.Errorf("first child = %q, want p from content prop", got)
		}
	})

	t.Run("children used without content", func(t *testing.T) {
		parent := doc.CreateElement("div")
		host := New(doc, "x-plain", nil, map[string]any{
			"children": []*dom.Node{doc.El("em", "kid")},
		}, nil)
		Mount(parent, host)
		if got := host.FirstChild().Tag(); got != "em" {
			t.Errorf("first child = %q, want em from children prop", got)
		}
	})

	t.Run("innerHTML overrides reconciliation", func(t *testing.T) {
		parent := doc.CreateElement("div")
		host := New(doc, "x-counter", counterConfig(), map[string]any{
			"innerHTML": "<b>raw</b>",
		}, &counterView{})
		Mount(parent, host)
		if got := host.FirstChild().Tag(); got != "b" {
			t.Errorf("first child = %q, want b from innerHTML", got)
		}
	})

	t.Run("textContent replaces children", func(t *testing.T) {
		parent := doc.CreateElement("div")
		host := New(doc, "x-plain", nil, map[string]any{
			"textContent": "just text",
		}, nil)
		Mount(parent, host)
		kids := host.Children()
		if len(kids) != 1 || kids[0].NodeValue() != "just text" {
			t.Errorf("children = %v, want one text node", kids)
		}
	})
}

func TestMountPreservesExistingMarkup(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	host := New(doc, "x-plain", nil, nil, nil)
	existing := doc.El("p", "server rendered")
	host.AppendChild(existing)

	Mount(parent, host)

	kids := host.Children()
	if len(kids) != 1 || kids[0] != existing {
		t.Errorf("pre-existing markup not preserved: %v", kids)
	}
}

func TestNormalize(t *testing.T) {
	doc := dom.NewDocument()

	t.Run("flattens and drops nils", func(t *testing.T) {
		out := Normalize(doc, []any{
			nil,
			"a",
			[]any{doc.El("b"), 4},
		})
		if len(out) != 3 {
			t.Fatalf("len = %d, want 3", len(out))
		}
		if out[0].NodeValue() != "a" || out[1].Tag() != "b" || out[2].NodeValue() != "4" {
			t.Errorf("unexpected normalization: %v", out)
		}
	})

	t.Run("booleans are dropped", func(t *testing.T) {
		out := Normalize(doc, []any{true, "a", false})
		if len(out) != 1 {
			t.Fatalf("len = %d, want 1", len(out))
		}
		if out[0].NodeValue() != "a" {
			t.Errorf("NodeValue() = %q, want %q", out[0].NodeValue(), "a")
		}
	})

	t.Run("unknown type panics", func(t *testing.T) {
		defer func() {
			r := recover()
			if r == nil {
				t.Fatal("Normalize did not panic")
			}
			msg, _ := r.(string)
			if !strings.HasPrefix(msg, "[MORPHIC E001]") {
				t.Errorf("panic = %q, want [MORPHIC E001] prefix", msg)
			}
		}()
		Normalize(doc, struct{}{})
	})
}

func TestReapplyRetainsHost(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	ref := &Ref{}
	clicked := false

	hostA := New(doc, "x-counter", counterConfig(), map[string]any{
		"ref":     ref,
		"onClick": func() { clicked = true },
	}, &counterView{})
	Mount(parent, hostA)
	if ref.Current != hostA {
		t.Fatalf("ref.Current = %v, want the mounted host", ref.Current)
	}

	hostB := New(doc, "x-counter", counterConfig(), map[string]any{
		"ref":   ref,
		"count": float64(7),
	}, &counterView{})

	err := morph.MorphNodes(parent, parent.Children(), []*dom.Node{hostB}, morph.WithController(Hook()))
	if err != nil {
		t.Fatal(err)
	}

	if parent.FirstChild() != hostA {
		t.Fatal("reapply replaced the host instead of retaining it")
	}
	if _, ok := ControllerOf(hostB); ok {
		t.Error("transient host's controller not discarded")
	}

	fc, _ := ControllerOf(hostA)
	if got := fc.PeekProp("count"); got != float64(7) {
		t.Errorf("PeekProp(count) = %v, want 7", got)
	}
	if got := hostA.FirstChild().FirstChild().NodeValue(); got != "7" {
		t.Errorf("rendered text = %q, want %q", got, "7")
	}
	if ref.Current != hostA {
		t.Errorf("ref.Current = %v, want the retained host", ref.Current)
	}

	// The dropped onClick prop must unbind its handler.
	hostA.Dispatch(dom.Event{Type: "click"})
	if clicked {
		t.Error("stale click handler still bound after reapply")
	}
}

// lifecycleView records mount and unmount callbacks.
type lifecycleView struct {
	c   *Controller
	log []string
}

func (v *lifecycleView) Bind(c *Controller) { v.c = c }
func (v *lifecycleView) Render() any { return "alive" }
func (v *lifecycleView) Mounted() {
	v.log = append(v.log, "mounted")
	if v.c.Host().FirstChild() == nil {
		v.log = append(v.log, "not yet rendered")
	}
}
func (v *lifecycleView) Unmounted() { v.log = append(v.log, "unmounted") }

func TestMountUnmountLifecycle(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	view := &lifecycleView{}
	ref := &Ref{}
	host := New(doc, "x-life", nil, map[string]any{"ref": ref}, view)

	Mount(parent, host)
	if got, want := strings.Join(view.log, ","), "mounted"; got != want {
		t.Errorf("log = %q, want %q (render precedes Mounted)", got, want)
	}

	Unmount(host)
	if got, want := strings.Join(view.log, ","), "mounted,unmounted"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}
	if host.Parent() != nil {
		t.Error("host still attached after Unmount")
	}
	if ref.Current != nil {
		t.Errorf("ref.Current = %v after Unmount, want nil", ref.Current)
	}
	if _, ok := ControllerOf(host); ok {
		t.Error("controller still registered after Unmount")
	}
}

func TestMorphRemovalDisconnects(t *testing.T) {
	doc := dom.NewDocument()
	parent := doc.CreateElement("div")
	view := &lifecycleView{}
	host := New(doc, "x-life", nil, nil, view)
	Mount(parent, host)

	err := morph.MorphNodes(parent, parent.Children(), nil, morph.WithController(Hook()))
	if err != nil {
		t.Fatal(err)
	}

	if got, want := strings.Join(view.log, ","), "mounted,unmounted"; got != want {
		t.Errorf("log = %q, want %q", got, want)
	}
	if _, ok := ControllerOf(host); ok {
		t.Error("controller still registered after removal")
	}
}

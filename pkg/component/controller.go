package component

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/morphic-dev/morphic/pkg/dom"
	"github.com/morphic-dev/morphic/pkg/morph"
	"github.com/morphic-dev/morphic/pkg/reactive"
	"github.com/morphic-dev/morphic/pkg/schema"
)

// controllers is the side-table attaching a Controller to its host node
// without polluting the node's public surface.
var controllers sync.Map // *dom.Node -> *Controller

// ControllerOf returns the controller managing a node, if any.
func ControllerOf(n *dom.Node) (*Controller, bool) {
	if n == nil {
		return nil, false
	}
	v, ok := controllers.Load(n)
	if !ok {
		return nil, false
	}
	return v.(*Controller), true
}

// Controller manages one component instance: its prop store, attribute
// reflection, render scheduling, and cleanup.
type Controller struct {
	host       *dom.Node
	renderRoot *dom.Node
	doc        *dom.Document
	config     schema.Config
	behavior   any

	// signals backs the custom (reactive, observable) props; bag holds
	// everything else handed to the constructor: native defaults after
	// one-time application, generic props, ref, content, children.
	signals map[string]*reactive.Signal[any]
	bag     map[string]any

	connected     bool
	firstRendered bool
	updating      bool
	updateQueued  bool

	// currentRender is the child list produced by the last completed
	// render, the from-side of the next reconciliation. It is created on
	// first connection and dropped on disconnection so reconnections
	// start clean.
	currentRender []*dom.Node

	renderEffect  *reactive.Effect
	reflectEffect *reactive.Effect
	cleanup       func()

	recorder *morph.Recorder
}

// New constructs a component host element. The props bag merges over the
// schema's defaults; custom entries become signal-backed accessors, and
// native entries are applied once and left to the element's own
// semantics. The behavior supplies lifecycle capabilities (see
// behavior.go) and may be nil for purely prop-driven components.
func New(doc *dom.Document, tag string, cfg schema.Config, props map[string]any, behavior any) *dom.Node {
	host := doc.CreateElement(tag)
	c := &Controller{
		host:       host,
		renderRoot: host,
		doc:        doc,
		config:     cfg,
		behavior:   behavior,
		signals:    make(map[string]*reactive.Signal[any]),
		bag:        make(map[string]any),
	}

	for _, f := range cfg {
		if f.Native {
			v := f.Default
			if pv, ok := props[f.Name]; ok {
				v = pv
			}
			c.bag[f.Name] = v
			continue
		}
		initial := f.Default
		if pv, ok := props[f.Name]; ok {
			initial = pv
		}
		// Explicit nil defaults are preserved as-is.
		c.signals[f.Name] = reactive.NewSignal[any](initial)
	}
	for k, v := range props {
		if _, inSchema := cfg.Find(k); !inSchema {
			c.bag[k] = v
		}
	}

	controllers.Store(host, c)
	if b, ok := behavior.(Binder); ok {
		b.Bind(c)
	}
	return host
}

// Host returns the component's host element.
func (c *Controller) Host() *dom.Node { return c.host }

// Document returns the document the component lives in.
func (c *Controller) Document() *dom.Document { return c.doc }

// RenderRoot returns the node children render into (the host unless a
// separate render target was set).
func (c *Controller) RenderRoot() *dom.Node { return c.renderRoot }

// SetRenderRoot designates a render target distinct from the host, the
// shadow-root analogue. Handler props still bind to the host.
func (c *Controller) SetRenderRoot(n *dom.Node) {
	if n != nil {
		c.renderRoot = n
	}
}

// Config returns the component's prop schema.
func (c *Controller) Config() schema.Config { return c.config }

// SetRecorder attaches a mutation recorder used by this controller's
// reconciliations.
func (c *Controller) SetRecorder(r *morph.Recorder) { c.recorder = r }

// Prop reads a prop. Custom props read through their signal, so reading
// inside an effect subscribes it; other props come from the bag.
func (c *Controller) Prop(name string) any {
	if sig, ok := c.signals[name]; ok {
		return sig.Get()
	}
	return c.bag[name]
}

// PeekProp reads a prop without subscribing.
func (c *Controller) PeekProp(name string) any {
	if sig, ok := c.signals[name]; ok {
		return sig.Peek()
	}
	return c.bag[name]
}

// SetProp writes a prop. A custom prop write that changes the value
// updates the signal (re-running dependent effects on this stack) and,
// when the schema names an event for the prop, dispatches it with the new
// value as detail. Function values never dispatch: handler props are not
// emitting events. Non-custom writes just update the bag.
func (c *Controller) SetProp(name string, value any) {
	sig, ok := c.signals[name]
	if !ok {
		c.bag[name] = value
		return
	}
	if reactive.Equal(sig.Peek(), value) {
		return
	}
	sig.Set(value)
	if f, found := c.config.Find(name); found && f.Event != "" && !isFunc(value) {
		c.host.Dispatch(dom.Event{Type: f.Event, Detail: value, Target: c.host})
	}
}

// Connected registers the component's reactive effects. Idempotent:
// repeated connection callbacks (deep embedding, reparenting) are no-ops
// while connected.
func (c *Controller) Connected() {
	if c.connected {
		return
	}
	c.connected = true

	c.renderEffect = reactive.CreateEffect(func() reactive.Cleanup {
		c.RequestUpdate()
		return nil
	})
	c.reflectEffect = reactive.CreateEffect(func() reactive.Cleanup {
		c.reflectToAttributes()
		return nil
	})

	c.cleanup = func() {
		if ref, ok := c.bag["ref"]; ok {
			bindRef(ref, nil)
		}
		c.renderEffect.Dispose()
		c.reflectEffect.Dispose()
		c.renderEffect = nil
		c.reflectEffect = nil
	}

	if m, ok := c.behavior.(MountedCallback); ok {
		m.Mounted()
	}
}

// Disconnected runs cleanup and resets render state. Safe to call when
// never connected.
func (c *Controller) Disconnected() {
	if u, ok := c.behavior.(UnmountedCallback); ok && c.connected {
		u.Unmounted()
	}
	if c.cleanup != nil {
		c.cleanup()
		c.cleanup = nil
	}
	c.connected = false
	c.firstRendered = false
	c.currentRender = nil
}

// AttributeChanged handles an observed-attribute notification. The value
// pointers distinguish absent from empty: nil means the attribute is not
// present on that side.
func (c *Controller) AttributeChanged(name string, old, new *string) {
	if old == nil && new == nil {
		return
	}
	if old != nil && new != nil && *old == *new {
		return
	}
	f, ok := c.config.ByAttribute(name)
	if !ok {
		return
	}
	c.SetProp(f.Name, schema.FromAttribute(f.Type, new))
}

// RequestUpdate runs an update cycle. A re-entrant call arriving while an
// update is in flight (a child's mount writing a parent prop mid-render)
// is coalesced into at most one trailing update instead of being dropped.
func (c *Controller) RequestUpdate() {
	if c.updating {
		c.updateQueued = true
		return
	}
	c.updating = true
	defer func() { c.updating = false }()

	for {
		c.performUpdate()
		if !c.updateQueued {
			return
		}
		c.updateQueued = false
	}
}

func (c *Controller) performUpdate() {
	if c.firstRendered {
		if u, ok := c.behavior.(Updater); ok {
			u.Update()
			return
		}
	}
	c.defaultUpdate()
	c.firstRendered = true
}

// defaultUpdate applies host props, then renders and reconciles the
// child content against the previous render. Markup already present on
// first connection survives when no content is supplied.
func (c *Controller) defaultUpdate() {
	props := c.mergedProps()
	c.applyProps(props, !c.firstRendered)

	// innerHTML and textContent take over the subtree wholesale; the
	// applier already wrote it and reconciliation must not touch it.
	if hasContentOverride(props) {
		c.currentRender = c.renderRoot.Children()
		return
	}

	out, ok := c.renderValue(props)
	if !ok {
		c.currentRender = c.renderRoot.Children()
		return
	}
	nodes := Normalize(c.doc, out)

	from := c.currentRender
	if from == nil {
		from = c.renderRoot.Children()
	}
	opts := []morph.Option{morph.WithController(Hook())}
	if c.recorder != nil {
		opts = append(opts, morph.WithRecorder(c.recorder))
	}
	if err := morph.MorphNodes(c.renderRoot, from, nodes, opts...); err != nil {
		return
	}
	c.currentRender = c.renderRoot.Children()
}

// renderValue resolves child content by priority: explicit content prop,
// children prop, then the behavior's render function. ok is false when
// none is supplied.
func (c *Controller) renderValue(props map[string]any) (any, bool) {
	if v, ok := props["content"]; ok && v != nil {
		return v, true
	}
	if v, ok := props["children"]; ok && v != nil {
		return v, true
	}
	if r, ok := c.behavior.(Renderer); ok {
		return r.Render(), true
	}
	return nil, false
}

// reflectToAttributes mirrors custom props onto the host's attributes.
// Boolean props toggle presence; nil removes; writes are idempotent so
// unchanged values cause no mutation notifications.
func (c *Controller) reflectToAttributes() {
	for _, f := range c.config {
		if f.Native || !f.Attribute {
			continue
		}
		sig := c.signals[f.Name]
		if sig == nil {
			continue
		}
		attr, _ := c.config.AttributeFor(f.Name)
		s, present := schema.ToAttribute(f.Type, sig.Get())
		if !present {
			if c.host.HasAttribute(attr) {
				c.host.RemoveAttribute(attr)
			}
			continue
		}
		if cur, ok := c.host.GetAttribute(attr); !ok || cur != s {
			c.host.SetAttribute(attr, s)
		}
	}
}

// mergedProps assembles the prop bag the applier consumes: bag entries,
// custom signal values (read through Get so the render effect tracks
// them), and the config-default style deep-merged under any per-render
// style so config styles survive every re-render.
func (c *Controller) mergedProps() map[string]any {
	props := make(map[string]any, len(c.bag)+len(c.signals))
	for k, v := range c.bag {
		props[k] = v
	}
	for name, sig := range c.signals {
		props[name] = sig.Get()
	}

	if f, ok := c.config.Find("style"); ok && f.Native {
		if base, ok := f.Default.(map[string]string); ok {
			props["style"] = mergeStyle(base, props["style"])
		}
	}
	return props
}

// mergeStyle layers a per-render style value over config defaults. A
// string override wins outright only for the properties it names; config
// defaults are never silently dropped.
func mergeStyle(base map[string]string, override any) map[string]string {
	merged := make(map[string]string, len(base))
	for k, v := range base {
		merged[k] = v
	}
	switch ov := override.(type) {
	case map[string]string:
		for k, v := range ov {
			merged[k] = v
		}
	case string:
		for _, kv := range splitDecl(ov) {
			merged[kv[0]] = kv[1]
		}
	}
	return merged
}

// splitDecl splits "k: v; k2: v2" into ordered pairs, dropping malformed
// declarations.
func splitDecl(s string) [][2]string {
	var out [][2]string
	for _, part := range strings.Split(s, ";") {
		k, v, ok := strings.Cut(part, ":")
		if !ok {
			continue
		}
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, [2]string{k, strings.TrimSpace(v)})
		}
	}
	return out
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// badRenderOutput signals a fatal programmer error: silently coercing an
// unknown render shape would desynchronize the reconciler.
func badRenderOutput(v any) {
	panic(fmt.Sprintf("[MORPHIC E001] invalid render output of type %T", v))
}

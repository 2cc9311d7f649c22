package morph

import "github.com/morphic-dev/morphic/pkg/dom"

// formTags are elements whose live user state must survive a morph while
// they hold focus.
var formTags = map[string]bool{
	"input":    true,
	"textarea": true,
	"select":   true,
}

// focusGuarded reports whether value/checked sync must be skipped for the
// node: the user is interacting with it right now and their state wins.
func focusGuarded(n *dom.Node) bool {
	return formTags[n.Tag()] && n.Focused()
}

// syncAttributes adds/updates every attribute present on to and removes
// every attribute on from absent from to. Inline style is handled by
// syncStyle; value/checked are left alone on a focused form control.
func syncAttributes(from, to *dom.Node, rec *Recorder) {
	guarded := focusGuarded(from)

	for _, a := range to.Attrs() {
		if a.Key == "style" {
			continue
		}
		if guarded && (a.Key == "value" || a.Key == "checked") {
			continue
		}
		if cur, ok := from.GetAttribute(a.Key); !ok || cur != a.Value {
			from.SetAttribute(a.Key, a.Value)
			rec.setAttr(from, a.Key, a.Value)
		}
	}

	for _, a := range from.Attrs() {
		if a.Key == "style" {
			continue
		}
		if guarded && (a.Key == "value" || a.Key == "checked") {
			continue
		}
		if !to.HasAttribute(a.Key) {
			from.RemoveAttribute(a.Key)
			rec.removeAttr(from, a.Key)
		}
	}
}

// syncStyle makes from's inline style equal to's: properties on to are
// written if different, properties only on from are explicitly cleared.
// Replacement (not merging) is a correctness requirement: re-renders
// switch between mutually exclusive style states and a stale property
// from the previous state must not visually persist.
func syncStyle(from, to *dom.Node, rec *Recorder) {
	fs := from.Style()
	ts := to.Style()

	for _, prop := range ts.Properties() {
		v := ts.GetPropertyValue(prop)
		if fs.GetPropertyValue(prop) != v {
			fs.SetProperty(prop, v)
			rec.setStyle(from, prop, v)
		}
	}
	for _, prop := range fs.Properties() {
		if !ts.Has(prop) {
			fs.RemoveProperty(prop)
			rec.removeStyle(from, prop)
		}
	}
}

// syncHandlers rebinds handler properties so the retained node fires the
// new render's handlers: names on to overwrite, names absent from to are
// dropped.
func syncHandlers(from, to *dom.Node) {
	for _, name := range to.HandlerNames() {
		from.SetHandler(name, to.Handler(name))
	}
	for _, name := range from.HandlerNames() {
		if to.Handler(name) == nil {
			from.SetHandler(name, nil)
		}
	}
}

// syncFormState adopts the new render's live value/checked on unfocused
// form controls. Focused controls keep the user's state.
func syncFormState(from, to *dom.Node, rec *Recorder) {
	if !formTags[from.Tag()] || focusGuarded(from) {
		return
	}
	if v := to.Value(); from.Value() != v {
		from.SetValue(v)
		rec.setValue(from, v)
	}
	if t := from.InputType(); t == "checkbox" || t == "radio" {
		if from.Checked() != to.Checked() {
			from.SetChecked(to.Checked())
		}
	}
}

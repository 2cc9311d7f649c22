package component

// Behaviors are plain values implementing a small closed set of capability
// interfaces; the controller probes them with type assertions. Capability
// composition replaces inheritance chains: a behavior implements exactly
// the hooks it needs.

// Renderer supplies a component's child content. The returned value may be
// a *dom.Node, a string, nil, or a slice mixing those with booleans
// (dropped); anything else is a fatal programmer error.
type Renderer interface {
	Render() any
}

// Updater overrides the default reconcile-on-update behavior.
type Updater interface {
	Update()
}

// MountedCallback runs after the component connects and first renders.
type MountedCallback interface {
	Mounted()
}

// UnmountedCallback runs on disconnection, before cleanup.
type UnmountedCallback interface {
	Unmounted()
}

// Binder receives the controller at construction so behaviors can read
// props and reach the host.
type Binder interface {
	Bind(*Controller)
}

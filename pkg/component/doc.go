// Package component binds the reactive layer to the DOM: a Controller
// per host element holds the prop schema, signal-backed custom props,
// attribute reflection, and the render/update cycle, and plugs into
// package morph so controlled nodes are re-applied rather than
// attribute-synced during reconciliation.
//
// Components are composed, not inherited: a behavior value implements
// whichever capability interfaces it needs (Renderer, Updater,
// MountedCallback, UnmountedCallback, Binder) and the controller calls
// into them at the right lifecycle points.
package component

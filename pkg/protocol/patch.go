// Package protocol defines the wire form of recorded DOM mutations. A
// reconciliation pass can record every mutation it applies as a Patch;
// frames of patches are streamed to thin clients that mirror the server's
// live tree.
package protocol

// PatchOp is the type of patch operation.
type PatchOp uint8

const (
	PatchSetText     PatchOp = 0x01 // Update text content
	PatchSetAttr     PatchOp = 0x02 // Set/update attribute
	PatchRemoveAttr  PatchOp = 0x03 // Remove attribute
	PatchInsertNode  PatchOp = 0x04 // Insert new node (HTML payload)
	PatchRemoveNode  PatchOp = 0x05 // Remove node
	PatchMoveNode    PatchOp = 0x06 // Move node to new position
	PatchSetStyle    PatchOp = 0x07 // Set inline style property
	PatchRemoveStyle PatchOp = 0x08 // Clear inline style property
	PatchSetValue    PatchOp = 0x09 // Set live input value
	PatchFocus       PatchOp = 0x0A // Focus element
)

// String returns the string representation of the PatchOp.
func (op PatchOp) String() string {
	switch op {
	case PatchSetText:
		return "SetText"
	case PatchSetAttr:
		return "SetAttr"
	case PatchRemoveAttr:
		return "RemoveAttr"
	case PatchInsertNode:
		return "InsertNode"
	case PatchRemoveNode:
		return "RemoveNode"
	case PatchMoveNode:
		return "MoveNode"
	case PatchSetStyle:
		return "SetStyle"
	case PatchRemoveStyle:
		return "RemoveStyle"
	case PatchSetValue:
		return "SetValue"
	case PatchFocus:
		return "Focus"
	default:
		return "Unknown"
	}
}

// Patch is a single DOM operation. Target addresses the node either by id
// ("#list") or by child-index path from the root ("0.2.1"), computed at
// record time so a client applying patches in order resolves the same
// node.
type Patch struct {
	Op     PatchOp `msgpack:"op"`
	Target string  `msgpack:"t"`
	Key    string  `msgpack:"k,omitempty"`    // attribute/style property name
	Value  string  `msgpack:"v,omitempty"`    // new value
	Parent string  `msgpack:"p,omitempty"`    // parent target for insert/move
	Index  int     `msgpack:"i,omitempty"`    // insert/move position
	HTML   string  `msgpack:"html,omitempty"` // serialized subtree for InsertNode
}

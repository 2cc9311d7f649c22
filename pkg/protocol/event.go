package protocol

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/morphic-dev/morphic/internal/errors"
)

// Event is a client-originated DOM event forwarded to the server's live
// tree. Target uses the same addressing as Patch.Target.
type Event struct {
	Target string `msgpack:"t"`
	Type   string `msgpack:"type"`
	Value  string `msgpack:"v,omitempty"` // input value payload, if any
}

// EncodeEvent encodes an event to msgpack bytes.
func EncodeEvent(e *Event) ([]byte, error) {
	return msgpack.Marshal(e)
}

// DecodeEvent decodes an event from msgpack bytes.
func DecodeEvent(data []byte) (*Event, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFrame
	}
	var e Event
	if err := msgpack.Unmarshal(data, &e); err != nil {
		return nil, errors.New("E101").Wrap(err)
	}
	return &e, nil
}

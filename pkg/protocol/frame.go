package protocol

import (
	"github.com/vmihailenco/msgpack/v5"

	"github.com/morphic-dev/morphic/internal/errors"
)

// ErrEmptyFrame is returned when decoding zero-length input.
var ErrEmptyFrame = errors.New("E102")

// Frame is a batch of patches produced by one update cycle. Seq increases
// by one per frame within a session so clients can detect gaps.
type Frame struct {
	Seq     uint64  `msgpack:"seq"`
	Patches []Patch `msgpack:"patches"`
}

// EncodeFrame encodes a frame to msgpack bytes.
func EncodeFrame(f *Frame) ([]byte, error) {
	return msgpack.Marshal(f)
}

// DecodeFrame decodes a frame from msgpack bytes.
func DecodeFrame(data []byte) (*Frame, error) {
	if len(data) == 0 {
		return nil, ErrEmptyFrame
	}
	var f Frame
	if err := msgpack.Unmarshal(data, &f); err != nil {
		return nil, errors.New("E100").Wrap(err)
	}
	return &f, nil
}

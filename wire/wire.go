// SPDX-License-Identifier: MIT
// Package wire defines the synchronization messages exchanged by the
// distributed coordinator and its workers, and their msgpack encoding.
package wire

import (
	"errors"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/lvcolor/core"
)

// Tag identifies the kind of a Message.
type Tag uint8

// Protocol tags. The zero value is invalid so an empty message never passes
// for a real one.
const (
	TagInvalid Tag = iota
	TagPartition
	TagRequest
	TagUpdate
	TagDone
)

var tagNames = [...]string{"invalid", "partition", "request", "update", "done"}

// String returns the lower-case tag name used in logs and metric labels.
func (t Tag) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}

	return fmt.Sprintf("tag(%d)", uint8(t))
}

// Valid reports whether t is one of the protocol tags.
func (t Tag) Valid() bool { return t >= TagPartition && t <= TagDone }

// ErrInvalidMessage indicates a decoded message with an unknown tag.
var ErrInvalidMessage = errors.New("wire: invalid message")

// Message is one protocol message.
//
// Vertices carries (id, color) snapshots for Request, Update and the
// coordinator's reply. Partition and Topology are set only on TagPartition.
type Message struct {
	Tag       Tag            `msgpack:"tag"`
	Sender    int            `msgpack:"sender"`
	Vertices  []core.Vertex  `msgpack:"vertices,omitempty"`
	Partition []int          `msgpack:"partition,omitempty"`
	Topology  *core.Topology `msgpack:"topology,omitempty"`
}

// IDs returns the vertex IDs of m.Vertices, in order.
func (m Message) IDs() []int {
	out := make([]int, len(m.Vertices))
	for i, v := range m.Vertices {
		out[i] = v.ID
	}

	return out
}

// Marshal encodes m as a single msgpack value.
func Marshal(m Message) ([]byte, error) {
	b, err := msgpack.Marshal(&m)
	if err != nil {
		return nil, fmt.Errorf("wire: marshal %s: %w", m.Tag, err)
	}

	return b, nil
}

// Unmarshal decodes one msgpack value produced by Marshal.
func Unmarshal(b []byte) (Message, error) {
	var m Message
	if err := msgpack.Unmarshal(b, &m); err != nil {
		return Message{}, fmt.Errorf("wire: unmarshal: %w", err)
	}
	if !m.Tag.Valid() {
		return Message{}, fmt.Errorf("wire: tag %d: %w", m.Tag, ErrInvalidMessage)
	}

	return m, nil
}

// Encoder writes a stream of messages. msgpack values are self-delimiting,
// so no extra framing is needed.
type Encoder struct {
	enc *msgpack.Encoder
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder { return &Encoder{enc: msgpack.NewEncoder(w)} }

// Encode writes one message.
func (e *Encoder) Encode(m Message) error {
	if err := e.enc.Encode(&m); err != nil {
		return fmt.Errorf("wire: encode %s: %w", m.Tag, err)
	}

	return nil
}

// Decoder reads a stream of messages written by an Encoder.
type Decoder struct {
	dec *msgpack.Decoder
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder { return &Decoder{dec: msgpack.NewDecoder(r)} }

// Decode reads the next message. io.EOF is returned unwrapped at a clean end
// of stream.
func (d *Decoder) Decode() (Message, error) {
	var m Message
	if err := d.dec.Decode(&m); err != nil {
		if errors.Is(err, io.EOF) {
			return Message{}, io.EOF
		}
		return Message{}, fmt.Errorf("wire: decode: %w", err)
	}
	if !m.Tag.Valid() {
		return Message{}, fmt.Errorf("wire: tag %d: %w", m.Tag, ErrInvalidMessage)
	}

	return m, nil
}

package wire_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/lvcolor/core"
	"github.com/katalvlaran/lvcolor/wire"
)

func TestPartitionMessageCarriesTopology(t *testing.T) {
	in := wire.Message{
		Tag:       wire.TagPartition,
		Sender:    0,
		Partition: []int{2, 3},
		Topology: &core.Topology{
			Vertices: []int{0, 1, 2, 3},
			Edges:    []core.Edge{{U: 1, V: 2}},
		},
	}

	b, err := wire.Marshal(in)
	require.NoError(t, err)
	out, err := wire.Unmarshal(b)
	require.NoError(t, err)
	if diff := cmp.Diff(in, out); diff != "" {
		t.Fatalf("partition message mismatch (-want +got):\n%s", diff)
	}
}

func TestStreamKeepsOrderAndEndsWithEOF(t *testing.T) {
	var buf bytes.Buffer
	enc := wire.NewEncoder(&buf)
	msgs := []wire.Message{
		{Tag: wire.TagRequest, Sender: 1, Vertices: []core.Vertex{{ID: 5}, {ID: 2}}},
		{Tag: wire.TagUpdate, Sender: 1, Vertices: []core.Vertex{{ID: 5, Color: 3}}},
		{Tag: wire.TagDone, Sender: 1},
	}
	for _, m := range msgs {
		require.NoError(t, enc.Encode(m))
	}

	dec := wire.NewDecoder(&buf)
	for _, want := range msgs {
		got, err := dec.Decode()
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("stream mismatch (-want +got):\n%s", diff)
		}
	}
	_, err := dec.Decode()
	require.ErrorIs(t, err, io.EOF)
}

func TestUnmarshalRejectsUnknownTag(t *testing.T) {
	b, err := msgpack.Marshal(map[string]any{"tag": 9, "sender": 1})
	require.NoError(t, err)
	_, err = wire.Unmarshal(b)
	require.ErrorIs(t, err, wire.ErrInvalidMessage)
}

func TestTagString(t *testing.T) {
	require.Equal(t, "request", wire.TagRequest.String())
	require.Equal(t, "tag(9)", wire.Tag(9).String())
	require.Equal(t, []int{5, 2}, wire.Message{Vertices: []core.Vertex{{ID: 5}, {ID: 2}}}.IDs())
}

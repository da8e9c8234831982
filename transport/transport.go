// SPDX-License-Identifier: MIT
// Package transport moves wire.Messages between the ranks of a distributed
// coloring run. Rank 0 is the coordinator; ranks 1..Size()-1 are workers.
//
// Two implementations are provided:
//   - NewLocalCluster: an in-process mesh. Every message is msgpack-encoded
//     on Send and decoded on Recv, so endpoints never share memory.
//   - ListenTCP / DialTCP: a star over TCP centered on rank 0.
package transport

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvcolor/wire"
)

// Sentinel errors for transports.
var (
	// ErrClosed indicates the endpoint or its peer has been closed.
	ErrClosed = errors.New("transport: closed")

	// ErrNoRoute indicates a destination this endpoint cannot reach.
	ErrNoRoute = errors.New("transport: no route to rank")

	// ErrBadRank indicates a rank or size outside the valid range, or a
	// handshake that disagrees with the coordinator.
	ErrBadRank = errors.New("transport: bad rank")
)

// Transport is one rank's endpoint.
//
// Send is fire-and-forget: it returns once the message is queued or written,
// never waiting for the receiver. Recv blocks until a message arrives, the
// endpoint is closed (ErrClosed) or ctx is done (ctx.Err()).
type Transport interface {
	Rank() int
	Size() int
	Send(ctx context.Context, to int, m wire.Message) error
	Recv(ctx context.Context) (wire.Message, error)
	Close() error
}

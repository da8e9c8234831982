package transport

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvcolor/wire"
)

// Local is an in-process endpoint created by NewLocalCluster.
type Local struct {
	rank  int
	peers []*mailbox[[]byte]
}

// NewLocalCluster creates size connected endpoints; element r has rank r.
// size must be >= 1.
func NewLocalCluster(size int) ([]*Local, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewLocalCluster(%d): %w", size, ErrBadRank)
	}

	boxes := make([]*mailbox[[]byte], size)
	for i := range boxes {
		boxes[i] = newMailbox[[]byte]()
	}
	out := make([]*Local, size)
	for r := range out {
		out[r] = &Local{rank: r, peers: boxes}
	}

	return out, nil
}

// Rank implements Transport.
func (l *Local) Rank() int { return l.rank }

// Size implements Transport.
func (l *Local) Size() int { return len(l.peers) }

// Send encodes m and queues it for rank to.
func (l *Local) Send(ctx context.Context, to int, m wire.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if to < 0 || to >= len(l.peers) || to == l.rank {
		return fmt.Errorf("Send(%d -> %d): %w", l.rank, to, ErrNoRoute)
	}
	b, err := wire.Marshal(m)
	if err != nil {
		return err
	}
	if err := l.peers[to].put(b); err != nil {
		return fmt.Errorf("Send(%d -> %d): %w", l.rank, to, err)
	}

	return nil
}

// Recv blocks for the next message addressed to this rank.
func (l *Local) Recv(ctx context.Context) (wire.Message, error) {
	b, err := l.peers[l.rank].take(ctx)
	if err != nil {
		return wire.Message{}, err
	}

	return wire.Unmarshal(b)
}

// Close closes this rank's inbox. Queued messages can still be received;
// later sends to this rank fail with ErrClosed.
func (l *Local) Close() error {
	l.peers[l.rank].close()
	return nil
}

var _ Transport = (*Local)(nil)

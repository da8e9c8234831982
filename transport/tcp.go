// File: tcp.go
// Role: Star transport over TCP. Rank 0 listens; every worker dials it,
// introduces itself with a connection message and waits for acceptance.
//
// Framing:
//   - Each connection carries a stream of self-delimiting msgpack values:
//     one connectMsg/connectResp pair, then wire.Messages.
//   - One reader goroutine per connection feeds the endpoint's mailbox, so
//     Recv sees messages from all workers in arrival order.
package transport

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"sync"
	"time"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/katalvlaran/lvcolor/wire"
)

// dialRetryInterval spaces reconnect attempts while the coordinator is not
// yet listening.
const dialRetryInterval = 100 * time.Millisecond

type connectMsg struct {
	Rank int `msgpack:"rank"`
	Size int `msgpack:"size"`
}

type connectResp struct {
	Accepted bool   `msgpack:"accepted"`
	Reason   string `msgpack:"reason,omitempty"`
}

type inbound struct {
	msg wire.Message
	err error
}

// peer is one TCP connection with a serialized writer.
type peer struct {
	conn net.Conn
	wmu  sync.Mutex
	enc  *wire.Encoder
	dec  *wire.Decoder
}

func (p *peer) send(ctx context.Context, m wire.Message) error {
	p.wmu.Lock()
	defer p.wmu.Unlock()

	if dl, ok := ctx.Deadline(); ok {
		_ = p.conn.SetWriteDeadline(dl)
		defer p.conn.SetWriteDeadline(time.Time{})
	}

	return p.enc.Encode(m)
}

// TCP is a star endpoint. The coordinator holds one peer per worker; a
// worker holds the single peer to the coordinator.
type TCP struct {
	rank  int
	size  int
	peers map[int]*peer
	inbox *mailbox[inbound]
	wg    sync.WaitGroup

	closeOnce sync.Once
}

// ListenTCP listens on addr and blocks until size-1 workers have connected.
func ListenTCP(ctx context.Context, addr string, size int) (*TCP, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("ListenTCP(%s): %w", addr, err)
	}
	defer ln.Close()

	return AcceptTCP(ctx, ln, size)
}

// AcceptTCP accepts size-1 workers from ln and returns the rank-0 endpoint.
// The listener is left open; the caller owns it.
//
// Implementation:
//   - Stage 1: Accept a connection and read its connectMsg.
//   - Stage 2: Reject ranks outside 1..size-1, duplicates and size
//     mismatches with a connectResp carrying the reason, then fail with
//     ErrBadRank.
//   - Stage 3: Once every rank is present, start one reader per peer.
func AcceptTCP(ctx context.Context, ln net.Listener, size int) (*TCP, error) {
	if size < 2 {
		return nil, fmt.Errorf("AcceptTCP(size=%d): %w", size, ErrBadRank)
	}

	t := &TCP{rank: 0, size: size, peers: make(map[int]*peer, size-1), inbox: newMailbox[inbound]()}

	stop := context.AfterFunc(ctx, func() { _ = ln.Close() })
	defer stop()

	for len(t.peers) < size-1 {
		conn, err := ln.Accept()
		if err != nil {
			t.closePeers()
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, fmt.Errorf("AcceptTCP: %w", err)
		}

		rank, p, err := t.admit(ctx, conn)
		if err != nil {
			_ = conn.Close()
			t.closePeers()
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, err
		}
		t.peers[rank] = p
	}

	for rank, p := range t.peers {
		t.startReader(rank, p)
	}

	return t, nil
}

// admit runs the handshake on conn. A peer that never introduces itself
// is cut off when ctx is done.
func (t *TCP) admit(ctx context.Context, conn net.Conn) (int, *peer, error) {
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	r := bufio.NewReader(conn)
	var hello connectMsg
	if err := msgpack.NewDecoder(r).Decode(&hello); err != nil {
		return 0, nil, fmt.Errorf("AcceptTCP: handshake from %s: %w", conn.RemoteAddr(), err)
	}

	var reason string
	switch {
	case hello.Size != t.size:
		reason = fmt.Sprintf("size %d, coordinator expects %d", hello.Size, t.size)
	case hello.Rank < 1 || hello.Rank >= t.size:
		reason = fmt.Sprintf("rank %d outside 1..%d", hello.Rank, t.size-1)
	case t.peers[hello.Rank] != nil:
		reason = fmt.Sprintf("rank %d already connected", hello.Rank)
	}

	resp := connectResp{Accepted: reason == "", Reason: reason}
	if err := msgpack.NewEncoder(conn).Encode(&resp); err != nil {
		return 0, nil, fmt.Errorf("AcceptTCP: handshake reply to rank %d: %w", hello.Rank, err)
	}
	if reason != "" {
		return 0, nil, fmt.Errorf("AcceptTCP: %s: %w", reason, ErrBadRank)
	}

	return hello.Rank, &peer{conn: conn, enc: wire.NewEncoder(conn), dec: wire.NewDecoder(r)}, nil
}

// DialTCP connects worker rank to the coordinator at addr, retrying until
// the coordinator accepts or ctx is done.
func DialTCP(ctx context.Context, addr string, rank, size int) (*TCP, error) {
	if size < 2 || rank < 1 || rank >= size {
		return nil, fmt.Errorf("DialTCP(rank=%d, size=%d): %w", rank, size, ErrBadRank)
	}

	var (
		d    net.Dialer
		conn net.Conn
		err  error
	)
	for {
		conn, err = d.DialContext(ctx, "tcp", addr)
		if err == nil {
			break
		}
		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("DialTCP(%s): %w", addr, errors.Join(ctx.Err(), err))
		case <-time.After(dialRetryInterval):
		}
	}

	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	if err := msgpack.NewEncoder(conn).Encode(&connectMsg{Rank: rank, Size: size}); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("DialTCP: handshake: %w", err)
	}
	r := bufio.NewReader(conn)
	var resp connectResp
	if err := msgpack.NewDecoder(r).Decode(&resp); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("DialTCP: handshake reply: %w", err)
	}
	if !resp.Accepted {
		_ = conn.Close()
		return nil, fmt.Errorf("DialTCP: refused: %s: %w", resp.Reason, ErrBadRank)
	}

	p := &peer{conn: conn, enc: wire.NewEncoder(conn), dec: wire.NewDecoder(r)}
	t := &TCP{rank: rank, size: size, peers: map[int]*peer{0: p}, inbox: newMailbox[inbound]()}
	t.startReader(0, p)

	return t, nil
}

func (t *TCP) startReader(rank int, p *peer) {
	t.wg.Add(1)
	go func() {
		defer t.wg.Done()
		for {
			m, err := p.dec.Decode()
			if err != nil {
				// A peer that hangs up after its last message is a clean end.
				if !errors.Is(err, io.EOF) && !errors.Is(err, net.ErrClosed) {
					_ = t.inbox.put(inbound{err: fmt.Errorf("recv from rank %d: %w", rank, err)})
				}
				return
			}
			if err := t.inbox.put(inbound{msg: m}); err != nil {
				return
			}
		}
	}()
}

// Rank implements Transport.
func (t *TCP) Rank() int { return t.rank }

// Size implements Transport.
func (t *TCP) Size() int { return t.size }

// Send writes m to rank to. Workers can reach only rank 0.
func (t *TCP) Send(ctx context.Context, to int, m wire.Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	p, ok := t.peers[to]
	if !ok {
		return fmt.Errorf("Send(%d -> %d): %w", t.rank, to, ErrNoRoute)
	}
	if err := p.send(ctx, m); err != nil {
		if errors.Is(err, net.ErrClosed) {
			return fmt.Errorf("Send(%d -> %d): %w", t.rank, to, ErrClosed)
		}
		return fmt.Errorf("Send(%d -> %d): %w", t.rank, to, err)
	}

	return nil
}

// Recv returns the next message from any peer, or the first read failure.
func (t *TCP) Recv(ctx context.Context) (wire.Message, error) {
	in, err := t.inbox.take(ctx)
	if err != nil {
		return wire.Message{}, err
	}

	return in.msg, in.err
}

// Close shuts every connection and waits for the readers to exit.
func (t *TCP) Close() error {
	var err error
	t.closeOnce.Do(func() {
		err = t.closePeers()
		t.wg.Wait()
		t.inbox.close()
	})

	return err
}

func (t *TCP) closePeers() error {
	var errs []error
	for _, p := range t.peers {
		if cerr := p.conn.Close(); cerr != nil && !errors.Is(cerr, net.ErrClosed) {
			errs = append(errs, cerr)
		}
	}

	return errors.Join(errs...)
}

var _ Transport = (*TCP)(nil)

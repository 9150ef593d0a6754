package xnetquic

import (
	"context"
	"errors"
	"sync/atomic"

	"github.com/mengelbart/moqdemux"
	"golang.org/x/net/quic"
)

var errDatagramsUnsupported = errors.New("x/net/quic implementation does not support datagram")

var _ moqdemux.Connection = (*connection)(nil)

type connection struct {
	ctx       context.Context
	cancelCtx context.CancelCauseFunc
	conn      *quic.Conn

	bidiStreams chan *quic.Stream
	uniStreams  chan *quic.Stream

	// x/net/quic does not expose stream ids, streams are numbered in
	// acceptance order instead.
	nextStreamID atomic.Uint64
}

// New wraps an x/net/quic connection. It starts a goroutine that sorts
// accepted streams by direction until the connection is closed.
func New(conn *quic.Conn) moqdemux.Connection {
	ctx, cancel := context.WithCancelCause(context.Background())
	c := &connection{
		ctx:         ctx,
		cancelCtx:   cancel,
		conn:        conn,
		bidiStreams: make(chan *quic.Stream, 100),
		uniStreams:  make(chan *quic.Stream, 100),
	}
	go c.accept()
	return c
}

func (c *connection) accept() {
	for {
		s, err := c.conn.AcceptStream(c.ctx)
		if err != nil {
			c.cancelCtx(err)
			return
		}
		streams := c.bidiStreams
		if s.IsReadOnly() {
			streams = c.uniStreams
		}
		select {
		case streams <- s:
		case <-c.ctx.Done():
			return
		}
	}
}

func (c *connection) next(ctx context.Context, streams <-chan *quic.Stream) (moqdemux.ReceiveStream, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-c.ctx.Done():
		return nil, context.Cause(c.ctx)
	case s := <-streams:
		return &Stream{
			stream: s,
			id:     c.nextStreamID.Add(1) - 1,
		}, nil
	}
}

// AcceptStream implements moqdemux.Connection.
func (c *connection) AcceptStream(ctx context.Context) (moqdemux.ReceiveStream, error) {
	return c.next(ctx, c.bidiStreams)
}

// AcceptUniStream implements moqdemux.Connection.
func (c *connection) AcceptUniStream(ctx context.Context) (moqdemux.ReceiveStream, error) {
	return c.next(ctx, c.uniStreams)
}

// ReceiveDatagram implements moqdemux.Connection.
func (*connection) ReceiveDatagram(context.Context) ([]byte, error) {
	return nil, errDatagramsUnsupported
}

// CloseWithError implements moqdemux.Connection.
func (c *connection) CloseWithError(code uint64, reason string) error {
	appErr := &quic.ApplicationError{
		Code:   code,
		Reason: reason,
	}
	c.conn.Abort(appErr)
	c.cancelCtx(appErr)
	return c.conn.Wait(context.TODO())
}

func (c *connection) Context() context.Context {
	return c.ctx
}

package quicmoq

import (
	"context"

	"github.com/mengelbart/moqdemux"
	"github.com/quic-go/quic-go"
)

var _ moqdemux.Connection = (*connection)(nil)

type connection struct {
	connection quic.Connection
}

// New wraps a raw QUIC connection. Datagrams must be enabled in the QUIC
// config for ReceiveDatagram to succeed.
func New(conn quic.Connection) moqdemux.Connection {
	return &connection{
		connection: conn,
	}
}

func (c *connection) AcceptStream(ctx context.Context) (moqdemux.ReceiveStream, error) {
	s, err := c.connection.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}
	return &ReceiveStream{
		stream: s,
	}, nil
}

func (c *connection) AcceptUniStream(ctx context.Context) (moqdemux.ReceiveStream, error) {
	s, err := c.connection.AcceptUniStream(ctx)
	if err != nil {
		return nil, err
	}
	return &ReceiveStream{
		stream: s,
	}, nil
}

func (c *connection) ReceiveDatagram(ctx context.Context) ([]byte, error) {
	return c.connection.ReceiveDatagram(ctx)
}

func (c *connection) CloseWithError(e uint64, msg string) error {
	return c.connection.CloseWithError(quic.ApplicationErrorCode(e), msg)
}

func (c *connection) Context() context.Context {
	return c.connection.Context()
}

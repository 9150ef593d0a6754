package webtransportmoq

import (
	"context"

	"github.com/mengelbart/moqdemux"
	"github.com/quic-go/webtransport-go"
)

var _ moqdemux.Connection = (*webTransportConn)(nil)

type webTransportConn struct {
	session *webtransport.Session
}

func New(session *webtransport.Session) moqdemux.Connection {
	return &webTransportConn{session}
}

func (c *webTransportConn) AcceptStream(ctx context.Context) (moqdemux.ReceiveStream, error) {
	s, err := c.session.AcceptStream(ctx)
	if err != nil {
		return nil, err
	}
	return &ReceiveStream{stream: s}, nil
}

func (c *webTransportConn) AcceptUniStream(ctx context.Context) (moqdemux.ReceiveStream, error) {
	s, err := c.session.AcceptUniStream(ctx)
	if err != nil {
		return nil, err
	}
	return &ReceiveStream{stream: s}, nil
}

func (c *webTransportConn) ReceiveDatagram(ctx context.Context) ([]byte, error) {
	return c.session.ReceiveDatagram(ctx)
}

func (c *webTransportConn) CloseWithError(e uint64, msg string) error {
	return c.session.CloseWithError(webtransport.SessionErrorCode(e), msg)
}

func (c *webTransportConn) Context() context.Context {
	return c.session.Context()
}

package moqdemux

import (
	"context"
	"io"
)

// ReceiveStream is the read side of a QUIC or WebTransport stream.
type ReceiveStream interface {
	io.Reader
	StreamID() uint64
	Stop(code uint32)
}

// Connection exposes the inbound primitives of a QUIC connection or a
// WebTransport session.
type Connection interface {
	AcceptStream(context.Context) (ReceiveStream, error)
	AcceptUniStream(context.Context) (ReceiveStream, error)
	ReceiveDatagram(context.Context) ([]byte, error)

	CloseWithError(uint64, string) error
	Context() context.Context
}

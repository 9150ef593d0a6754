package xnetquic

import (
	"github.com/mengelbart/moqdemux"
	"golang.org/x/net/quic"
)

var _ moqdemux.ReceiveStream = (*Stream)(nil)

type Stream struct {
	stream *quic.Stream
	id     uint64
}

// Read implements moqdemux.ReceiveStream.
func (s *Stream) Read(p []byte) (n int, err error) {
	return s.stream.Read(p)
}

// Stop implements moqdemux.ReceiveStream. x/net/quic sends STOP_SENDING
// with code 0 regardless of code.
func (s *Stream) Stop(code uint32) {
	s.stream.CloseRead()
}

// StreamID implements moqdemux.ReceiveStream.
func (s *Stream) StreamID() uint64 {
	return s.id
}

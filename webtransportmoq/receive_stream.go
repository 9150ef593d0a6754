package webtransportmoq

import (
	"errors"

	"github.com/mengelbart/moqdemux"
	"github.com/quic-go/webtransport-go"
)

var _ moqdemux.ReceiveStream = (*ReceiveStream)(nil)

type ReceiveStream struct {
	stream webtransport.ReceiveStream
}

// Read implements moqdemux.ReceiveStream.
func (r *ReceiveStream) Read(p []byte) (int, error) {
	n, err := r.stream.Read(p)
	if err != nil {
		var streamErr *webtransport.StreamError
		if errors.As(err, &streamErr) {
			msg := "stream reset"
			if streamErr.Remote {
				msg = "stream reset by peer"
			}
			return n, moqdemux.ApplicationError{
				Code:    uint64(streamErr.ErrorCode),
				Message: msg,
				Remote:  streamErr.Remote,
			}
		}
		return n, err
	}
	return n, nil
}

// Stop implements moqdemux.ReceiveStream.
func (r *ReceiveStream) Stop(code uint32) {
	r.stream.CancelRead(webtransport.StreamErrorCode(code))
}

// StreamID implements moqdemux.ReceiveStream
func (r *ReceiveStream) StreamID() uint64 {
	return uint64(r.stream.StreamID())
}

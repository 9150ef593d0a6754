package quicmoq

import (
	"errors"

	"github.com/mengelbart/moqdemux"
	"github.com/quic-go/quic-go"
)

var _ moqdemux.ReceiveStream = (*ReceiveStream)(nil)

type ReceiveStream struct {
	stream quic.ReceiveStream
}

// Read implements moqdemux.ReceiveStream. A stream reset is reported as a
// moqdemux.ApplicationError carrying the reset code.
func (r *ReceiveStream) Read(p []byte) (int, error) {
	n, err := r.stream.Read(p)
	if err != nil {
		var streamErr *quic.StreamError
		if errors.As(err, &streamErr) {
			return n, streamResetError(uint64(streamErr.ErrorCode), streamErr.Remote)
		}
		return n, err
	}
	return n, nil
}

// Stop implements moqdemux.ReceiveStream.
func (r *ReceiveStream) Stop(code uint32) {
	r.stream.CancelRead(quic.StreamErrorCode(code))
}

// StreamID implements moqdemux.ReceiveStream
func (r *ReceiveStream) StreamID() uint64 {
	return uint64(r.stream.StreamID())
}

func streamResetError(code uint64, remote bool) moqdemux.ApplicationError {
	if remote {
		return moqdemux.ApplicationError{
			Code:    code,
			Message: "stream reset by peer",
			Remote:  true,
		}
	}
	return moqdemux.ApplicationError{
		Code:    code,
		Message: "stream reset",
	}
}

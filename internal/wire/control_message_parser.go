package wire

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/quic-go/quic-go/quicvarint"
)

// AppendControlMessage appends the framed form of m to buf:
// type (varint), payload length (varint), payload.
func AppendControlMessage(buf []byte, m ControlMessage) (res []byte, err error) {
	orig := buf
	defer func() {
		// quicvarint.Append panics on values of 2^62 and above
		if r := recover(); r != nil {
			res, err = orig, fmt.Errorf("%w: %v", ErrOutOfRange, r)
		}
	}()
	payload := m.Append(make([]byte, 0, 64))
	buf = quicvarint.Append(buf, uint64(m.Type()))
	buf = quicvarint.Append(buf, uint64(len(payload)))
	return append(buf, payload...), nil
}

// ParseControlMessage decodes the first framed control message in data. It
// returns the number of bytes the frame occupies, which is also set when the
// type is unknown so that callers can skip the frame. Bytes after the
// declared payload are left untouched.
func ParseControlMessage(data []byte) (ControlMessage, int, error) {
	r := bytes.NewReader(data)
	mt, err := readVarint(r)
	if err != nil {
		return nil, 0, err
	}
	length, err := readVarint(r)
	if err != nil {
		return nil, 0, err
	}
	if length > uint64(r.Len()) {
		return nil, 0, ErrTruncated
	}
	header := len(data) - r.Len()
	n := header + int(length)

	msg, err := newControlMessage(ControlMessageType(mt))
	if err != nil {
		return nil, n, err
	}
	if err = parsePayload(msg, data[header:n]); err != nil {
		return nil, n, err
	}
	return msg, n, nil
}

func parsePayload(msg ControlMessage, payload []byte) error {
	r := bytes.NewReader(payload)
	if err := msg.parse(r); err != nil {
		return err
	}
	if r.Len() != 0 {
		return errTrailingBytes
	}
	return nil
}

// ControlMessageParser reads framed control messages from a stream.
type ControlMessageParser struct {
	reader *bufio.Reader
}

func NewControlMessageParser(r io.Reader) *ControlMessageParser {
	return &ControlMessageParser{
		reader: bufio.NewReader(r),
	}
}

// ReadFrame blocks until one complete frame has been read and returns it
// including its header. A stream that ends between frames yields io.EOF.
func (p *ControlMessageParser) ReadFrame() ([]byte, error) {
	if _, err := p.reader.Peek(1); err != nil {
		return nil, err
	}
	mt, err := readVarint(p.reader)
	if err != nil {
		return nil, err
	}
	length, err := readVarint(p.reader)
	if err != nil {
		return nil, err
	}
	if length > maxReadLength {
		return nil, fmt.Errorf("%w: control message length %d", ErrOutOfRange, length)
	}
	frame := make([]byte, 0, quicvarint.Len(mt)+quicvarint.Len(length)+int(length))
	frame = quicvarint.Append(frame, mt)
	frame = quicvarint.Append(frame, length)
	header := len(frame)
	frame = frame[:header+int(length)]
	if _, err = io.ReadFull(p.reader, frame[header:]); err != nil {
		return nil, truncated(err)
	}
	return frame, nil
}

func (p *ControlMessageParser) Parse() (ControlMessage, error) {
	frame, err := p.ReadFrame()
	if err != nil {
		return nil, err
	}
	msg, _, err := ParseControlMessage(frame)
	return msg, err
}

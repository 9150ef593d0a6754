package wire

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/quic-go/quic-go/quicvarint"
)

// MaxVarint is the largest value representable as a QUIC variable-length
// integer (2^62-1).
const MaxVarint = quicvarint.Max

// maxReadLength bounds length-prefixed fields read from unbounded readers.
const maxReadLength = MaxObjectPayloadLength

type messageReader interface {
	io.Reader
	io.ByteReader
}

// EncodeVarint returns the shortest encoding of v.
func EncodeVarint(v uint64) ([]byte, error) {
	return AppendVarint(nil, v)
}

// AppendVarint appends the shortest encoding of v to buf.
func AppendVarint(buf []byte, v uint64) ([]byte, error) {
	if v > MaxVarint {
		return buf, fmt.Errorf("%w: %d does not fit into 62 bits", ErrOutOfRange, v)
	}
	return quicvarint.Append(buf, v), nil
}

// DecodeVarint decodes the varint starting at offset and returns its value
// together with the offset of the first byte after it. Non-canonical
// encodings are accepted.
func DecodeVarint(buf []byte, offset int) (uint64, int, error) {
	if offset < 0 || offset > len(buf) {
		return 0, offset, ErrTruncated
	}
	r := bytes.NewReader(buf[offset:])
	v, err := readVarint(r)
	if err != nil {
		return 0, offset, err
	}
	return v, len(buf) - r.Len(), nil
}

// AppendVarIntBytes appends the length of data as a varint followed by data.
func AppendVarIntBytes(buf []byte, data []byte) []byte {
	buf = quicvarint.Append(buf, uint64(len(data)))
	return append(buf, data...)
}

// DecodeVarIntBytes is the inverse of AppendVarIntBytes.
func DecodeVarIntBytes(buf []byte, offset int) ([]byte, int, error) {
	if offset < 0 || offset > len(buf) {
		return nil, offset, ErrTruncated
	}
	r := bytes.NewReader(buf[offset:])
	data, err := readVarIntBytes(r)
	if err != nil {
		return nil, offset, err
	}
	return data, len(buf) - r.Len(), nil
}

func varIntBytesLen(data []byte) int {
	return quicvarint.Len(uint64(len(data))) + len(data)
}

// truncated maps the io errors produced by short reads to ErrTruncated.
func truncated(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrTruncated
	}
	return err
}

func readVarint(r io.ByteReader) (uint64, error) {
	v, err := quicvarint.Read(r)
	if err != nil {
		return 0, truncated(err)
	}
	return v, nil
}

func readByte(r io.ByteReader) (byte, error) {
	b, err := r.ReadByte()
	if err != nil {
		return 0, truncated(err)
	}
	return b, nil
}

func readN(r messageReader, l uint64) ([]byte, error) {
	if l > math.MaxInt {
		return nil, fmt.Errorf("%w: length %d", ErrOutOfRange, l)
	}
	if lr, ok := r.(interface{ Len() int }); ok {
		if l > uint64(lr.Len()) {
			return nil, ErrTruncated
		}
	} else if l > maxReadLength {
		return nil, fmt.Errorf("%w: length %d", ErrOutOfRange, l)
	}
	if l == 0 {
		return []byte{}, nil
	}
	buf := make([]byte, l)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, truncated(err)
	}
	return buf, nil
}

func readVarIntBytes(r messageReader) ([]byte, error) {
	l, err := readVarint(r)
	if err != nil {
		return nil, err
	}
	return readN(r, l)
}

func readVarIntString(r messageReader) (string, error) {
	b, err := readVarIntBytes(r)
	return string(b), err
}

package wire

import (
	"bytes"
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

// ObjectDatagramMessage is a single object carried in a datagram. A datagram
// with an empty payload is sent in the status form. A non-empty payload
// implies ObjectStatusNormal and ObjectStatus is not encoded.
type ObjectDatagramMessage struct {
	TrackAlias        uint64
	GroupID           uint64
	ObjectID          uint64
	PublisherPriority uint8
	ObjectStatus      ObjectStatus
	ObjectPayload     []byte
}

func (m *ObjectDatagramMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", m.Type().String()),
		slog.Uint64("track_alias", m.TrackAlias),
		slog.Uint64("group_id", m.GroupID),
		slog.Uint64("object_id", m.ObjectID),
		slog.Any("publisher_priority", m.PublisherPriority),
		slog.Any("object_status", m.ObjectStatus),
		slog.Int("object_payload_length", len(m.ObjectPayload)),
	)
}

func (m *ObjectDatagramMessage) Type() DatagramType {
	if len(m.ObjectPayload) == 0 {
		return DatagramTypeObjectStatus
	}
	return DatagramTypeObject
}

func (m *ObjectDatagramMessage) Append(buf []byte) []byte {
	typ := m.Type()
	buf = quicvarint.Append(buf, uint64(typ))
	buf = quicvarint.Append(buf, m.TrackAlias)
	buf = quicvarint.Append(buf, m.GroupID)
	buf = quicvarint.Append(buf, m.ObjectID)
	buf = append(buf, m.PublisherPriority)
	if typ == DatagramTypeObjectStatus {
		return quicvarint.Append(buf, uint64(m.ObjectStatus))
	}
	return append(buf, m.ObjectPayload...)
}

// ParseObjectDatagram decodes one datagram. The datagram spans the whole
// buffer.
func ParseObjectDatagram(data []byte, opts ...ObjectParserOption) (*ObjectDatagramMessage, error) {
	cfg := newObjectParserConfig(opts)
	r := bytes.NewReader(data)
	t, err := readVarint(r)
	if err != nil {
		return nil, err
	}
	typ := DatagramType(t)
	if typ != DatagramTypeObject && typ != DatagramTypeObjectStatus {
		return nil, UnknownDatagramTypeError{Type: typ}
	}
	m := &ObjectDatagramMessage{}
	m.TrackAlias, err = readVarint(r)
	if err != nil {
		return nil, err
	}
	m.GroupID, err = readVarint(r)
	if err != nil {
		return nil, err
	}
	m.ObjectID, err = readVarint(r)
	if err != nil {
		return nil, err
	}
	m.PublisherPriority, err = readByte(r)
	if err != nil {
		return nil, err
	}

	if typ == DatagramTypeObject {
		if r.Len() == 0 {
			return nil, errEmptyObjectPayload
		}
		m.ObjectStatus = ObjectStatusNormal
		m.ObjectPayload = make([]byte, r.Len())
		_, _ = r.Read(m.ObjectPayload)
		return m, nil
	}

	m.ObjectStatus, err = parseObjectStatus(r, cfg.allowUnknownStatus)
	if err != nil {
		return nil, err
	}
	if r.Len() != 0 {
		return nil, errTrailingBytes
	}
	m.ObjectPayload = []byte{}
	return m, nil
}

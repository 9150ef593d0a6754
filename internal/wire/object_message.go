package wire

import (
	"fmt"
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

// MaxObjectPayloadLength is the largest object payload accepted from a
// stream.
const MaxObjectPayloadLength = 1 << 26

// ObjectMessage is a decoded object together with the addressing it
// inherits from its stream header or datagram.
type ObjectMessage struct {
	TrackAlias        uint64
	SubscribeID       uint64
	GroupID           uint64
	SubgroupID        uint64
	ObjectID          uint64
	PublisherPriority uint8
	ObjectStatus      ObjectStatus
	ObjectPayload     []byte
}

func (m *ObjectMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Uint64("track_alias", m.TrackAlias),
		slog.Uint64("group_id", m.GroupID),
		slog.Uint64("subgroup_id", m.SubgroupID),
		slog.Uint64("object_id", m.ObjectID),
		slog.Any("publisher_priority", m.PublisherPriority),
		slog.Any("object_status", m.ObjectStatus),
		slog.Int("object_payload_length", len(m.ObjectPayload)),
	)
}

// StreamObject is one object on a subgroup stream.
type StreamObject struct {
	ObjectID      uint64
	ObjectStatus  ObjectStatus
	ObjectPayload []byte
}

// Append writes the object. A non-empty payload implies ObjectStatusNormal
// and ObjectStatus is not encoded.
func (o *StreamObject) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, o.ObjectID)
	return appendObjectPayload(buf, o.ObjectStatus, o.ObjectPayload)
}

func (o *StreamObject) parse(r messageReader, allowUnknownStatus bool) (err error) {
	o.ObjectID, err = readVarint(r)
	if err != nil {
		return
	}
	o.ObjectStatus, o.ObjectPayload, err = parseObjectPayload(r, allowUnknownStatus)
	return
}

// FetchObject is one object on a fetch stream. As with StreamObject,
// ObjectStatus is only carried when ObjectPayload is empty.
type FetchObject struct {
	GroupID           uint64
	SubgroupID        uint64
	ObjectID          uint64
	PublisherPriority uint8
	ObjectStatus      ObjectStatus
	ObjectPayload     []byte
}

func (o *FetchObject) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, o.GroupID)
	buf = quicvarint.Append(buf, o.SubgroupID)
	buf = quicvarint.Append(buf, o.ObjectID)
	buf = append(buf, o.PublisherPriority)
	return appendObjectPayload(buf, o.ObjectStatus, o.ObjectPayload)
}

func (o *FetchObject) parse(r messageReader, allowUnknownStatus bool) (err error) {
	o.GroupID, err = readVarint(r)
	if err != nil {
		return
	}
	o.SubgroupID, err = readVarint(r)
	if err != nil {
		return
	}
	o.ObjectID, err = readVarint(r)
	if err != nil {
		return
	}
	o.PublisherPriority, err = readByte(r)
	if err != nil {
		return
	}
	o.ObjectStatus, o.ObjectPayload, err = parseObjectPayload(r, allowUnknownStatus)
	return
}

// appendObjectPayload writes payload_length followed by either the status
// (length zero) or the payload.
func appendObjectPayload(buf []byte, status ObjectStatus, payload []byte) []byte {
	buf = quicvarint.Append(buf, uint64(len(payload)))
	if len(payload) == 0 {
		return quicvarint.Append(buf, uint64(status))
	}
	return append(buf, payload...)
}

func parseObjectPayload(r messageReader, allowUnknownStatus bool) (ObjectStatus, []byte, error) {
	length, err := readVarint(r)
	if err != nil {
		return 0, nil, err
	}
	if length == 0 {
		status, err := parseObjectStatus(r, allowUnknownStatus)
		if err != nil {
			return 0, nil, err
		}
		return status, []byte{}, nil
	}
	if length > MaxObjectPayloadLength {
		return 0, nil, fmt.Errorf("%w: object payload length %d", ErrOutOfRange, length)
	}
	payload, err := readN(r, length)
	if err != nil {
		return 0, nil, err
	}
	return ObjectStatusNormal, payload, nil
}

func parseObjectStatus(r messageReader, allowUnknown bool) (ObjectStatus, error) {
	s, err := readVarint(r)
	if err != nil {
		return 0, err
	}
	status := ObjectStatus(s)
	if !allowUnknown && !status.Valid() {
		return 0, malformed("unknown object status %d", s)
	}
	return status, nil
}

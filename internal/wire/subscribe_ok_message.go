package wire

import (
	"log/slog"
	"time"

	"github.com/quic-go/quic-go/quicvarint"
)

type SubscribeOkMessage struct {
	SubscribeID   uint64
	Expires       time.Duration
	GroupOrder    GroupOrder
	ContentExists bool
	LargestGroup  uint64
	LargestObject uint64
	Parameters    Parameters
}

func (m *SubscribeOkMessage) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", "subscribe_ok"),
		slog.Uint64("subscribe_id", m.SubscribeID),
		slog.Uint64("expires", uint64(m.Expires.Milliseconds())),
		slog.Any("group_order", m.GroupOrder),
		slog.Bool("content_exists", m.ContentExists),
	}
	if m.ContentExists {
		attrs = append(attrs,
			slog.Uint64("largest_group_id", m.LargestGroup),
			slog.Uint64("largest_object_id", m.LargestObject),
		)
	}
	attrs = append(attrs,
		slog.Uint64("number_of_parameters", uint64(len(m.Parameters))),
	)
	return slog.GroupValue(attrs...)
}

func (m SubscribeOkMessage) Type() ControlMessageType {
	return MessageTypeSubscribeOk
}

func (m *SubscribeOkMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, m.SubscribeID)
	buf = quicvarint.Append(buf, uint64(m.Expires.Milliseconds()))
	buf = append(buf, byte(m.GroupOrder))
	buf = appendFlag(buf, m.ContentExists)
	if m.ContentExists {
		buf = quicvarint.Append(buf, m.LargestGroup)
		buf = quicvarint.Append(buf, m.LargestObject)
	}
	return m.Parameters.append(buf)
}

func (m *SubscribeOkMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
	if err != nil {
		return
	}
	expires, err := readVarint(r)
	if err != nil {
		return
	}
	m.Expires = time.Duration(expires) * time.Millisecond
	m.GroupOrder, err = parseGroupOrder(r)
	if err != nil {
		return
	}
	m.ContentExists, err = parseFlag(r, errInvalidContentExists)
	if err != nil {
		return
	}
	if m.ContentExists {
		m.LargestGroup, err = readVarint(r)
		if err != nil {
			return
		}
		m.LargestObject, err = readVarint(r)
		if err != nil {
			return
		}
	}
	return m.Parameters.parse(r)
}

package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

var _ slog.LogValuer = (*MaxSubscribeIDMessage)(nil)

type MaxSubscribeIDMessage struct {
	SubscribeID uint64
}

func (m *MaxSubscribeIDMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "max_subscribe_id"),
		slog.Uint64("max_subscribe_id", m.SubscribeID),
	)
}

func (m MaxSubscribeIDMessage) Type() ControlMessageType {
	return MessageTypeMaxSubscribeID
}

func (m *MaxSubscribeIDMessage) Append(buf []byte) []byte {
	return quicvarint.Append(buf, m.SubscribeID)
}

func (m *MaxSubscribeIDMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
	return err
}

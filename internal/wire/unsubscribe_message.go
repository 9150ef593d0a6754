package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type UnsubscribeMessage struct {
	SubscribeID uint64
}

func (m *UnsubscribeMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "unsubscribe"),
		slog.Uint64("subscribe_id", m.SubscribeID),
	)
}

func (m UnsubscribeMessage) Type() ControlMessageType {
	return MessageTypeUnsubscribe
}

func (m *UnsubscribeMessage) Append(buf []byte) []byte {
	return quicvarint.Append(buf, m.SubscribeID)
}

func (m *UnsubscribeMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
	return err
}

package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type FetchCancelMessage struct {
	SubscribeID uint64
}

func (m *FetchCancelMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "fetch_cancel"),
		slog.Uint64("subscribe_id", m.SubscribeID),
	)
}

func (m FetchCancelMessage) Type() ControlMessageType {
	return MessageTypeFetchCancel
}

func (m *FetchCancelMessage) Append(buf []byte) []byte {
	return quicvarint.Append(buf, m.SubscribeID)
}

func (m *FetchCancelMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
	return err
}

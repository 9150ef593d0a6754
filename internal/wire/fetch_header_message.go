package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type FetchHeaderMessage struct {
	SubscribeID uint64
}

func (m *FetchHeaderMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "fetch_header"),
		slog.Uint64("subscribe_id", m.SubscribeID),
	)
}

func (m *FetchHeaderMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, uint64(StreamTypeFetchHeader))
	return quicvarint.Append(buf, m.SubscribeID)
}

func (m *FetchHeaderMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
	return
}

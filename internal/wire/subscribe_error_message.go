package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type SubscribeErrorMessage struct {
	SubscribeID  uint64
	ErrorCode    uint64
	ReasonPhrase string
	TrackAlias   uint64
}

func (m *SubscribeErrorMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "subscribe_error"),
		slog.Uint64("subscribe_id", m.SubscribeID),
		slog.Uint64("error_code", m.ErrorCode),
		slog.String("reason", m.ReasonPhrase),
		slog.Uint64("track_alias", m.TrackAlias),
	)
}

func (m SubscribeErrorMessage) Type() ControlMessageType {
	return MessageTypeSubscribeError
}

func (m *SubscribeErrorMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, m.SubscribeID)
	buf = quicvarint.Append(buf, m.ErrorCode)
	buf = AppendVarIntBytes(buf, []byte(m.ReasonPhrase))
	return quicvarint.Append(buf, m.TrackAlias)
}

func (m *SubscribeErrorMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
	if err != nil {
		return err
	}
	m.ErrorCode, err = readVarint(r)
	if err != nil {
		return err
	}
	m.ReasonPhrase, err = readVarIntString(r)
	if err != nil {
		return err
	}
	m.TrackAlias, err = readVarint(r)
	return err
}

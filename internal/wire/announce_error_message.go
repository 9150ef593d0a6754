package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type AnnounceErrorMessage struct {
	TrackNamespace Tuple
	ErrorCode      uint64
	ReasonPhrase   string
}

func (m *AnnounceErrorMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "announce_error"),
		slog.Any("track_namespace", m.TrackNamespace),
		slog.Uint64("error_code", m.ErrorCode),
		slog.String("reason", m.ReasonPhrase),
	)
}

func (m AnnounceErrorMessage) Type() ControlMessageType {
	return MessageTypeAnnounceError
}

func (m *AnnounceErrorMessage) Append(buf []byte) []byte {
	buf = m.TrackNamespace.append(buf)
	buf = quicvarint.Append(buf, m.ErrorCode)
	return AppendVarIntBytes(buf, []byte(m.ReasonPhrase))
}

func (m *AnnounceErrorMessage) parse(r messageReader) (err error) {
	if err = m.TrackNamespace.parse(r); err != nil {
		return err
	}
	m.ErrorCode, err = readVarint(r)
	if err != nil {
		return err
	}
	m.ReasonPhrase, err = readVarIntString(r)
	return err
}

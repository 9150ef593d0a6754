package wire

import (
	"log/slog"
)

var _ slog.LogValuer = (*UnannounceMessage)(nil)

type UnannounceMessage struct {
	TrackNamespace Tuple
}

func (m *UnannounceMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "unannounce"),
		slog.Any("track_namespace", m.TrackNamespace),
	)
}

func (m UnannounceMessage) Type() ControlMessageType {
	return MessageTypeUnannounce
}

func (m *UnannounceMessage) Append(buf []byte) []byte {
	return m.TrackNamespace.append(buf)
}

func (m *UnannounceMessage) parse(r messageReader) error {
	return m.TrackNamespace.parse(r)
}

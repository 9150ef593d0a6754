package wire

import (
	"log/slog"
)

type SubscribeAnnouncesMessage struct {
	TrackNamespacePrefix Tuple
	Parameters           Parameters
}

func (m *SubscribeAnnouncesMessage) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", "subscribe_announces"),
		slog.Any("track_namespace_prefix", m.TrackNamespacePrefix),
		slog.Uint64("number_of_parameters", uint64(len(m.Parameters))),
	}
	if len(m.Parameters) > 0 {
		attrs = append(attrs,
			slog.Any("parameters", m.Parameters),
		)
	}
	return slog.GroupValue(attrs...)
}

func (m SubscribeAnnouncesMessage) Type() ControlMessageType {
	return MessageTypeSubscribeAnnounces
}

func (m *SubscribeAnnouncesMessage) Append(buf []byte) []byte {
	buf = m.TrackNamespacePrefix.append(buf)
	return m.Parameters.append(buf)
}

func (m *SubscribeAnnouncesMessage) parse(r messageReader) error {
	if err := m.TrackNamespacePrefix.parse(r); err != nil {
		return err
	}
	return m.Parameters.parse(r)
}

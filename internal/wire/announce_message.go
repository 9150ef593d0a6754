package wire

import "log/slog"

type AnnounceMessage struct {
	TrackNamespace Tuple
	Parameters     Parameters
}

func (m *AnnounceMessage) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", "announce"),
		slog.Any("track_namespace", m.TrackNamespace),
		slog.Uint64("number_of_parameters", uint64(len(m.Parameters))),
	}
	if len(m.Parameters) > 0 {
		attrs = append(attrs,
			slog.Any("parameters", m.Parameters),
		)
	}
	return slog.GroupValue(attrs...)
}

func (m AnnounceMessage) Type() ControlMessageType {
	return MessageTypeAnnounce
}

func (m *AnnounceMessage) Append(buf []byte) []byte {
	buf = m.TrackNamespace.append(buf)
	return m.Parameters.append(buf)
}

func (m *AnnounceMessage) parse(r messageReader) error {
	if err := m.TrackNamespace.parse(r); err != nil {
		return err
	}
	return m.Parameters.parse(r)
}

package wire

import "log/slog"

type TrackStatusRequestMessage struct {
	TrackNamespace Tuple
	TrackName      string
}

func (m *TrackStatusRequestMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "track_status_request"),
		slog.Any("track_namespace", m.TrackNamespace),
		slog.String("track_name", m.TrackName),
	)
}

func (m TrackStatusRequestMessage) Type() ControlMessageType {
	return MessageTypeTrackStatusRequest
}

func (m *TrackStatusRequestMessage) Append(buf []byte) []byte {
	buf = m.TrackNamespace.append(buf)
	return AppendVarIntBytes(buf, []byte(m.TrackName))
}

func (m *TrackStatusRequestMessage) parse(r messageReader) (err error) {
	if err = m.TrackNamespace.parse(r); err != nil {
		return
	}
	m.TrackName, err = readVarIntString(r)
	return
}

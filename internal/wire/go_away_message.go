package wire

import "log/slog"

// GoAwayMessage asks the peer to migrate. An empty NewSessionURI means no
// redirect.
type GoAwayMessage struct {
	NewSessionURI string
}

func (m *GoAwayMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "goaway"),
		slog.String("new_session_uri", m.NewSessionURI),
	)
}

func (m GoAwayMessage) Type() ControlMessageType {
	return MessageTypeGoAway
}

func (m *GoAwayMessage) Append(buf []byte) []byte {
	return AppendVarIntBytes(buf, []byte(m.NewSessionURI))
}

func (m *GoAwayMessage) parse(r messageReader) (err error) {
	m.NewSessionURI, err = readVarIntString(r)
	return err
}

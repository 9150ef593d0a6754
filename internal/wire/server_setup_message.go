package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type ServerSetupMessage struct {
	SelectedVersion Version
	SetupParameters Parameters
}

func (m *ServerSetupMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "server_setup"),
		slog.Any("selected_version", m.SelectedVersion),
		slog.Uint64("number_of_parameters", uint64(len(m.SetupParameters))),
	)
}

func (m ServerSetupMessage) Type() ControlMessageType {
	return MessageTypeServerSetup
}

func (m *ServerSetupMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, uint64(m.SelectedVersion))
	return m.SetupParameters.append(buf)
}

func (m *ServerSetupMessage) parse(r messageReader) error {
	sv, err := readVarint(r)
	if err != nil {
		return err
	}
	m.SelectedVersion = Version(sv)
	return m.SetupParameters.parse(r)
}

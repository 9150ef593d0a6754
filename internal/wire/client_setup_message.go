package wire

import (
	"log/slog"
)

var _ slog.LogValuer = (*ClientSetupMessage)(nil)

type ClientSetupMessage struct {
	SupportedVersions versions
	SetupParameters   Parameters
}

func (m *ClientSetupMessage) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", "client_setup"),
		slog.Uint64("number_of_supported_versions", uint64(len(m.SupportedVersions))),
		slog.Any("supported_versions", m.SupportedVersions),
		slog.Uint64("number_of_parameters", uint64(len(m.SetupParameters))),
	}
	if len(m.SetupParameters) > 0 {
		attrs = append(attrs,
			slog.Any("setup_parameters", m.SetupParameters),
		)
	}
	return slog.GroupValue(attrs...)
}

func (m ClientSetupMessage) Type() ControlMessageType {
	return MessageTypeClientSetup
}

func (m *ClientSetupMessage) Append(buf []byte) []byte {
	buf = m.SupportedVersions.append(buf)
	return m.SetupParameters.append(buf)
}

func (m *ClientSetupMessage) parse(r messageReader) error {
	if err := m.SupportedVersions.parse(r); err != nil {
		return err
	}
	return m.SetupParameters.parse(r)
}

package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

// Track status codes
const (
	TrackStatusInProgress   uint64 = 0x00
	TrackStatusDoesNotExist uint64 = 0x01
	TrackStatusNotYetBegun  uint64 = 0x02
	TrackStatusFinished     uint64 = 0x03
	TrackStatusRelay        uint64 = 0x04
)

type TrackStatusMessage struct {
	TrackNamespace Tuple
	TrackName      string
	StatusCode     uint64
	LastGroupID    uint64
	LastObjectID   uint64
}

func (m *TrackStatusMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "track_status"),
		slog.Any("track_namespace", m.TrackNamespace),
		slog.String("track_name", m.TrackName),
		slog.Uint64("status_code", m.StatusCode),
		slog.Uint64("last_group_id", m.LastGroupID),
		slog.Uint64("last_object_id", m.LastObjectID),
	)
}

func (m TrackStatusMessage) Type() ControlMessageType {
	return MessageTypeTrackStatus
}

func (m *TrackStatusMessage) Append(buf []byte) []byte {
	buf = m.TrackNamespace.append(buf)
	buf = AppendVarIntBytes(buf, []byte(m.TrackName))
	buf = quicvarint.Append(buf, m.StatusCode)
	buf = quicvarint.Append(buf, m.LastGroupID)
	return quicvarint.Append(buf, m.LastObjectID)
}

func (m *TrackStatusMessage) parse(r messageReader) (err error) {
	if err = m.TrackNamespace.parse(r); err != nil {
		return
	}
	m.TrackName, err = readVarIntString(r)
	if err != nil {
		return
	}
	m.StatusCode, err = readVarint(r)
	if err != nil {
		return
	}
	m.LastGroupID, err = readVarint(r)
	if err != nil {
		return
	}
	m.LastObjectID, err = readVarint(r)
	return
}

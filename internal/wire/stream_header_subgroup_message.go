package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type StreamHeaderSubgroupMessage struct {
	TrackAlias        uint64
	GroupID           uint64
	SubgroupID        uint64
	PublisherPriority uint8
}

func (m *StreamHeaderSubgroupMessage) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("type", "stream_header_subgroup"),
		slog.Uint64("track_alias", m.TrackAlias),
		slog.Uint64("group_id", m.GroupID),
		slog.Uint64("subgroup_id", m.SubgroupID),
		slog.Any("publisher_priority", m.PublisherPriority),
	)
}

func (m *StreamHeaderSubgroupMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, uint64(StreamTypeSubgroupHeader))
	buf = quicvarint.Append(buf, m.TrackAlias)
	buf = quicvarint.Append(buf, m.GroupID)
	buf = quicvarint.Append(buf, m.SubgroupID)
	return append(buf, m.PublisherPriority)
}

func (m *StreamHeaderSubgroupMessage) parse(r messageReader) (err error) {
	m.TrackAlias, err = readVarint(r)
	if err != nil {
		return
	}
	m.GroupID, err = readVarint(r)
	if err != nil {
		return
	}
	m.SubgroupID, err = readVarint(r)
	if err != nil {
		return
	}
	m.PublisherPriority, err = readByte(r)
	return
}

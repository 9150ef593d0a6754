package wire

import (
	"fmt"
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type FetchType uint64

const (
	FetchTypeStandalone FetchType = 0x01
	FetchTypeJoining    FetchType = 0x02
)

func (t FetchType) String() string {
	switch t {
	case FetchTypeStandalone:
		return "Standalone"
	case FetchTypeJoining:
		return "Joining"
	}
	return fmt.Sprintf("Unknown(%d)", uint64(t))
}

var _ slog.LogValuer = (*FetchMessage)(nil)

type FetchMessage struct {
	SubscribeID          uint64
	SubscriberPriority   uint8
	GroupOrder           GroupOrder
	FetchType            FetchType
	TrackNamespace       Tuple
	TrackName            []byte
	StartGroup           uint64
	StartObject          uint64
	EndGroup             uint64
	EndObject            uint64
	JoiningSubscribeID   uint64
	PrecedingGroupOffset uint64
	Parameters           Parameters
}

func (m *FetchMessage) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", "fetch"),
		slog.Uint64("subscribe_id", m.SubscribeID),
		slog.Any("subscriber_priority", m.SubscriberPriority),
		slog.Any("group_order", m.GroupOrder),
		slog.Any("fetch_type", m.FetchType),
	}
	if m.FetchType == FetchTypeStandalone {
		attrs = append(attrs,
			slog.Any("track_namespace", m.TrackNamespace),
			slog.String("track_name", string(m.TrackName)),
			slog.Uint64("start_group", m.StartGroup),
			slog.Uint64("start_object", m.StartObject),
			slog.Uint64("end_group", m.EndGroup),
			slog.Uint64("end_object", m.EndObject),
		)
	}
	if m.FetchType == FetchTypeJoining {
		attrs = append(attrs,
			slog.Uint64("joining_subscribe_id", m.JoiningSubscribeID),
			slog.Uint64("preceding_group_offset", m.PrecedingGroupOffset),
		)
	}
	attrs = append(attrs,
		slog.Uint64("number_of_parameters", uint64(len(m.Parameters))),
	)
	if len(m.Parameters) > 0 {
		attrs = append(attrs, slog.Any("parameters", m.Parameters))
	}
	return slog.GroupValue(attrs...)
}

func (m FetchMessage) Type() ControlMessageType {
	return MessageTypeFetch
}

func (m *FetchMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, m.SubscribeID)
	buf = append(buf, m.SubscriberPriority)
	buf = append(buf, byte(m.GroupOrder))
	if m.FetchType == FetchTypeJoining {
		buf = quicvarint.Append(buf, uint64(FetchTypeJoining))
		buf = quicvarint.Append(buf, m.JoiningSubscribeID)
		buf = quicvarint.Append(buf, m.PrecedingGroupOffset)
		return m.Parameters.append(buf)
	}
	buf = quicvarint.Append(buf, uint64(FetchTypeStandalone))
	buf = m.TrackNamespace.append(buf)
	buf = AppendVarIntBytes(buf, m.TrackName)
	buf = quicvarint.Append(buf, m.StartGroup)
	buf = quicvarint.Append(buf, m.StartObject)
	buf = quicvarint.Append(buf, m.EndGroup)
	buf = quicvarint.Append(buf, m.EndObject)
	return m.Parameters.append(buf)
}

func (m *FetchMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
	if err != nil {
		return err
	}
	m.SubscriberPriority, err = readByte(r)
	if err != nil {
		return err
	}
	m.GroupOrder, err = parseGroupOrder(r)
	if err != nil {
		return err
	}
	fetchType, err := readVarint(r)
	if err != nil {
		return err
	}
	m.FetchType = FetchType(fetchType)

	switch m.FetchType {
	case FetchTypeStandalone:
		if err = m.TrackNamespace.parse(r); err != nil {
			return err
		}
		m.TrackName, err = readVarIntBytes(r)
		if err != nil {
			return err
		}
		m.StartGroup, err = readVarint(r)
		if err != nil {
			return err
		}
		m.StartObject, err = readVarint(r)
		if err != nil {
			return err
		}
		m.EndGroup, err = readVarint(r)
		if err != nil {
			return err
		}
		m.EndObject, err = readVarint(r)
		if err != nil {
			return err
		}
	case FetchTypeJoining:
		m.JoiningSubscribeID, err = readVarint(r)
		if err != nil {
			return err
		}
		m.PrecedingGroupOffset, err = readVarint(r)
		if err != nil {
			return err
		}
	default:
		return errInvalidFetchType
	}
	return m.Parameters.parse(r)
}

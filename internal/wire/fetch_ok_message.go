package wire

import (
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type FetchOkMessage struct {
	SubscribeID         uint64
	GroupOrder          GroupOrder
	EndOfTrack          bool
	LargestGroup        uint64
	LargestObject       uint64
	SubscribeParameters Parameters
}

func (m *FetchOkMessage) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", "fetch_ok"),
		slog.Uint64("subscribe_id", m.SubscribeID),
		slog.Any("group_order", m.GroupOrder),
		slog.Bool("end_of_track", m.EndOfTrack),
		slog.Uint64("largest_group_id", m.LargestGroup),
		slog.Uint64("largest_object_id", m.LargestObject),
		slog.Uint64("number_of_parameters", uint64(len(m.SubscribeParameters))),
	}
	if len(m.SubscribeParameters) > 0 {
		attrs = append(attrs,
			slog.Any("subscribe_parameters", m.SubscribeParameters),
		)
	}
	return slog.GroupValue(attrs...)
}

func (m FetchOkMessage) Type() ControlMessageType {
	return MessageTypeFetchOk
}

func (m *FetchOkMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, m.SubscribeID)
	buf = append(buf, byte(m.GroupOrder))
	buf = appendFlag(buf, m.EndOfTrack)
	buf = quicvarint.Append(buf, m.LargestGroup)
	buf = quicvarint.Append(buf, m.LargestObject)
	return m.SubscribeParameters.append(buf)
}

func (m *FetchOkMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
	if err != nil {
		return err
	}
	m.GroupOrder, err = parseGroupOrder(r)
	if err != nil {
		return err
	}
	m.EndOfTrack, err = parseFlag(r, errInvalidEndOfTrack)
	if err != nil {
		return err
	}
	m.LargestGroup, err = readVarint(r)
	if err != nil {
		return err
	}
	m.LargestObject, err = readVarint(r)
	if err != nil {
		return err
	}
	return m.SubscribeParameters.parse(r)
}

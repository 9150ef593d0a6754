package wire

import (
	"fmt"
	"log/slog"

	"github.com/quic-go/quic-go/quicvarint"
)

type FilterType uint64

const (
	FilterTypeLatestGroup   FilterType = 0x01
	FilterTypeLatestObject  FilterType = 0x02
	FilterTypeAbsoluteStart FilterType = 0x03
	FilterTypeAbsoluteRange FilterType = 0x04
)

// String returns a human-readable description of the FilterType.
func (f FilterType) String() string {
	switch f {
	case FilterTypeLatestGroup:
		return "LatestGroup"
	case FilterTypeLatestObject:
		return "LatestObject"
	case FilterTypeAbsoluteStart:
		return "AbsoluteStart"
	case FilterTypeAbsoluteRange:
		return "AbsoluteRange"
	default:
		return fmt.Sprintf("Unknown(%d)", uint64(f))
	}
}

func (f FilterType) valid() bool {
	return f >= FilterTypeLatestGroup && f <= FilterTypeAbsoluteRange
}

func (f FilterType) hasStart() bool {
	return f == FilterTypeAbsoluteStart || f == FilterTypeAbsoluteRange
}

func (f FilterType) hasEnd() bool {
	return f == FilterTypeAbsoluteRange
}

// make sure we always set a valid value instead of the zero value (0)
func (f FilterType) append(buf []byte) []byte {
	if f.valid() {
		return quicvarint.Append(buf, uint64(f))
	}
	return quicvarint.Append(buf, uint64(FilterTypeLatestGroup))
}

type GroupOrder uint8

const (
	// GroupOrderNone indicates no specific ordering preference.
	GroupOrderNone GroupOrder = 0x0

	// GroupOrderAscending indicates groups should be delivered in ascending order.
	GroupOrderAscending GroupOrder = 0x1

	// GroupOrderDescending indicates groups should be delivered in descending order.
	GroupOrderDescending GroupOrder = 0x2
)

// String returns a human-readable description of the GroupOrder.
func (g GroupOrder) String() string {
	switch g {
	case GroupOrderNone:
		return "None"
	case GroupOrderAscending:
		return "Ascending"
	case GroupOrderDescending:
		return "Descending"
	default:
		return fmt.Sprintf("Invalid(%d)", uint8(g))
	}
}

func parseGroupOrder(r messageReader) (GroupOrder, error) {
	b, err := readByte(r)
	if err != nil {
		return 0, err
	}
	if b > byte(GroupOrderDescending) {
		return 0, errInvalidGroupOrder
	}
	return GroupOrder(b), nil
}

func parseFlag(r messageReader, invalid error) (bool, error) {
	b, err := readByte(r)
	if err != nil {
		return false, err
	}
	switch b {
	case 0:
		return false, nil
	case 1:
		return true, nil
	}
	return false, invalid
}

func appendFlag(buf []byte, f bool) []byte {
	if f {
		return append(buf, 1)
	}
	return append(buf, 0)
}

type SubscribeMessage struct {
	SubscribeID        uint64
	TrackAlias         uint64
	TrackNamespace     Tuple
	TrackName          []byte
	SubscriberPriority uint8
	GroupOrder         GroupOrder
	FilterType         FilterType
	StartGroup         uint64
	StartObject        uint64
	EndGroup           uint64
	EndObject          uint64
	Parameters         Parameters
}

func (m *SubscribeMessage) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.String("type", "subscribe"),
		slog.Uint64("subscribe_id", m.SubscribeID),
		slog.Uint64("track_alias", m.TrackAlias),
		slog.Any("track_namespace", m.TrackNamespace),
		slog.String("track_name", string(m.TrackName)),
		slog.Any("subscriber_priority", m.SubscriberPriority),
		slog.Any("group_order", m.GroupOrder),
		slog.Any("filter_type", m.FilterType),
	}
	if m.FilterType.hasStart() {
		attrs = append(attrs,
			slog.Uint64("start_group", m.StartGroup),
			slog.Uint64("start_object", m.StartObject),
		)
	}
	if m.FilterType.hasEnd() {
		attrs = append(attrs,
			slog.Uint64("end_group", m.EndGroup),
			slog.Uint64("end_object", m.EndObject),
		)
	}
	attrs = append(attrs,
		slog.Uint64("number_of_parameters", uint64(len(m.Parameters))),
	)
	if len(m.Parameters) > 0 {
		attrs = append(attrs,
			slog.Any("subscribe_parameters", m.Parameters),
		)
	}
	return slog.GroupValue(attrs...)
}

func (m SubscribeMessage) Type() ControlMessageType {
	return MessageTypeSubscribe
}

func (m *SubscribeMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, m.SubscribeID)
	buf = quicvarint.Append(buf, m.TrackAlias)
	buf = m.TrackNamespace.append(buf)
	buf = AppendVarIntBytes(buf, m.TrackName)
	buf = append(buf, m.SubscriberPriority)
	buf = append(buf, byte(m.GroupOrder))
	buf = m.FilterType.append(buf)
	if m.FilterType.hasStart() {
		buf = quicvarint.Append(buf, m.StartGroup)
		buf = quicvarint.Append(buf, m.StartObject)
	}
	if m.FilterType.hasEnd() {
		buf = quicvarint.Append(buf, m.EndGroup)
		buf = quicvarint.Append(buf, m.EndObject)
	}
	return m.Parameters.append(buf)
}

func (m *SubscribeMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
	if err != nil {
		return err
	}
	m.TrackAlias, err = readVarint(r)
	if err != nil {
		return err
	}
	if err = m.TrackNamespace.parse(r); err != nil {
		return err
	}
	m.TrackName, err = readVarIntBytes(r)
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
	filterType, err := readVarint(r)
	if err != nil {
		return err
	}
	m.FilterType = FilterType(filterType)
	if !m.FilterType.valid() {
		return errInvalidFilterType
	}
	if m.FilterType.hasStart() {
		m.StartGroup, err = readVarint(r)
		if err != nil {
			return err
		}
		m.StartObject, err = readVarint(r)
		if err != nil {
			return err
		}
	}
	if m.FilterType.hasEnd() {
		m.EndGroup, err = readVarint(r)
		if err != nil {
			return err
		}
		m.EndObject, err = readVarint(r)
		if err != nil {
			return err
		}
	}
	return m.Parameters.parse(r)
}

package wire

import (
	"github.com/quic-go/quic-go/quicvarint"
)

type SubscribeUpdateMessage struct {
	SubscribeID        uint64
	StartGroup         uint64
	StartObject        uint64
	EndGroup           uint64
	EndObject          uint64
	SubscriberPriority uint8
	Parameters         Parameters
}

func (m SubscribeUpdateMessage) Type() ControlMessageType {
	return MessageTypeSubscribeUpdate
}

func (m *SubscribeUpdateMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, m.SubscribeID)
	buf = quicvarint.Append(buf, m.StartGroup)
	buf = quicvarint.Append(buf, m.StartObject)
	buf = quicvarint.Append(buf, m.EndGroup)
	buf = quicvarint.Append(buf, m.EndObject)
	buf = append(buf, m.SubscriberPriority)
	return m.Parameters.append(buf)
}

func (m *SubscribeUpdateMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
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
	m.SubscriberPriority, err = readByte(r)
	if err != nil {
		return err
	}
	return m.Parameters.parse(r)
}

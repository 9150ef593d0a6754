package wire

import (
	"github.com/quic-go/quic-go/quicvarint"
)

type FetchErrorMessage struct {
	SubscribeID  uint64
	ErrorCode    uint64
	ReasonPhrase string
}

func (m FetchErrorMessage) Type() ControlMessageType {
	return MessageTypeFetchError
}

func (m *FetchErrorMessage) Append(buf []byte) []byte {
	buf = quicvarint.Append(buf, m.SubscribeID)
	buf = quicvarint.Append(buf, m.ErrorCode)
	return AppendVarIntBytes(buf, []byte(m.ReasonPhrase))
}

func (m *FetchErrorMessage) parse(r messageReader) (err error) {
	m.SubscribeID, err = readVarint(r)
	if err != nil {
		return err
	}
	m.ErrorCode, err = readVarint(r)
	if err != nil {
		return err
	}
	m.ReasonPhrase, err = readVarIntString(r)
	return err
}

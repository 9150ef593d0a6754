package wire

import "github.com/quic-go/quic-go/quicvarint"

type SubscribeAnnouncesErrorMessage struct {
	TrackNamespacePrefix Tuple
	ErrorCode            uint64
	ReasonPhrase         string
}

func (m SubscribeAnnouncesErrorMessage) Type() ControlMessageType {
	return MessageTypeSubscribeAnnouncesError
}

func (m *SubscribeAnnouncesErrorMessage) Append(buf []byte) []byte {
	buf = m.TrackNamespacePrefix.append(buf)
	buf = quicvarint.Append(buf, m.ErrorCode)
	return AppendVarIntBytes(buf, []byte(m.ReasonPhrase))
}

func (m *SubscribeAnnouncesErrorMessage) parse(r messageReader) (err error) {
	if err = m.TrackNamespacePrefix.parse(r); err != nil {
		return err
	}
	m.ErrorCode, err = readVarint(r)
	if err != nil {
		return err
	}
	m.ReasonPhrase, err = readVarIntString(r)
	return err
}

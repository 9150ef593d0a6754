package wire

import "github.com/quic-go/quic-go/quicvarint"

type AnnounceCancelMessage struct {
	TrackNamespace Tuple
	ErrorCode      uint64
	ReasonPhrase   string
}

func (m AnnounceCancelMessage) Type() ControlMessageType {
	return MessageTypeAnnounceCancel
}

func (m *AnnounceCancelMessage) Append(buf []byte) []byte {
	buf = m.TrackNamespace.append(buf)
	buf = quicvarint.Append(buf, m.ErrorCode)
	return AppendVarIntBytes(buf, []byte(m.ReasonPhrase))
}

func (m *AnnounceCancelMessage) parse(r messageReader) (err error) {
	if err = m.TrackNamespace.parse(r); err != nil {
		return err
	}
	m.ErrorCode, err = readVarint(r)
	if err != nil {
		return err
	}
	m.ReasonPhrase, err = readVarIntString(r)
	return err
}

package wire

type AnnounceOkMessage struct {
	TrackNamespace Tuple
}

func (m AnnounceOkMessage) Type() ControlMessageType {
	return MessageTypeAnnounceOk
}

func (m *AnnounceOkMessage) Append(buf []byte) []byte {
	return m.TrackNamespace.append(buf)
}

func (m *AnnounceOkMessage) parse(r messageReader) error {
	return m.TrackNamespace.parse(r)
}

package wire

type SubscribeAnnouncesOkMessage struct {
	TrackNamespacePrefix Tuple
}

func (m SubscribeAnnouncesOkMessage) Type() ControlMessageType {
	return MessageTypeSubscribeAnnouncesOk
}

func (m *SubscribeAnnouncesOkMessage) Append(buf []byte) []byte {
	return m.TrackNamespacePrefix.append(buf)
}

func (m *SubscribeAnnouncesOkMessage) parse(r messageReader) error {
	return m.TrackNamespacePrefix.parse(r)
}

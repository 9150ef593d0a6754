package wire

type UnsubscribeAnnouncesMessage struct {
	TrackNamespacePrefix Tuple
}

func (m UnsubscribeAnnouncesMessage) Type() ControlMessageType {
	return MessageTypeUnsubscribeAnnounces
}

func (m *UnsubscribeAnnouncesMessage) Append(buf []byte) []byte {
	return m.TrackNamespacePrefix.append(buf)
}

func (m *UnsubscribeAnnouncesMessage) parse(r messageReader) error {
	return m.TrackNamespacePrefix.parse(r)
}

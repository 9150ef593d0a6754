package wire

import "fmt"

type ControlMessageType uint64

// Control message types
const (
	MessageTypeSubscribeUpdate         ControlMessageType = 0x02
	MessageTypeSubscribe               ControlMessageType = 0x03
	MessageTypeSubscribeOk             ControlMessageType = 0x04
	MessageTypeSubscribeError          ControlMessageType = 0x05
	MessageTypeAnnounce                ControlMessageType = 0x06
	MessageTypeAnnounceOk              ControlMessageType = 0x07
	MessageTypeAnnounceError           ControlMessageType = 0x08
	MessageTypeUnannounce              ControlMessageType = 0x09
	MessageTypeUnsubscribe             ControlMessageType = 0x0a
	MessageTypeSubscribeDone           ControlMessageType = 0x0b
	MessageTypeAnnounceCancel          ControlMessageType = 0x0c
	MessageTypeTrackStatusRequest      ControlMessageType = 0x0d
	MessageTypeTrackStatus             ControlMessageType = 0x0e
	MessageTypeGoAway                  ControlMessageType = 0x10
	MessageTypeSubscribeAnnounces      ControlMessageType = 0x11
	MessageTypeSubscribeAnnouncesOk    ControlMessageType = 0x12
	MessageTypeSubscribeAnnouncesError ControlMessageType = 0x13
	MessageTypeUnsubscribeAnnounces    ControlMessageType = 0x14
	MessageTypeMaxSubscribeID          ControlMessageType = 0x15
	MessageTypeFetch                   ControlMessageType = 0x16
	MessageTypeFetchCancel             ControlMessageType = 0x17
	MessageTypeFetchOk                 ControlMessageType = 0x18
	MessageTypeFetchError              ControlMessageType = 0x19
	MessageTypeSubscribesBlocked       ControlMessageType = 0x1a
	MessageTypeClientSetup             ControlMessageType = 0x40
	MessageTypeServerSetup             ControlMessageType = 0x41
)

// ControlMessageTypes returns every known control message type in ascending
// order.
func ControlMessageTypes() []ControlMessageType {
	return []ControlMessageType{
		MessageTypeSubscribeUpdate,
		MessageTypeSubscribe,
		MessageTypeSubscribeOk,
		MessageTypeSubscribeError,
		MessageTypeAnnounce,
		MessageTypeAnnounceOk,
		MessageTypeAnnounceError,
		MessageTypeUnannounce,
		MessageTypeUnsubscribe,
		MessageTypeSubscribeDone,
		MessageTypeAnnounceCancel,
		MessageTypeTrackStatusRequest,
		MessageTypeTrackStatus,
		MessageTypeGoAway,
		MessageTypeSubscribeAnnounces,
		MessageTypeSubscribeAnnouncesOk,
		MessageTypeSubscribeAnnouncesError,
		MessageTypeUnsubscribeAnnounces,
		MessageTypeMaxSubscribeID,
		MessageTypeFetch,
		MessageTypeFetchCancel,
		MessageTypeFetchOk,
		MessageTypeFetchError,
		MessageTypeSubscribesBlocked,
		MessageTypeClientSetup,
		MessageTypeServerSetup,
	}
}

func (mt ControlMessageType) String() string {
	switch mt {
	case MessageTypeSubscribeUpdate:
		return "SubscribeUpdateMessage"
	case MessageTypeSubscribe:
		return "SubscribeMessage"
	case MessageTypeSubscribeOk:
		return "SubscribeOkMessage"
	case MessageTypeSubscribeError:
		return "SubscribeErrorMessage"
	case MessageTypeAnnounce:
		return "AnnounceMessage"
	case MessageTypeAnnounceOk:
		return "AnnounceOkMessage"
	case MessageTypeAnnounceError:
		return "AnnounceErrorMessage"
	case MessageTypeUnannounce:
		return "UnannounceMessage"
	case MessageTypeUnsubscribe:
		return "UnsubscribeMessage"
	case MessageTypeSubscribeDone:
		return "SubscribeDoneMessage"
	case MessageTypeAnnounceCancel:
		return "AnnounceCancelMessage"
	case MessageTypeTrackStatusRequest:
		return "TrackStatusRequestMessage"
	case MessageTypeTrackStatus:
		return "TrackStatusMessage"
	case MessageTypeGoAway:
		return "GoAwayMessage"
	case MessageTypeClientSetup:
		return "ClientSetupMessage"
	case MessageTypeServerSetup:
		return "ServerSetupMessage"
	case MessageTypeFetch:
		return "FetchMessage"
	case MessageTypeFetchCancel:
		return "FetchCancelMessage"
	case MessageTypeFetchError:
		return "FetchErrorMessage"
	case MessageTypeFetchOk:
		return "FetchOkMessage"
	case MessageTypeMaxSubscribeID:
		return "MaxSubscribeIDMessage"
	case MessageTypeSubscribeAnnounces:
		return "SubscribeAnnouncesMessage"
	case MessageTypeSubscribeAnnouncesError:
		return "SubscribeAnnouncesErrorMessage"
	case MessageTypeSubscribeAnnouncesOk:
		return "SubscribeAnnouncesOkMessage"
	case MessageTypeSubscribesBlocked:
		return "SubscribesBlockedMessage"
	case MessageTypeUnsubscribeAnnounces:
		return "UnsubscribeAnnouncesMessage"
	}
	return fmt.Sprintf("UnknownMessage(%#x)", uint64(mt))
}

// Message is anything that can be appended to a buffer in its wire format.
type Message interface {
	Append([]byte) []byte
}

// ControlMessage is the closed set of MoQT control messages. The unexported
// parse method keeps implementations inside this package.
type ControlMessage interface {
	Message
	Type() ControlMessageType
	parse(messageReader) error
}

func newControlMessage(mt ControlMessageType) (ControlMessage, error) {
	switch mt {
	case MessageTypeClientSetup:
		return &ClientSetupMessage{}, nil
	case MessageTypeServerSetup:
		return &ServerSetupMessage{}, nil

	case MessageTypeGoAway:
		return &GoAwayMessage{}, nil

	case MessageTypeMaxSubscribeID:
		return &MaxSubscribeIDMessage{}, nil
	case MessageTypeSubscribesBlocked:
		return &SubscribesBlockedMessage{}, nil

	case MessageTypeSubscribe:
		return &SubscribeMessage{}, nil
	case MessageTypeSubscribeOk:
		return &SubscribeOkMessage{}, nil
	case MessageTypeSubscribeError:
		return &SubscribeErrorMessage{}, nil
	case MessageTypeUnsubscribe:
		return &UnsubscribeMessage{}, nil
	case MessageTypeSubscribeUpdate:
		return &SubscribeUpdateMessage{}, nil
	case MessageTypeSubscribeDone:
		return &SubscribeDoneMessage{}, nil

	case MessageTypeFetch:
		return &FetchMessage{}, nil
	case MessageTypeFetchOk:
		return &FetchOkMessage{}, nil
	case MessageTypeFetchError:
		return &FetchErrorMessage{}, nil
	case MessageTypeFetchCancel:
		return &FetchCancelMessage{}, nil

	case MessageTypeTrackStatusRequest:
		return &TrackStatusRequestMessage{}, nil
	case MessageTypeTrackStatus:
		return &TrackStatusMessage{}, nil

	case MessageTypeAnnounce:
		return &AnnounceMessage{}, nil
	case MessageTypeAnnounceOk:
		return &AnnounceOkMessage{}, nil
	case MessageTypeAnnounceError:
		return &AnnounceErrorMessage{}, nil
	case MessageTypeUnannounce:
		return &UnannounceMessage{}, nil
	case MessageTypeAnnounceCancel:
		return &AnnounceCancelMessage{}, nil

	case MessageTypeSubscribeAnnounces:
		return &SubscribeAnnouncesMessage{}, nil
	case MessageTypeSubscribeAnnouncesOk:
		return &SubscribeAnnouncesOkMessage{}, nil
	case MessageTypeSubscribeAnnouncesError:
		return &SubscribeAnnouncesErrorMessage{}, nil
	case MessageTypeUnsubscribeAnnounces:
		return &UnsubscribeAnnouncesMessage{}, nil
	}
	return nil, UnknownControlTypeError{Type: mt}
}

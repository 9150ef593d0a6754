package moqdemux

import "github.com/mengelbart/moqdemux/internal/wire"

type (
	ControlMessage     = wire.ControlMessage
	ControlMessageType = wire.ControlMessageType
	StreamType         = wire.StreamType
	DatagramType       = wire.DatagramType
	ObjectStatus       = wire.ObjectStatus
	Version            = wire.Version
	Tuple              = wire.Tuple
	Parameter          = wire.Parameter
	Parameters         = wire.Parameters
	GroupOrder         = wire.GroupOrder
	FilterType         = wire.FilterType
	FetchType          = wire.FetchType

	ClientSetupMessage             = wire.ClientSetupMessage
	ServerSetupMessage             = wire.ServerSetupMessage
	GoAwayMessage                  = wire.GoAwayMessage
	SubscribeMessage               = wire.SubscribeMessage
	SubscribeOkMessage             = wire.SubscribeOkMessage
	SubscribeErrorMessage          = wire.SubscribeErrorMessage
	SubscribeUpdateMessage         = wire.SubscribeUpdateMessage
	UnsubscribeMessage             = wire.UnsubscribeMessage
	SubscribeDoneMessage           = wire.SubscribeDoneMessage
	AnnounceMessage                = wire.AnnounceMessage
	AnnounceOkMessage              = wire.AnnounceOkMessage
	AnnounceErrorMessage           = wire.AnnounceErrorMessage
	UnannounceMessage              = wire.UnannounceMessage
	AnnounceCancelMessage          = wire.AnnounceCancelMessage
	TrackStatusRequestMessage      = wire.TrackStatusRequestMessage
	TrackStatusMessage             = wire.TrackStatusMessage
	SubscribeAnnouncesMessage      = wire.SubscribeAnnouncesMessage
	SubscribeAnnouncesOkMessage    = wire.SubscribeAnnouncesOkMessage
	SubscribeAnnouncesErrorMessage = wire.SubscribeAnnouncesErrorMessage
	UnsubscribeAnnouncesMessage    = wire.UnsubscribeAnnouncesMessage
	MaxSubscribeIDMessage          = wire.MaxSubscribeIDMessage
	SubscribesBlockedMessage       = wire.SubscribesBlockedMessage
	FetchMessage                   = wire.FetchMessage
	FetchOkMessage                 = wire.FetchOkMessage
	FetchErrorMessage              = wire.FetchErrorMessage
	FetchCancelMessage             = wire.FetchCancelMessage

	StreamHeaderSubgroupMessage = wire.StreamHeaderSubgroupMessage
	FetchHeaderMessage          = wire.FetchHeaderMessage
	ObjectDatagramMessage       = wire.ObjectDatagramMessage
)

// Control message types
const (
	MessageTypeSubscribeUpdate         = wire.MessageTypeSubscribeUpdate
	MessageTypeSubscribe               = wire.MessageTypeSubscribe
	MessageTypeSubscribeOk             = wire.MessageTypeSubscribeOk
	MessageTypeSubscribeError          = wire.MessageTypeSubscribeError
	MessageTypeAnnounce                = wire.MessageTypeAnnounce
	MessageTypeAnnounceOk              = wire.MessageTypeAnnounceOk
	MessageTypeAnnounceError           = wire.MessageTypeAnnounceError
	MessageTypeUnannounce              = wire.MessageTypeUnannounce
	MessageTypeUnsubscribe             = wire.MessageTypeUnsubscribe
	MessageTypeSubscribeDone           = wire.MessageTypeSubscribeDone
	MessageTypeAnnounceCancel          = wire.MessageTypeAnnounceCancel
	MessageTypeTrackStatusRequest      = wire.MessageTypeTrackStatusRequest
	MessageTypeTrackStatus             = wire.MessageTypeTrackStatus
	MessageTypeGoAway                  = wire.MessageTypeGoAway
	MessageTypeSubscribeAnnounces      = wire.MessageTypeSubscribeAnnounces
	MessageTypeSubscribeAnnouncesOk    = wire.MessageTypeSubscribeAnnouncesOk
	MessageTypeSubscribeAnnouncesError = wire.MessageTypeSubscribeAnnouncesError
	MessageTypeUnsubscribeAnnounces    = wire.MessageTypeUnsubscribeAnnounces
	MessageTypeMaxSubscribeID          = wire.MessageTypeMaxSubscribeID
	MessageTypeFetch                   = wire.MessageTypeFetch
	MessageTypeFetchCancel             = wire.MessageTypeFetchCancel
	MessageTypeFetchOk                 = wire.MessageTypeFetchOk
	MessageTypeFetchError              = wire.MessageTypeFetchError
	MessageTypeSubscribesBlocked       = wire.MessageTypeSubscribesBlocked
	MessageTypeClientSetup             = wire.MessageTypeClientSetup
	MessageTypeServerSetup             = wire.MessageTypeServerSetup
)

const (
	StreamTypeSubgroupHeader = wire.StreamTypeSubgroupHeader
	StreamTypeFetchHeader    = wire.StreamTypeFetchHeader

	DatagramTypeObject       = wire.DatagramTypeObject
	DatagramTypeObjectStatus = wire.DatagramTypeObjectStatus
)

const (
	ObjectStatusNormal             = wire.ObjectStatusNormal
	ObjectStatusObjectDoesNotExist = wire.ObjectStatusObjectDoesNotExist
	ObjectStatusEndOfGroup         = wire.ObjectStatusEndOfGroup
	ObjectStatusEndOfTrackAndGroup = wire.ObjectStatusEndOfTrackAndGroup
	ObjectStatusEndOfTrack         = wire.ObjectStatusEndOfTrack
)

// AppendControlMessage appends the framed wire form of msg to buf.
func AppendControlMessage(buf []byte, msg ControlMessage) ([]byte, error) {
	return wire.AppendControlMessage(buf, msg)
}

// ParseControlMessage decodes one framed control message from the start of
// data and reports the bytes consumed.
func ParseControlMessage(data []byte) (ControlMessage, int, error) {
	return wire.ParseControlMessage(data)
}

// ControlMessageTypes returns every known control message type.
func ControlMessageTypes() []ControlMessageType {
	return wire.ControlMessageTypes()
}

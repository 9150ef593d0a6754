package moqdemux

import (
	"log/slog"

	"github.com/mengelbart/moqdemux/internal/wire"
)

type ObjectForwardingPreference int

const (
	ObjectForwardingPreferenceNone ObjectForwardingPreference = iota
	ObjectForwardingPreferenceDatagram
	ObjectForwardingPreferenceSubgroup
	ObjectForwardingPreferenceFetch
)

func (p ObjectForwardingPreference) String() string {
	switch p {
	case ObjectForwardingPreferenceDatagram:
		return "datagram"
	case ObjectForwardingPreferenceSubgroup:
		return "subgroup"
	case ObjectForwardingPreferenceFetch:
		return "fetch"
	}
	return "none"
}

// Object is a decoded object with the addressing of the stream or datagram
// that carried it. Fetch objects carry a SubscribeID instead of a
// TrackAlias.
type Object struct {
	TrackAlias        uint64
	SubscribeID       uint64
	GroupID           uint64
	SubgroupID        uint64
	ObjectID          uint64
	PublisherPriority uint8
	Status            ObjectStatus
	Payload           []byte

	ForwardingPreference ObjectForwardingPreference
}

func objectFromStream(m *wire.ObjectMessage, pref ObjectForwardingPreference) *Object {
	return &Object{
		TrackAlias:           m.TrackAlias,
		SubscribeID:          m.SubscribeID,
		GroupID:              m.GroupID,
		SubgroupID:           m.SubgroupID,
		ObjectID:             m.ObjectID,
		PublisherPriority:    m.PublisherPriority,
		Status:               m.ObjectStatus,
		Payload:              m.ObjectPayload,
		ForwardingPreference: pref,
	}
}

func objectFromDatagram(m *wire.ObjectDatagramMessage) *Object {
	return &Object{
		TrackAlias:           m.TrackAlias,
		GroupID:              m.GroupID,
		ObjectID:             m.ObjectID,
		PublisherPriority:    m.PublisherPriority,
		Status:               m.ObjectStatus,
		Payload:              m.ObjectPayload,
		ForwardingPreference: ObjectForwardingPreferenceDatagram,
	}
}

// endsGroup reports whether no further objects follow in the object's group.
func (o *Object) endsGroup() bool {
	return o.Status == ObjectStatusEndOfGroup || o.Status == ObjectStatusEndOfTrackAndGroup
}

func (o *Object) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("forwarding_preference", o.ForwardingPreference.String()),
		slog.Uint64("track_alias", o.TrackAlias),
		slog.Uint64("subscribe_id", o.SubscribeID),
		slog.Uint64("group_id", o.GroupID),
		slog.Uint64("subgroup_id", o.SubgroupID),
		slog.Uint64("object_id", o.ObjectID),
		slog.Any("publisher_priority", o.PublisherPriority),
		slog.Any("status", o.Status),
		slog.Int("payload_length", len(o.Payload)),
	)
}

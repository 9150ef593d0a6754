package wire

import "fmt"

type StreamType uint64

const (
	StreamTypeSubgroupHeader StreamType = 0x04
	StreamTypeFetchHeader    StreamType = 0x05
)

func (t StreamType) String() string {
	switch t {
	case StreamTypeSubgroupHeader:
		return "StreamHeaderSubgroup"
	case StreamTypeFetchHeader:
		return "FetchHeader"
	}
	return fmt.Sprintf("UnknownStreamType(%#x)", uint64(t))
}

type DatagramType uint64

const (
	DatagramTypeObject       DatagramType = 0x01
	DatagramTypeObjectStatus DatagramType = 0x02
)

func (t DatagramType) String() string {
	switch t {
	case DatagramTypeObject:
		return "ObjectDatagram"
	case DatagramTypeObjectStatus:
		return "ObjectDatagramStatus"
	}
	return fmt.Sprintf("UnknownDatagramType(%#x)", uint64(t))
}

type ObjectStatus uint64

const (
	ObjectStatusNormal             ObjectStatus = 0x00
	ObjectStatusObjectDoesNotExist ObjectStatus = 0x01
	ObjectStatusEndOfGroup         ObjectStatus = 0x03
	ObjectStatusEndOfTrackAndGroup ObjectStatus = 0x04
	ObjectStatusEndOfTrack         ObjectStatus = 0x05
)

// Valid reports whether s is one of the statuses defined by the protocol.
func (s ObjectStatus) Valid() bool {
	switch s {
	case ObjectStatusNormal, ObjectStatusObjectDoesNotExist, ObjectStatusEndOfGroup,
		ObjectStatusEndOfTrackAndGroup, ObjectStatusEndOfTrack:
		return true
	}
	return false
}

func (s ObjectStatus) String() string {
	switch s {
	case ObjectStatusNormal:
		return "Normal"
	case ObjectStatusObjectDoesNotExist:
		return "ObjectDoesNotExist"
	case ObjectStatusEndOfGroup:
		return "EndOfGroup"
	case ObjectStatusEndOfTrackAndGroup:
		return "EndOfTrackAndGroup"
	case ObjectStatusEndOfTrack:
		return "EndOfTrack"
	}
	return fmt.Sprintf("Unknown(%d)", uint64(s))
}

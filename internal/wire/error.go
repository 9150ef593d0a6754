package wire

import (
	"errors"
	"fmt"
)

var (
	// ErrTruncated is returned when a buffer ends before a required field.
	ErrTruncated = errors.New("truncated")

	// ErrOutOfRange is returned when a value does not fit its codec slot.
	ErrOutOfRange = errors.New("value out of range")

	ErrMalformedMessage = errors.New("malformed message")
	ErrUnknownType      = errors.New("unknown type")
)

// MalformedError describes a structural violation inside an otherwise
// complete message.
type MalformedError struct {
	Reason string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("malformed message: %v", e.Reason)
}

func (e *MalformedError) Unwrap() error {
	return ErrMalformedMessage
}

func malformed(format string, args ...any) error {
	return &MalformedError{Reason: fmt.Sprintf(format, args...)}
}

var (
	errInvalidGroupOrder    = &MalformedError{Reason: "invalid group order"}
	errInvalidFilterType    = &MalformedError{Reason: "invalid filter type"}
	errInvalidFetchType     = &MalformedError{Reason: "invalid fetch type"}
	errInvalidContentExists = &MalformedError{Reason: "invalid use of ContentExists byte"}
	errInvalidEndOfTrack    = &MalformedError{Reason: "invalid use of EndOfTrack byte"}
	errTrailingBytes        = &MalformedError{Reason: "trailing bytes after message payload"}
	errEmptyObjectPayload   = &MalformedError{Reason: "object payload must not be empty"}
)

type UnknownControlTypeError struct {
	Type ControlMessageType
}

func (e UnknownControlTypeError) Error() string {
	return fmt.Sprintf("unknown control message type: %#x", uint64(e.Type))
}

func (e UnknownControlTypeError) Unwrap() error {
	return ErrUnknownType
}

type UnknownStreamTypeError struct {
	Type StreamType
}

func (e UnknownStreamTypeError) Error() string {
	return fmt.Sprintf("unknown stream type: %#x", uint64(e.Type))
}

func (e UnknownStreamTypeError) Unwrap() error {
	return ErrUnknownType
}

type UnknownDatagramTypeError struct {
	Type DatagramType
}

func (e UnknownDatagramTypeError) Error() string {
	return fmt.Sprintf("unknown datagram type: %#x", uint64(e.Type))
}

func (e UnknownDatagramTypeError) Unwrap() error {
	return ErrUnknownType
}

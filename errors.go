package moqdemux

import (
	"errors"
	"fmt"

	"github.com/mengelbart/moqdemux/internal/wire"
)

// Generic error codes
const (
	ErrorCodeNoError                 uint64 = 0x00
	ErrorCodeInternal                uint64 = 0x01
	ErrorCodeUnauthorized            uint64 = 0x02
	ErrorCodeProtocolViolation       uint64 = 0x03
	ErrorCodeDuplicateTrackAlias     uint64 = 0x04
	ErrorCodeParameterLengthMismatch uint64 = 0x05
	ErrorCodeTooManySubscribes       uint64 = 0x06
	ErrorCodeGoAwayTimeout           uint64 = 0x10
)

// Codec errors. Use errors.Is and errors.As to classify errors returned by
// the dispatcher.
var (
	ErrTruncated        = wire.ErrTruncated
	ErrOutOfRange       = wire.ErrOutOfRange
	ErrMalformedMessage = wire.ErrMalformedMessage
	ErrUnknownType      = wire.ErrUnknownType
)

type (
	MalformedError           = wire.MalformedError
	UnknownControlTypeError  = wire.UnknownControlTypeError
	UnknownStreamTypeError   = wire.UnknownStreamTypeError
	UnknownDatagramTypeError = wire.UnknownDatagramTypeError
)

var ErrDispatcherClosed = errors.New("dispatcher closed")

var errHandlerPanic = errors.New("handler panicked")

// HandlerError reports a failed control message handler. It is logged by the
// dispatcher and never returned to the caller.
type HandlerError struct {
	Type   ControlMessageType
	TaskID uint64
	Err    error
}

func (e *HandlerError) Error() string {
	return fmt.Sprintf("handler for %v (task %d): %v", e.Type, e.TaskID, e.Err)
}

func (e *HandlerError) Unwrap() error {
	return e.Err
}

// ObjectHandlerError records a panic raised by an ObjectHandler.
type ObjectHandlerError struct {
	Object *Object
	Err    error
}

func (e *ObjectHandlerError) Error() string {
	return fmt.Sprintf("object handler for group %d object %d: %v", e.Object.GroupID, e.Object.ObjectID, e.Err)
}

func (e *ObjectHandlerError) Unwrap() error {
	return e.Err
}

// ProtocolError is a MoQ protocol error
type ProtocolError struct {
	code    uint64
	message string
}

func (e *ProtocolError) String() string {
	return e.Error()
}

func (e ProtocolError) Error() string {
	return fmt.Sprintf("%v: %v", e.code, e.message)
}

func (e ProtocolError) Code() uint64 {
	return e.code
}

// ApplicationError is returned by stream reads after the stream was reset.
type ApplicationError struct {
	Code    uint64
	Message string
	Remote  bool
}

func (e ApplicationError) Error() string {
	if e.Remote {
		return fmt.Sprintf("%v (remote, code %d)", e.Message, e.Code)
	}
	return fmt.Sprintf("%v (code %d)", e.Message, e.Code)
}

var errControlStreamClosed = ProtocolError{
	code:    ErrorCodeProtocolViolation,
	message: "control stream closed",
}

// protocolError maps a decode error to the code used to close the
// connection.
func protocolError(err error) ProtocolError {
	var pe ProtocolError
	if errors.As(err, &pe) {
		return pe
	}
	switch {
	case errors.Is(err, ErrTruncated),
		errors.Is(err, ErrOutOfRange),
		errors.Is(err, ErrMalformedMessage),
		errors.Is(err, ErrUnknownType):
		return ProtocolError{
			code:    ErrorCodeProtocolViolation,
			message: err.Error(),
		}
	}
	return ProtocolError{
		code:    ErrorCodeInternal,
		message: err.Error(),
	}
}

package moqdemux

import "context"

// Handler handles one decoded control message. Each call runs in its own
// task; ctx is cancelled when the dispatcher is closed.
type Handler interface {
	Handle(ctx context.Context, msg ControlMessage) error
}

type HandlerFunc func(context.Context, ControlMessage) error

func (f HandlerFunc) Handle(ctx context.Context, msg ControlMessage) error {
	return f(ctx, msg)
}

// ObjectHandler receives every object decoded from a data stream or a
// datagram. It is called synchronously from the decoding goroutine.
type ObjectHandler interface {
	HandleObject(*Object)
}

type ObjectHandlerFunc func(*Object)

func (f ObjectHandlerFunc) HandleObject(o *Object) {
	f(o)
}

type taskIDKey struct{}

// TaskID returns the sequence number of the task running a handler. Task ids
// increase in the order messages were decoded.
func TaskID(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(taskIDKey{}).(uint64)
	return id, ok
}

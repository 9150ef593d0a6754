package moqdemux

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mengelbart/moqdemux/internal/wire"
)

type DispatcherOption func(*Dispatcher)

func WithLogger(logger *slog.Logger) DispatcherOption {
	return func(d *Dispatcher) {
		d.logger = logger
	}
}

// WithAllowUnknownObjectStatus accepts object status values the current
// version does not define instead of rejecting the object as malformed.
func WithAllowUnknownObjectStatus() DispatcherOption {
	return func(d *Dispatcher) {
		d.objectOpts = append(d.objectOpts, wire.AllowUnknownObjectStatus())
	}
}

func WithObjectHandler(h ObjectHandler) DispatcherOption {
	return func(d *Dispatcher) {
		d.objectHandler = h
	}
}

// DataStream is the decoded content of one unidirectional data stream.
// Exactly one of SubgroupHeader and FetchHeader is set.
type DataStream struct {
	StreamID       uint64
	Type           StreamType
	SubgroupHeader *StreamHeaderSubgroupMessage
	FetchHeader    *FetchHeaderMessage
	Objects        []*Object
}

// Dispatcher decodes inbound MoQT messages and hands them to registered
// handlers. Decoding is synchronous. Every control message with a registered
// handler spawns one task, and tasks are spawned in the order messages are
// handed to the dispatcher.
type Dispatcher struct {
	ctx    context.Context
	cancel context.CancelFunc

	logger        *slog.Logger
	objectOpts    []wire.ObjectParserOption
	objectHandler ObjectHandler

	wg sync.WaitGroup

	lock       sync.Mutex
	closed     bool
	handlers   map[ControlMessageType]Handler
	tasks      map[uint64]struct{}
	nextTaskID uint64
	groups     map[uint64]*groupStats
}

func NewDispatcher(opts ...DispatcherOption) *Dispatcher {
	ctx, cancel := context.WithCancel(context.Background())
	d := &Dispatcher{
		ctx:      ctx,
		cancel:   cancel,
		handlers: map[ControlMessageType]Handler{},
		tasks:    map[uint64]struct{}{},
		groups:   map[uint64]*groupStats{},
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.logger == nil {
		d.logger = defaultLogger.With(componentKey, "MOQ_DISPATCHER")
	}
	return d
}

// RegisterHandler sets the handler for control messages of type t and
// returns the handler it replaced. Registering nil removes the handler.
func (d *Dispatcher) RegisterHandler(t ControlMessageType, h Handler) Handler {
	d.lock.Lock()
	defer d.lock.Unlock()
	previous := d.handlers[t]
	if h == nil {
		delete(d.handlers, t)
	} else {
		d.handlers[t] = h
	}
	return previous
}

// HandleControlMessage decodes the control frame at the start of buf and
// spawns the handler registered for its type. The returned length is the
// size of the frame and is also set for unknown message types so that the
// caller can skip them.
func (d *Dispatcher) HandleControlMessage(buf []byte) (ControlMessage, int, error) {
	if d.isClosed() {
		return nil, 0, ErrDispatcherClosed
	}
	msg, n, err := wire.ParseControlMessage(buf)
	if err != nil {
		var unknown UnknownControlTypeError
		if errors.As(err, &unknown) {
			d.logger.Warn("unknown control message type", "type", uint64(unknown.Type), "length", n)
		}
		return nil, n, err
	}
	logControlMessage(d.logger, msg)
	if err = d.spawn(msg); err != nil {
		return nil, n, err
	}
	return msg, n, nil
}

// HandleDataMessage decodes a complete unidirectional data stream: the
// stream header followed by its objects. If an object cannot be decoded the
// returned DataStream holds the objects decoded before it.
func (d *Dispatcher) HandleDataMessage(streamID uint64, buf []byte) (*DataStream, error) {
	if d.isClosed() {
		return nil, ErrDispatcherClosed
	}
	parser, err := wire.NewObjectStreamParser(bytes.NewReader(buf), d.objectOpts...)
	if err != nil {
		return nil, err
	}
	logger := d.logger.With("stream_id", streamID)
	ds := &DataStream{
		StreamID: streamID,
		Type:     parser.Type(),
	}
	pref := ObjectForwardingPreferenceSubgroup
	switch parser.Type() {
	case StreamTypeSubgroupHeader:
		ds.SubgroupHeader, err = parser.SubgroupHeader()
		if err != nil {
			return nil, err
		}
		logger.Debug("<-", parser.Type().String(), ds.SubgroupHeader)
		d.accountSubgroup(ds.SubgroupHeader)
	case StreamTypeFetchHeader:
		ds.FetchHeader, err = parser.FetchHeader()
		if err != nil {
			return nil, err
		}
		logger.Debug("<-", parser.Type().String(), ds.FetchHeader)
		pref = ObjectForwardingPreferenceFetch
	}
	for m, err := range parser.Messages() {
		if err != nil {
			return ds, fmt.Errorf("stream %d, object %d: %w", streamID, len(ds.Objects), err)
		}
		o := objectFromStream(m, pref)
		ds.Objects = append(ds.Objects, o)
		d.accountObject(o)
		d.deliver(o)
	}
	return ds, nil
}

// HandleDatagram decodes one object datagram.
func (d *Dispatcher) HandleDatagram(buf []byte) (*ObjectDatagramMessage, error) {
	if d.isClosed() {
		return nil, ErrDispatcherClosed
	}
	msg, err := wire.ParseObjectDatagram(buf, d.objectOpts...)
	if err != nil {
		return nil, err
	}
	d.logger.Debug("<-", msg.Type().String(), msg)
	o := objectFromDatagram(msg)
	d.accountObject(o)
	d.deliver(o)
	return msg, nil
}

// InFlight returns the number of handler tasks that have not returned yet.
func (d *Dispatcher) InFlight() int {
	d.lock.Lock()
	defer d.lock.Unlock()
	return len(d.tasks)
}

// Close cancels the context passed to running handlers and waits for them
// to return.
func (d *Dispatcher) Close() error {
	d.lock.Lock()
	d.closed = true
	d.lock.Unlock()
	d.cancel()
	d.wg.Wait()
	return nil
}

func (d *Dispatcher) isClosed() bool {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.closed
}

// deliver hands o to the object handler. A panic in the handler is logged
// and does not abort decoding.
func (d *Dispatcher) deliver(o *Object) {
	if d.objectHandler == nil {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			oerr := &ObjectHandlerError{
				Object: o,
				Err:    fmt.Errorf("%w: %v", errHandlerPanic, r),
			}
			d.logger.Error("object handler failed", "error", oerr)
		}
	}()
	d.objectHandler.HandleObject(o)
}

func (d *Dispatcher) spawn(msg ControlMessage) error {
	d.lock.Lock()
	defer d.lock.Unlock()
	if d.closed {
		return ErrDispatcherClosed
	}
	h, ok := d.handlers[msg.Type()]
	if !ok {
		return nil
	}
	d.nextTaskID++
	id := d.nextTaskID
	d.tasks[id] = struct{}{}
	d.wg.Add(1)
	go d.run(id, h, msg)
	return nil
}

func (d *Dispatcher) run(id uint64, h Handler, msg ControlMessage) {
	defer d.wg.Done()
	defer func() {
		d.lock.Lock()
		delete(d.tasks, id)
		d.lock.Unlock()
	}()
	ctx := context.WithValue(d.ctx, taskIDKey{}, id)
	if err := invoke(ctx, h, msg); err != nil {
		herr := &HandlerError{
			Type:   msg.Type(),
			TaskID: id,
			Err:    err,
		}
		d.logger.Error("control message handler failed", "error", herr)
	}
}

func invoke(ctx context.Context, h Handler, msg ControlMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", errHandlerPanic, r)
		}
	}()
	return h.Handle(ctx, msg)
}

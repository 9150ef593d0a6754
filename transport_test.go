package moqdemux

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mengelbart/moqdemux/internal/wire"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"
)

func newMockStream(ctrl *gomock.Controller, id uint64, r io.Reader) *MockReceiveStream {
	s := NewMockReceiveStream(ctrl)
	s.EXPECT().StreamID().Return(id).AnyTimes()
	s.EXPECT().Read(gomock.Any()).DoAndReturn(r.Read).AnyTimes()
	return s
}

func blockUntilDone[T any](ctx context.Context) (T, error) {
	<-ctx.Done()
	return *new(T), ctx.Err()
}

func TestTransportRun(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	logger := slog.New(&recordingHandler{})

	pr, pw := io.Pipe()
	ctrlStream := newMockStream(ctrl, 0, pr)
	ctrlStream.EXPECT().Stop(gomock.Any()).Do(func(uint32) {
		pr.CloseWithError(io.ErrClosedPipe)
	}).AnyTimes()

	dataStream := newMockStream(ctrl, 2, bytes.NewReader(subgroupStream(7, 3, 0,
		wire.StreamObject{ObjectID: 0, ObjectPayload: []byte("frame")},
	)))
	dataStream.EXPECT().Stop(gomock.Any()).AnyTimes()

	conn := NewMockConnection(ctrl)
	conn.EXPECT().AcceptStream(gomock.Any()).Return(ctrlStream, nil)
	gomock.InOrder(
		conn.EXPECT().AcceptUniStream(gomock.Any()).Return(dataStream, nil),
		conn.EXPECT().AcceptUniStream(gomock.Any()).DoAndReturn(blockUntilDone[ReceiveStream]),
	)
	gomock.InOrder(
		conn.EXPECT().ReceiveDatagram(gomock.Any()).Return([]byte{0x01, 0x07, 0x04, 0x00, 0x80, 0xaa}, nil),
		conn.EXPECT().ReceiveDatagram(gomock.Any()).DoAndReturn(blockUntilDone[[]byte]),
	)
	conn.EXPECT().CloseWithError(ErrorCodeProtocolViolation, "control stream closed").Return(nil)

	objects := make(chan *Object, 2)
	d := NewDispatcher(WithLogger(logger), WithObjectHandler(ObjectHandlerFunc(func(o *Object) {
		objects <- o
	})))
	defer d.Close()

	handled := make(chan ControlMessage, 2)
	h := HandlerFunc(func(_ context.Context, msg ControlMessage) error {
		handled <- msg
		return nil
	})
	d.RegisterHandler(MessageTypeSubscribe, h)
	d.RegisterHandler(MessageTypeUnsubscribe, h)

	tr := &Transport{
		Conn:                       conn,
		Dispatcher:                 d,
		Logger:                     logger,
		SkipUnknownControlMessages: true,
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- tr.Run(context.Background())
	}()

	sub := &SubscribeMessage{
		SubscribeID:    1,
		TrackAlias:     7,
		TrackNamespace: Tuple{"live"},
		TrackName:      []byte("video"),
		FilterType:     wire.FilterTypeLatestObject,
		Parameters:     Parameters{},
	}
	buf := frame(t, sub)
	buf = append(buf, 0x40, 0xfe, 0x02, 0x00, 0x00)
	buf = append(buf, frame(t, &UnsubscribeMessage{SubscribeID: 1})...)
	_, err := pw.Write(buf)
	require.NoError(t, err)

	received := map[ControlMessageType]ControlMessage{}
	for i := 0; i < 2; i++ {
		select {
		case msg := <-handled:
			received[msg.Type()] = msg
		case <-time.After(time.Second):
			t.Fatal("timeout while waiting for control message handlers")
		}
	}
	assert.Equal(t, sub, received[MessageTypeSubscribe])
	assert.Equal(t, &UnsubscribeMessage{SubscribeID: 1}, received[MessageTypeUnsubscribe])

	prefs := map[ObjectForwardingPreference]*Object{}
	for i := 0; i < 2; i++ {
		select {
		case o := <-objects:
			prefs[o.ForwardingPreference] = o
		case <-time.After(time.Second):
			t.Fatal("timeout while waiting for objects")
		}
	}
	assert.Equal(t, []byte("frame"), prefs[ObjectForwardingPreferenceSubgroup].Payload)
	assert.Equal(t, []byte{0xaa}, prefs[ObjectForwardingPreferenceDatagram].Payload)

	assert.NoError(t, pw.Close())
	select {
	case err = <-errCh:
	case <-time.After(time.Second):
		t.Fatal("timeout while waiting for transport to stop")
	}
	var pe ProtocolError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, ErrorCodeProtocolViolation, pe.Code())

	assert.Equal(t, []GroupStats{
		{GroupID: 3, Streams: 1, Subgroups: 1, Objects: 1, PayloadBytes: 5},
		{GroupID: 4, Objects: 1, Datagrams: 1, PayloadBytes: 1},
	}, d.Stats())
}

func TestTransportUnknownControlMessage(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	ctrlStream := newMockStream(ctrl, 0, bytes.NewReader([]byte{0x40, 0xfe, 0x00}))
	ctrlStream.EXPECT().Stop(gomock.Any()).AnyTimes()

	conn := NewMockConnection(ctrl)
	conn.EXPECT().AcceptStream(gomock.Any()).Return(ctrlStream, nil)
	conn.EXPECT().AcceptUniStream(gomock.Any()).DoAndReturn(blockUntilDone[ReceiveStream])
	conn.EXPECT().ReceiveDatagram(gomock.Any()).DoAndReturn(blockUntilDone[[]byte])
	conn.EXPECT().CloseWithError(ErrorCodeProtocolViolation, gomock.Any()).Return(nil)

	d := NewDispatcher(WithLogger(slog.New(&recordingHandler{})))
	defer d.Close()

	tr := &Transport{
		Conn:       conn,
		Dispatcher: d,
		Logger:     slog.New(&recordingHandler{}),
	}
	err := tr.Run(context.Background())
	assert.ErrorIs(t, err, ErrUnknownType)
}

func TestTransportMalformedDataStream(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctrl := gomock.NewController(t)
	pr, pw := io.Pipe()
	defer pw.Close()
	ctrlStream := newMockStream(ctrl, 0, pr)
	ctrlStream.EXPECT().Stop(gomock.Any()).Do(func(uint32) {
		pr.CloseWithError(io.ErrClosedPipe)
	}).AnyTimes()

	stopped := make(chan struct{})
	dataStream := newMockStream(ctrl, 2, bytes.NewReader(append(subgroupStream(1, 1, 0), 0x01, 0x00)))
	dataStream.EXPECT().Stop(uint32(ErrorCodeProtocolViolation)).Do(func(uint32) {
		close(stopped)
	})
	dataStream.EXPECT().Stop(uint32(ErrorCodeNoError)).AnyTimes()

	conn := NewMockConnection(ctrl)
	conn.EXPECT().AcceptStream(gomock.Any()).Return(ctrlStream, nil)
	gomock.InOrder(
		conn.EXPECT().AcceptUniStream(gomock.Any()).Return(dataStream, nil),
		conn.EXPECT().AcceptUniStream(gomock.Any()).DoAndReturn(blockUntilDone[ReceiveStream]),
	)
	conn.EXPECT().ReceiveDatagram(gomock.Any()).DoAndReturn(blockUntilDone[[]byte])

	d := NewDispatcher(WithLogger(slog.New(&recordingHandler{})))
	defer d.Close()

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- (&Transport{
			Conn:       conn,
			Dispatcher: d,
			Logger:     slog.New(&recordingHandler{}),
		}).Run(ctx)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("timeout while waiting for data stream to be stopped")
	}
	cancel()
	select {
	case err := <-errCh:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("timeout while waiting for transport to stop")
	}
}

func TestTransportAcceptStreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	errClosed := errors.New("connection closed")
	conn := NewMockConnection(ctrl)
	conn.EXPECT().AcceptStream(gomock.Any()).Return(nil, errClosed)

	tr := &Transport{
		Conn:       conn,
		Dispatcher: NewDispatcher(WithLogger(slog.New(&recordingHandler{}))),
	}
	defer tr.Dispatcher.Close()
	assert.ErrorIs(t, tr.Run(context.Background()), errClosed)
}

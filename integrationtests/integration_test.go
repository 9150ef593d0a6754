package integrationtests_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/mengelbart/moqdemux"
	"github.com/mengelbart/moqdemux/integrationtests"
	"github.com/mengelbart/moqdemux/internal/wire"
	"github.com/mengelbart/moqdemux/quicmoq"
	"github.com/quic-go/quic-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestQUICTransport(t *testing.T) {
	sConn, cConn, cancel := integrationtests.Connect(t)
	defer cancel()

	objects := make(chan *moqdemux.Object, 4)
	d := moqdemux.NewDispatcher(
		moqdemux.WithLogger(discardLogger()),
		moqdemux.WithObjectHandler(moqdemux.ObjectHandlerFunc(func(o *moqdemux.Object) {
			objects <- o
		})),
	)
	defer d.Close()

	subscribes := make(chan moqdemux.ControlMessage, 1)
	d.RegisterHandler(moqdemux.MessageTypeSubscribe, moqdemux.HandlerFunc(func(_ context.Context, msg moqdemux.ControlMessage) error {
		subscribes <- msg
		return nil
	}))

	tr := &moqdemux.Transport{
		Conn:       quicmoq.New(sConn),
		Dispatcher: d,
		Logger:     discardLogger(),
	}
	errCh := make(chan error, 1)
	go func() {
		errCh <- tr.Run(context.Background())
	}()

	ctrl, err := cConn.OpenStreamSync(context.Background())
	require.NoError(t, err)
	sub := &moqdemux.SubscribeMessage{
		SubscribeID:    0,
		TrackAlias:     1,
		TrackNamespace: moqdemux.Tuple{"clock"},
		TrackName:      []byte("second"),
		FilterType:     wire.FilterTypeLatestObject,
		Parameters:     moqdemux.Parameters{},
	}
	frame, err := moqdemux.AppendControlMessage(nil, sub)
	require.NoError(t, err)
	_, err = ctrl.Write(frame)
	require.NoError(t, err)

	select {
	case msg := <-subscribes:
		assert.Equal(t, sub, msg)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout while waiting for subscribe")
	}

	data, err := cConn.OpenUniStreamSync(context.Background())
	require.NoError(t, err)
	header := &moqdemux.StreamHeaderSubgroupMessage{TrackAlias: 1, GroupID: 9, SubgroupID: 0, PublisherPriority: 1}
	_, err = data.Write(append(header.Append(nil), 0x00, 0x03, 'f', 'o', 'o'))
	require.NoError(t, err)
	require.NoError(t, data.Close())

	select {
	case o := <-objects:
		assert.Equal(t, &moqdemux.Object{
			TrackAlias:           1,
			GroupID:              9,
			ObjectID:             0,
			PublisherPriority:    1,
			Payload:              []byte("foo"),
			ForwardingPreference: moqdemux.ObjectForwardingPreferenceSubgroup,
		}, o)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout while waiting for stream object")
	}

	require.NoError(t, cConn.SendDatagram([]byte{0x01, 0x01, 0x0a, 0x00, 0x01, 'b', 'a', 'r'}))
	select {
	case o := <-objects:
		assert.Equal(t, moqdemux.ObjectForwardingPreferenceDatagram, o.ForwardingPreference)
		assert.Equal(t, uint64(10), o.GroupID)
		assert.Equal(t, []byte("bar"), o.Payload)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout while waiting for datagram object")
	}

	require.NoError(t, ctrl.Close())
	select {
	case err = <-errCh:
		var pe moqdemux.ProtocolError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, moqdemux.ErrorCodeProtocolViolation, pe.Code())
	case <-time.After(5 * time.Second):
		t.Fatal("timeout while waiting for transport to stop")
	}

	ctx, cancelAccept := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelAccept()
	_, err = cConn.AcceptStream(ctx)
	var appErr *quic.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, quic.ApplicationErrorCode(moqdemux.ErrorCodeProtocolViolation), appErr.ErrorCode)
	assert.True(t, appErr.Remote)
}

func TestQUICStreamReset(t *testing.T) {
	sConn, cConn, cancel := integrationtests.Connect(t)
	defer cancel()

	s, err := cConn.OpenUniStreamSync(context.Background())
	require.NoError(t, err)
	_, err = s.Write([]byte{0x04})
	require.NoError(t, err)

	conn := quicmoq.New(sConn)
	ctx, cancelAccept := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelAccept()
	rs, err := conn.AcceptUniStream(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(s.StreamID()), rs.StreamID())

	s.CancelWrite(7)
	_, err = io.ReadAll(rs)
	var appErr moqdemux.ApplicationError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, moqdemux.ApplicationError{
		Code:    7,
		Message: "stream reset by peer",
		Remote:  true,
	}, appErr)
}

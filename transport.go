package moqdemux

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/mengelbart/moqdemux/internal/wire"
)

// maxDataStreamLength bounds the bytes buffered for one data stream.
const maxDataStreamLength = 1 << 28

var errDataStreamTooLong = fmt.Errorf("%w: data stream exceeds %d bytes", ErrOutOfRange, maxDataStreamLength)

// Transport feeds the control stream, the unidirectional data streams and
// the datagrams of one connection into a Dispatcher.
type Transport struct {
	Conn       Connection
	Dispatcher *Dispatcher
	Logger     *slog.Logger

	// SkipUnknownControlMessages logs and skips control messages of unknown
	// type instead of closing the connection.
	SkipUnknownControlMessages bool
}

// Run accepts the control stream and reads from all inbound primitives
// until ctx is cancelled, the connection fails or a control message cannot
// be decoded. Decode errors on the control stream close the connection with
// a protocol violation. Decode errors on data streams only stop the
// offending stream. Run returns the cause of termination.
func (t *Transport) Run(ctx context.Context) error {
	logger := t.Logger
	if logger == nil {
		logger = defaultLogger.With(componentKey, "MOQ_TRANSPORT")
	}
	ctx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	ctrl, err := t.Conn.AcceptStream(ctx)
	if err != nil {
		return err
	}
	logger.Debug("accepted control stream", "stream_id", ctrl.StreamID())

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		if err := t.readControlStream(ctx, logger, ctrl); err != nil {
			cancel(err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := t.readStreams(ctx, logger, &wg); err != nil {
			cancel(err)
		}
	}()
	go func() {
		defer wg.Done()
		t.readDatagrams(ctx, logger)
	}()
	<-ctx.Done()
	wg.Wait()

	return context.Cause(ctx)
}

func (t *Transport) readControlStream(ctx context.Context, logger *slog.Logger, s ReceiveStream) error {
	stop := context.AfterFunc(ctx, func() {
		s.Stop(uint32(ErrorCodeNoError))
	})
	defer stop()

	parser := wire.NewControlMessageParser(s)
	for {
		frame, err := parser.ReadFrame()
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			if errors.Is(err, io.EOF) {
				return t.closeWithError(logger, errControlStreamClosed)
			}
			return t.closeWithError(logger, err)
		}
		_, _, err = t.Dispatcher.HandleControlMessage(frame)
		if err == nil {
			continue
		}
		if errors.Is(err, ErrDispatcherClosed) {
			return err
		}
		if errors.Is(err, ErrUnknownType) && t.SkipUnknownControlMessages {
			logger.Info("skipping control message", "error", err)
			continue
		}
		return t.closeWithError(logger, err)
	}
}

func (t *Transport) closeWithError(logger *slog.Logger, err error) error {
	pe := protocolError(err)
	logger.Error("closing connection", "code", pe.Code(), "error", err)
	if cerr := t.Conn.CloseWithError(pe.Code(), pe.message); cerr != nil {
		logger.Warn("failed to close connection", "error", cerr)
	}
	return err
}

func (t *Transport) readStreams(ctx context.Context, logger *slog.Logger, wg *sync.WaitGroup) error {
	for {
		s, err := t.Conn.AcceptUniStream(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			t.handleUniStream(ctx, logger.With("stream_id", s.StreamID()), s)
		}()
	}
}

func (t *Transport) handleUniStream(ctx context.Context, logger *slog.Logger, s ReceiveStream) {
	stop := context.AfterFunc(ctx, func() {
		s.Stop(uint32(ErrorCodeNoError))
	})
	defer stop()

	data, err := io.ReadAll(io.LimitReader(s, maxDataStreamLength+1))
	if err != nil {
		if ctx.Err() == nil {
			logger.Warn("failed to read data stream", "error", err)
		}
		return
	}
	if len(data) > maxDataStreamLength {
		logger.Warn("dropping data stream", "error", errDataStreamTooLong)
		s.Stop(uint32(ErrorCodeProtocolViolation))
		return
	}
	ds, err := t.Dispatcher.HandleDataMessage(s.StreamID(), data)
	if err != nil {
		logger.Warn("failed to decode data stream", "error", err)
		s.Stop(uint32(protocolError(err).Code()))
		return
	}
	logger.Debug("data stream done", "type", ds.Type.String(), "objects", len(ds.Objects))
}

func (t *Transport) readDatagrams(ctx context.Context, logger *slog.Logger) {
	for {
		dgram, err := t.Conn.ReceiveDatagram(ctx)
		if err != nil {
			if ctx.Err() == nil {
				logger.Debug("stopped reading datagrams", "error", err)
			}
			return
		}
		if _, err = t.Dispatcher.HandleDatagram(dgram); err != nil {
			logger.Warn("dropping datagram", "error", err)
		}
	}
}

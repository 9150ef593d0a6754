package main

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/quic-go/quic-go"
	"github.com/quic-go/quic-go/http3"
	"github.com/quic-go/webtransport-go"

	"github.com/mengelbart/moqdemux"
	"github.com/mengelbart/moqdemux/internal/config"
	"github.com/mengelbart/moqdemux/quicmoq"
	"github.com/mengelbart/moqdemux/webtransportmoq"
)

type server struct {
	cfg       *config.Config
	tlsConfig *tls.Config
	logger    *slog.Logger

	outLock sync.Mutex
	out     io.Writer
}

func (s *server) listen(ctx context.Context) error {
	if s.cfg.Server.WebTransport {
		return s.listenWebTransport(ctx)
	}
	return s.listenQUIC(ctx)
}

func (s *server) listenQUIC(ctx context.Context) error {
	listener, err := quic.ListenAddr(s.cfg.Server.Addr, s.tlsConfig, &quic.Config{
		EnableDatagrams: true,
	})
	if err != nil {
		return err
	}
	defer listener.Close()
	s.logger.Info("listening", "addr", listener.Addr().String(), "protocol", "quic")

	var wg sync.WaitGroup
	defer wg.Wait()
	for {
		conn, err := listener.Accept(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.handle(ctx, quicmoq.New(conn), conn.RemoteAddr().String())
		}()
	}
}

func (s *server) listenWebTransport(ctx context.Context) error {
	mux := http.NewServeMux()
	wt := &webtransport.Server{
		H3: http3.Server{
			Addr:      s.cfg.Server.Addr,
			TLSConfig: s.tlsConfig,
			Handler:   mux,
		},
		CheckOrigin: func(*http.Request) bool { return true },
	}
	mux.HandleFunc(s.cfg.Server.Path, func(w http.ResponseWriter, r *http.Request) {
		session, err := wt.Upgrade(w, r)
		if err != nil {
			s.logger.Warn("upgrading to webtransport failed", "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		s.handle(ctx, webtransportmoq.New(session), r.RemoteAddr)
	})
	stop := context.AfterFunc(ctx, func() {
		if err := wt.Close(); err != nil {
			s.logger.Warn("closing webtransport server failed", "error", err)
		}
	})
	defer stop()

	s.logger.Info("listening", "addr", s.cfg.Server.Addr, "protocol", "webtransport", "path", s.cfg.Server.Path)
	err := wt.ListenAndServe()
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *server) handle(ctx context.Context, conn moqdemux.Connection, remote string) {
	id := uuid.New()
	logger := s.logger.With("connection_id", id.String(), "remote", remote)
	logger.Info("connection accepted")

	d := newDumpDispatcher(logger, s.cfg.Decoder)
	t := &moqdemux.Transport{
		Conn:                       conn,
		Dispatcher:                 d,
		Logger:                     logger,
		SkipUnknownControlMessages: s.cfg.Decoder.SkipUnknownControlMessages,
	}
	err := t.Run(ctx)
	if cerr := d.Close(); cerr != nil {
		logger.Warn("closing dispatcher failed", "error", cerr)
	}
	logger.Info("connection done", "cause", err)

	s.outLock.Lock()
	defer s.outLock.Unlock()
	fmt.Fprintf(s.out, "connection %s (%s)\n%s\n", id, remote, renderStats(d.Stats()))
}

package main

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mengelbart/moqdemux"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var (
		addr               string
		webTransport       bool
		logLevel           string
		logFormat          string
		skipUnknown        bool
		allowUnknownStatus bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Accept connections and log every decoded message",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("addr") {
				cfg.Server.Addr = addr
			}
			if flags.Changed("webtransport") {
				cfg.Server.WebTransport = webTransport
			}
			if flags.Changed("log-level") {
				cfg.Logging.Level = strings.ToLower(logLevel)
			}
			if flags.Changed("log-format") {
				cfg.Logging.Format = strings.ToLower(logFormat)
			}
			if flags.Changed("skip-unknown") {
				cfg.Decoder.SkipUnknownControlMessages = skipUnknown
			}
			if flags.Changed("allow-unknown-status") {
				cfg.Decoder.AllowUnknownObjectStatus = allowUnknownStatus
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			handler := newLogHandler(cfg.Logging, cmd.ErrOrStderr())
			moqdemux.SetLogHandler(handler)

			tlsConfig, err := loadTLSConfig(cfg.Server.CertFile, cfg.Server.KeyFile)
			if err != nil {
				return fmt.Errorf("load TLS config: %w", err)
			}

			runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			s := &server{
				cfg:       cfg,
				tlsConfig: tlsConfig,
				logger:    slog.New(handler).With("component", "MOQDUMP"),
				out:       cmd.OutOrStdout(),
			}
			return s.listen(runCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "UDP listen address")
	cmd.Flags().BoolVar(&webTransport, "webtransport", false, "Accept WebTransport sessions instead of raw QUIC")
	cmd.Flags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&logFormat, "log-format", "", "Log format (text, json)")
	cmd.Flags().BoolVar(&skipUnknown, "skip-unknown", false, "Skip control messages of unknown type")
	cmd.Flags().BoolVar(&allowUnknownStatus, "allow-unknown-status", false, "Accept undefined object status values")
	return cmd
}

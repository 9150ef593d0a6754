package main

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mengelbart/moqdemux"
)

func newDecodeCommand(ctx *commandContext) *cobra.Command {
	var (
		stream   bool
		datagram bool
	)

	cmd := &cobra.Command{
		Use:   "decode <hex>...",
		Short: "Decode hex encoded control frames, a data stream or a datagram",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if stream && datagram {
				return errors.New("--stream and --datagram are mutually exclusive")
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			data, err := decodeHex(args)
			if err != nil {
				return err
			}

			printer := newPrinter(cmd.OutOrStdout())
			var opts []moqdemux.DispatcherOption
			opts = append(opts, moqdemux.WithLogger(slog.New(newLogHandler(cfg.Logging, cmd.ErrOrStderr()))))
			if cfg.Decoder.AllowUnknownObjectStatus {
				opts = append(opts, moqdemux.WithAllowUnknownObjectStatus())
			}

			switch {
			case stream:
				return decodeStream(printer, data, opts)
			case datagram:
				return decodeDatagram(printer, data, opts)
			default:
				return decodeControl(printer, data)
			}
		},
	}

	cmd.Flags().BoolVar(&stream, "stream", false, "Input is the content of one unidirectional data stream")
	cmd.Flags().BoolVar(&datagram, "datagram", false, "Input is one object datagram")
	return cmd
}

func decodeHex(args []string) ([]byte, error) {
	s := strings.Join(args, "")
	s = strings.NewReplacer(" ", "", "\n", "", "\t", "", ":", "").Replace(s)
	s = strings.TrimPrefix(s, "0x")
	data, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex input: %w", err)
	}
	return data, nil
}

// newPrinter returns a logger that writes one JSON line per record without
// time and level.
func newPrinter(w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) == 0 && (a.Key == slog.TimeKey || a.Key == slog.LevelKey) {
				return slog.Attr{}
			}
			return a
		},
	}))
}

func decodeControl(printer *slog.Logger, data []byte) error {
	for offset := 0; offset < len(data); {
		msg, n, err := moqdemux.ParseControlMessage(data[offset:])
		if err != nil {
			var unknown moqdemux.UnknownControlTypeError
			if errors.As(err, &unknown) && n > 0 {
				printer.Info("unknown", "offset", offset, "length", n, "type", uint64(unknown.Type))
				offset += n
				continue
			}
			return fmt.Errorf("offset %d: %w", offset, err)
		}
		printer.Info(msg.Type().String(), "offset", offset, "length", n, "message", msg)
		offset += n
	}
	return nil
}

func decodeStream(printer *slog.Logger, data []byte, opts []moqdemux.DispatcherOption) error {
	d := moqdemux.NewDispatcher(opts...)
	defer d.Close()

	ds, err := d.HandleDataMessage(0, data)
	if ds != nil {
		if ds.SubgroupHeader != nil {
			printer.Info(ds.Type.String(), "header", ds.SubgroupHeader)
		}
		if ds.FetchHeader != nil {
			printer.Info(ds.Type.String(), "header", ds.FetchHeader)
		}
		for _, o := range ds.Objects {
			printer.Info("object", "object", o)
		}
	}
	return err
}

func decodeDatagram(printer *slog.Logger, data []byte, opts []moqdemux.DispatcherOption) error {
	d := moqdemux.NewDispatcher(opts...)
	defer d.Close()

	m, err := d.HandleDatagram(data)
	if err != nil {
		return err
	}
	printer.Log(context.Background(), slog.LevelInfo, m.Type().String(), "datagram", m)
	return nil
}

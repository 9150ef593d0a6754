package main

import (
	"context"
	"log/slog"

	"github.com/mengelbart/moqdemux"
	"github.com/mengelbart/moqdemux/internal/config"
)

// newDumpDispatcher returns a dispatcher that logs every control message and
// object it decodes.
func newDumpDispatcher(logger *slog.Logger, cfg config.Decoder) *moqdemux.Dispatcher {
	opts := []moqdemux.DispatcherOption{
		moqdemux.WithLogger(logger),
		moqdemux.WithObjectHandler(moqdemux.ObjectHandlerFunc(func(o *moqdemux.Object) {
			logger.Debug("object", "object", o)
		})),
	}
	if cfg.AllowUnknownObjectStatus {
		opts = append(opts, moqdemux.WithAllowUnknownObjectStatus())
	}
	d := moqdemux.NewDispatcher(opts...)

	h := moqdemux.HandlerFunc(func(ctx context.Context, msg moqdemux.ControlMessage) error {
		id, _ := moqdemux.TaskID(ctx)
		logger.Info(msg.Type().String(), "task", id, "message", msg)
		return nil
	})
	for _, t := range moqdemux.ControlMessageTypes() {
		d.RegisterHandler(t, h)
	}
	return d
}

package moqdemux

import (
	"log/slog"
	"os"
)

const componentKey = "component"

func init() {
	h := slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
		Level:     nil,
	})
	defaultLogger = slog.New(h)
}

var defaultLogger *slog.Logger

// SetLogHandler replaces the handler of the logger used by dispatchers and
// transports that were not given a logger explicitly.
func SetLogHandler(handler slog.Handler) {
	defaultLogger = slog.New(handler)
}

func logControlMessage(logger *slog.Logger, msg ControlMessage) {
	logger.Debug("<-", msg.Type().String(), msg)
}

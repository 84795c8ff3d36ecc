package logger

import (
	"log/slog"
	"os"
)

// Log defaults to slog's standard logger so library code and tests
// can log before Init runs; Init swaps in the JSON handler.
var Log = slog.Default()

func Init() {
	// JSON handler for production-ready logging
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}

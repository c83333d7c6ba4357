package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

func Init(env string) {
	// JSON handler for production-ready logging
	level := slog.LevelDebug
	if env == "release" {
		level = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})
	Log = slog.New(handler)
}

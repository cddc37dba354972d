package editor

import "log/slog"

var logger *slog.Logger

func init() {
	logger = slog.Default().WithGroup("editor")
}

// SetLogger replaces the package logger.
func SetLogger(log *slog.Logger) {
	logger = log.WithGroup("editor")
}

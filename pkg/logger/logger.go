package logger

import (
	"io"
	"log/slog"
	"os"
)

// New builds a JSON logger that stamps the request id from context onto
// every record.
func New(out io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewJSONHandler(out, &slog.HandlerOptions{
		Level: level,
	})
	return slog.New(&RequestIDHandler{Handler: handler})
}

func InitLogger() {
	slog.SetDefault(New(os.Stdout, slog.LevelInfo))
}

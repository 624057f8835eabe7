// Package logging builds the process slog logger and adapts it for gRPC
// interceptors.
package logging

import (
	"context"
	"io"
	"log/slog"
	"strings"

	grpclogging "github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"

	"github.com/KirkDiggler/pokemon-api/internal/config"
)

// New returns a logger writing to w in the given format ("json" or "text")
func New(w io.Writer, level, format string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: lvl}
	if strings.EqualFold(format, config.LogFormatJSON) {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}

// InterceptorLogger adapts l to the go-grpc-middleware logging interface
func InterceptorLogger(l *slog.Logger) grpclogging.Logger {
	return grpclogging.LoggerFunc(func(ctx context.Context, lvl grpclogging.Level, msg string, fields ...any) {
		l.Log(ctx, slog.Level(lvl), msg, fields...)
	})
}

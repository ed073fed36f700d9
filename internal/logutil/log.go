// Package logutil carries a zerolog logger through context so request
// handlers and background work log with whatever scope their caller set up.
package logutil

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type (
	key byte
)

var (
	loggerKey = key(1)
)

// Service returns the process-wide root logger, tagged with the service
// name. Everything else derives from it via WithLogger/GetOrDefault.
func Service(name string) zerolog.Logger {
	return log.Logger.With().Str("service", name).Logger()
}

func WithLogger(ctx context.Context, logger zerolog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func GetOrDefault(ctx context.Context) zerolog.Logger {
	v := ctx.Value(loggerKey)
	if v == nil {
		return log.Logger
	}
	return v.(zerolog.Logger)
}

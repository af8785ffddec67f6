package logger

import (
	"context"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var globalLogger zerolog.Logger

var once sync.Once

// Init configures the global zerolog logger. Dev mode uses the
// human-readable console writer, prod mode plain JSON to stdout.
func Init(devMode bool) {
	once.Do(func() {
		var logger zerolog.Logger
		if devMode {
			logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).
				With().Timestamp().Logger().Level(zerolog.DebugLevel)
		} else {
			logger = zerolog.New(os.Stdout).
				With().Timestamp().Logger().Level(zerolog.InfoLevel)
		}
		globalLogger = logger
		log.Logger = logger
	})
}

// getLogger extracts the logger from the context, falling back to the global one
func getLogger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		return &globalLogger
	}
	return l
}

// Info logs an info level message
func Info(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Info().Msgf(msg, args...)
}

// Warn logs a warning level message
func Warn(ctx context.Context, msg string, args ...interface{}) {
	getLogger(ctx).Warn().Msgf(msg, args...)
}

// Error logs an error level message; when the first argument is an error
// it is attached as a structured field.
func Error(ctx context.Context, msg string, args ...interface{}) {
	l := getLogger(ctx)
	if len(args) > 0 {
		if err, ok := args[0].(error); ok {
			l.Error().Err(err).Msg(msg)
			return
		}
	}
	l.Error().Msgf(msg, args...)
}

package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Log starts as a no-op so packages can log before Init runs (tests).
var Log = zerolog.Nop()

// Init initializes the global logger
func Init(env string) {
	InitWriter(env, os.Stdout)
}

// InitWriter is Init with an explicit sink.
func InitWriter(env string, w io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339

	if env == "development" {
		Log = zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05"}).
			With().
			Timestamp().
			Caller().
			Logger()
		return
	}

	Log = zerolog.New(w).
		With().
		Timestamp().
		Logger()
}

func Info() *zerolog.Event {
	return Log.Info()
}

func Error() *zerolog.Event {
	return Log.Error()
}

func Warn() *zerolog.Event {
	return Log.Warn()
}

func Debug() *zerolog.Event {
	return Log.Debug()
}

func Fatal() *zerolog.Event {
	return Log.Fatal()
}

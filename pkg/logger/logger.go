// Package logger provides the process-wide structured logger backed by
// zerolog, tuned for command-line use: logs go to stderr so stdout stays
// clean for command output, and pretty mode drops timestamps since a
// short-lived CLI run has no use for them.
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options controls logger behaviour at initialisation time.
type Options struct {
	// Level is the minimum log level: trace, debug, info, warn, error,
	// or silent to suppress all output. Defaults to "info" when empty
	// or unrecognised.
	Level string
	// Pretty enables human-friendly console output without timestamps.
	// Use false to emit timestamped JSON, e.g. when the CLI runs under
	// a scheduler.
	Pretty bool
	// Output is the writer logs are sent to. Defaults to os.Stderr.
	Output io.Writer
}

var (
	instance    zerolog.Logger
	once        sync.Once
	initialized bool
)

// Init initialises the singleton logger. Only the first call has any
// effect; later calls return the existing instance.
func Init(opts Options) zerolog.Logger {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339Nano

		out := opts.Output
		if out == nil {
			out = os.Stderr
		}

		lvl := parseLevel(opts.Level)
		zerolog.SetGlobalLevel(lvl)

		if opts.Pretty {
			instance = zerolog.New(zerolog.ConsoleWriter{
				Out:          out,
				PartsExclude: []string{zerolog.TimestampFieldName},
			}).Level(lvl)
		} else {
			instance = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
		}

		initialized = true
	})
	return instance
}

// Get returns the singleton logger. Panics if Init has not been called yet.
func Get() zerolog.Logger {
	if !initialized {
		panic("logger: Get() called before Init()")
	}
	return instance
}

// Component returns the singleton logger tagged with a component name,
// so log lines from different layers of the CLI stay distinguishable.
func Component(name string) zerolog.Logger {
	return Get().With().Str("component", name).Logger()
}

// Reset tears down the singleton so that the next Init call rebuilds it.
// Intended for use in tests only.
func Reset() {
	once = sync.Once{}
	instance = zerolog.Logger{}
	initialized = false
}

func parseLevel(s string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "silent", "off":
		return zerolog.Disabled
	default:
		return zerolog.InfoLevel
	}
}

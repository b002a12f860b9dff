// Package logger holds the process-wide zerolog instance.
//
// Call Init once during startup, then Get from any package that needs to
// log. Components that want an attributed logger should derive one with
// Get().With().Str("component", ...).Logger().
package logger

import (
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the logger built by Init.
type Options struct {
	// Level is the minimum level to emit: trace, debug, info, warn or
	// error. Anything else falls back to info.
	Level string
	// Pretty switches from JSON lines to zerolog's console writer. Meant
	// for local development only.
	Pretty bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var (
	mu       sync.Mutex
	instance zerolog.Logger
	ready    bool
)

// Init builds the shared logger and returns it. The first call wins;
// later calls return the existing instance unchanged.
func Init(opts Options) zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if ready {
		return instance
	}

	zerolog.TimeFieldFormat = time.RFC3339Nano

	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if opts.Pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	level := parseLevel(opts.Level)
	zerolog.SetGlobalLevel(level)

	instance = zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("service", "ponto-api").
		Logger()
	ready = true
	return instance
}

// Get returns the shared logger. Panics when Init has not run yet, which
// points at a wiring bug in main.
func Get() zerolog.Logger {
	mu.Lock()
	defer mu.Unlock()
	if !ready {
		panic("logger: Get called before Init")
	}
	return instance
}

// Reset discards the shared logger so tests can Init with fresh options.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instance = zerolog.Logger{}
	ready = false
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
	default:
		return zerolog.InfoLevel
	}
}

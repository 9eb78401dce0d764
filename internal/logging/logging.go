package logging

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarning
	LevelError
	LevelNone
)

var (
	mu     sync.RWMutex
	out    io.Writer = os.Stderr
	level            = LevelWarning
	logger zerolog.Logger
)

func init() {
	rebuild()
}

func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	}
	return zerolog.Disabled
}

// rebuild must be called with mu held, or from init.
func rebuild() {
	w := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: time.RFC3339,
		NoColor:    true,
	}
	logger = zerolog.New(w).With().Timestamp().Logger().Level(level.zerolog())
}

// SetLevel sets the minimum level for log output.
func SetLevel(l Level) {
	mu.Lock()
	defer mu.Unlock()
	level = l
	rebuild()
}

// SetOutput redirects log output, e.g. to a buffer in tests.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
	rebuild()
}

// Logger returns the underlying structured logger
// for messages that carry fields.
func Logger() *zerolog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	l := logger
	return &l
}

func Debug(msg string, v ...interface{}) {
	Logger().Debug().Msgf(msg, v...)
}

func Info(msg string, v ...interface{}) {
	Logger().Info().Msgf(msg, v...)
}

func Warning(msg string, v ...interface{}) {
	Logger().Warn().Msgf(msg, v...)
}

func Error(msg string, v ...interface{}) {
	Logger().Error().Msgf(msg, v...)
}

// Package logging implements the domain Logger contract with zerolog.
package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/ochairo/receptbok/internal/domain/interfaces"
	"github.com/rs/zerolog"
)

// LevelFromVerbosity maps a -v count to a zerolog level
func LevelFromVerbosity(verbosity int) zerolog.Level {
	switch verbosity {
	case 0:
		return zerolog.WarnLevel
	case 1:
		return zerolog.InfoLevel
	case 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// ParseLevel maps a config value such as "info" to a zerolog level.
// Unknown or empty values yield WarnLevel.
func ParseLevel(s string) zerolog.Level {
	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || s == "" {
		return zerolog.WarnLevel
	}
	return level
}

// NewConsole builds a human-readable zerolog logger writing to w (stderr if nil)
func NewConsole(w io.Writer, level zerolog.Level) zerolog.Logger {
	if w == nil {
		w = os.Stderr
	}
	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.Kitchen,
	}
	logger := zerolog.New(console).Level(level).With().Timestamp().Logger()
	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}
	return logger
}

// Logger adapts a zerolog.Logger to interfaces.Logger
type Logger struct {
	zl zerolog.Logger
}

var _ interfaces.Logger = (*Logger)(nil)

// New wraps zl
func New(zl zerolog.Logger) *Logger {
	return &Logger{zl: zl}
}

// Component returns a child logger tagged with a component name
func (l *Logger) Component(name string) *Logger {
	return &Logger{zl: l.zl.With().Str("component", name).Logger()}
}

// Debug logs debug-level messages
func (l *Logger) Debug(msg string, fields ...interfaces.Field) {
	l.log(l.zl.Debug(), msg, fields)
}

// Info logs informational messages
func (l *Logger) Info(msg string, fields ...interfaces.Field) {
	l.log(l.zl.Info(), msg, fields)
}

// Warn logs warning messages
func (l *Logger) Warn(msg string, fields ...interfaces.Field) {
	l.log(l.zl.Warn(), msg, fields)
}

// Error logs error messages
func (l *Logger) Error(msg string, fields ...interfaces.Field) {
	l.log(l.zl.Error(), msg, fields)
}

func (l *Logger) log(ev *zerolog.Event, msg string, fields []interfaces.Field) {
	// Disabled levels return a nil event
	if ev == nil {
		return
	}
	for _, f := range fields {
		if err, ok := f.Value.(error); ok {
			ev = ev.AnErr(f.Key, err)
			continue
		}
		ev = ev.Interface(f.Key, f.Value)
	}
	ev.Msg(msg)
}

package httplog

import (
	"fmt"
	"log"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LeveledLogger is the set of leveled calls shared by Logger and LabeledLogger.
type LeveledLogger interface {
	Error(message string)
	Warn(message string)
	Info(message string)
	Verbose(message string)
	Debug(message string)
}

var (
	_ LeveledLogger = &Logger{}
	_ LeveledLogger = &LabeledLogger{}
)

// Logger is the process wide logging entry point. It is safe for concurrent use.
type Logger struct {
	base *zap.Logger
}

// New creates the base logger. Records below level are dropped.
func New(level Level, opts ...Option) *Logger {
	options := buildLoggerOptions(opts...)

	core := zapcore.NewCore(
		newLineEncoder(options.timeLayout, options.shouldColorize()),
		options.writeSyncer(),
		zap.NewAtomicLevelAt(level.ZapLevel()),
	)
	return Wrap(zap.New(core, options.zapOptions...))
}

// Wrap uses an already configured zap logger as the base logger.
func Wrap(l *zap.Logger) *Logger {
	return &Logger{base: l}
}

// WithLabel returns a view of the logger that tags every record with label.
// Creating the view is itself logged at info level.
func (l *Logger) WithLabel(label string) *LabeledLogger {
	l.Info(fmt.Sprintf("Logger: Custom logger (%s) created", label))
	return newLabeledLogger(l.base, label)
}

// Log writes message at level, tagged with label unless it is empty.
// level may be a Level, a zapcore.Level or a level name; any other value,
// including unknown names, is written at info.
func (l *Logger) Log(message, label string, level any) {
	write(l.base.Named(label), coerceLevel(level), message)
}

func (l *Logger) Error(message string)   { write(l.base, ErrorLevel, message) }
func (l *Logger) Warn(message string)    { write(l.base, WarnLevel, message) }
func (l *Logger) Info(message string)    { write(l.base, InfoLevel, message) }
func (l *Logger) Verbose(message string) { write(l.base, VerboseLevel, message) }
func (l *Logger) Debug(message string)   { write(l.base, DebugLevel, message) }

// Enabled reports whether records at level would be written.
func (l *Logger) Enabled(level Level) bool {
	return l.base.Core().Enabled(level.ZapLevel())
}

// StdLogger returns a *log.Logger whose output is written at level and
// tagged with label. It fails for DebugLevel, which the standard library
// bridge in zap can not address.
func (l *Logger) StdLogger(label string, level Level) (*log.Logger, error) {
	return zap.NewStdLogAt(l.base.Named(label), level.ZapLevel())
}

func (l *Logger) Zap() *zap.Logger {
	return l.base
}

func (l *Logger) Sync() error {
	return l.base.Sync()
}

// LabeledLogger forwards to the base logger, tagging each record with its label.
type LabeledLogger struct {
	label string
	l     *zap.Logger
}

func newLabeledLogger(base *zap.Logger, label string) *LabeledLogger {
	return &LabeledLogger{
		label: label,
		l:     base.Named(label),
	}
}

func (ll *LabeledLogger) Label() string {
	return ll.label
}

// With returns a copy of the labeled logger that adds fields to every record.
func (ll *LabeledLogger) With(fields ...zap.Field) *LabeledLogger {
	return &LabeledLogger{
		label: ll.label,
		l:     ll.l.With(fields...),
	}
}

func (ll *LabeledLogger) Error(message string)   { write(ll.l, ErrorLevel, message) }
func (ll *LabeledLogger) Warn(message string)    { write(ll.l, WarnLevel, message) }
func (ll *LabeledLogger) Info(message string)    { write(ll.l, InfoLevel, message) }
func (ll *LabeledLogger) Verbose(message string) { write(ll.l, VerboseLevel, message) }
func (ll *LabeledLogger) Debug(message string)   { write(ll.l, DebugLevel, message) }

func (ll *LabeledLogger) Zap() *zap.Logger {
	return ll.l
}

func write(l *zap.Logger, level Level, message string, fields ...zap.Field) {
	if ce := l.Check(level.ZapLevel(), message); ce != nil {
		ce.Write(fields...)
	}
}

package httplog

import (
	"fmt"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Level is the severity of a log record. Levels are ordered
// error > warn > info > verbose > debug.
type Level int8

const (
	DebugLevel Level = iota - 2
	VerboseLevel
	InfoLevel
	WarnLevel
	ErrorLevel
)

// DefaultLevel is used whenever a configured level can not be understood.
const DefaultLevel = InfoLevel

func (l Level) String() string {
	switch l {
	case DebugLevel:
		return "debug"
	case VerboseLevel:
		return "verbose"
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case ErrorLevel:
		return "error"
	default:
		return fmt.Sprintf("Level(%d)", l)
	}
}

// ZapLevel returns the zapcore level records of this level are written at.
// Verbose takes zap's debug slot, debug sits one below it.
func (l Level) ZapLevel() zapcore.Level {
	return zapcore.Level(l)
}

func (l Level) valid() bool {
	return l >= DebugLevel && l <= ErrorLevel
}

// ParseLevel parses a level name, ignoring case.
func ParseLevel(text string) (Level, error) {
	var l Level
	if err := l.UnmarshalText([]byte(text)); err != nil {
		return DefaultLevel, err
	}
	return l, nil
}

// ParseLevelOrDefault is like ParseLevel but falls back to DefaultLevel.
func ParseLevelOrDefault(text string) Level {
	l, err := ParseLevel(text)
	if err != nil {
		return DefaultLevel
	}
	return l
}

func (l *Level) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "debug":
		*l = DebugLevel
	case "verbose":
		*l = VerboseLevel
	case "info":
		*l = InfoLevel
	case "warn":
		*l = WarnLevel
	case "error":
		*l = ErrorLevel
	default:
		return fmt.Errorf("unrecognized level: %q", text)
	}
	return nil
}

func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// levelFromZap maps a zapcore level back onto the facade's levels. Levels
// above error (dpanic, panic, fatal) are reported as error, levels below
// debug as debug.
func levelFromZap(zl zapcore.Level) Level {
	l := Level(zl)
	switch {
	case l > ErrorLevel:
		return ErrorLevel
	case l < DebugLevel:
		return DebugLevel
	default:
		return l
	}
}

// coerceLevel resolves the level argument of Logger.Log. Only a valid Level
// or a recognized level name is honoured, any other value (a bool, nil, an
// unknown name) becomes info. Some host logging conventions pass `true` in the
// level position, which is why this takes any.
func coerceLevel(v any) Level {
	switch lv := v.(type) {
	case Level:
		if lv.valid() {
			return lv
		}
	case zapcore.Level:
		return levelFromZap(lv)
	case string:
		if parsed, err := ParseLevel(lv); err == nil {
			return parsed
		}
	}
	return DefaultLevel
}
